package core

import (
	"time"

	"github.com/google/uuid"

	"motoconnect-api/models"
)

// NewComment builds a comment snapshot for the given author. The author's
// name and avatar are denormalized into the entry so the list renders
// without a join.
func NewComment(author *models.User, text string) models.Comment {
	return models.Comment{
		ID:     uuid.New().String(),
		User:   author.ID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   time.Now(),
	}
}

// AddComment inserts the comment at the front of the list.
func AddComment(comments models.CommentList, comment models.Comment) models.CommentList {
	updated := make(models.CommentList, 0, len(comments)+1)
	updated = append(updated, comment)
	updated = append(updated, comments...)
	return updated
}

// RemoveComment deletes a comment. The target is located by commentID and
// the requester must be its author. The entry actually spliced out is the
// one at the index of the first comment authored by the requester, which
// is not necessarily the comment matched by commentID when the author has
// several comments on the entity. This mirrors the reference behavior and
// is kept deliberately; see DESIGN.md.
func RemoveComment(comments models.CommentList, commentID, requestingUser string) (models.CommentList, error) {
	var target *models.Comment
	for i := range comments {
		if comments[i].ID == commentID {
			target = &comments[i]
			break
		}
	}
	if target == nil {
		return comments, ErrCommentNotFound
	}

	if target.User != requestingUser {
		return comments, ErrUnauthorized
	}

	users := make([]string, len(comments))
	for i, c := range comments {
		users[i] = c.User
	}
	removeIndex := indexOf(users, requestingUser)

	updated := make(models.CommentList, 0, len(comments)-1)
	updated = append(updated, comments[:removeIndex]...)
	updated = append(updated, comments[removeIndex+1:]...)
	return updated, nil
}
