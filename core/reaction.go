package core

import (
	"motoconnect-api/models"
)

// AddReaction records a love/like for userID. Re-adding is an error; the
// list is returned unchanged in that case. New entries go to the front so
// iteration order is most-recent-first.
func AddReaction(reactions models.ReactionList, userID string) (models.ReactionList, error) {
	for _, r := range reactions {
		if r.User == userID {
			return reactions, ErrAlreadyReacted
		}
	}

	updated := make(models.ReactionList, 0, len(reactions)+1)
	updated = append(updated, models.Reaction{User: userID})
	updated = append(updated, reactions...)
	return updated, nil
}

// RemoveReaction removes userID's love/like. The remove index is computed
// by mapping the user references of the list as read and searching for the
// first match; a concurrent writer can therefore invalidate the index
// before the splice is persisted (accepted limitation, no locking here).
func RemoveReaction(reactions models.ReactionList, userID string) (models.ReactionList, error) {
	found := false
	for _, r := range reactions {
		if r.User == userID {
			found = true
			break
		}
	}
	if !found {
		return reactions, ErrNotReacted
	}

	users := make([]string, len(reactions))
	for i, r := range reactions {
		users[i] = r.User
	}
	removeIndex := indexOf(users, userID)

	updated := make(models.ReactionList, 0, len(reactions)-1)
	updated = append(updated, reactions[:removeIndex]...)
	updated = append(updated, reactions[removeIndex+1:]...)
	return updated, nil
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
