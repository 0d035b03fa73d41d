package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motoconnect-api/core"
	"motoconnect-api/middleware"
	"motoconnect-api/models"
	"motoconnect-api/repositories"
	"motoconnect-api/utils"
)

type PostController struct {
	posts repositories.PostStore
	users repositories.UserStore
}

func NewPostController(posts repositories.PostStore, users repositories.UserStore) *PostController {
	return &PostController{posts: posts, users: users}
}

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	user, err := pc.users.FindByID(userID)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	post := models.Post{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      req.Text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now(),
	}

	if err := pc.posts.Create(&post); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.posts.FindAll()
	if err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "There is no post found with id")
			return
		}
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	if err := core.AssertOwner(post, userID); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "User not authorized to delete this post")
		return
	}

	if err := pc.posts.Delete(post.ID); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post has been deleted"})
}

func (pc *PostController) LikePost(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	likes, err := core.AddReaction(post.Likes, userID)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "User already liked this post")
		return
	}

	post.Likes = likes
	if err := pc.posts.Save(post); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, post.Likes)
}

func (pc *PostController) UnlikePost(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	likes, err := core.RemoveReaction(post.Likes, userID)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "User has not liked post yet")
		return
	}

	post.Likes = likes
	if err := pc.posts.Save(post); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, post.Likes)
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (pc *PostController) CreateComment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	user, err := pc.users.FindByID(userID)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	post.Comments = core.AddComment(post.Comments, core.NewComment(user, req.Text))
	if err := pc.posts.Save(post); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusCreated, post.Comments)
}

func (pc *PostController) DeleteComment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	post, err := pc.posts.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Post not found")
			return
		}
		utils.SendServerError(c)
		return
	}

	comments, err := core.RemoveComment(post.Comments, c.Param("comment_id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrCommentNotFound):
			utils.SendError(c, http.StatusNotFound, "Comment does not exist")
		case errors.Is(err, core.ErrUnauthorized):
			utils.SendError(c, http.StatusUnauthorized, "User not authorized to delete this comment")
		default:
			utils.SendServerError(c)
		}
		return
	}

	post.Comments = comments
	if err := pc.posts.Save(post); err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, post.Comments)
}
