// controller/comment_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	"github.com/dev-mohitbeniwal/quill/util"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

type CommentController struct {
	commentService service.ICommentService
	access         Access
}

func NewCommentController(commentService service.ICommentService, access Access) *CommentController {
	return &CommentController{commentService: commentService, access: access}
}

func (cc *CommentController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/posts/:slug/comments", cc.ListComments)
	r.POST("/posts/:slug/comments", cc.access.Authenticated, cc.CreateComment)

	comments := r.Group("/comments", cc.access.Authenticated)
	{
		comments.POST("/:id/approve", cc.access.Admin, cc.ApproveComment)
		comments.DELETE("/:id", cc.DeleteComment)
	}
}

func (cc *CommentController) ListComments(c *gin.Context) {
	skip, limit, err := helper_util.GetPaginationParams(c, 20)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	comments, err := cc.commentService.ListComments(c.Request.Context(), c.Param("slug"), skip, limit)
	if err != nil {
		cc.respondError(c, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var in model.CommentCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid comment data", quill_errors.ErrInvalidCommentData)
		return
	}

	created, err := cc.commentService.CreateComment(c.Request.Context(), c.Param("slug"), in.Content, user)
	if err != nil {
		cc.respondError(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CommentController) ApproveComment(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	approved, err := cc.commentService.ApproveComment(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		cc.respondError(c, err, "Failed to approve comment")
		return
	}
	c.JSON(http.StatusOK, approved)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	if err := cc.commentService.DeleteComment(c.Request.Context(), c.Param("id"), user); err != nil {
		cc.respondError(c, err, "Failed to delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CommentController) respondError(c *gin.Context, err error, fallback string) {
	if invalidInput(c, err) {
		return
	}
	switch {
	case errors.Is(err, quill_errors.ErrPostNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Post not found", err)
	case errors.Is(err, quill_errors.ErrCommentNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Comment not found", err)
	case errors.Is(err, quill_errors.ErrForbidden):
		util.RespondWithError(c, http.StatusForbidden, "Not allowed to delete this comment", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}
