// controller/post_controller.go
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

type PostController struct {
	postService service.IPostService
	access      Access
}

func NewPostController(postService service.IPostService, access Access) *PostController {
	return &PostController{postService: postService, access: access}
}

// RegisterRoutes registers the post routes
func (pc *PostController) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/posts")
	{
		posts.GET("", pc.ListPosts)
		posts.GET("/:slug", pc.GetPost)
		posts.POST("", pc.access.Authenticated, pc.access.Editor, pc.CreatePost)
		posts.PUT("/:id", pc.access.Authenticated, pc.access.Editor, pc.UpdatePost)
		posts.DELETE("/:id", pc.access.Authenticated, pc.access.Editor, pc.DeletePost)
	}
}

func (pc *PostController) ListPosts(c *gin.Context) {
	skip, limit, err := helper_util.GetPaginationParams(c, 10)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	filter := model.PostFilter{
		Skip:         skip,
		Limit:        limit,
		Status:       c.Query("status"),
		CategorySlug: c.Query("category_slug"),
		TagSlug:      c.Query("tag_slug"),
		Search:       c.Query("search"),
	}

	posts, err := pc.postService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.postService.GetPostDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, quill_errors.ErrPostNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Post not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve post", err)
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var in model.PostCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid post data", quill_errors.ErrInvalidPostData)
		return
	}

	created, err := pc.postService.CreatePost(c.Request.Context(), in, user)
	if err != nil {
		pc.respondWriteError(c, err, "Failed to create post")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var in model.PostUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid post data", quill_errors.ErrInvalidPostData)
		return
	}

	updated, err := pc.postService.UpdatePost(c.Request.Context(), c.Param("id"), in, user)
	if err != nil {
		if errors.Is(err, quill_errors.ErrForbidden) {
			util.RespondWithError(c, http.StatusForbidden, "Not allowed to update this post", err)
			return
		}
		pc.respondWriteError(c, err, "Failed to update post")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	deleted, err := pc.postService.DeletePost(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		if errors.Is(err, quill_errors.ErrForbidden) {
			util.RespondWithError(c, http.StatusForbidden, "Not allowed to delete this post", err)
			return
		}
		pc.respondWriteError(c, err, "Failed to delete post")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func (pc *PostController) respondWriteError(c *gin.Context, err error, fallback string) {
	if invalidInput(c, err) {
		return
	}
	switch {
	case errors.Is(err, quill_errors.ErrPostNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Post not found", err)
	case errors.Is(err, quill_errors.ErrPostConflict):
		util.RespondWithError(c, http.StatusBadRequest, "A post with this slug already exists", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}
