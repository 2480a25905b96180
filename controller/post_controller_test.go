package controller_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/quill/controller"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	mock_service "github.com/dev-mohitbeniwal/quill/test/service_mock"
)

const jsonContentType = "application/json"

func TestPostController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	editor := &model.User{ID: "editor-1", IsActive: true}
	mockPostService := mock_service.NewMockIPostService(ctrl)
	router := setupRouter(controller.NewPostController(mockPostService, testAccess(editor)))

	t.Run("ListPosts_Success", func(t *testing.T) {
		mockPostService.EXPECT().
			ListPosts(gomock.Any(), model.PostFilter{Skip: 0, Limit: 10, Status: "published"}).
			Return(&model.PostListResponse{Total: 1, Items: []model.PostListItem{{ID: "1"}}}, nil)

		w := perform(t, router, http.MethodGet, "/api/v1/posts?status=published", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("ListPosts_Failure_BadLimit", func(t *testing.T) {
		w := perform(t, router, http.MethodGet, "/api/v1/posts?limit=101", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetPost_Failure_NotFound", func(t *testing.T) {
		mockPostService.EXPECT().
			GetPostDetail(gomock.Any(), "missing").
			Return(nil, quill_errors.ErrPostNotFound)

		w := perform(t, router, http.MethodGet, "/api/v1/posts/missing", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
	})

	t.Run("CreatePost_Success", func(t *testing.T) {
		mockPostService.EXPECT().
			CreatePost(gomock.Any(), gomock.Any(), editor).
			Return(&model.Post{ID: "1", Title: "Hello"}, nil)

		body := strings.NewReader(`{"title":"Hello","slug":"hello","content":"<p>hi</p>"}`)
		w := perform(t, router, http.MethodPost, "/api/v1/posts", body, jsonContentType)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreatePost_Failure_DuplicateSlug", func(t *testing.T) {
		mockPostService.EXPECT().
			CreatePost(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, quill_errors.ErrPostConflict)

		body := strings.NewReader(`{"title":"Hello","slug":"hello","content":"x"}`)
		w := perform(t, router, http.MethodPost, "/api/v1/posts", body, jsonContentType)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"A post with this slug already exists"}`, w.Body.String())
	})

	t.Run("CreatePost_Failure_Validation", func(t *testing.T) {
		mockPostService.EXPECT().
			CreatePost(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, quill_errors.Invalid(quill_errors.ErrInvalidPostData, "either content or pdf_url is required"))

		body := strings.NewReader(`{"title":"Hello","slug":"hello"}`)
		w := perform(t, router, http.MethodPost, "/api/v1/posts", body, jsonContentType)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"either content or pdf_url is required"}`, w.Body.String())
	})

	t.Run("UpdatePost_Failure_NotAuthor", func(t *testing.T) {
		mockPostService.EXPECT().
			UpdatePost(gomock.Any(), "1", gomock.Any(), editor).
			Return(nil, quill_errors.ErrForbidden)

		body := strings.NewReader(`{"title":"Mine now"}`)
		w := perform(t, router, http.MethodPut, "/api/v1/posts/1", body, jsonContentType)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Not allowed to update this post"}`, w.Body.String())
	})

	t.Run("DeletePost_Failure_NotAuthor", func(t *testing.T) {
		mockPostService.EXPECT().
			DeletePost(gomock.Any(), "1", editor).
			Return(nil, quill_errors.ErrForbidden)

		w := perform(t, router, http.MethodDelete, "/api/v1/posts/1", nil, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Not allowed to delete this post"}`, w.Body.String())
	})

	t.Run("DeletePost_Failure_NotFound", func(t *testing.T) {
		mockPostService.EXPECT().
			DeletePost(gomock.Any(), "2", editor).
			Return(nil, quill_errors.ErrPostNotFound)

		w := perform(t, router, http.MethodDelete, "/api/v1/posts/2", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeletePost_Failure_StoreErrorIsOpaque", func(t *testing.T) {
		mockPostService.EXPECT().
			DeletePost(gomock.Any(), "3", editor).
			Return(nil, quill_errors.ErrDatabaseOperation)

		w := perform(t, router, http.MethodDelete, "/api/v1/posts/3", nil, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to delete post"}`, w.Body.String())
	})
}
