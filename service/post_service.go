// service/post_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/audit"
	"github.com/dev-mohitbeniwal/quill/dao"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

// IPostService defines the interface for post operations
type IPostService interface {
	ListPosts(ctx context.Context, filter model.PostFilter) (*model.PostListResponse, error)
	GetPostDetail(ctx context.Context, slug string) (*model.PostDetail, error)
	CreatePost(ctx context.Context, in model.PostCreate, author *model.User) (*model.Post, error)
	UpdatePost(ctx context.Context, postID string, in model.PostUpdate, editor *model.User) (*model.Post, error)
	DeletePost(ctx context.Context, postID string, editor *model.User) (*model.Post, error)
}

// PostService handles business logic for posts
type PostService struct {
	postDAO        dao.IPostDAO
	validationUtil *util.ValidationUtil
	sanitizer      *util.ContentSanitizer
	cacheService   *util.CacheService
	auditService   audit.Service
	eventBus       *util.EventBus
}

var _ IPostService = &PostService{}

func NewPostService(postDAO dao.IPostDAO, validationUtil *util.ValidationUtil, sanitizer *util.ContentSanitizer, cacheService *util.CacheService, auditService audit.Service, eventBus *util.EventBus) *PostService {
	return &PostService{
		postDAO:        postDAO,
		validationUtil: validationUtil,
		sanitizer:      sanitizer,
		cacheService:   cacheService,
		auditService:   auditService,
		eventBus:       eventBus,
	}
}

func (s *PostService) ListPosts(ctx context.Context, filter model.PostFilter) (*model.PostListResponse, error) {
	params := filter.CacheParams()
	var cached model.PostListResponse
	if s.cacheService.GetJSON(ctx, util.NSPostsList, params, &cached) {
		return &cached, nil
	}

	items, total, err := s.postDAO.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	response := &model.PostListResponse{Total: total, Items: items}
	s.cacheService.SetJSON(ctx, util.NSPostsList, response, params)
	return response, nil
}

func (s *PostService) GetPostDetail(ctx context.Context, slug string) (*model.PostDetail, error) {
	params := map[string]any{"slug": slug}
	var cached model.PostDetail
	if s.cacheService.GetJSON(ctx, util.NSPostDetail, params, &cached) {
		return &cached, nil
	}

	detail, err := s.postDAO.GetPostDetail(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	s.cacheService.SetJSON(ctx, util.NSPostDetail, detail, params)
	return detail, nil
}

// cleanContent sanitizes a post body and enforces the size limit on the result.
func (s *PostService) cleanContent(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	clean := s.sanitizer.SanitizeHTML(raw)
	if err := s.validationUtil.ValidateContentLength(clean); err != nil {
		return "", err
	}
	return clean, nil
}

func (s *PostService) CreatePost(ctx context.Context, in model.PostCreate, author *model.User) (*model.Post, error) {
	if err := s.validationUtil.ValidatePostCreate(in); err != nil {
		return nil, err
	}
	content, err := s.cleanContent(in.Content)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		Title:           strings.TrimSpace(in.Title),
		Slug:            in.Slug,
		Content:         content,
		Abstract:        in.Abstract,
		Status:          in.Status,
		Visibility:      in.Visibility,
		ThumbnailURL:    in.ThumbnailURL,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CanonicalURL:    in.CanonicalURL,
		PDFURL:          in.PDFURL,
		ScheduledAt:     in.ScheduledAt,
		AuthorID:        author.ID,
		CategoryID:      in.CategoryID,
		TagIDs:          in.TagIDs,
	}
	if post.Status == "" {
		post.Status = model.PostStatusDraft
	}
	if post.Visibility == "" {
		post.Visibility = model.VisibilityPublic
	}
	if content != "" {
		post.ReadingTime = s.sanitizer.ReadingTime(content)
	}

	created, err := s.postDAO.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.cacheService.Invalidate(ctx, postCreatedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionCreatePost,
		UserID:     author.ID,
		ResourceID: created.ID,
		Success:    true,
		ChangeDetails: audit.ChangeDetails(map[string]any{
			"action": "created",
			"slug":   created.Slug,
			"status": created.Status,
		}),
	})
	if created.Status == model.PostStatusPublished {
		s.eventBus.Publish(ctx, util.EventPostPublished, *created)
	}

	logger.Info("Post created", zap.String("postID", created.ID), zap.String("authorID", author.ID))
	return created, nil
}

// ownedPost loads a post and enforces that only its author or a superuser
// may change it.
func (s *PostService) ownedPost(ctx context.Context, postID string, user *model.User) (*model.Post, error) {
	post, err := s.postDAO.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if !user.IsSuperuser && post.AuthorID != user.ID {
		logger.Warn("Post modification by non-author refused",
			zap.String("postID", postID),
			zap.String("userID", user.ID))
		return nil, quill_errors.ErrForbidden
	}
	return post, nil
}

func applyPostUpdate(post *model.Post, in model.PostUpdate) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	if in.Title != nil {
		post.Title = strings.TrimSpace(*in.Title)
	}
	set(&post.Slug, in.Slug)
	set(&post.Abstract, in.Abstract)
	set(&post.Status, in.Status)
	set(&post.Visibility, in.Visibility)
	set(&post.ThumbnailURL, in.ThumbnailURL)
	set(&post.MetaTitle, in.MetaTitle)
	set(&post.MetaDescription, in.MetaDescription)
	set(&post.CanonicalURL, in.CanonicalURL)
	set(&post.PDFURL, in.PDFURL)
	set(&post.CategoryID, in.CategoryID)
	if in.ScheduledAt != nil {
		post.ScheduledAt = in.ScheduledAt
	}
}

func (s *PostService) UpdatePost(ctx context.Context, postID string, in model.PostUpdate, editor *model.User) (*model.Post, error) {
	post, err := s.ownedPost(ctx, postID, editor)
	if err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidatePostUpdate(in); err != nil {
		return nil, err
	}

	wasPublished := post.Status == model.PostStatusPublished
	applyPostUpdate(post, in)
	if in.Content != nil {
		content, err := s.cleanContent(*in.Content)
		if err != nil {
			return nil, err
		}
		post.Content = content
		post.ReadingTime = s.sanitizer.ReadingTime(content)
	}

	updated, err := s.postDAO.UpdatePost(ctx, *post, in.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.cacheService.Invalidate(ctx, postChangedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionUpdatePost,
		UserID:     editor.ID,
		ResourceID: updated.ID,
		Success:    true,
		ChangeDetails: audit.ChangeDetails(map[string]any{
			"action": "updated",
			"status": updated.Status,
		}),
	})
	if !wasPublished && updated.Status == model.PostStatusPublished {
		s.eventBus.Publish(ctx, util.EventPostPublished, *updated)
	}
	return updated, nil
}

func (s *PostService) DeletePost(ctx context.Context, postID string, editor *model.User) (*model.Post, error) {
	if _, err := s.ownedPost(ctx, postID, editor); err != nil {
		return nil, err
	}
	deleted, err := s.postDAO.SoftDeletePost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	s.cacheService.Invalidate(ctx, postChangedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionDeletePost,
		UserID:     editor.ID,
		ResourceID: postID,
		Success:    true,
	})
	return deleted, nil
}
