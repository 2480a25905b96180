// service/comment_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/audit"
	"github.com/dev-mohitbeniwal/quill/dao"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

type ICommentService interface {
	ListComments(ctx context.Context, postSlug string, skip, limit int) (*model.CommentListResponse, error)
	CreateComment(ctx context.Context, postSlug, content string, author *model.User) (*model.Comment, error)
	ApproveComment(ctx context.Context, commentID string, approver *model.User) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID string, user *model.User) error
}

type CommentService struct {
	commentDAO     dao.ICommentDAO
	postDAO        dao.IPostDAO
	validationUtil *util.ValidationUtil
	sanitizer      *util.ContentSanitizer
	cacheService   *util.CacheService
	auditService   audit.Service
}

var _ ICommentService = &CommentService{}

func NewCommentService(commentDAO dao.ICommentDAO, postDAO dao.IPostDAO, validationUtil *util.ValidationUtil, sanitizer *util.ContentSanitizer, cacheService *util.CacheService, auditService audit.Service) *CommentService {
	return &CommentService{
		commentDAO:     commentDAO,
		postDAO:        postDAO,
		validationUtil: validationUtil,
		sanitizer:      sanitizer,
		cacheService:   cacheService,
		auditService:   auditService,
	}
}

// ListComments returns approved comments for the post with the given slug.
func (s *CommentService) ListComments(ctx context.Context, postSlug string, skip, limit int) (*model.CommentListResponse, error) {
	params := map[string]any{"slug": postSlug, "skip": skip, "limit": limit}
	var cached model.CommentListResponse
	if s.cacheService.GetJSON(ctx, util.NSComments, params, &cached) {
		return &cached, nil
	}

	post, err := s.postDAO.GetPostBySlug(ctx, postSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	items, total, err := s.commentDAO.ListApprovedComments(ctx, post.ID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	response := &model.CommentListResponse{Total: total, Items: items}
	s.cacheService.SetJSON(ctx, util.NSComments, response, params)
	return response, nil
}

// CreateComment strips all markup and stores the comment pending approval.
func (s *CommentService) CreateComment(ctx context.Context, postSlug, content string, author *model.User) (*model.Comment, error) {
	clean := s.sanitizer.SanitizePlain(content)
	if err := s.validationUtil.ValidateComment(clean); err != nil {
		return nil, err
	}
	post, err := s.postDAO.GetPostBySlug(ctx, postSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	created, err := s.commentDAO.CreateComment(ctx, model.Comment{
		Content: clean,
		PostID:  post.ID,
		UserID:  author.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.cacheService.Invalidate(ctx, commentChangedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionCreateComment,
		UserID:     author.ID,
		ResourceID: created.ID,
		Success:    true,
	})
	logger.Info("Comment submitted for approval", zap.String("commentID", created.ID), zap.String("postID", post.ID))
	return created, nil
}

func (s *CommentService) ApproveComment(ctx context.Context, commentID string, approver *model.User) (*model.Comment, error) {
	approved, err := s.commentDAO.ApproveComment(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to approve comment: %w", err)
	}
	s.cacheService.Invalidate(ctx, commentChangedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionApproveComment,
		UserID:     approver.ID,
		ResourceID: commentID,
		Success:    true,
	})
	return approved, nil
}

// DeleteComment is allowed for the comment's author and superusers.
func (s *CommentService) DeleteComment(ctx context.Context, commentID string, user *model.User) error {
	comment, err := s.commentDAO.GetComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if !user.IsSuperuser && comment.UserID != user.ID {
		logger.Warn("Comment deletion by non-author refused",
			zap.String("commentID", commentID),
			zap.String("userID", user.ID))
		return quill_errors.ErrForbidden
	}
	if err := s.commentDAO.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	s.cacheService.Invalidate(ctx, commentChangedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionDeleteComment,
		UserID:     user.ID,
		ResourceID: commentID,
		Success:    true,
	})
	return nil
}
