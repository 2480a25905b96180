// service/taxonomy_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dev-mohitbeniwal/quill/audit"
	"github.com/dev-mohitbeniwal/quill/dao"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

type ITaxonomyService interface {
	ListCategories(ctx context.Context) ([]model.CategoryWithCount, error)
	CreateCategory(ctx context.Context, in model.CategoryCreate, creator *model.User) (*model.Category, error)
	ListTags(ctx context.Context, q string) ([]model.Tag, error)
	CreateTag(ctx context.Context, in model.TagCreate, creator *model.User) (*model.Tag, error)
}

type TaxonomyService struct {
	categoryDAO    dao.ICategoryDAO
	tagDAO         dao.ITagDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	auditService   audit.Service
}

var _ ITaxonomyService = &TaxonomyService{}

func NewTaxonomyService(categoryDAO dao.ICategoryDAO, tagDAO dao.ITagDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, auditService audit.Service) *TaxonomyService {
	return &TaxonomyService{
		categoryDAO:    categoryDAO,
		tagDAO:         tagDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		auditService:   auditService,
	}
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]model.CategoryWithCount, error) {
	var cached []model.CategoryWithCount
	if s.cacheService.GetJSON(ctx, util.NSCategories, nil, &cached) {
		return cached, nil
	}
	categories, err := s.categoryDAO.ListCategoriesWithCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	s.cacheService.SetJSON(ctx, util.NSCategories, categories, nil)
	return categories, nil
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, in model.CategoryCreate, creator *model.User) (*model.Category, error) {
	if err := s.validationUtil.ValidateCategory(in); err != nil {
		return nil, err
	}
	created, err := s.categoryDAO.CreateCategory(ctx, model.Category{
		Name:        strings.TrimSpace(in.Name),
		Slug:        in.Slug,
		Description: in.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.cacheService.Invalidate(ctx, categoryCreatedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionCreateCategory,
		UserID:     creator.ID,
		ResourceID: created.ID,
		Success:    true,
	})
	return created, nil
}

func (s *TaxonomyService) ListTags(ctx context.Context, q string) ([]model.Tag, error) {
	params := map[string]any{"q": q}
	var cached []model.Tag
	if s.cacheService.GetJSON(ctx, util.NSTags, params, &cached) {
		return cached, nil
	}
	tags, err := s.tagDAO.ListTags(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	s.cacheService.SetJSON(ctx, util.NSTags, tags, params)
	return tags, nil
}

func (s *TaxonomyService) CreateTag(ctx context.Context, in model.TagCreate, creator *model.User) (*model.Tag, error) {
	if err := s.validationUtil.ValidateTag(in); err != nil {
		return nil, err
	}
	created, err := s.tagDAO.CreateTag(ctx, model.Tag{Name: strings.TrimSpace(in.Name), Slug: in.Slug})
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	s.cacheService.Invalidate(ctx, tagCreatedNamespaces...)
	s.auditService.Record(ctx, audit.AuditLog{
		Action:     audit.ActionCreateTag,
		UserID:     creator.ID,
		ResourceID: created.ID,
		Success:    true,
	})
	return created, nil
}
