// service/search_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/dao"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

const (
	excerptLength   = 200
	highlightLength = 150
)

type ISearchService interface {
	Search(ctx context.Context, q model.SearchQuery) (*model.SearchResponse, error)
}

type SearchService struct {
	postDAO        dao.IPostDAO
	validationUtil *util.ValidationUtil
	sanitizer      *util.ContentSanitizer
	cacheService   *util.CacheService
}

var _ ISearchService = &SearchService{}

func NewSearchService(postDAO dao.IPostDAO, validationUtil *util.ValidationUtil, sanitizer *util.ContentSanitizer, cacheService *util.CacheService) *SearchService {
	return &SearchService{
		postDAO:        postDAO,
		validationUtil: validationUtil,
		sanitizer:      sanitizer,
		cacheService:   cacheService,
	}
}

// Search runs a keyword search over published posts.
func (s *SearchService) Search(ctx context.Context, q model.SearchQuery) (*model.SearchResponse, error) {
	if q.Filter == "" {
		q.Filter = model.SearchFilterAll
	}
	if q.Sort == "" {
		q.Sort = model.SearchSortRelevance
	}
	if err := s.validationUtil.ValidateSearch(q); err != nil {
		return nil, err
	}
	q.Q = strings.TrimSpace(q.Q)

	params := q.CacheParams()
	var cached model.SearchResponse
	if s.cacheService.GetJSON(ctx, util.NSSearch, params, &cached) {
		return &cached, nil
	}

	hits, total, err := s.postDAO.SearchPosts(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	items := make([]model.SearchResultItem, 0, len(hits))
	for _, hit := range hits {
		publishedAt := hit.Post.CreatedAt
		items = append(items, model.SearchResultItem{
			ID:          hit.Post.ID,
			Title:       hit.Post.Title,
			Slug:        hit.Post.Slug,
			Excerpt:     s.sanitizer.Excerpt(hit.Post.Content, excerptLength),
			Highlight:   s.sanitizer.Excerpt(hit.Post.Content, highlightLength),
			Category:    hit.Category,
			Author:      hit.Author,
			PublishedAt: &publishedAt,
		})
	}
	response := &model.SearchResponse{Total: total, Items: items}
	s.cacheService.SetJSON(ctx, util.NSSearch, response, params)

	logger.Debug("Search executed", zap.Int64("total", total), zap.String("sort", q.Sort))
	return response, nil
}
