package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/quill/dao"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	quill_mock "github.com/dev-mohitbeniwal/quill/test/mock"
	"github.com/dev-mohitbeniwal/quill/util"
)

func TestSearchBuildsExcerptsAndSharesCacheAcrossCase(t *testing.T) {
	cache, _ := newTestCache(t)
	postDAO := &quill_mock.MockPostDAO{}
	svc := service.NewSearchService(postDAO, util.NewValidationUtil(), util.NewContentSanitizer(), cache)

	body := "<p>" + strings.Repeat("word ", 100) + "</p>"
	postDAO.On("SearchPosts", mock.Anything, mock.AnythingOfType("model.SearchQuery")).
		Return([]dao.SearchHit{{Post: model.Post{ID: "p1", Title: "Go", Content: body}}}, int64(1), nil).Once()

	resp, err := svc.Search(context.Background(), model.SearchQuery{Q: "Go", Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.Len(t, item.Excerpt, 203)
	assert.True(t, strings.HasSuffix(item.Excerpt, "..."))
	assert.Len(t, item.Highlight, 153)
	assert.Nil(t, item.RelevanceScore)
	assert.NotNil(t, item.PublishedAt)

	again, err := svc.Search(context.Background(), model.SearchQuery{Q: "  go ", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.Total)
	postDAO.AssertNumberOfCalls(t, "SearchPosts", 1)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	cache, _ := newTestCache(t)
	postDAO := &quill_mock.MockPostDAO{}
	svc := service.NewSearchService(postDAO, util.NewValidationUtil(), util.NewContentSanitizer(), cache)

	_, err := svc.Search(context.Background(), model.SearchQuery{Q: "   ", Limit: 10})
	assert.ErrorIs(t, err, quill_errors.ErrInvalidSearchCriteria)
}
