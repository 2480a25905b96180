package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	quill_mock "github.com/dev-mohitbeniwal/quill/test/mock"
)

func TestDashboardStatsAggregatesAndCaches(t *testing.T) {
	cache, _ := newTestCache(t)
	dashboardDAO := &quill_mock.MockDashboardDAO{}
	svc := service.NewDashboardService(dashboardDAO, cache, newAuditMock())

	dashboardDAO.On("CountPosts", mock.Anything, "").Return(int64(5), nil)
	dashboardDAO.On("CountPosts", mock.Anything, model.PostStatusPublished).Return(int64(3), nil)
	dashboardDAO.On("CountPosts", mock.Anything, model.PostStatusDraft).Return(int64(2), nil)
	dashboardDAO.On("SumViews", mock.Anything).Return(int64(42), nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.DashboardStats{TotalArticles: 5, PublishedArticles: 3, DraftArticles: 2, TotalViews: 42}, stats)

	_, err = svc.GetStats(context.Background())
	require.NoError(t, err)
	dashboardDAO.AssertNumberOfCalls(t, "SumViews", 1)
}

func TestDashboardStatsFailureIsNotCached(t *testing.T) {
	cache, _ := newTestCache(t)
	dashboardDAO := &quill_mock.MockDashboardDAO{}
	svc := service.NewDashboardService(dashboardDAO, cache, newAuditMock())

	dashboardDAO.On("CountPosts", mock.Anything, mock.Anything).Return(int64(1), nil)
	dashboardDAO.On("SumViews", mock.Anything).Return(int64(0), errors.New("boom")).Once()
	_, err := svc.GetStats(context.Background())
	require.Error(t, err)

	dashboardDAO.On("SumViews", mock.Anything).Return(int64(7), nil).Once()
	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalViews)
}
