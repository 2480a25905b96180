// service/dashboard_service.go
package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/quill/audit"
	"github.com/dev-mohitbeniwal/quill/dao"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

type IDashboardService interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
	ListPosts(ctx context.Context, filter model.DashboardFilter) (*model.DashboardPostListResponse, error)
	AuditLogs(ctx context.Context, q audit.Query) ([]audit.AuditLog, error)
}

type DashboardService struct {
	dashboardDAO dao.IDashboardDAO
	cacheService *util.CacheService
	auditService audit.Service
}

var _ IDashboardService = &DashboardService{}

func NewDashboardService(dashboardDAO dao.IDashboardDAO, cacheService *util.CacheService, auditService audit.Service) *DashboardService {
	return &DashboardService{
		dashboardDAO: dashboardDAO,
		cacheService: cacheService,
		auditService: auditService,
	}
}

// GetStats runs the four aggregate queries concurrently.
func (s *DashboardService) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	var cached model.DashboardStats
	if s.cacheService.GetJSON(ctx, util.NSDashboardStats, nil, &cached) {
		return &cached, nil
	}

	stats := &model.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalArticles, err = s.dashboardDAO.CountPosts(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		stats.PublishedArticles, err = s.dashboardDAO.CountPosts(gctx, model.PostStatusPublished)
		return err
	})
	g.Go(func() (err error) {
		stats.DraftArticles, err = s.dashboardDAO.CountPosts(gctx, model.PostStatusDraft)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalViews, err = s.dashboardDAO.SumViews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	s.cacheService.SetJSON(ctx, util.NSDashboardStats, stats, nil)
	return stats, nil
}

func (s *DashboardService) ListPosts(ctx context.Context, filter model.DashboardFilter) (*model.DashboardPostListResponse, error) {
	params := filter.CacheParams()
	var cached model.DashboardPostListResponse
	if s.cacheService.GetJSON(ctx, util.NSDashboardPosts, params, &cached) {
		return &cached, nil
	}
	items, total, err := s.dashboardDAO.ListDashboardPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard posts: %w", err)
	}
	response := &model.DashboardPostListResponse{Total: total, Items: items}
	s.cacheService.SetJSON(ctx, util.NSDashboardPosts, response, params)
	return response, nil
}

// AuditLogs is never cached.
func (s *DashboardService) AuditLogs(ctx context.Context, q audit.Query) ([]audit.AuditLog, error) {
	logs, err := s.auditService.QueryLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	return logs, nil
}
