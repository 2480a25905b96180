// dao/dashboard_dao.go
package dao

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
)

type DashboardDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IDashboardDAO = &DashboardDAO{}

func NewDashboardDAO(driver neo4j.DriverWithContext) *DashboardDAO {
	return &DashboardDAO{Driver: driver}
}

// CountPosts counts live posts, optionally restricted to one status.
func (dao *DashboardDAO) CountPosts(ctx context.Context, status string) (int64, error) {
	n, err := readCount(ctx, dao.Driver, `
    MATCH (p:Post)
    WHERE p.deletedAt IS NULL AND ($status = '' OR p.status = $status)
    RETURN count(p)
    `, map[string]any{"status": status})
	if err != nil {
		logger.Error("Failed to count posts", zap.Error(err), zap.String("status", status))
		return 0, quill_errors.ErrDatabaseOperation
	}
	return n, nil
}

func (dao *DashboardDAO) SumViews(ctx context.Context) (int64, error) {
	n, err := readCount(ctx, dao.Driver, `
    MATCH (p:Post)
    WHERE p.deletedAt IS NULL
    RETURN coalesce(sum(p.viewCount), 0)
    `, nil)
	if err != nil {
		logger.Error("Failed to sum views", zap.Error(err))
		return 0, quill_errors.ErrDatabaseOperation
	}
	return n, nil
}

var dashboardOrder = map[string]string{
	"views":   "ORDER BY p.viewCount DESC",
	"title":   "ORDER BY p.title ASC",
	"created": "ORDER BY p.createdAt DESC",
}

func (dao *DashboardDAO) ListDashboardPosts(ctx context.Context, filter model.DashboardFilter) ([]model.DashboardPostItem, int64, error) {
	start := time.Now()
	where := `
    MATCH (p:Post)
    WHERE p.deletedAt IS NULL
      AND ($status = '' OR p.status = $status)
      AND ($category = '' OR EXISTS { MATCH (p)-[:IN_CATEGORY]->(:Category {slug: $category}) })
    `
	params := map[string]any{
		"status":   filter.Status,
		"category": filter.Category,
		"skip":     int64(filter.Skip),
		"limit":    int64(filter.Limit),
	}

	total, err := readCount(ctx, dao.Driver, where+`RETURN count(p)`, params)
	if err != nil {
		logger.Error("Failed to count dashboard posts", zap.Error(err))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	order, ok := dashboardOrder[filter.Sort]
	if !ok {
		order = dashboardOrder["created"]
	}
	records, err := readRecords(ctx, dao.Driver, where+`
    OPTIONAL MATCH (p)-[:WRITTEN_BY]->(u:User)
    OPTIONAL MATCH (p)-[:IN_CATEGORY]->(c:Category)
    RETURN p, u, c
    `+order+`
    SKIP $skip
    LIMIT $limit
    `, params)
	if err != nil {
		logger.Error("Failed to list dashboard posts", zap.Error(err))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	items := make([]model.DashboardPostItem, 0, len(records))
	for _, rec := range records {
		p := mapNodeToPost(*nodeAt(rec, 0))
		items = append(items, model.DashboardPostItem{
			ID:        p.ID,
			Title:     p.Title,
			Slug:      p.Slug,
			Status:    p.Status,
			Views:     p.ViewCount,
			Author:    mapNodeToAuthor(nodeAt(rec, 1)),
			Category:  mapNodeToCategory(nodeAt(rec, 2)),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	logger.Info("Dashboard posts listed", zap.Int("count", len(items)), zap.Duration("duration", time.Since(start)))
	return items, total, nil
}
