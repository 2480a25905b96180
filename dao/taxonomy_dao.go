// dao/taxonomy_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

type CategoryDAO struct {
	Driver neo4j.DriverWithContext
}

var _ ICategoryDAO = &CategoryDAO{}

func NewCategoryDAO(driver neo4j.DriverWithContext) *CategoryDAO {
	dao := &CategoryDAO{Driver: driver}
	if err := ensureConstraints(context.Background(), driver,
		`CREATE CONSTRAINT unique_category_id IF NOT EXISTS FOR (c:Category) REQUIRE c.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_category_slug IF NOT EXISTS FOR (c:Category) REQUIRE c.slug IS UNIQUE`,
	); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Category", zap.Error(err))
	}
	return dao
}

// createUnique creates a node with props unless one with the same slug exists.
func createUnique(ctx context.Context, driver neo4j.DriverWithContext, label string, props map[string]any, conflict error) (neo4j.Node, error) {
	result, err := writeTx(ctx, driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `MATCH (n:`+label+` {slug: $slug}) RETURN count(n)`, map[string]any{"slug": props["slug"]})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		if n, _ := rec.Values[0].(int64); n > 0 {
			return nil, conflict
		}
		res, err = tx.Run(ctx, `CREATE (n:`+label+` $props) RETURN n`, map[string]any{"props": props})
		if err != nil {
			return nil, err
		}
		rec, err = res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return rec.Values[0].(neo4j.Node), nil
	})
	if err != nil {
		return neo4j.Node{}, passThrough(err, conflict)
	}
	return result.(neo4j.Node), nil
}

func (dao *CategoryDAO) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	start := time.Now()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	node, err := createUnique(ctx, dao.Driver, "Category", map[string]any{
		"id":          category.ID,
		"name":        category.Name,
		"slug":        category.Slug,
		"description": category.Description,
		"createdAt":   helper_util.FormatTime(time.Now()),
	}, quill_errors.ErrCategoryConflict)
	if err != nil {
		logger.Error("Failed to create category", zap.Error(err), zap.String("slug", category.Slug))
		return nil, err
	}
	logger.Info("Category created", zap.String("categoryID", category.ID), zap.Duration("duration", time.Since(start)))
	return mapNodeToCategory(&node), nil
}

// ListCategoriesWithCount counts live posts per category, ordered by name.
func (dao *CategoryDAO) ListCategoriesWithCount(ctx context.Context) ([]model.CategoryWithCount, error) {
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (c:Category)
    OPTIONAL MATCH (p:Post)-[:IN_CATEGORY]->(c)
    WHERE p.deletedAt IS NULL
    RETURN c, count(p)
    ORDER BY c.name
    `, nil)
	if err != nil {
		logger.Error("Failed to list categories", zap.Error(err))
		return nil, quill_errors.ErrDatabaseOperation
	}
	out := make([]model.CategoryWithCount, 0, len(records))
	for _, rec := range records {
		c := mapNodeToCategory(nodeAt(rec, 0))
		count, _ := rec.Values[1].(int64)
		out = append(out, model.CategoryWithCount{ID: c.ID, Name: c.Name, Slug: c.Slug, Count: count})
	}
	return out, nil
}

type TagDAO struct {
	Driver neo4j.DriverWithContext
}

var _ ITagDAO = &TagDAO{}

func NewTagDAO(driver neo4j.DriverWithContext) *TagDAO {
	dao := &TagDAO{Driver: driver}
	if err := ensureConstraints(context.Background(), driver,
		`CREATE CONSTRAINT unique_tag_id IF NOT EXISTS FOR (t:Tag) REQUIRE t.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_tag_slug IF NOT EXISTS FOR (t:Tag) REQUIRE t.slug IS UNIQUE`,
	); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Tag", zap.Error(err))
	}
	return dao
}

func (dao *TagDAO) CreateTag(ctx context.Context, tag model.Tag) (*model.Tag, error) {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	now := helper_util.FormatTime(time.Now())
	node, err := createUnique(ctx, dao.Driver, "Tag", map[string]any{
		"id":        tag.ID,
		"name":      tag.Name,
		"slug":      tag.Slug,
		"createdAt": now,
		"updatedAt": now,
	}, quill_errors.ErrTagConflict)
	if err != nil {
		logger.Error("Failed to create tag", zap.Error(err), zap.String("slug", tag.Slug))
		return nil, err
	}
	created := mapNodeToTag(node)
	logger.Info("Tag created", zap.String("tagID", created.ID))
	return &created, nil
}

// ListTags returns tags whose name contains q, case-insensitively, by name.
func (dao *TagDAO) ListTags(ctx context.Context, q string) ([]model.Tag, error) {
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (t:Tag)
    WHERE $q = '' OR toLower(t.name) CONTAINS toLower($q)
    RETURN t
    ORDER BY t.name
    `, map[string]any{"q": q})
	if err != nil {
		logger.Error("Failed to list tags", zap.Error(err))
		return nil, quill_errors.ErrDatabaseOperation
	}
	tags := make([]model.Tag, 0, len(records))
	for _, rec := range records {
		tags = append(tags, mapNodeToTag(*nodeAt(rec, 0)))
	}
	return tags, nil
}
