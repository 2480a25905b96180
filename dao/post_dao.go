// dao/post_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

const relatedPostsLimit = 3

// SearchHit is a matched post with the relations search results embed.
type SearchHit struct {
	Post     model.Post
	Category *model.Category
	Author   *model.AuthorBrief
}

type PostDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IPostDAO = &PostDAO{}

func NewPostDAO(driver neo4j.DriverWithContext) *PostDAO {
	dao := &PostDAO{Driver: driver}
	if err := dao.EnsureUniqueConstraint(context.Background()); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Post", zap.Error(err))
	}
	return dao
}

func (dao *PostDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraints on Post")
	return ensureConstraints(ctx, dao.Driver,
		`CREATE CONSTRAINT unique_post_id IF NOT EXISTS FOR (p:Post) REQUIRE p.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_post_slug IF NOT EXISTS FOR (p:Post) REQUIRE p.slug IS UNIQUE`,
	)
}

func slugTaken(ctx context.Context, tx neo4j.ManagedTransaction, slug, exceptID string) (bool, error) {
	res, err := tx.Run(ctx, `
    MATCH (p:Post {slug: $slug})
    WHERE p.id <> $exceptID
    RETURN count(p)
    `, map[string]any{"slug": slug, "exceptID": exceptID})
	if err != nil {
		return false, err
	}
	rec, err := res.Single(ctx)
	if err != nil {
		return false, err
	}
	n, _ := rec.Values[0].(int64)
	return n > 0, nil
}

// linkCategory replaces the post's category edge. Unknown ids leave it unset.
func linkCategory(ctx context.Context, tx neo4j.ManagedTransaction, postID, categoryID string) error {
	_, err := tx.Run(ctx, `
    MATCH (p:Post {id: $postID})
    OPTIONAL MATCH (p)-[old:IN_CATEGORY]->(:Category)
    DELETE old
    WITH p
    MATCH (c:Category {id: $categoryID})
    MERGE (p)-[:IN_CATEGORY]->(c)
    `, map[string]any{"postID": postID, "categoryID": categoryID})
	return err
}

// linkTags replaces the post's tag edges. Unknown tag ids are ignored.
func linkTags(ctx context.Context, tx neo4j.ManagedTransaction, postID string, tagIDs []string) error {
	_, err := tx.Run(ctx, `
    MATCH (p:Post {id: $postID})
    OPTIONAL MATCH (p)-[old:TAGGED_WITH]->(:Tag)
    DELETE old
    WITH DISTINCT p
    UNWIND $tagIDs AS tagID
    MATCH (t:Tag {id: tagID})
    MERGE (p)-[:TAGGED_WITH]->(t)
    `, map[string]any{"postID": postID, "tagIDs": tagIDs})
	return err
}

func (dao *PostDAO) CreatePost(ctx context.Context, post model.Post) (*model.Post, error) {
	start := time.Now()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := helper_util.FormatTime(time.Now())
	logger.Info("Creating new post", zap.String("postID", post.ID), zap.String("authorID", post.AuthorID))

	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		taken, err := slugTaken(ctx, tx, post.Slug, post.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, quill_errors.ErrPostConflict
		}

		props := postProps(&post)
		props["id"] = post.ID
		props["viewCount"] = int64(0)
		props["createdAt"] = now
		props["updatedAt"] = now

		res, err := tx.Run(ctx, `
        MATCH (u:User {id: $authorID})
        CREATE (p:Post $props)-[:WRITTEN_BY]->(u)
        RETURN p
        `, map[string]any{"authorID": post.AuthorID, "props": props})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, quill_errors.ErrUserNotFound
		}
		if post.CategoryID != "" {
			if err := linkCategory(ctx, tx, post.ID, post.CategoryID); err != nil {
				return nil, err
			}
		}
		if len(post.TagIDs) > 0 {
			if err := linkTags(ctx, tx, post.ID, post.TagIDs); err != nil {
				return nil, err
			}
		}
		return rec.Values[0].(neo4j.Node), nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create post", zap.Error(err), zap.Duration("duration", duration))
		return nil, passThrough(err, quill_errors.ErrPostConflict, quill_errors.ErrUserNotFound)
	}
	logger.Info("Post created successfully", zap.String("postID", post.ID), zap.Duration("duration", duration))

	created := mapNodeToPost(result.(neo4j.Node))
	created.TagIDs = post.TagIDs
	return created, nil
}

// UpdatePost overwrites scalar fields; tagIDs nil leaves tag edges alone.
func (dao *PostDAO) UpdatePost(ctx context.Context, post model.Post, tagIDs []string) (*model.Post, error) {
	start := time.Now()
	logger.Info("Updating post", zap.String("postID", post.ID))

	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		taken, err := slugTaken(ctx, tx, post.Slug, post.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, quill_errors.ErrPostConflict
		}

		props := postProps(&post)
		props["updatedAt"] = helper_util.FormatTime(time.Now())
		res, err := tx.Run(ctx, `
        MATCH (p:Post {id: $id})
        WHERE p.deletedAt IS NULL
        SET p += $props
        RETURN p
        `, map[string]any{"id": post.ID, "props": props})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, quill_errors.ErrPostNotFound
		}
		if post.CategoryID != "" {
			if err := linkCategory(ctx, tx, post.ID, post.CategoryID); err != nil {
				return nil, err
			}
		}
		if tagIDs != nil {
			if err := linkTags(ctx, tx, post.ID, tagIDs); err != nil {
				return nil, err
			}
		}
		return rec.Values[0].(neo4j.Node), nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update post", zap.Error(err), zap.String("postID", post.ID), zap.Duration("duration", duration))
		return nil, passThrough(err, quill_errors.ErrPostConflict, quill_errors.ErrPostNotFound)
	}
	logger.Info("Post updated successfully", zap.String("postID", post.ID), zap.Duration("duration", duration))
	return mapNodeToPost(result.(neo4j.Node)), nil
}

func (dao *PostDAO) SoftDeletePost(ctx context.Context, postID string) (*model.Post, error) {
	start := time.Now()
	now := helper_util.FormatTime(time.Now())

	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MATCH (p:Post {id: $id})
        WHERE p.deletedAt IS NULL
        SET p.deletedAt = $now, p.updatedAt = $now
        RETURN p
        `, map[string]any{"id": postID, "now": now})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, quill_errors.ErrPostNotFound
		}
		return rec.Values[0].(neo4j.Node), nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete post", zap.Error(err), zap.String("postID", postID), zap.Duration("duration", duration))
		return nil, passThrough(err, quill_errors.ErrPostNotFound)
	}
	logger.Info("Post soft-deleted", zap.String("postID", postID), zap.Duration("duration", duration))
	return mapNodeToPost(result.(neo4j.Node)), nil
}

func (dao *PostDAO) GetPost(ctx context.Context, postID string) (*model.Post, error) {
	return dao.getOne(ctx, "id", postID)
}

func (dao *PostDAO) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return dao.getOne(ctx, "slug", slug)
}

func (dao *PostDAO) getOne(ctx context.Context, field, value string) (*model.Post, error) {
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (p:Post {`+field+`: $value})
    WHERE p.deletedAt IS NULL
    OPTIONAL MATCH (p)-[:TAGGED_WITH]->(t:Tag)
    RETURN p, collect(t.id)
    `, map[string]any{"value": value})
	if err != nil {
		logger.Error("Failed to get post", zap.Error(err), zap.String("field", field))
		return nil, quill_errors.ErrDatabaseOperation
	}
	if len(records) == 0 {
		return nil, quill_errors.ErrPostNotFound
	}
	post := mapNodeToPost(records[0].Values[0].(neo4j.Node))
	post.TagIDs = stringsAt(records[0], 1)
	return post, nil
}

func (dao *PostDAO) GetPostDetail(ctx context.Context, slug string) (*model.PostDetail, error) {
	start := time.Now()
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (p:Post {slug: $slug})
    WHERE p.deletedAt IS NULL
    OPTIONAL MATCH (p)-[:WRITTEN_BY]->(u:User)
    OPTIONAL MATCH (p)-[:IN_CATEGORY]->(c:Category)
    OPTIONAL MATCH (p)-[:TAGGED_WITH]->(t:Tag)
    WITH p, u, c, collect(DISTINCT t) AS tags
    OPTIONAL MATCH (r:Post)-[:IN_CATEGORY]->(c)
    WHERE r.id <> p.id AND r.status = 'published' AND r.deletedAt IS NULL
    WITH p, u, c, tags, r
    ORDER BY r.createdAt DESC
    RETURN p, u, c, tags, collect(r)[0..$related]
    `, map[string]any{"slug": slug, "related": relatedPostsLimit})
	if err != nil {
		logger.Error("Failed to get post detail", zap.Error(err), zap.String("slug", slug))
		return nil, quill_errors.ErrDatabaseOperation
	}
	if len(records) == 0 {
		return nil, quill_errors.ErrPostNotFound
	}
	rec := records[0]

	detail := &model.PostDetail{
		Post:         *mapNodeToPost(*nodeAt(rec, 0)),
		Author:       mapNodeToAuthor(nodeAt(rec, 1)),
		Category:     mapNodeToCategory(nodeAt(rec, 2)),
		Tags:         []model.Tag{},
		RelatedPosts: []model.RelatedPost{},
	}
	for _, n := range nodesAt(rec, 3) {
		tag := mapNodeToTag(n)
		detail.Tags = append(detail.Tags, tag)
		detail.TagIDs = append(detail.TagIDs, tag.ID)
	}
	for _, n := range nodesAt(rec, 4) {
		r := mapNodeToPost(n)
		detail.RelatedPosts = append(detail.RelatedPosts, model.RelatedPost{
			ID: r.ID, Title: r.Title, Slug: r.Slug, ThumbnailURL: r.ThumbnailURL,
		})
	}
	logger.Info("Post detail retrieved", zap.String("slug", slug), zap.Duration("duration", time.Since(start)))
	return detail, nil
}

const postListWhere = `
    MATCH (p:Post)
    WHERE p.deletedAt IS NULL
      AND ($status = '' OR p.status = $status)
      AND ($search = '' OR toLower(p.title) CONTAINS toLower($search))
      AND ($category = '' OR EXISTS { MATCH (p)-[:IN_CATEGORY]->(:Category {slug: $category}) })
      AND ($tag = '' OR EXISTS { MATCH (p)-[:TAGGED_WITH]->(:Tag {slug: $tag}) })
`

func (dao *PostDAO) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.PostListItem, int64, error) {
	start := time.Now()
	params := map[string]any{
		"status":   filter.Status,
		"search":   filter.Search,
		"category": filter.CategorySlug,
		"tag":      filter.TagSlug,
		"skip":     int64(filter.Skip),
		"limit":    int64(filter.Limit),
	}

	total, err := readCount(ctx, dao.Driver, postListWhere+`RETURN count(p)`, params)
	if err != nil {
		logger.Error("Failed to count posts", zap.Error(err))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	records, err := readRecords(ctx, dao.Driver, postListWhere+`
    OPTIONAL MATCH (p)-[:WRITTEN_BY]->(u:User)
    OPTIONAL MATCH (p)-[:IN_CATEGORY]->(c:Category)
    RETURN p, u, c
    ORDER BY p.createdAt DESC
    SKIP $skip
    LIMIT $limit
    `, params)
	if err != nil {
		logger.Error("Failed to list posts", zap.Error(err))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	items := make([]model.PostListItem, 0, len(records))
	for _, rec := range records {
		p := mapNodeToPost(*nodeAt(rec, 0))
		items = append(items, model.PostListItem{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Status:      p.Status,
			ViewCount:   p.ViewCount,
			ReadingTime: p.ReadingTime,
			Author:      mapNodeToAuthor(nodeAt(rec, 1)),
			Category:    mapNodeToCategory(nodeAt(rec, 2)),
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	logger.Info("Posts listed",
		zap.Int("count", len(items)),
		zap.Int64("total", total),
		zap.Duration("duration", time.Since(start)))
	return items, total, nil
}

const searchWhere = `
    MATCH (p:Post)
    WHERE p.deletedAt IS NULL
      AND p.status = 'published'
      AND (toLower(p.title) CONTAINS $q OR toLower(coalesce(p.content, '')) CONTAINS $q)
      AND ($category = '' OR EXISTS { MATCH (p)-[:IN_CATEGORY]->(:Category {slug: $category}) })
`

// SearchPosts matches published posts by title or body. Relevance order puts
// title matches first, then newest.
func (dao *PostDAO) SearchPosts(ctx context.Context, q model.SearchQuery) ([]SearchHit, int64, error) {
	start := time.Now()
	category := q.Filter
	if category == model.SearchFilterAll {
		category = ""
	}
	params := map[string]any{
		"q":        model.NormalizeSearchTerm(q.Q),
		"category": category,
		"skip":     int64(q.Skip),
		"limit":    int64(q.Limit),
	}

	total, err := readCount(ctx, dao.Driver, searchWhere+`RETURN count(p)`, params)
	if err != nil {
		logger.Error("Failed to count search results", zap.Error(err))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	order := `ORDER BY p.createdAt DESC`
	if q.Sort != model.SearchSortDate {
		order = `ORDER BY titleMatch DESC, p.createdAt DESC`
	}
	records, err := readRecords(ctx, dao.Driver, searchWhere+`
    WITH p, toLower(p.title) CONTAINS $q AS titleMatch
    OPTIONAL MATCH (p)-[:WRITTEN_BY]->(u:User)
    OPTIONAL MATCH (p)-[:IN_CATEGORY]->(c:Category)
    RETURN p, u, c, titleMatch
    `+order+`
    SKIP $skip
    LIMIT $limit
    `, params)
	if err != nil {
		logger.Error("Failed to search posts", zap.Error(err))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	hits := make([]SearchHit, 0, len(records))
	for _, rec := range records {
		hits = append(hits, SearchHit{
			Post:     *mapNodeToPost(*nodeAt(rec, 0)),
			Author:   mapNodeToAuthor(nodeAt(rec, 1)),
			Category: mapNodeToCategory(nodeAt(rec, 2)),
		})
	}
	logger.Info("Search executed",
		zap.Int("count", len(hits)),
		zap.Int64("total", total),
		zap.Duration("duration", time.Since(start)))
	return hits, total, nil
}

// passThrough keeps the listed domain errors and maps everything else to a
// generic database failure.
func passThrough(err error, keep ...error) error {
	for _, k := range keep {
		if errors.Is(err, k) {
			return k
		}
	}
	return quill_errors.ErrDatabaseOperation
}
