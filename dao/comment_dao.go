// dao/comment_dao.go
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

type CommentDAO struct {
	Driver neo4j.DriverWithContext
}

var _ ICommentDAO = &CommentDAO{}

func NewCommentDAO(driver neo4j.DriverWithContext) *CommentDAO {
	dao := &CommentDAO{Driver: driver}
	if err := ensureConstraints(context.Background(), driver,
		`CREATE CONSTRAINT unique_comment_id IF NOT EXISTS FOR (c:Comment) REQUIRE c.id IS UNIQUE`,
	); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Comment", zap.Error(err))
	}
	return dao
}

func (dao *CommentDAO) CreateComment(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	start := time.Now()
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	now := helper_util.FormatTime(time.Now())

	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MATCH (p:Post {id: $postID}) WHERE p.deletedAt IS NULL
        MATCH (u:User {id: $userID})
        CREATE (c:Comment $props)
        CREATE (c)-[:ON_POST]->(p)
        CREATE (c)-[:AUTHORED_BY]->(u)
        RETURN c, u
        `, map[string]any{
			"postID": comment.PostID,
			"userID": comment.UserID,
			"props": map[string]any{
				"id":         comment.ID,
				"content":    comment.Content,
				"isApproved": false,
				"postID":     comment.PostID,
				"userID":     comment.UserID,
				"createdAt":  now,
				"updatedAt":  now,
			},
		})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, quill_errors.ErrPostNotFound
		}
		return rec, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create comment", zap.Error(err), zap.String("postID", comment.PostID), zap.Duration("duration", duration))
		return nil, passThrough(err, quill_errors.ErrPostNotFound)
	}
	rec := result.(*neo4j.Record)
	created := mapNodeToComment(*nodeAt(rec, 0))
	created.Author = mapNodeToAuthor(nodeAt(rec, 1))
	logger.Info("Comment created", zap.String("commentID", created.ID), zap.Duration("duration", duration))
	return created, nil
}

func (dao *CommentDAO) GetComment(ctx context.Context, commentID string) (*model.Comment, error) {
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (c:Comment {id: $id})
    RETURN c
    `, map[string]any{"id": commentID})
	if err != nil {
		logger.Error("Failed to get comment", zap.Error(err), zap.String("commentID", commentID))
		return nil, quill_errors.ErrDatabaseOperation
	}
	if len(records) == 0 {
		return nil, quill_errors.ErrCommentNotFound
	}
	return mapNodeToComment(*nodeAt(records[0], 0)), nil
}

func (dao *CommentDAO) ApproveComment(ctx context.Context, commentID string) (*model.Comment, error) {
	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MATCH (c:Comment {id: $id})
        SET c.isApproved = true, c.updatedAt = $now
        RETURN c
        `, map[string]any{"id": commentID, "now": helper_util.FormatTime(time.Now())})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, quill_errors.ErrCommentNotFound
		}
		return rec.Values[0].(neo4j.Node), nil
	})
	if err != nil {
		logger.Error("Failed to approve comment", zap.Error(err), zap.String("commentID", commentID))
		return nil, passThrough(err, quill_errors.ErrCommentNotFound)
	}
	return mapNodeToComment(result.(neo4j.Node)), nil
}

func (dao *CommentDAO) DeleteComment(ctx context.Context, commentID string) error {
	_, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MATCH (c:Comment {id: $id})
        DETACH DELETE c
        `, map[string]any{"id": commentID})
		if err != nil {
			return nil, err
		}
		summary, err := res.Consume(ctx)
		if err != nil {
			return nil, err
		}
		if summary.Counters().NodesDeleted() == 0 {
			return nil, quill_errors.ErrCommentNotFound
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to delete comment", zap.Error(err), zap.String("commentID", commentID))
		return passThrough(err, quill_errors.ErrCommentNotFound)
	}
	logger.Info("Comment deleted", zap.String("commentID", commentID))
	return nil
}

// ListApprovedComments returns approved comments on a post, oldest first.
func (dao *CommentDAO) ListApprovedComments(ctx context.Context, postID string, skip, limit int) ([]model.Comment, int64, error) {
	params := map[string]any{"postID": postID, "skip": int64(skip), "limit": int64(limit)}
	total, err := readCount(ctx, dao.Driver, `
    MATCH (c:Comment {isApproved: true})-[:ON_POST]->(:Post {id: $postID})
    RETURN count(c)
    `, params)
	if err != nil {
		logger.Error("Failed to count comments", zap.Error(err), zap.String("postID", postID))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	records, err := readRecords(ctx, dao.Driver, `
    MATCH (c:Comment {isApproved: true})-[:ON_POST]->(:Post {id: $postID})
    OPTIONAL MATCH (c)-[:AUTHORED_BY]->(u:User)
    RETURN c, u
    ORDER BY c.createdAt ASC
    SKIP $skip
    LIMIT $limit
    `, params)
	if err != nil {
		logger.Error("Failed to list comments", zap.Error(err), zap.String("postID", postID))
		return nil, 0, quill_errors.ErrDatabaseOperation
	}

	comments := make([]model.Comment, 0, len(records))
	for _, rec := range records {
		c := mapNodeToComment(*nodeAt(rec, 0))
		c.Author = mapNodeToAuthor(nodeAt(rec, 1))
		comments = append(comments, *c)
	}
	return comments, total, nil
}
