// dao/subscriber_dao.go
package dao

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

type SubscriberDAO struct {
	Driver neo4j.DriverWithContext
}

var _ ISubscriberDAO = &SubscriberDAO{}

func NewSubscriberDAO(driver neo4j.DriverWithContext) *SubscriberDAO {
	dao := &SubscriberDAO{Driver: driver}
	if err := ensureConstraints(context.Background(), driver,
		`CREATE CONSTRAINT unique_subscriber_email IF NOT EXISTS FOR (s:Subscriber) REQUIRE s.email IS UNIQUE`,
	); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Subscriber", zap.Error(err))
	}
	return dao
}

func (dao *SubscriberDAO) GetSubscriberByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (s:Subscriber {email: $email})
    RETURN s
    `, map[string]any{"email": strings.ToLower(email)})
	if err != nil {
		logger.Error("Failed to get subscriber", zap.Error(err))
		return nil, quill_errors.ErrDatabaseOperation
	}
	if len(records) == 0 {
		return nil, quill_errors.ErrSubscriberNotFound
	}
	return mapNodeToSubscriber(*nodeAt(records[0], 0)), nil
}

func (dao *SubscriberDAO) CreateSubscriber(ctx context.Context, email string) (*model.Subscriber, error) {
	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MERGE (s:Subscriber {email: $email})
        ON CREATE SET s.id = $id, s.createdAt = $now
        SET s.isActive = true
        RETURN s
        `, map[string]any{
			"email": strings.ToLower(email),
			"id":    uuid.New().String(),
			"now":   helper_util.FormatTime(time.Now()),
		})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return rec.Values[0].(neo4j.Node), nil
	})
	if err != nil {
		logger.Error("Failed to create subscriber", zap.Error(err))
		return nil, quill_errors.ErrDatabaseOperation
	}
	return mapNodeToSubscriber(result.(neo4j.Node)), nil
}

func (dao *SubscriberDAO) SetSubscriberActive(ctx context.Context, email string, active bool) error {
	_, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MATCH (s:Subscriber {email: $email})
        SET s.isActive = $active
        RETURN s.id
        `, map[string]any{"email": strings.ToLower(email), "active": active})
		if err != nil {
			return nil, err
		}
		if _, err := res.Single(ctx); err != nil {
			return nil, quill_errors.ErrSubscriberNotFound
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to update subscriber", zap.Error(err), zap.Bool("active", active))
		return passThrough(err, quill_errors.ErrSubscriberNotFound)
	}
	return nil
}

func (dao *SubscriberDAO) ListActiveEmails(ctx context.Context) ([]string, error) {
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (s:Subscriber {isActive: true})
    RETURN s.email
    `, nil)
	if err != nil {
		logger.Error("Failed to list subscribers", zap.Error(err))
		return nil, quill_errors.ErrDatabaseOperation
	}
	emails := make([]string, 0, len(records))
	for _, rec := range records {
		if e, ok := rec.Values[0].(string); ok {
			emails = append(emails, e)
		}
	}
	return emails, nil
}
