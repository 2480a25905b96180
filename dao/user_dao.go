// dao/user_dao.go
package dao

import (
	"context"
	"errors"
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

type UserDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IUserDAO = &UserDAO{}

func NewUserDAO(driver neo4j.DriverWithContext) *UserDAO {
	dao := &UserDAO{Driver: driver}
	if err := dao.EnsureUniqueConstraint(context.Background()); err != nil {
		logger.Fatal("Failed to ensure unique constraint for User", zap.Error(err))
	}
	return dao
}

func (dao *UserDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraints on User")
	err := ensureConstraints(ctx, dao.Driver,
		`CREATE CONSTRAINT unique_user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_user_email IF NOT EXISTS FOR (u:User) REQUIRE u.email IS UNIQUE`,
	)
	if err != nil {
		logger.Error("Failed to ensure unique constraints on User", zap.Error(err))
		return err
	}
	return nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = strings.ToLower(user.Email)
	now := time.Now().UTC()
	logger.Info("Creating new user", zap.String("userID", user.ID))

	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MATCH (u:User {email: $email})
        RETURN count(u)
        `, map[string]any{"email": user.Email})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		if n, _ := rec.Values[0].(int64); n > 0 {
			return nil, quill_errors.ErrUserConflict
		}

		res, err = tx.Run(ctx, `
        CREATE (u:User $props)
        RETURN u
        `, map[string]any{"props": map[string]any{
			"id":           user.ID,
			"email":        user.Email,
			"fullName":     user.FullName,
			"avatarURL":    user.AvatarURL,
			"passwordHash": user.PasswordHash,
			"isActive":     user.IsActive,
			"isSuperuser":  user.IsSuperuser,
			"roleID":       user.RoleID,
			"createdAt":    helper_util.FormatTime(now),
			"updatedAt":    helper_util.FormatTime(now),
		}})
		if err != nil {
			return nil, err
		}
		rec, err = res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return rec.Values[0].(neo4j.Node), nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create user", zap.Error(err), zap.Duration("duration", duration))
		if errors.Is(err, quill_errors.ErrUserConflict) {
			return nil, err
		}
		return nil, quill_errors.ErrDatabaseOperation
	}
	logger.Info("User created successfully", zap.String("userID", user.ID), zap.Duration("duration", duration))
	return mapNodeToUser(result.(neo4j.Node)), nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return dao.getOne(ctx, "id", userID)
}

// GetUserByEmail matches case-insensitively.
func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return dao.getOne(ctx, "email", strings.ToLower(email))
}

func (dao *UserDAO) getOne(ctx context.Context, field, value string) (*model.User, error) {
	start := time.Now()
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (u:User {`+field+`: $value})
    RETURN u
    `, map[string]any{"value": value})
	if err != nil {
		logger.Error("Failed to execute get user query",
			zap.Error(err),
			zap.String("field", field),
			zap.Duration("duration", time.Since(start)))
		return nil, quill_errors.ErrDatabaseOperation
	}
	if len(records) == 0 {
		logger.Debug("User not found", zap.String("field", field), zap.Duration("duration", time.Since(start)))
		return nil, quill_errors.ErrUserNotFound
	}
	return mapNodeToUser(records[0].Values[0].(neo4j.Node)), nil
}
