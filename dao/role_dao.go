// dao/role_dao.go
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

type RoleDAO struct {
	Driver neo4j.DriverWithContext
}

var _ IRoleDAO = &RoleDAO{}

func NewRoleDAO(driver neo4j.DriverWithContext) *RoleDAO {
	dao := &RoleDAO{Driver: driver}
	if err := ensureConstraints(context.Background(), driver,
		`CREATE CONSTRAINT unique_role_id IF NOT EXISTS FOR (r:Role) REQUIRE r.id IS UNIQUE`,
		`CREATE CONSTRAINT unique_role_name IF NOT EXISTS FOR (r:Role) REQUIRE r.name IS UNIQUE`,
	); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Role", zap.Error(err))
	}
	return dao
}

// CreateRole is idempotent on name: an existing role is returned unchanged.
func (dao *RoleDAO) CreateRole(ctx context.Context, role model.Role) (*model.Role, error) {
	start := time.Now()
	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	now := helper_util.FormatTime(time.Now())

	result, err := writeTx(ctx, dao.Driver, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
        MERGE (r:Role {name: $name})
        ON CREATE SET r.id = $id, r.description = $description, r.createdAt = $now, r.updatedAt = $now
        RETURN r
        `, map[string]any{"name": role.Name, "id": role.ID, "description": role.Description, "now": now})
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
		logger.Error("Failed to create role", zap.Error(err), zap.String("name", role.Name))
		return nil, quill_errors.ErrDatabaseOperation
	}
	logger.Info("Role ensured", zap.String("name", role.Name), zap.Duration("duration", time.Since(start)))
	return mapNodeToRole(result.(neo4j.Node)), nil
}

func (dao *RoleDAO) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	records, err := readRecords(ctx, dao.Driver, `
    MATCH (r:Role {name: $name})
    RETURN r
    `, map[string]any{"name": name})
	if err != nil {
		logger.Error("Failed to get role", zap.Error(err), zap.String("name", name))
		return nil, quill_errors.ErrDatabaseOperation
	}
	if len(records) == 0 {
		return nil, quill_errors.ErrRoleNotFound
	}
	return mapNodeToRole(records[0].Values[0].(neo4j.Node)), nil
}
