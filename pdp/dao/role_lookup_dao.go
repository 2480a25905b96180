package dao

import (
	"context"
	"errors"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	quill_neo4j "github.com/dev-mohitbeniwal/quill/model/neo4j"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

// RoleLookupDAO resolves roles for the role guard.
type RoleLookupDAO struct {
	Driver neo4j.DriverWithContext
}

func NewRoleLookupDAO(driver neo4j.DriverWithContext) *RoleLookupDAO {
	return &RoleLookupDAO{Driver: driver}
}

func (dao *RoleLookupDAO) GetRoleByID(ctx context.Context, roleID string) (*model.Role, error) {
	start := time.Now()
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
        MATCH (r:` + quill_neo4j.LabelRole + ` {id: $id})
        RETURN r
        `
		res, err := tx.Run(ctx, query, map[string]any{"id": roleID})
		if err != nil {
			return nil, err
		}
		if res.Next(ctx) {
			return res.Record().Values[0].(neo4j.Node), nil
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		return nil, quill_errors.ErrRoleNotFound
	})
	if err != nil {
		if errors.Is(err, quill_errors.ErrRoleNotFound) {
			return nil, err
		}
		logger.Error("Failed to look up role",
			zap.Error(err),
			zap.String("roleID", roleID),
			zap.Duration("duration", time.Since(start)))
		return nil, quill_errors.ErrDatabaseOperation
	}

	props := result.(neo4j.Node).Props
	return &model.Role{
		ID:          helper_util.StringProp(props, quill_neo4j.AttrID),
		Name:        helper_util.StringProp(props, quill_neo4j.AttrName),
		Description: helper_util.StringProp(props, quill_neo4j.AttrDescription),
		CreatedAt:   helper_util.ParseTime(helper_util.StringProp(props, quill_neo4j.AttrCreatedAt)),
		UpdatedAt:   helper_util.ParseTime(helper_util.StringProp(props, quill_neo4j.AttrUpdatedAt)),
	}, nil
}
