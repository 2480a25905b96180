// audit/service.go
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/quill/logging"
)

type Service interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, q Query) ([]AuditLog, error)
	// Record writes an entry and only logs failures.
	Record(ctx context.Context, log AuditLog)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAccess(ctx context.Context, log AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	return s.repo.LogAccess(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, q Query) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, q)
}

func (s *service) Record(ctx context.Context, log AuditLog) {
	if err := s.LogAccess(ctx, log); err != nil {
		logger.Error("Failed to create audit log",
			zap.Error(err),
			zap.String("action", log.Action),
			zap.String("resourceID", log.ResourceID))
	}
}

// ChangeDetails marshals a change summary; unmarshalable input yields nil.
func ChangeDetails(changes map[string]any) json.RawMessage {
	if len(changes) == 0 {
		return nil
	}
	data, err := json.Marshal(changes)
	if err != nil {
		return nil
	}
	return data
}
