// service/health_service.go
package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// ConnectivityChecker is satisfied by neo4j.DriverWithContext.
type ConnectivityChecker interface {
	VerifyConnectivity(ctx context.Context) error
}

// Pinger is satisfied by *redis.Client.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type IHealthService interface {
	Check(ctx context.Context) model.HealthCheck
}

type HealthService struct {
	db    ConnectivityChecker
	cache Pinger
}

var _ IHealthService = &HealthService{}

func NewHealthService(db ConnectivityChecker, cache Pinger) *HealthService {
	return &HealthService{db: db, cache: cache}
}

func (s *HealthService) Check(ctx context.Context) model.HealthCheck {
	result := model.HealthCheck{Status: statusOK, DBStatus: statusOK, RedisStatus: statusOK}
	if err := s.db.VerifyConnectivity(ctx); err != nil {
		logger.Warn("Neo4j health check failed", zap.Error(err))
		result.DBStatus = statusError
	}
	if err := s.cache.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis health check failed", zap.Error(err))
		result.RedisStatus = statusError
	}
	if result.DBStatus != statusOK || result.RedisStatus != statusOK {
		result.Status = statusError
	}
	return result
}
