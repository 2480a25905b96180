// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/quill/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

var _ audit.Service = &MockAuditService{}

func (m *MockAuditService) LogAccess(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, q audit.Query) ([]audit.AuditLog, error) {
	args := m.Called(ctx, q)
	logs, _ := args.Get(0).([]audit.AuditLog)
	return logs, args.Error(1)
}

func (m *MockAuditService) Record(ctx context.Context, log audit.AuditLog) {
	m.Called(ctx, log)
}
