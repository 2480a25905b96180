// service/bootstrap_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/auth"
	"github.com/dev-mohitbeniwal/quill/config"
	"github.com/dev-mohitbeniwal/quill/dao"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
)

var builtinRoles = []model.Role{
	{Name: model.RoleAdmin, Description: "Full access"},
	{Name: model.RoleEditor, Description: "Manages posts and taxonomy"},
	{Name: model.RoleUser, Description: "Reads and comments"},
}

// BootstrapService seeds the built-in roles and the first superuser.
type BootstrapService struct {
	roleDAO dao.IRoleDAO
	userDAO dao.IUserDAO
	hasher  auth.PasswordHasher
}

func NewBootstrapService(roleDAO dao.IRoleDAO, userDAO dao.IUserDAO, hasher auth.PasswordHasher) *BootstrapService {
	return &BootstrapService{roleDAO: roleDAO, userDAO: userDAO, hasher: hasher}
}

// Run is idempotent; an existing superuser is left untouched.
func (s *BootstrapService) Run(ctx context.Context, cfg config.BootstrapConfiguration) error {
	if !cfg.Enabled {
		return nil
	}

	var adminRole *model.Role
	for _, role := range builtinRoles {
		created, err := s.roleDAO.CreateRole(ctx, role)
		if err != nil {
			return fmt.Errorf("failed to ensure role %s: %w", role.Name, err)
		}
		if created.Name == model.RoleAdmin {
			adminRole = created
		}
	}

	if adminRole == nil {
		return errors.New("admin role missing after bootstrap")
	}
	if cfg.SuperuserEmail == "" || cfg.SuperuserPassword == "" {
		logger.Warn("Bootstrap superuser credentials not configured, skipping")
		return nil
	}
	_, err := s.userDAO.GetUserByEmail(ctx, cfg.SuperuserEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, quill_errors.ErrUserNotFound) {
		return fmt.Errorf("failed to look up superuser: %w", err)
	}

	hash, err := s.hasher.Hash(cfg.SuperuserPassword)
	if err != nil {
		return fmt.Errorf("failed to hash superuser password: %w", err)
	}
	user, err := s.userDAO.CreateUser(ctx, model.User{
		Email:        cfg.SuperuserEmail,
		FullName:     "Administrator",
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  true,
		RoleID:       adminRole.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}
	logger.Info("Superuser created", zap.String("userID", user.ID))
	return nil
}
