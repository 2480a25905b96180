// service/auth_service.go
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/audit"
	"github.com/dev-mohitbeniwal/quill/auth"
	"github.com/dev-mohitbeniwal/quill/dao"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
)

type IAuthService interface {
	Login(ctx context.Context, email, password, clientIP string) (*model.Token, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

type AuthService struct {
	userDAO       dao.IUserDAO
	authenticator *auth.Authenticator
	codec         *auth.Codec
	auditService  audit.Service
}

var _ IAuthService = &AuthService{}

func NewAuthService(userDAO dao.IUserDAO, hasher auth.PasswordHasher, codec *auth.Codec, auditService audit.Service) *AuthService {
	return &AuthService{
		userDAO:       userDAO,
		authenticator: auth.NewAuthenticator(userDAO, hasher),
		codec:         codec,
		auditService:  auditService,
	}
}

// Login verifies credentials and issues an access token. Every credential
// failure is auth.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password, clientIP string) (*model.Token, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		var rej *auth.RejectionError
		if errors.As(err, &rej) {
			s.auditService.Record(ctx, audit.AuditLog{
				Action:   audit.ActionLogin,
				UserID:   rej.UserID,
				Success:  false,
				Reason:   rej.Reason,
				ClientIP: clientIP,
			})
		}
		return nil, err
	}

	token, err := s.codec.Encode(user.ID, 0)
	if err != nil {
		logger.Error("Failed to issue access token", zap.Error(err), zap.String("userID", user.ID))
		return nil, err
	}

	s.auditService.Record(ctx, audit.AuditLog{
		Action:   audit.ActionLogin,
		UserID:   user.ID,
		Success:  true,
		ClientIP: clientIP,
	})
	logger.Info("User logged in", zap.String("userID", user.ID))
	return &model.Token{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.userDAO.GetUser(ctx, userID)
}
