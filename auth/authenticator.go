// auth/authenticator.go
package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
)

var (
	// ErrInvalidCredentials covers every rejected login attempt.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrPasswordTooLong    = errors.New("password exceeds maximum length")
)

// Rejection reasons, recorded only server side.
const (
	ReasonOversized    = "oversized_secret"
	ReasonUnknownLogin = "unknown_login"
	ReasonBadPassword  = "password_mismatch"
	ReasonInactive     = "inactive_user"
)

// UserByEmail is the lookup the authenticator needs from the user store.
// It must return quill_errors.ErrUserNotFound when no account matches.
type UserByEmail interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// RejectionError carries the reason for a failed login. It unwraps to
// ErrInvalidCredentials so callers only ever see the generic failure.
type RejectionError struct {
	Reason string
	UserID string
}

func (e *RejectionError) Error() string { return ErrInvalidCredentials.Error() }

func (e *RejectionError) Unwrap() error { return ErrInvalidCredentials }

type Authenticator struct {
	users  UserByEmail
	hasher PasswordHasher
}

func NewAuthenticator(users UserByEmail, hasher PasswordHasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

// Authenticate verifies a login and secret. Unknown logins still pay for one
// hash verification against the decoy so response time does not reveal
// whether the account exists.
func (a *Authenticator) Authenticate(ctx context.Context, login, secret string) (*model.User, error) {
	if ExceedsMaxLength(secret) {
		return nil, a.reject(ReasonOversized, "")
	}

	user, err := a.users.GetUserByEmail(ctx, login)
	if err != nil {
		if errors.Is(err, quill_errors.ErrUserNotFound) {
			a.hasher.VerifyDecoy(secret)
			return nil, a.reject(ReasonUnknownLogin, "")
		}
		logger.Error("User lookup failed during login", zap.Error(err))
		return nil, err
	}

	ok, err := a.hasher.Verify(secret, user.PasswordHash)
	if err != nil {
		// a corrupt stored hash is treated as a mismatch
		logger.Error("Password verification failed", zap.Error(err), zap.String("userID", user.ID))
	}
	if !ok {
		return nil, a.reject(ReasonBadPassword, user.ID)
	}
	if !user.IsActive {
		return nil, a.reject(ReasonInactive, user.ID)
	}
	return user, nil
}

func (a *Authenticator) reject(reason, userID string) error {
	logger.Warn("Login rejected", zap.String("reason", reason), zap.String("userID", userID))
	return &RejectionError{Reason: reason, UserID: userID}
}
