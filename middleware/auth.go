// middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
	pdp_model "github.com/dev-mohitbeniwal/quill/pdp/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

const (
	msgInvalidCredentials = "Could not validate credentials"
	msgUserNotFound       = "User not found"
	msgInactiveUser       = "Inactive user"
	msgNotPermitted       = "Operation not permitted"
	msgInternal           = "Internal server error"
)

// TokenDecoder returns the subject of a valid access token.
type TokenDecoder interface {
	Decode(token string) (string, error)
}

type UserGetter interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

type Guard interface {
	Check(ctx context.Context, user *model.User) pdp_model.Decision
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate resolves the bearer token to an active user and stores it on
// the context. Requests without a valid token never reach the handler.
func Authenticate(tokens TokenDecoder, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			util.RespondWithError(c, http.StatusForbidden, msgInvalidCredentials, quill_errors.ErrUnauthorized)
			return
		}
		subject, err := tokens.Decode(token)
		if err != nil {
			util.RespondWithError(c, http.StatusForbidden, msgInvalidCredentials, err)
			return
		}

		user, err := users.GetUser(c.Request.Context(), subject)
		switch {
		case errors.Is(err, quill_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, msgUserNotFound, err)
			return
		case err != nil:
			util.RespondWithError(c, http.StatusInternalServerError, msgInternal, err)
			return
		case !user.IsActive:
			util.RespondWithError(c, http.StatusBadRequest, msgInactiveUser, quill_errors.ErrInactiveUser)
			return
		}

		util.SetCurrentUser(c, user)
		c.Next()
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(guard Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := util.CurrentUser(c)
		decision := guard.Check(c.Request.Context(), user)

		switch decision.Outcome {
		case pdp_model.Allow:
			c.Next()
		case pdp_model.Unauthenticated:
			util.RespondWithError(c, http.StatusForbidden, msgInvalidCredentials, quill_errors.ErrUnauthorized)
		case pdp_model.Forbidden:
			logger.Info("Access denied",
				zap.String("userID", util.GetUserIDFromContext(c)),
				zap.String("reason", decision.Reason))
			util.RespondWithError(c, http.StatusForbidden, msgNotPermitted, quill_errors.ErrForbidden)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, msgInternal, decision.Err)
		}
	}
}
