// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/quill/logging"
	"github.com/dev-mohitbeniwal/quill/model"
)

// Context key under which the authenticated user is stored.
const ContextUserKey = "currentUser"

// RespondWithError logs the underlying error and writes only the public
// message to the client.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := []zap.Field{
		zap.Int("status", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if code >= 500 {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(ContextUserKey, user)
}

// CurrentUser returns the user placed on the context by the auth middleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}

func GetUserIDFromContext(c *gin.Context) string {
	if user, ok := CurrentUser(c); ok {
		return user.ID
	}
	return ""
}
