// controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

// invalidInput reports whether err is a client input problem, and answers
// with its fixed public message if so.
func invalidInput(c *gin.Context, err error) bool {
	var ve *quill_errors.ValidationError
	switch {
	case errors.As(err, &ve):
		util.RespondWithError(c, http.StatusBadRequest, ve.Message, err)
	case errors.Is(err, quill_errors.ErrContentTooLong):
		util.RespondWithError(c, http.StatusBadRequest, "Content exceeds maximum length", err)
	case errors.Is(err, quill_errors.ErrCommentTooLong):
		util.RespondWithError(c, http.StatusBadRequest, "Comment exceeds maximum length", err)
	default:
		return false
	}
	return true
}

// requireUser returns the authenticated user. Routes using it sit behind
// middleware.Authenticate, so a miss means the route was wired without it.
func requireUser(c *gin.Context) (*model.User, bool) {
	user, ok := util.CurrentUser(c)
	if !ok {
		util.RespondWithError(c, http.StatusForbidden, "Could not validate credentials", quill_errors.ErrUnauthorized)
	}
	return user, ok
}
