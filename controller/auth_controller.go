// controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/quill/auth"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	"github.com/dev-mohitbeniwal/quill/util"
)

const msgLoginFailed = "Incorrect email or password"

type AuthController struct {
	authService service.IAuthService
	access      Access
}

func NewAuthController(authService service.IAuthService, access Access) *AuthController {
	return &AuthController{authService: authService, access: access}
}

func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login/access-token", ac.Login)
	r.GET("/users/me", ac.access.Authenticated, ac.Me)
}

// Login implements the OAuth2 password flow. Every failure gets the same
// response.
func (ac *AuthController) Login(c *gin.Context) {
	var form model.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, msgLoginFailed, auth.ErrInvalidCredentials)
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), form.Username, form.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			util.RespondWithError(c, http.StatusBadRequest, msgLoginFailed, err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, token)
}

func (ac *AuthController) Me(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}
