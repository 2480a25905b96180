package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/quill/controller"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testAccess authenticates every request as user and lets all roles through.
func testAccess(user *model.User) controller.Access {
	pass := func(c *gin.Context) { c.Next() }
	return controller.Access{
		Authenticated: func(c *gin.Context) {
			util.SetCurrentUser(c, user)
			c.Next()
		},
		Editor: pass,
		Admin:  pass,
	}
}

type routable interface {
	RegisterRoutes(r *gin.RouterGroup)
}

func setupRouter(c routable) *gin.Engine {
	r := gin.New()
	c.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func perform(t *testing.T, r *gin.Engine, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	r.ServeHTTP(w, req)
	return w
}
