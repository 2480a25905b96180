package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/quill/auth"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	pdp_model "github.com/dev-mohitbeniwal/quill/pdp/model"
	"github.com/dev-mohitbeniwal/quill/util"
)

type stubUsers map[string]*model.User

func (s stubUsers) GetUser(_ context.Context, id string) (*model.User, error) {
	if id == "broken" {
		return nil, errors.New("store down")
	}
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, quill_errors.ErrUserNotFound
}

type stubGuard struct{ decision pdp_model.Decision }

func (g stubGuard) Check(_ context.Context, _ *model.User) pdp_model.Decision { return g.decision }

func newAuthRouter(t *testing.T, guard Guard) (*gin.Engine, *auth.Codec, *int) {
	gin.SetMode(gin.TestMode)
	codec, err := auth.NewCodec("middleware-secret", "HS256", time.Hour)
	require.NoError(t, err)
	users := stubUsers{
		"active":   {ID: "active", IsActive: true},
		"inactive": {ID: "inactive", IsActive: false},
	}

	handled := 0
	r := gin.New()
	chain := []gin.HandlerFunc{Authenticate(codec, users)}
	if guard != nil {
		chain = append(chain, RequireRoles(guard))
	}
	chain = append(chain, func(c *gin.Context) {
		handled++
		c.JSON(http.StatusOK, gin.H{"id": util.GetUserIDFromContext(c)})
	})
	r.GET("/protected", chain...)
	return r, codec, &handled
}

func do(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	r, codec, handled := newAuthRouter(t, nil)
	token := func(sub string) string {
		tok, err := codec.Encode(sub, 0)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusForbidden, `{"error":"Could not validate credentials"}`},
		{"wrong scheme", "Basic abc", http.StatusForbidden, `{"error":"Could not validate credentials"}`},
		{"garbage token", "Bearer not.a.jwt", http.StatusForbidden, `{"error":"Could not validate credentials"}`},
		{"unknown user", token("ghost"), http.StatusNotFound, `{"error":"User not found"}`},
		{"inactive user", token("inactive"), http.StatusBadRequest, `{"error":"Inactive user"}`},
		{"lookup failure", token("broken"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
	assert.Equal(t, 0, *handled)

	w := do(r, token("active"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"active"}`, w.Body.String())
	assert.Equal(t, 1, *handled)
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		decision pdp_model.Decision
		status   int
		body     string
	}{
		{"forbidden", pdp_model.Denied("role not allowed"), http.StatusForbidden, `{"error":"Operation not permitted"}`},
		{"error", pdp_model.Failed(errors.New("lookup down")), http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"allow", pdp_model.Allowed(&model.User{ID: "active"}, "role"), http.StatusOK, `{"id":"active"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, codec, _ := newAuthRouter(t, stubGuard{decision: tt.decision})
			tok, err := codec.Encode("active", 0)
			require.NoError(t, err)

			w := do(r, "Bearer "+tok)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestRequireRolesDistinguishesAuthenticationFromAuthorization(t *testing.T) {
	r, _, handled := newAuthRouter(t, stubGuard{decision: pdp_model.Denied("never reached")})
	w := do(r, "")
	assert.JSONEq(t, `{"error":"Could not validate credentials"}`, w.Body.String())
	assert.Equal(t, 0, *handled)
}
