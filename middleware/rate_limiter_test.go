package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/dev-mohitbeniwal/quill/db"
)

func newLimitedRouter(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	r := gin.New()
	r.Use(RateLimiter(db.NewRateLimiter(client, limit, time.Minute), limit, time.Minute))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, mr
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	r, _ := newLimitedRouter(t, 2)
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	r, mr := newLimitedRouter(t, 1)
	mr.Close()
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusOK, hit(r))
}
