package helper_util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
)

func contextWithQuery(q string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+q, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	skip, limit, err := GetPaginationParams(contextWithQuery(""), 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, skip)
	assert.Equal(t, 10, limit)

	skip, limit, err = GetPaginationParams(contextWithQuery("skip=20&limit=100"), 10)
	assert.NoError(t, err)
	assert.Equal(t, 20, skip)
	assert.Equal(t, 100, limit)

	for _, q := range []string{"skip=-1", "limit=0", "limit=101", "limit=abc"} {
		_, _, err = GetPaginationParams(contextWithQuery(q), 10)
		assert.ErrorIs(t, err, quill_errors.ErrInvalidPagination, q)
	}
}
