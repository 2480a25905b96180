package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
)

const MaxPageSize = 100

// GetPaginationParams reads skip and limit. skip must be >= 0 and limit
// between 1 and MaxPageSize.
func GetPaginationParams(c *gin.Context, defaultLimit int) (skip int, limit int, err error) {
	skip, err = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, quill_errors.ErrInvalidPagination
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > MaxPageSize {
		return 0, 0, quill_errors.ErrInvalidPagination
	}
	return skip, limit, nil
}
