// controller/dashboard_controller.go
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/quill/audit"
	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	"github.com/dev-mohitbeniwal/quill/util"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

var dashboardSorts = map[string]bool{"": true, "views": true, "title": true, "created": true}

type DashboardController struct {
	dashboardService service.IDashboardService
	access           Access
}

func NewDashboardController(dashboardService service.IDashboardService, access Access) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, access: access}
}

func (dc *DashboardController) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard", dc.access.Authenticated, dc.access.Admin)
	{
		dashboard.GET("/stats", dc.GetStats)
		dashboard.GET("/posts", dc.ListPosts)
		dashboard.GET("/audit", dc.AuditLogs)
	}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (dc *DashboardController) ListPosts(c *gin.Context) {
	skip, limit, err := helper_util.GetPaginationParams(c, 20)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	sort := c.Query("sort")
	if !dashboardSorts[sort] {
		util.RespondWithError(c, http.StatusBadRequest, "sort must be views, title or created", quill_errors.ErrInvalidSearchCriteria)
		return
	}
	filter := model.DashboardFilter{
		Skip:     skip,
		Limit:    limit,
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Sort:     sort,
	}

	posts, err := dc.dashboardService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// AuditLogs accepts RFC 3339 from/to bounds. The window defaults to the
// last 24 hours.
func (dc *DashboardController) AuditLogs(c *gin.Context) {
	now := time.Now().UTC()
	q := audit.Query{
		From:       now.Add(-24 * time.Hour),
		To:         now,
		UserID:     c.Query("user_id"),
		ResourceID: c.Query("resource_id"),
	}
	var err error
	if v := c.Query("from"); v != "" {
		if q.From, err = time.Parse(time.RFC3339, v); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "from must be an RFC 3339 timestamp", err)
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if q.To, err = time.Parse(time.RFC3339, v); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "to must be an RFC 3339 timestamp", err)
			return
		}
	}
	if v := c.Query("size"); v != "" {
		if q.Size, err = strconv.Atoi(v); err != nil || q.Size < 1 || q.Size > helper_util.MaxPageSize {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", quill_errors.ErrInvalidPagination)
			return
		}
	}

	logs, err := dc.dashboardService.AuditLogs(c.Request.Context(), q)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit logs", err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
