// controller/search_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	"github.com/dev-mohitbeniwal/quill/util"
	helper_util "github.com/dev-mohitbeniwal/quill/util/helper"
)

type SearchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

func (sc *SearchController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", sc.Search)
}

func (sc *SearchController) Search(c *gin.Context) {
	skip, limit, err := helper_util.GetPaginationParams(c, 10)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	q := model.SearchQuery{
		Q:      c.Query("q"),
		Filter: c.DefaultQuery("filter", model.SearchFilterAll),
		Sort:   c.DefaultQuery("sort", model.SearchSortRelevance),
		Skip:   skip,
		Limit:  limit,
	}

	results, err := sc.searchService.Search(c.Request.Context(), q)
	if err != nil {
		if invalidInput(c, err) {
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Search failed", err)
		return
	}
	c.JSON(http.StatusOK, results)
}
