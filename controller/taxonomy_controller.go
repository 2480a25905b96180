// controller/taxonomy_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	"github.com/dev-mohitbeniwal/quill/util"
)

type TaxonomyController struct {
	taxonomyService service.ITaxonomyService
	access          Access
}

func NewTaxonomyController(taxonomyService service.ITaxonomyService, access Access) *TaxonomyController {
	return &TaxonomyController{taxonomyService: taxonomyService, access: access}
}

func (tc *TaxonomyController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/categories", tc.ListCategories)
	r.POST("/categories", tc.access.Authenticated, tc.access.Editor, tc.CreateCategory)
	r.GET("/tags", tc.ListTags)
	r.POST("/tags", tc.access.Authenticated, tc.access.Editor, tc.CreateTag)
}

func (tc *TaxonomyController) ListCategories(c *gin.Context) {
	categories, err := tc.taxonomyService.ListCategories(c.Request.Context())
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (tc *TaxonomyController) CreateCategory(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var in model.CategoryCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid category data", quill_errors.ErrInvalidCategoryData)
		return
	}

	created, err := tc.taxonomyService.CreateCategory(c.Request.Context(), in, user)
	if err != nil {
		if invalidInput(c, err) {
			return
		}
		if errors.Is(err, quill_errors.ErrCategoryConflict) {
			util.RespondWithError(c, http.StatusBadRequest, "A category with this slug already exists", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create category", err)
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (tc *TaxonomyController) ListTags(c *gin.Context) {
	tags, err := tc.taxonomyService.ListTags(c.Request.Context(), c.Query("q"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list tags", err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (tc *TaxonomyController) CreateTag(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	var in model.TagCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid tag data", quill_errors.ErrInvalidTagData)
		return
	}

	created, err := tc.taxonomyService.CreateTag(c.Request.Context(), in, user)
	if err != nil {
		if invalidInput(c, err) {
			return
		}
		if errors.Is(err, quill_errors.ErrTagConflict) {
			util.RespondWithError(c, http.StatusBadRequest, "A tag with this slug already exists", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create tag", err)
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}
