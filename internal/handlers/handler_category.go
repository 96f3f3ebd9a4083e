package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hisabapp/hisab/internal/core/ports/services"
	"github.com/hisabapp/hisab/internal/dto"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categories portssvc.CategorySvcFacade
	refresher  portssvc.RefresherSvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categories portssvc.CategorySvcFacade, refresher portssvc.RefresherSvcFacade) {
	h := &categoryHandler{categories: categories, refresher: refresher}

	routes := rg.Group("/categories")
	{
		routes.GET("", h.listCategories)
		routes.POST("", h.createCategory)
		routes.PUT("/:id", h.updateCategory)
		routes.DELETE("/:id", h.deleteCategory)
	}
}

func (h *categoryHandler) listCategories(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.refresher.EnsureFresh(ctx); err != nil {
		respondError(c, err, "Failed to refresh categories")
		return
	}
	resp := dto.NewCollectionResponse(dto.ToListCategoryResponse(h.categories.ListCategories(ctx)), h.refresher.Meta())
	c.JSON(http.StatusOK, resp)
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categories.AddCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category, err := h.categories.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) deleteCategory(c *gin.Context) {
	if err := h.categories.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
