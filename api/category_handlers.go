package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcbaptista/campus-buzz/model"
)

// ListCategoriesHandler returns every category with its published article count.
func (api *API) ListCategoriesHandler(c *gin.Context) {
	categories, err := api.store.ListCategories(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "listing categories", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"categories": categories})
}

// GetCategoryHandler returns a category and a page of its published articles.
// Query: page, limit.
func (api *API) GetCategoryHandler(c *gin.Context) {
	page, limit, result := ParsePaginationQuery(c)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	category, err := api.store.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		api.SendStoreError(c, "getting category", err)
		return
	}

	newsPage, err := api.store.ListCategoryNews(c.Request.Context(), category.ID, page, limit)
	if err != nil {
		api.SendStoreError(c, "listing category news", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{
		"category":   category,
		"news":       newsPage.News,
		"pagination": newsPage.Pagination,
	})
}

// CreateCategoryHandler adds a category; its slug is derived from the name.
// Request Body: CategoryRequest
func (api *API) CreateCategoryHandler(c *gin.Context) {
	var req CategoryRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateCategoryRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	category, err := api.store.CreateCategory(c.Request.Context(), model.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		api.SendStoreError(c, "creating category", err)
		return
	}

	api.requestLogger(c).Info("category created", zap.String("slug", category.Slug))
	SendSuccess(c, http.StatusCreated, "Category created successfully", gin.H{"category": category})
}

// UpdateCategoryHandler changes a category's name, description, icon or color.
// Request Body: model.CategoryUpdate
func (api *API) UpdateCategoryHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var update model.CategoryUpdate
	if result := ValidateJSONBinding(c, &update); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateCategoryUpdate(&update); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	category, err := api.store.UpdateCategory(c.Request.Context(), id, update)
	if err != nil {
		api.SendStoreError(c, "updating category", err)
		return
	}

	SendSuccess(c, http.StatusOK, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategoryHandler removes a category that no longer has articles.
func (api *API) DeleteCategoryHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.store.DeleteCategory(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting category", err)
		return
	}

	api.requestLogger(c).Info("category deleted", zap.Int64("category_id", id))
	SendSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
