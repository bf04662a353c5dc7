package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"privfinos/internal/models"
	"privfinos/internal/nullable"
	"privfinos/internal/services"
	"privfinos/internal/uuid"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name      string              `json:"name" binding:"required,min=1,max=100"`
	Type      models.CategoryType `json:"type" binding:"required,category_type"`
	Color     *string             `json:"color" binding:"omitempty,hex_color"`
	Icon      *string             `json:"icon" binding:"omitempty,max=50"`
	ParentID  *string             `json:"parentId" binding:"omitempty,uuid"`
	SortOrder *int                `json:"sortOrder"`
	IsActive  *bool               `json:"isActive"`
}

// UpdateCategoryRequest represents the request payload for updating a
// category. Nullable fields sent as explicit JSON null clear the column.
type UpdateCategoryRequest struct {
	Name      *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Type      *models.CategoryType `json:"type" binding:"omitempty,category_type"`
	Color     nullable.String      `json:"color" binding:"omitempty,hex_color"`
	Icon      nullable.String      `json:"icon" binding:"omitempty,max=50"`
	ParentID  nullable.String      `json:"parentId" binding:"omitempty,uuid"`
	SortOrder *int                 `json:"sortOrder"`
	IsActive  *bool                `json:"isActive"`
}

// categoryListQuery represents the query filters for listing categories.
// parentId accepts a UUID or the literal "null" to select root categories.
type categoryListQuery struct {
	Type     *models.CategoryType `form:"type" binding:"omitempty,category_type"`
	IsActive *bool                `form:"isActive"`
	ParentID *string              `form:"parentId"`
}

// GetAll handles listing categories with optional filters
// @Summary     List categories
// @Description Get all categories with optional type/isActive/parentId filters
// @Tags        categories
// @Produce     json
// @Param       type query string false "Filter by category type (INCOME/EXPENSE)"
// @Param       isActive query bool false "Filter by active flag"
// @Param       parentId query string false "Filter by parent; 'null' selects root categories"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /categories [get]
func (h *CategoryHandler) GetAll(c *gin.Context) {
	var query categoryListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err)
		return
	}

	filter := services.CategoryFilter{
		Type:     query.Type,
		IsActive: query.IsActive,
	}
	if query.ParentID != nil {
		if *query.ParentID == "null" {
			filter.RootsOnly = true
		} else if uuid.IsValid(*query.ParentID) {
			filter.ParentID = query.ParentID
		} else {
			respondValidationError(c, errors.New("invalid parentId filter"))
			return
		}
	}

	categories, err := h.categoryService.GetAll(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, categories)
}

// GetByID handles the retrieval of a specific category
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, category)
}

// Create handles the creation of a new category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Router      /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	category, err := h.categoryService.Create(services.CategoryInput{
		Name:      req.Name,
		Type:      req.Type,
		Color:     req.Color,
		Icon:      req.Icon,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusCreated, category)
}

// Update handles updating a category
// @Summary     Update category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path string true "Category ID"
// @Param       request body UpdateCategoryRequest true "Updated category details"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	category, err := h.categoryService.Update(id, services.CategoryUpdate{
		Name:      req.Name,
		Type:      req.Type,
		Color:     req.Color,
		Icon:      req.Icon,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, category)
}

// Delete handles soft-deleting a category
// @Summary     Soft-delete category
// @Description Marks a category inactive; the row remains retrievable
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Delete(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, category)
}

// HardDelete handles permanently deleting a category
// @Summary     Permanently delete category
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} map[string]interface{}
// @Failure     404 {object} map[string]interface{}
// @Router      /categories/{id}/hard [delete]
func (h *CategoryHandler) HardDelete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.HardDelete(id); err != nil {
		respondWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"success": true, "message": "Category permanently deleted"})
}
