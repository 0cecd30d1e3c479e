// =============================================================================
// FILE: internal/handlers/category_handler.go
// PURPOSE: HTTP request handling for category endpoints
// =============================================================================
//
// HANDLER LAYER:
// Handlers are the bridge between HTTP and the application logic. They
// parse request data (URL params, query strings, JSON bodies), let Gin
// binding validate input, call the service, and shape the response. Domain
// failures are not interpreted here - they go through respondError.
// =============================================================================

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"category-api/internal/models"
	"category-api/internal/services"
)

// Pagination defaults. pageSize is capped so a client can't request the
// whole table in one page.
const (
	defaultPageNo   = 0
	defaultPageSize = 10
	maxPageSize     = 100
)

// CategoryHandler handles HTTP requests for category endpoints
type CategoryHandler struct {
	// Depend on the interface, not the concrete type (enables testing with mocks)
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// =============================================================================
// ENDPOINT: POST /api/categories
// =============================================================================

// CreateCategory creates a new category
// @Summary Create a category
// @Description Create a new category with a unique name
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.CategoryDTO true "Category to create"
// @Success 201 {object} models.CategoryResponse
// @Failure 400 {object} ErrorDetails "Validation failure"
// @Failure 409 {object} ErrorDetails "Name already taken"
// @Router /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var dto models.CategoryDTO
	// ShouldBindJSON enforces the `binding:"required"` tag on name
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.categoryService.CreateCategory(c.Request.Context(), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// =============================================================================
// ENDPOINT: GET /api/categories/:id
// =============================================================================

// GetCategory returns one category by id
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.CategoryResponse
// @Failure 400 {object} ErrorDetails "Invalid ID"
// @Failure 404 {object} ErrorDetails "Category not found"
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// =============================================================================
// ENDPOINT: GET /api/categories
// =============================================================================

// ListCategories returns a page of categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Param pageNo query int false "Page number (0-based)"
// @Param pageSize query int false "Page size (default 10, max 100)"
// @Success 200 {object} models.CategoryPage
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	pageNo := parseQueryInt(c, "pageNo", defaultPageNo)
	pageSize := parseQueryInt(c, "pageSize", defaultPageSize)
	if pageNo < 0 {
		pageNo = defaultPageNo
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	page, err := h.categoryService.ListCategories(c.Request.Context(), pageNo, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// =============================================================================
// ENDPOINT: PUT /api/categories/:id
// =============================================================================

// UpdateCategory replaces a category's name and description
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.CategoryDTO true "New field values"
// @Success 200 {object} models.CategoryResponse
// @Failure 400 {object} ErrorDetails "Invalid ID or body"
// @Failure 404 {object} ErrorDetails "Category not found"
// @Failure 409 {object} ErrorDetails "Name already taken"
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto models.CategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.categoryService.UpdateCategory(c.Request.Context(), id, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// =============================================================================
// ENDPOINT: DELETE /api/categories/:id
// =============================================================================

// DeleteCategory removes a category
// @Summary Delete a category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorDetails "Category not found"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

// parseID reads the :id path parameter. On failure it writes the 400
// response itself and returns ok=false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid category ID - must be a number")
		return 0, false
	}
	return id, true
}

// parseQueryInt reads an optional integer query parameter
func parseQueryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
