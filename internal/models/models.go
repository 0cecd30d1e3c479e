// =============================================================================
// FILE: internal/models/models.go
// PURPOSE: Database models and API shapes for the category catalog
// =============================================================================
//
// STRUCT TAGS: The `db:"column_name"` tags tell pgx which column to map to
// which field. The `json:"field_name"` tags control JSON serialization for
// API requests and responses.
//
// ENTITY vs DTO:
// The entity mirrors the database row. The DTO/response shapes are what the
// API exchanges with clients. Keeping them separate means a schema change
// doesn't silently change the API contract (and vice versa).
// =============================================================================

package models

// =============================================================================
// DATABASE MODELS - These match PostgreSQL table structures
// =============================================================================

// Category represents a row in the "categories" table
type Category struct {
	// ID is the primary key, assigned by the database on insert
	ID int64 `db:"id" json:"id"`

	// Name is the category name (e.g., "Electronics")
	// Uniquely constrained at the database level
	Name string `db:"name" json:"name"`

	// Description explains the category (nullable)
	// Using a pointer (*string) to allow NULL values from the database
	Description *string `db:"description" json:"description,omitempty"`
}

// =============================================================================
// REQUEST SHAPES
// =============================================================================

// CategoryDTO is the create/update request body
// The `binding` tags are enforced by Gin before the service layer runs
type CategoryDTO struct {
	// Name is required - a blank or missing name fails binding with a 400
	Name string `json:"name" binding:"required"`

	// Description is optional
	Description *string `json:"description,omitempty"`
}

// =============================================================================
// RESPONSE SHAPES
// =============================================================================

// CategoryResponse is the read shape returned for a single category
type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryPage is the pagination envelope for list responses
type CategoryPage struct {
	Content       []CategoryResponse `json:"content"`
	PageNo        int                `json:"pageNo"`
	PageSize      int                `json:"pageSize"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`

	// Last is true when this is the final page
	Last bool `json:"last"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================
// Explicit field-by-field conversions instead of a reflective mapper.
// A field added to the entity has to be added here deliberately - nothing
// leaks into the API by accident, and the transformation stays testable.

// ToResponse converts an entity to its API read shape
func (c Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToDTO converts an entity back to the request shape (create echo)
func (c Category) ToDTO() CategoryDTO {
	return CategoryDTO{
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToCategory converts a request body to an entity ready for insert
// The ID is left zero - the database assigns it
func (d CategoryDTO) ToCategory() Category {
	return Category{
		Name:        d.Name,
		Description: d.Description,
	}
}
