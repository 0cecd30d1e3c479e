// =============================================================================
// FILE: internal/repository/category_repository.go
// PURPOSE: Database operations for categories - the "data access layer"
// =============================================================================
//
// REPOSITORY PATTERN:
// The repository pattern abstracts database operations behind an interface.
// This means:
// 1. The service layer doesn't know about SQL - it just calls repository methods
// 2. You can swap PostgreSQL for another store with a new implementation
// 3. You can easily mock the repository for unit testing
//
// NAMING CONVENTIONS:
// - "Get" returns one item or an error
// - "Find" or "List" returns multiple items
// - "Create" inserts, "Update" modifies, "Delete" removes
// =============================================================================

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"category-api/internal/models"
)

// =============================================================================
// CUSTOM ERRORS
// =============================================================================
// Sentinel errors that the service layer checks with errors.Is.
// This keeps SQL details (pgx error types, SQLSTATE codes) out of the service.

// ErrNotFound indicates the requested resource doesn't exist
var ErrNotFound = errors.New("resource not found")

// ErrDuplicate indicates a write violated the unique name constraint
var ErrDuplicate = errors.New("duplicate resource")

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation
const uniqueViolation = "23505"

// =============================================================================
// INTERFACE DEFINITION
// =============================================================================

// CategoryRepositoryInterface defines the contract for category data operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindPage(ctx context.Context, limit, offset int) ([]models.Category, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, category models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

// =============================================================================
// REPOSITORY IMPLEMENTATION
// =============================================================================

// CategoryRepository implements CategoryRepositoryInterface using PostgreSQL
type CategoryRepository struct {
	// pool is the database connection pool
	pool *pgxpool.Pool
	log  *logrus.Logger
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(pool *pgxpool.Pool, logger *logrus.Logger) *CategoryRepository {
	return &CategoryRepository{pool: pool, log: logger}
}

// Create inserts a new category and returns it with the assigned id
// Returns ErrDuplicate if the name is already taken (unique violation)
func (r *CategoryRepository) Create(ctx context.Context, category models.Category) (*models.Category, error) {
	// RETURNING id lets the database assign the primary key in one round trip
	// $1, $2 are placeholders - NEVER build queries with fmt.Sprintf and user input
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.log.Warnf("Attempted to create category with duplicate name: %s", category.Name)
			return nil, ErrDuplicate
		}
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// GetByID retrieves a single category by its ID
// Returns ErrNotFound if the category doesn't exist
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		WHERE id = $1
	`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	// pgx.CollectOneRow handles scanning and closing rows automatically
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect category row: %w", err)
	}

	return &category, nil
}

// ExistsByName reports whether any category already has the given name
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

// FindPage retrieves one page of categories ordered by id
func (r *CategoryRepository) FindPage(ctx context.Context, limit, offset int) ([]models.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	// pgx.CollectRows handles iteration, scanning, and closing rows automatically
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to collect category rows: %w", err)
	}

	return categories, nil
}

// CountAll returns the total number of categories (for the pagination envelope)
func (r *CategoryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// Update modifies an existing category
// Returns ErrNotFound if the id doesn't exist, ErrDuplicate if the new name
// collides with another category
func (r *CategoryRepository) Update(ctx context.Context, category models.Category) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, description = $2
		WHERE id = $3
		RETURNING id, name, description
	`
	err := r.pool.QueryRow(ctx, query, category.Name, category.Description, category.ID).
		Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.log.Warnf("Attempted to update category %d to duplicate name: %s", category.ID, category.Name)
			return nil, ErrDuplicate
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.log.Errorf("Failed to update category %d: %v", category.ID, err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

// Delete removes a category by id
// Returns ErrNotFound if nothing was deleted
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete category %d: %v", id, err)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
