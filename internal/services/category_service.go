// =============================================================================
// FILE: internal/services/category_service.go
// PURPOSE: Business logic for categories
// =============================================================================
//
// The service layer owns the one business rule this API has: category names
// are unique. It checks before inserting and translates the repository's
// sentinel errors into typed domain errors the HTTP layer can map to
// status codes without knowing anything about the database.
// =============================================================================

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"category-api/internal/models"
	"category-api/internal/repository"
)

// =============================================================================
// DOMAIN ERRORS
// =============================================================================

// ErrCategoryExists is returned when a create or update would duplicate a name
var ErrCategoryExists = errors.New("Category already exists")

// NotFoundError carries the id that was looked up, so the HTTP error body
// can reference it
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Category not found with id: %d", e.ID)
}

// =============================================================================
// INTERFACE DEFINITION
// =============================================================================

// CategoryServiceInterface defines the contract for category operations
type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, dto models.CategoryDTO) (*models.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.CategoryResponse, error)
	ListCategories(ctx context.Context, pageNo, pageSize int) (*models.CategoryPage, error)
	UpdateCategory(ctx context.Context, id int64, dto models.CategoryDTO) (*models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// =============================================================================
// SERVICE IMPLEMENTATION
// =============================================================================

// CategoryService implements CategoryServiceInterface
type CategoryService struct {
	categoryRepo repository.CategoryRepositoryInterface
	log          *logrus.Logger
}

// NewCategoryService creates a new CategoryService instance
func NewCategoryService(categoryRepo repository.CategoryRepositoryInterface, logger *logrus.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, log: logger}
}

// CreateCategory creates a new category after checking the name is free
//
// The existence check is a fast path, not the guarantee: two concurrent
// creates for the same name can both pass it. The guarantee is the UNIQUE
// constraint on the table - the repository reports its violation as
// ErrDuplicate, which gets the same conflict treatment here.
func (s *CategoryService) CreateCategory(ctx context.Context, dto models.CategoryDTO) (*models.CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, dto.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		s.log.Warnf("Rejected create for duplicate category name: %s", dto.Name)
		return nil, ErrCategoryExists
	}

	created, err := s.categoryRepo.Create(ctx, dto.ToCategory())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the check-then-insert race - still a conflict
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.log.Infof("Category created with ID %d, name %s", created.ID, created.Name)
	resp := created.ToResponse()
	return &resp, nil
}

// GetCategoryByID retrieves one category by id
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

// ListCategories retrieves one page of categories with the pagination envelope
func (s *CategoryService) ListCategories(ctx context.Context, pageNo, pageSize int) (*models.CategoryPage, error) {
	categories, err := s.categoryRepo.FindPage(ctx, pageSize, pageNo*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	total, err := s.categoryRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	content := make([]models.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		content = append(content, cat.ToResponse())
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &models.CategoryPage{
		Content:       content,
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          pageNo >= totalPages-1,
	}, nil
}

// UpdateCategory replaces the name/description of an existing category
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, dto models.CategoryDTO) (*models.CategoryResponse, error) {
	entity := dto.ToCategory()
	entity.ID = id

	updated, err := s.categoryRepo.Update(ctx, entity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.log.Infof("Category updated with ID %d", id)
	resp := updated.ToResponse()
	return &resp, nil
}

// DeleteCategory removes a category by id
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{ID: id}
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.log.Infof("Category deleted with ID %d", id)
	return nil
}
