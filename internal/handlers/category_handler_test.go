package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"category-api/internal/middleware"
	"category-api/internal/models"
	"category-api/internal/services"
)

// stubCategoryService implements services.CategoryServiceInterface with
// per-test function fields, so each test controls exactly what the service
// layer returns
type stubCategoryService struct {
	createFn func(ctx context.Context, dto models.CategoryDTO) (*models.CategoryResponse, error)
	getFn    func(ctx context.Context, id int64) (*models.CategoryResponse, error)
	listFn   func(ctx context.Context, pageNo, pageSize int) (*models.CategoryPage, error)
	updateFn func(ctx context.Context, id int64, dto models.CategoryDTO) (*models.CategoryResponse, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCategoryService) CreateCategory(ctx context.Context, dto models.CategoryDTO) (*models.CategoryResponse, error) {
	return s.createFn(ctx, dto)
}

func (s *stubCategoryService) GetCategoryByID(ctx context.Context, id int64) (*models.CategoryResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubCategoryService) ListCategories(ctx context.Context, pageNo, pageSize int) (*models.CategoryPage, error) {
	return s.listFn(ctx, pageNo, pageSize)
}

func (s *stubCategoryService) UpdateCategory(ctx context.Context, id int64, dto models.CategoryDTO) (*models.CategoryResponse, error) {
	return s.updateFn(ctx, id, dto)
}

func (s *stubCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// newTestRouter wires the handler into a router with the same middleware and
// routes the real one uses
func newTestRouter(svc services.CategoryServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCategoryHandler(svc)
	router := gin.New()
	router.Use(middleware.RequestID())

	categories := router.Group("/api/categories")
	categories.POST("", handler.CreateCategory)
	categories.GET("", handler.ListCategories)
	categories.GET("/:id", handler.GetCategory)
	categories.PUT("/:id", handler.UpdateCategory)
	categories.DELETE("/:id", handler.DeleteCategory)

	return router
}

func perform(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string { return &s }

func TestCreateCategoryEndpoint(t *testing.T) {
	svc := &stubCategoryService{
		createFn: func(_ context.Context, dto models.CategoryDTO) (*models.CategoryResponse, error) {
			return &models.CategoryResponse{ID: 1, Name: dto.Name, Description: dto.Description}, nil
		},
	}
	router := newTestRouter(svc)

	body := []byte(`{"name":"Electronics","description":"Electronic devices and accessories"}`)
	rec := perform(router, http.MethodPost, "/api/categories", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got models.CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Electronics", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Electronic devices and accessories", *got.Description)
}

func TestCreateCategoryEndpointValidation(t *testing.T) {
	svc := &stubCategoryService{
		createFn: func(_ context.Context, _ models.CategoryDTO) (*models.CategoryResponse, error) {
			t.Fatal("service must not be called when binding fails")
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	// Missing required name
	rec := perform(router, http.MethodPost, "/api/categories", []byte(`{"description":"no name"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody ErrorDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.False(t, errBody.Timestamp.IsZero())
	assert.Contains(t, errBody.Details, "/api/categories")
}

func TestCreateCategoryEndpointConflict(t *testing.T) {
	svc := &stubCategoryService{
		createFn: func(_ context.Context, _ models.CategoryDTO) (*models.CategoryResponse, error) {
			return nil, services.ErrCategoryExists
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPost, "/api/categories", []byte(`{"name":"Electronics"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var errBody ErrorDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "Category already exists", errBody.Message)
	assert.False(t, errBody.Timestamp.IsZero())
}

func TestGetCategoryEndpoint(t *testing.T) {
	svc := &stubCategoryService{
		getFn: func(_ context.Context, id int64) (*models.CategoryResponse, error) {
			return &models.CategoryResponse{ID: id, Name: "Electronics", Description: strPtr("Electronic devices and accessories")}, nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodGet, "/api/categories/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Electronics", got.Name)
}

func TestGetCategoryEndpointNotFound(t *testing.T) {
	svc := &stubCategoryService{
		getFn: func(_ context.Context, id int64) (*models.CategoryResponse, error) {
			return nil, &services.NotFoundError{ID: id}
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodGet, "/api/categories/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errBody ErrorDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "Category not found with id: 999", errBody.Message)
	assert.Contains(t, errBody.Details, "/api/categories/999")
	assert.False(t, errBody.Timestamp.IsZero())
}

func TestGetCategoryEndpointInvalidID(t *testing.T) {
	svc := &stubCategoryService{
		getFn: func(_ context.Context, _ int64) (*models.CategoryResponse, error) {
			t.Fatal("service must not be called for a non-numeric id")
			return nil, nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodGet, "/api/categories/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategoriesEndpoint(t *testing.T) {
	var gotPageNo, gotPageSize int
	svc := &stubCategoryService{
		listFn: func(_ context.Context, pageNo, pageSize int) (*models.CategoryPage, error) {
			gotPageNo, gotPageSize = pageNo, pageSize
			return &models.CategoryPage{
				Content:       []models.CategoryResponse{{ID: 1, Name: "Electronics"}},
				PageNo:        pageNo,
				PageSize:      pageSize,
				TotalElements: 1,
				TotalPages:    1,
				Last:          true,
			}, nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodGet, "/api/categories?pageNo=2&pageSize=5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, gotPageNo)
	assert.Equal(t, 5, gotPageSize)

	var page models.CategoryPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Content, 1)
	assert.True(t, page.Last)
}

func TestListCategoriesEndpointDefaults(t *testing.T) {
	svc := &stubCategoryService{
		listFn: func(_ context.Context, pageNo, pageSize int) (*models.CategoryPage, error) {
			assert.Equal(t, 0, pageNo)
			assert.Equal(t, 10, pageSize)
			return &models.CategoryPage{Content: []models.CategoryResponse{}, Last: true}, nil
		},
	}
	router := newTestRouter(svc)

	// Out-of-range values fall back to the defaults
	rec := perform(router, http.MethodGet, "/api/categories?pageNo=-1&pageSize=1000", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCategoryEndpoint(t *testing.T) {
	svc := &stubCategoryService{
		updateFn: func(_ context.Context, id int64, dto models.CategoryDTO) (*models.CategoryResponse, error) {
			return &models.CategoryResponse{ID: id, Name: dto.Name}, nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodPut, "/api/categories/1", []byte(`{"name":"Gadgets"}`))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Gadgets", got.Name)
}

func TestDeleteCategoryEndpoint(t *testing.T) {
	svc := &stubCategoryService{
		deleteFn: func(_ context.Context, id int64) error {
			if id == 999 {
				return &services.NotFoundError{ID: id}
			}
			return nil
		},
	}
	router := newTestRouter(svc)

	rec := perform(router, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = perform(router, http.MethodDelete, "/api/categories/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
