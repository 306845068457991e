package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "foodiexpress/internal/errors"
)

type mockService struct {
	ListAvailableFunc  func(ctx context.Context) ([]MenuItemDTO, error)
	GetByIDFunc        func(ctx context.Context, id uint) (*MenuItemDTO, error)
	ListByCategoryFunc func(ctx context.Context, category string) ([]MenuItemDTO, error)
	ListPopularFunc    func(ctx context.Context) ([]MenuItemDTO, error)
	SearchFunc         func(ctx context.Context, term string) ([]MenuItemDTO, error)
	CreateFunc         func(ctx context.Context, req CreateMenuItemRequest) (*MenuItemDTO, error)
	UpdateFunc         func(ctx context.Context, id uint, req UpdateMenuItemRequest) (*MenuItemDTO, error)
	DeleteFunc         func(ctx context.Context, id uint) error
}

func (m *mockService) ListAvailable(ctx context.Context) ([]MenuItemDTO, error) {
	return m.ListAvailableFunc(ctx)
}

func (m *mockService) GetByID(ctx context.Context, id uint) (*MenuItemDTO, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockService) ListByCategory(ctx context.Context, category string) ([]MenuItemDTO, error) {
	return m.ListByCategoryFunc(ctx, category)
}

func (m *mockService) ListPopular(ctx context.Context) ([]MenuItemDTO, error) {
	return m.ListPopularFunc(ctx)
}

func (m *mockService) Search(ctx context.Context, term string) ([]MenuItemDTO, error) {
	return m.SearchFunc(ctx, term)
}

func (m *mockService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemDTO, error) {
	return m.CreateFunc(ctx, req)
}

func (m *mockService) Update(ctx context.Context, id uint, req UpdateMenuItemRequest) (*MenuItemDTO, error) {
	return m.UpdateFunc(ctx, id, req)
}

func (m *mockService) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func newTestRouter(svc Service) chi.Router {
	ctrl := NewController(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/menuitems", func(r chi.Router) {
		r.Get("/", ctrl.List)
		r.Post("/", ctrl.Create)
		r.Get("/popular", ctrl.ListPopular)
		r.Get("/search", ctrl.Search)
		r.Get("/category/{category}", ctrl.ListByCategory)
		r.Get("/{id}", ctrl.GetByID)
		r.Put("/{id}", ctrl.Update)
		r.Delete("/{id}", ctrl.Delete)
	})
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestList_Success(t *testing.T) {
	svc := &mockService{
		ListAvailableFunc: func(ctx context.Context) ([]MenuItemDTO, error) {
			return []MenuItemDTO{
				{ID: 1, Name: "Margherita Pizza", Price: 12.99, Category: "pizza", IsAvailable: true},
			}, nil
		},
	}

	rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/menuitems", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var items []MenuItemDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita Pizza", items[0].Name)
}

func TestSearch_MissingTerm(t *testing.T) {
	svc := &mockService{
		SearchFunc: func(ctx context.Context, term string) ([]MenuItemDTO, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/menuitems/search", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "q query parameter is required")
}

func TestSearch_PassesTerm(t *testing.T) {
	var gotTerm string
	svc := &mockService{
		SearchFunc: func(ctx context.Context, term string) ([]MenuItemDTO, error) {
			gotTerm = term
			return []MenuItemDTO{}, nil
		},
	}

	rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/menuitems/search?q=pizza", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pizza", gotTerm)
}

func TestMenuCreate_Success(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req CreateMenuItemRequest) (*MenuItemDTO, error) {
			return &MenuItemDTO{ID: 42, Name: req.Name, Price: req.Price, Category: req.Category, IsAvailable: true}, nil
		},
	}

	body := CreateMenuItemRequest{Name: "Tonkotsu Ramen", Price: 14.50, Category: "sushi", Rating: 4.2}
	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/menuitems", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var item MenuItemDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, uint(42), item.ID)
	assert.True(t, item.IsAvailable)
}

func TestMenuCreate_Invalid(t *testing.T) {
	svc := &mockService{
		CreateFunc: func(ctx context.Context, req CreateMenuItemRequest) (*MenuItemDTO, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	body := CreateMenuItemRequest{Name: "", Price: 0, Category: "", Rating: 6}
	rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/menuitems", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
	assert.Contains(t, rec.Body.String(), "price must be between 0.01 and 9999.99")
	assert.Contains(t, rec.Body.String(), "rating must be between 0 and 5")
}

func TestMenuUpdate_PartialBody(t *testing.T) {
	var gotReq UpdateMenuItemRequest
	svc := &mockService{
		UpdateFunc: func(ctx context.Context, id uint, req UpdateMenuItemRequest) (*MenuItemDTO, error) {
			gotReq = req
			return &MenuItemDTO{ID: id, Name: "Margherita Pizza", Price: *req.Price}, nil
		},
	}

	router := newTestRouter(svc)
	req := httptest.NewRequest(http.MethodPut, "/api/menuitems/1", bytes.NewReader([]byte(`{"price": 13.49}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotReq.Price)
	assert.Equal(t, 13.49, *gotReq.Price)
	assert.Nil(t, gotReq.Name)
	assert.Nil(t, gotReq.IsAvailable)
}

func TestMenuDelete_Conflict(t *testing.T) {
	svc := &mockService{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return apperrors.NewConflictError("menu item is referenced by existing orders")
		},
	}

	rec := doJSON(t, newTestRouter(svc), http.MethodDelete, "/api/menuitems/1", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "referenced by existing orders")
}

func TestMenuDelete_Success(t *testing.T) {
	svc := &mockService{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return nil
		},
	}

	rec := doJSON(t, newTestRouter(svc), http.MethodDelete, "/api/menuitems/1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMenuGetByID_NotFound(t *testing.T) {
	svc := &mockService{
		GetByIDFunc: func(ctx context.Context, id uint) (*MenuItemDTO, error) {
			return nil, apperrors.NewNotFoundError("menu item not found")
		},
	}

	rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/menuitems/999", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
