package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

// --- mock service ---

type mockService struct {
	products  map[uint]*domain.Product
	lastInput domain.ProductInput
	lastQuery table.Query
	createErr error
}

func newMockService() *mockService {
	return &mockService{products: make(map[uint]*domain.Product)}
}

func (m *mockService) CreateProduct(_ context.Context, in domain.ProductInput) (*domain.Product, error) {
	m.lastInput = in
	if m.createErr != nil {
		return nil, m.createErr
	}
	p := &domain.Product{BaseModel: domain.BaseModel{ID: 1}, Name: in.Name, Qty: in.Qty, ExpireDate: in.ExpireDate}
	m.products[p.ID] = p
	return p, nil
}

func (m *mockService) GetProduct(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockService) ListProducts(_ context.Context, q table.Query) (*domain.PageResult[domain.Product], error) {
	m.lastQuery = q
	items := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		items = append(items, *p)
	}
	return &domain.PageResult[domain.Product]{Items: items, TotalCount: len(items), TotalPages: 1, Page: q.Page, PageSize: q.PageSize}, nil
}

func (m *mockService) UpdateProduct(_ context.Context, id uint, in domain.ProductInput) (*domain.Product, error) {
	m.lastInput = in
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	return p, nil
}

func (m *mockService) DeleteProduct(_ context.Context, id uint) error {
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func setupAPIRouter(h *ProductHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(h).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandler_Create(t *testing.T) {
	svc := newMockService()
	r := setupAPIRouter(NewProductHandler(svc, pkg.DefaultQueryDefaults()))

	w := doJSON(r, http.MethodPost, "/api/v1/products",
		`{"name":"Aspirin","qty":4,"price":"2.50","expire_date":"2026-12-31"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if svc.lastInput.ExpireDate == nil || svc.lastInput.ExpireDate.Format("2006-01-02") != "2026-12-31" {
		t.Errorf("ExpireDate = %v, want 2026-12-31", svc.lastInput.ExpireDate)
	}
	if svc.lastInput.Price.String() != "2.5" {
		t.Errorf("Price = %s, want 2.5", svc.lastInput.Price)
	}
}

func TestProductHandler_Create_ValidationError(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"qty":1}`, "name"},
		{"negative qty", `{"name":"A","qty":-2}`, "qty"},
		{"bad expire date", `{"name":"A","expire_date":"31/12/2026"}`, "expire_date"},
	}

	r := setupAPIRouter(NewProductHandler(newMockService(), pkg.DefaultQueryDefaults()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/v1/products", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}
			var resp pkg.ValidationErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if _, ok := resp.Errors[tt.field]; !ok {
				t.Errorf("expected %q in errors, got %v", tt.field, resp.Errors)
			}
		})
	}
}

func TestProductHandler_Get(t *testing.T) {
	svc := newMockService()
	svc.products[1] = &domain.Product{BaseModel: domain.BaseModel{ID: 1}, Name: "Aspirin"}
	r := setupAPIRouter(NewProductHandler(svc, pkg.DefaultQueryDefaults()))

	tests := []struct {
		path string
		want int
	}{
		{"/api/v1/products/1", http.StatusOK},
		{"/api/v1/products/2", http.StatusNotFound},
		{"/api/v1/products/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if w := doJSON(r, http.MethodGet, tt.path, ""); w.Code != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
			}
		})
	}
}

func TestProductHandler_List(t *testing.T) {
	svc := newMockService()
	svc.products[1] = &domain.Product{BaseModel: domain.BaseModel{ID: 1}, Name: "Aspirin"}
	r := setupAPIRouter(NewProductHandler(svc, pkg.QueryDefaults{PageSize: 10, MaxPageSize: 50}))

	w := doJSON(r, http.MethodGet, "/api/v1/products?search=asp&search_field=name&sort=qty&order=desc&page=2&page_size=500", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	q := svc.lastQuery
	if q.Search != "asp" || q.Scope != table.ScopeField || q.Field != "name" {
		t.Errorf("search = %q/%s/%q", q.Search, q.Scope, q.Field)
	}
	if q.SortKey != "qty" || q.Direction != table.Desc {
		t.Errorf("sort = %q %s", q.SortKey, q.Direction)
	}
	if q.Page != 2 || q.PageSize != 50 {
		t.Errorf("page = %d size = %d, want 2 and 50", q.Page, q.PageSize)
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected Data to be a map, got %T", resp.Data)
	}
	if _, ok := data["items"]; !ok {
		t.Error("expected items in list data")
	}
}

func TestProductHandler_List_BadOrder(t *testing.T) {
	r := setupAPIRouter(NewProductHandler(newMockService(), pkg.DefaultQueryDefaults()))
	if w := doJSON(r, http.MethodGet, "/api/v1/products?order=sideways", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestProductHandler_UpdateDelete(t *testing.T) {
	svc := newMockService()
	svc.products[1] = &domain.Product{BaseModel: domain.BaseModel{ID: 1}, Name: "Aspirin"}
	r := setupAPIRouter(NewProductHandler(svc, pkg.DefaultQueryDefaults()))

	if w := doJSON(r, http.MethodPut, "/api/v1/products/1", `{"name":"Aspirin Forte"}`); w.Code != http.StatusOK {
		t.Fatalf("PUT expected 200, got %d", w.Code)
	}
	if svc.products[1].Name != "Aspirin Forte" {
		t.Errorf("Name = %q", svc.products[1].Name)
	}
	if w := doJSON(r, http.MethodPut, "/api/v1/products/9", `{"name":"X"}`); w.Code != http.StatusNotFound {
		t.Errorf("PUT missing expected 404, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/api/v1/products/1", ""); w.Code != http.StatusOK {
		t.Errorf("DELETE expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/api/v1/products/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("second DELETE expected 404, got %d", w.Code)
	}
}
