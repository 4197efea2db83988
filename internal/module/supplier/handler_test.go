package supplier

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

func TestSupplierHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewSupplierService(NewSupplierRepository(setupTestDB(t)), table.NewEngine())
	r := gin.New()
	NewModule(NewSupplierHandler(svc, pkg.DefaultQueryDefaults())).RegisterRoutes(r.Group("/api/v1"))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"create", http.MethodPost, "/api/v1/suppliers", `{"name":"Mekong Pharma"}`, http.StatusCreated},
		{"create bad status", http.MethodPost, "/api/v1/suppliers", `{"name":"X","status":"gone"}`, http.StatusBadRequest},
		{"get", http.MethodGet, "/api/v1/suppliers/1", "", http.StatusOK},
		{"update", http.MethodPut, "/api/v1/suppliers/1", `{"name":"Mekong","status":"pending"}`, http.StatusOK},
		{"filter", http.MethodGet, "/api/v1/suppliers?status=pending", "", http.StatusOK},
		{"filter all", http.MethodGet, "/api/v1/suppliers?status=all", "", http.StatusOK},
		{"delete", http.MethodDelete, "/api/v1/suppliers/1", "", http.StatusOK},
		{"delete again", http.MethodDelete, "/api/v1/suppliers/1", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		if tt.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Fatalf("%s: got %d, want %d (%s)", tt.name, w.Code, tt.want, w.Body.String())
		}
	}
}
