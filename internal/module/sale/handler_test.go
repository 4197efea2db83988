package sale

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/stockroom/internal/pkg"
)

func TestSaleHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := setup(t)
	r := gin.New()
	NewModule(NewSaleHandler(f.svc, pkg.DefaultQueryDefaults())).RegisterRoutes(r.Group("/api/v1"))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"create", http.MethodPost, "/api/v1/sales", `{"customer_id":1,"sale_date":"2026-03-01","items":[{"product_id":1,"qty":2}]}`, http.StatusCreated},
		{"short stock", http.MethodPost, "/api/v1/sales", `{"items":[{"product_id":2,"qty":5}]}`, http.StatusUnprocessableEntity},
		{"bad date", http.MethodPost, "/api/v1/sales", `{"sale_date":"03/01/2026","items":[{"product_id":1,"qty":1}]}`, http.StatusBadRequest},
		{"no items", http.MethodPost, "/api/v1/sales", `{"items":[]}`, http.StatusBadRequest},
		{"get", http.MethodGet, "/api/v1/sales/1", "", http.StatusOK},
		{"get missing", http.MethodGet, "/api/v1/sales/5", "", http.StatusNotFound},
		{"list", http.MethodGet, "/api/v1/sales?sort=sale_date&order=desc", "", http.StatusOK},
		{"list bad sort", http.MethodGet, "/api/v1/sales?sort=colour", "", http.StatusBadRequest},
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
