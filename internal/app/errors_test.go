package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		message string
	}{
		{"404 not found", http.StatusNotFound, "not found"},
		{"405 method not allowed", http.StatusMethodNotAllowed, "method not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", errorHandler(tt.code, tt.message))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			var raw map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(raw) != 3 {
				t.Fatalf("response field count = %d, want 3", len(raw))
			}
			if raw["code"] != float64(tt.code) || raw["message"] != tt.message || raw["data"] != nil {
				t.Errorf("body = %v", raw)
			}
		})
	}
}
