package purchase

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPurchaseModuleRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(&PurchaseHandler{}).RegisterRoutes(r.Group("/api"))

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/purchases"},
		{http.MethodGet, "/api/purchases"},
		{http.MethodGet, "/api/purchases/:id"},
		{http.MethodDelete, "/api/purchases/:id"},
	}

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+":"+ri.Path] = true
	}
	for _, exp := range expected {
		if !registered[exp.method+":"+exp.path] {
			t.Errorf("expected route %s %s to be registered", exp.method, exp.path)
		}
	}
}

func TestNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule() expected panic for nil handler, got none")
		}
	}()

	_ = NewModule(nil)
}
