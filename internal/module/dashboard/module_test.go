package dashboard

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDashboardModuleRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewModule(&DashboardHandler{}).RegisterRoutes(r.Group("/api"))

	expected := []string{"/api/dashboard", "/api/dashboard/alerts", "/api/dashboard/activity", "/api/notifications"}

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+":"+ri.Path] = true
	}
	for _, path := range expected {
		if !registered[http.MethodGet+":"+path] {
			t.Errorf("expected route GET %s to be registered", path)
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
