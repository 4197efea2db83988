package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/simp-lee/stockroom/internal/analytics"
)

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
  timeout: "10s"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "stockroom"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
log:
  level: "info"
  format: "json"
inventory:
  low_stock: 20
  critical_stock: 8
  expires_today: "EXPIRED"
  language: "fr"
  timezone: "UTC"
remote:
  base_url: "https://erp.example.com/api/"
  retries: 2
`

// minimalYAML is a valid sqlite configuration; the inventory section is
// left to defaults.
const minimalYAML = `server:
  host: "localhost"
  port: 8080
  mode: "debug"
database:
  driver: "sqlite"
  sqlite:
    path: "data/stockroom.db"
log:
  level: "debug"
  format: "text"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testYAML))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 3000 || cfg.Server.Mode != "release" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Postgres.Host != "db.example.com" || cfg.Database.Postgres.Port != 5433 {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.Database.Postgres.DBName != "stockroom" || cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres = %+v", cfg.Database.Postgres)
	}
	if cfg.Database.Pool.MaxOpenConns != 50 || cfg.Database.Pool.ConnMaxLifetime != "30m" {
		t.Errorf("Pool = %+v", cfg.Database.Pool)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}

	inv := cfg.Inventory
	if *inv.LowStock != 20 || *inv.CriticalStock != 8 {
		t.Errorf("stock thresholds = %d/%d, want 20/8", *inv.LowStock, *inv.CriticalStock)
	}
	if *inv.ExpireSoonDays != analytics.DefaultExpireSoonDays || *inv.ExpireCriticalDays != analytics.DefaultExpireCriticalDays {
		t.Errorf("expiry windows = %d/%d, want defaults", *inv.ExpireSoonDays, *inv.ExpireCriticalDays)
	}
	if inv.ExpiresToday != "expired" {
		t.Errorf("ExpiresToday = %q, want normalized %q", inv.ExpiresToday, "expired")
	}
	if inv.LanguageTag() != language.French {
		t.Errorf("LanguageTag() = %v, want fr", inv.LanguageTag())
	}

	if cfg.Remote.BaseURL != "https://erp.example.com/api" || cfg.Remote.Retries != 2 {
		t.Errorf("Remote = %+v", cfg.Remote)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__DATABASE__DRIVER", "sqlite")
	t.Setenv("APP__LOG__LEVEL", "error")
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "20")
	t.Setenv("APP__INVENTORY__LOW_STOCK", "25")
	t.Setenv("APP__INVENTORY__EXPIRE_SOON_DAYS", "45")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Database.Pool.MaxIdleConns != 20 {
		t.Errorf("Pool.MaxIdleConns = %d, want 20", cfg.Database.Pool.MaxIdleConns)
	}
	if *cfg.Inventory.LowStock != 25 || *cfg.Inventory.ExpireSoonDays != 45 {
		t.Errorf("Inventory = %+v", cfg.Inventory)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want unchanged", cfg.Server.Host)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		wantErr string
	}{
		{"server mode", [2]string{`mode: "debug"`, `mode: "staging"`}, "invalid server.mode"},
		{"port", [2]string{`port: 8080`, `port: 70000`}, "invalid server.port"},
		{"host", [2]string{`host: "localhost"`, `host: "  "`}, "server.host is required"},
		{"driver", [2]string{`driver: "sqlite"`, `driver: "mysql"`}, "invalid database.driver"},
		{"sqlite path", [2]string{`path: "data/stockroom.db"`, `path: ""`}, "database.sqlite.path is required"},
		{"log level", [2]string{`level: "debug"`, `level: "trace"`}, "invalid log.level"},
		{"log format", [2]string{`format: "text"`, `format: "xml"`}, "invalid log.format"},
		{"timeout", [2]string{`mode: "debug"`, "mode: \"debug\"\n  timeout: \"-5s\""}, "invalid server.timeout"},
		{"inventory thresholds", [2]string{`format: "text"`, "format: \"text\"\ninventory:\n  low_stock: 3\n  critical_stock: 6"}, "invalid inventory thresholds"},
		{"inventory policy", [2]string{`format: "text"`, "format: \"text\"\ninventory:\n  expires_today: \"later\""}, "invalid inventory thresholds"},
		{"inventory timezone", [2]string{`format: "text"`, "format: \"text\"\ninventory:\n  timezone: \"Mars/Olympus\""}, "invalid inventory.timezone"},
		{"inventory page size", [2]string{`format: "text"`, "format: \"text\"\ninventory:\n  page_size: 500"}, "invalid inventory.page_size"},
		{"remote url", [2]string{`format: "text"`, "format: \"text\"\nremote:\n  base_url: \"ftp://example.com\""}, "invalid remote.base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(minimalYAML, tt.replace[0], tt.replace[1], 1)
			_, err := Load(writeTestConfig(t, content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad_PostgresValidation(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		sslmode string
		wantErr string
	}{
		{"disable in debug", "debug", "disable", ""},
		{"unknown sslmode", "debug", "sometimes", "invalid database.postgres.sslmode"},
		{"disable in release", "release", "disable", "for server.mode"},
		{"verify-full in release", "release", "verify-full", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.NewReplacer(
				`mode: "release"`, `mode: "`+tt.mode+`"`,
				`sslmode: "require"`, `sslmode: "`+tt.sslmode+`"`,
			).Replace(testYAML)
			_, err := Load(writeTestConfig(t, content))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestInventoryDefaults(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	inv := cfg.Inventory
	if *inv.LowStock != 10 || *inv.CriticalStock != 5 || *inv.ExpireSoonDays != 30 || *inv.ExpireCriticalDays != 7 {
		t.Errorf("thresholds = %d/%d/%d/%d", *inv.LowStock, *inv.CriticalStock, *inv.ExpireSoonDays, *inv.ExpireCriticalDays)
	}
	if inv.PageSize != DefaultPageSize || inv.MaxPageSize != DefaultMaxPageSize {
		t.Errorf("page sizes = %d/%d", inv.PageSize, inv.MaxPageSize)
	}
	if inv.AlertLimit != 20 || inv.ActivityLimit != 8 || inv.NotificationLimit != 10 {
		t.Errorf("limits = %d/%d/%d", inv.AlertLimit, inv.ActivityLimit, inv.NotificationLimit)
	}
	if inv.ExpiresToday != string(analytics.ExpiresTodayCritical) || inv.Language != "en" {
		t.Errorf("policy/language = %q/%q", inv.ExpiresToday, inv.Language)
	}

	ac, err := inv.Analytics()
	if err != nil {
		t.Fatalf("Analytics() error: %v", err)
	}
	if ac.Location == nil || ac.Now == nil {
		t.Error("expected location and clock to be set")
	}
	if _, err := analytics.New(ac); err != nil {
		t.Errorf("analytics.New() error: %v", err)
	}
}

func TestInventoryValidate_KeepsExplicitZeroThresholds(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, minimalYAML+`inventory:
  critical_stock: 0
  expire_critical_days: 0
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	inv := cfg.Inventory
	if *inv.CriticalStock != 0 || *inv.ExpireCriticalDays != 0 {
		t.Errorf("critical thresholds = %d/%d, want explicit 0/0", *inv.CriticalStock, *inv.ExpireCriticalDays)
	}
	if *inv.LowStock != analytics.DefaultLowStock || *inv.ExpireSoonDays != analytics.DefaultExpireSoonDays {
		t.Errorf("unset thresholds = %d/%d, want defaults", *inv.LowStock, *inv.ExpireSoonDays)
	}

	ac, err := inv.Analytics()
	if err != nil {
		t.Fatalf("Analytics() error: %v", err)
	}
	a, err := analytics.New(ac)
	if err != nil {
		t.Fatalf("analytics.New() error: %v", err)
	}
	if sev, ok := a.StockSeverityOf(3); !ok || sev != analytics.StockLow {
		t.Errorf("qty 3 = %v/%v, want LOW with no critical tier", sev, ok)
	}
}

func TestInventoryAnalytics_Timezone(t *testing.T) {
	inv := InventoryConfig{Timezone: "Asia/Phnom_Penh"}
	if err := inv.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	ac, err := inv.Analytics()
	if err != nil {
		t.Fatalf("Analytics() error: %v", err)
	}
	if ac.Location.String() != "Asia/Phnom_Penh" {
		t.Errorf("Location = %v", ac.Location)
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("APP__REMOTE__BASE_URL", "http://localhost:9000/api/v1/")
	t.Setenv("APP__REMOTE__TIMEOUT", "5s")

	cfg, err := LoadClient("")
	if err != nil {
		t.Fatalf("LoadClient() error: %v", err)
	}
	if cfg.Remote.BaseURL != "http://localhost:9000/api/v1" || cfg.Remote.Timeout != "5s" {
		t.Errorf("Remote = %+v", cfg.Remote)
	}
	if *cfg.Inventory.LowStock != 10 {
		t.Errorf("expected inventory defaults, got %+v", cfg.Inventory)
	}

	t.Setenv("APP__REMOTE__TIMEOUT", "never")
	if _, err := LoadClient(""); err == nil {
		t.Error("expected error for invalid remote timeout")
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	cfg, err := Load("../../configs/config.yaml")
	if err != nil {
		t.Fatalf("Load() error on project config: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Database.Driver != "sqlite" {
		t.Errorf("unexpected project config %+v", cfg.Server)
	}
	if cfg.Inventory.AlertLimit != 20 || cfg.Inventory.ExpiresToday != "critical" {
		t.Errorf("unexpected inventory config %+v", cfg.Inventory)
	}
}
