package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/analytics"
	"github.com/simp-lee/stockroom/internal/config"
	"github.com/simp-lee/stockroom/internal/domain"
	"github.com/simp-lee/stockroom/internal/middleware"
	"github.com/simp-lee/stockroom/internal/module/customer"
	"github.com/simp-lee/stockroom/internal/module/dashboard"
	"github.com/simp-lee/stockroom/internal/module/product"
	"github.com/simp-lee/stockroom/internal/module/purchase"
	"github.com/simp-lee/stockroom/internal/module/sale"
	"github.com/simp-lee/stockroom/internal/module/staff"
	"github.com/simp-lee/stockroom/internal/module/supplier"
	"github.com/simp-lee/stockroom/internal/module/user"
	"github.com/simp-lee/stockroom/internal/pkg"
	"github.com/simp-lee/stockroom/internal/table"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// models lists every table migrated in debug mode.
var models = []any{
	&domain.Product{},
	&domain.Customer{},
	&domain.Supplier{},
	&domain.Staff{},
	&domain.User{},
	&domain.Purchase{},
	&domain.PurchaseItem{},
	&domain.Sale{},
	&domain.SaleItem{},
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the database, the list engine and analyzer, every
// inventory module, middleware and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	if err := cfg.Inventory.Validate(); err != nil {
		return nil, err
	}

	success := false

	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed", slog.Int("tables", len(models)))
	}

	modules, err := buildModules(db, &cfg.Inventory)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	timeout, err := parseDuration(cfg.Server.Timeout)
	if err != nil {
		return nil, fmt.Errorf("parse server.timeout: %w", err)
	}
	corsConfig, err := resolveCORSConfig(cfg.Server.Mode, &cfg.Server.CORS)
	if err != nil {
		return nil, err
	}

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger, "/health"),
		middleware.CORSWithConfig(corsConfig),
		middleware.Timeout(timeout),
	)

	if err := RegisterRoutes(engine, &RouteDeps{Modules: modules, DB: db}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

// buildModules wires repository, service, handler and module for every
// inventory resource: repository → service → handler.
func buildModules(db *gorm.DB, inv *config.InventoryConfig) ([]Module, error) {
	analyticsCfg, err := inv.Analytics()
	if err != nil {
		return nil, fmt.Errorf("inventory analytics: %w", err)
	}
	analyzer, err := analytics.New(analyticsCfg)
	if err != nil {
		return nil, fmt.Errorf("inventory analytics: %w", err)
	}
	lists := table.NewEngine(table.WithLanguage(inv.LanguageTag()))
	defaults := pkg.QueryDefaults{PageSize: inv.PageSize, MaxPageSize: inv.MaxPageSize}

	products := product.NewProductRepository(db)
	customers := customer.NewCustomerRepository(db)
	suppliers := supplier.NewSupplierRepository(db)
	staffRepo := staff.NewStaffRepository(db)
	users := user.NewUserRepository(db)
	purchases := purchase.NewPurchaseRepository(db)
	sales := sale.NewSaleRepository(db)

	dashboardSvc := dashboard.NewDashboardService(
		dashboard.Sources{Products: products, Sales: sales, Purchases: purchases, Customers: customers},
		analyzer,
		dashboard.Limits{Alerts: inv.AlertLimit, Activity: inv.ActivityLimit, Notifications: inv.NotificationLimit},
	)

	return []Module{
		product.NewModule(product.NewProductHandler(product.NewProductService(products, lists), defaults)),
		customer.NewModule(customer.NewCustomerHandler(customer.NewCustomerService(customers, lists), defaults)),
		supplier.NewModule(supplier.NewSupplierHandler(supplier.NewSupplierService(suppliers, lists), defaults)),
		staff.NewModule(staff.NewStaffHandler(staff.NewStaffService(staffRepo, lists), defaults)),
		user.NewModule(user.NewUserHandler(user.NewUserService(users, lists), defaults)),
		purchase.NewModule(purchase.NewPurchaseHandler(purchase.NewPurchaseService(purchases, suppliers, products, lists), defaults)),
		sale.NewModule(sale.NewSaleHandler(sale.NewSaleService(sales, customers, products, lists), defaults)),
		dashboard.NewModule(dashboard.NewDashboardHandler(dashboardSvc)),
	}, nil
}

// resolveCORSConfig applies the configured CORS settings over the defaults.
// In release mode, when no allowlist is configured, cross-origin requests
// are denied.
func resolveCORSConfig(mode string, cors *config.CORSConfig) (middleware.CORSConfig, error) {
	out := middleware.DefaultCORSConfig()

	switch {
	case len(cors.AllowOrigins) > 0:
		out.AllowOrigins = cors.AllowOrigins
	case mode == gin.ReleaseMode:
		out.AllowOrigins = []string{}
	}
	if len(cors.AllowMethods) > 0 {
		out.AllowMethods = cors.AllowMethods
	}
	if len(cors.AllowHeaders) > 0 {
		out.AllowHeaders = cors.AllowHeaders
	}
	out.AllowCredentials = cors.AllowCredentials

	if strings.TrimSpace(cors.MaxAge) != "" {
		maxAge, err := parseDuration(cors.MaxAge)
		if err != nil {
			return middleware.CORSConfig{}, fmt.Errorf("parse server.cors.max_age: %w", err)
		}
		out.MaxAge = maxAge
	}
	return out, nil
}

// parseDuration parses s, treating blank as zero.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It shuts down gracefully within 5 seconds, then closes the database and
// the logger.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	log := slog.Default()
	if a.logger != nil {
		log = a.logger.Logger
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error("database close error", slog.Any("error", err))
			} else {
				log.Info("database connection closed")
			}
		}
	}

	log.Info("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	return runErr
}
