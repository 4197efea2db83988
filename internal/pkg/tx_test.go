package pkg

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/simp-lee/stockroom/internal/domain"
)

// newTestDB opens an in-memory SQLite database with the product and
// customer tables. A single connection keeps every query on the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Product{}, &domain.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countProducts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&domain.Product{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx_CommitOnSuccess(t *testing.T) {
	db := newTestDB(t)

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&domain.Product{Name: "Paracetamol", Qty: 4, Price: decimal.NewFromInt(3)}).Error
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if n := countProducts(t, db); n != 1 {
		t.Fatalf("expected 1 product after commit, got %d", n)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	fnErr := errors.New("stock check failed")

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&domain.Product{Name: "Ibuprofen"}).Error; err != nil {
			return err
		}
		return fnErr
	})
	if !errors.Is(err, fnErr) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if n := countProducts(t, db); n != 0 {
		t.Fatalf("expected 0 products after rollback, got %d", n)
	}
}

func TestWithTx_RollbackAndRepanic(t *testing.T) {
	db := newTestDB(t)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "boom" {
			t.Fatalf("expected panic value 'boom', got %v", r)
		}
		if n := countProducts(t, db); n != 0 {
			t.Fatalf("expected 0 products after panic rollback, got %d", n)
		}
	}()

	_ = WithTx(context.Background(), db, func(tx *gorm.DB) error {
		tx.Create(&domain.Product{Name: "Aspirin"})
		panic("boom")
	})
}

func TestWithTx_CanceledContext(t *testing.T) {
	db := newTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(tx *gorm.DB) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if called {
		t.Error("fn should not run when the transaction cannot begin")
	}
}
