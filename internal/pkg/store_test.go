package pkg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/simp-lee/stockroom/internal/domain"
)

func TestGormRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRepository[domain.Product](newTestDB(t))

	p := &domain.Product{Name: "Paracetamol", Brand: "Acme", Qty: 12, Price: decimal.RequireFromString("2.50")}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected ID to be assigned")
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Paracetamol" || got.Qty != 12 {
		t.Errorf("unexpected product %+v", got)
	}
	if !got.Price.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("expected price 2.5, got %s", got.Price)
	}

	got.Qty = 3
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if again.Qty != 3 {
		t.Errorf("expected qty 3, got %d", again.Qty)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !domain.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestGormRepository_AllNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRepository[domain.Customer](newTestDB(t))

	rows, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All on empty table: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}

	for i := 1; i <= 3; i++ {
		if err := repo.Create(ctx, &domain.Customer{Name: fmt.Sprintf("Customer %d", i)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows, err = repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Name != "Customer 3" || rows[2].Name != "Customer 1" {
		t.Errorf("expected newest first, got %q .. %q", rows[0].Name, rows[2].Name)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
}

func TestGormRepository_DeleteMissing(t *testing.T) {
	repo := NewGormRepository[domain.Product](newTestDB(t))

	if err := repo.Delete(context.Background(), 404); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMapError(t *testing.T) {
	appErr := domain.NewAppError(domain.CodeValidation, "bad", nil)

	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantCode int
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "record not found", err: gorm.ErrRecordNotFound, wantCode: domain.CodeNotFound},
		{name: "wrapped record not found", err: fmt.Errorf("load: %w", gorm.ErrRecordNotFound), wantCode: domain.CodeNotFound},
		{name: "duplicated key", err: gorm.ErrDuplicatedKey, wantCode: domain.CodeAlreadyExists},
		{name: "sqlite unique message", err: errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"), wantCode: domain.CodeAlreadyExists},
		{name: "postgres duplicate message", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`), wantCode: domain.CodeAlreadyExists},
		{name: "app error passes through", err: appErr, wantCode: domain.CodeValidation},
		{name: "other", err: errors.New("disk I/O error"), wantCode: domain.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			var ae *domain.AppError
			if !errors.As(got, &ae) {
				t.Fatalf("expected *domain.AppError, got %T", got)
			}
			if ae.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, ae.Code)
			}
		})
	}
}
