package usecase

import (
	"context"
	"errors"
	"testing"

	"sgf_demandas/internal/adapter/persistence/repository/memory"
	"sgf_demandas/internal/domain/entities"
)

func validDemand() entities.Demand {
	return entities.Demand{
		Company:     "Citsmart",
		RequestDate: "2024-01-10",
	}
}

func TestDemandUseCase_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("missing company", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		d := validDemand()
		d.Company = "   "
		if _, err := uc.Upsert(ctx, d); !errors.Is(err, ErrInvalidDemandCompany) {
			t.Fatalf("expected ErrInvalidDemandCompany, got %v", err)
		}
	})

	t.Run("malformed request date", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		d := validDemand()
		d.RequestDate = "10/01/2024"
		if _, err := uc.Upsert(ctx, d); !errors.Is(err, ErrInvalidRequestDate) {
			t.Fatalf("expected ErrInvalidRequestDate, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		d := validDemand()
		d.Status = "Cancelada"
		if _, err := uc.Upsert(ctx, d); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("new demand gets identity and defaults", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		created, err := uc.Upsert(ctx, validDemand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
		if created.CreatedAt == 0 {
			t.Fatalf("expected creation timestamp")
		}
		if created.Status != entities.StatusAberta {
			t.Fatalf("expected default status Aberta, got %q", created.Status)
		}
		if created.BillingPeriod != "" {
			t.Fatalf("expected empty billing period without completion date, got %q", created.BillingPeriod)
		}
	})

	t.Run("replace keeps creation timestamp", func(t *testing.T) {
		repo := memory.NewDemandRepository()
		uc := NewDemandUseCase(repo)
		created, err := uc.Upsert(ctx, validDemand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		update := created
		update.Description = "Troca de switch"
		update.CreatedAt = 0
		replaced, err := uc.Upsert(ctx, update)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if replaced.CreatedAt != created.CreatedAt {
			t.Fatalf("expected creation timestamp preserved: %d != %d", replaced.CreatedAt, created.CreatedAt)
		}
		if replaced.Description != "Troca de switch" {
			t.Fatalf("expected updated description, got %q", replaced.Description)
		}
	})

	t.Run("replace ignores a caller-supplied creation timestamp", func(t *testing.T) {
		repo := memory.NewDemandRepository()
		uc := NewDemandUseCase(repo)
		created, err := uc.Upsert(ctx, validDemand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		update := created
		update.CreatedAt = created.CreatedAt + 86400000
		replaced, err := uc.Upsert(ctx, update)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if replaced.CreatedAt != created.CreatedAt {
			t.Fatalf("expected stored timestamp %d, got %d", created.CreatedAt, replaced.CreatedAt)
		}
	})

	t.Run("metadata edit keeps stored line items", func(t *testing.T) {
		repo := memory.NewDemandRepository()
		uc := NewDemandUseCase(repo)
		created, err := uc.Upsert(ctx, validDemand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		withItems := created
		withItems.FinancialItems = []entities.FinancialItem{{ID: "li1", Name: "Ponto de rede", Quantity: 2, Total: 363.45}}
		if _, err := uc.Upsert(ctx, withItems); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		edit := created
		edit.Description = "Descrição revisada"
		edit.FinancialItems = nil
		replaced, err := uc.Upsert(ctx, edit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if replaced.Description != "Descrição revisada" {
			t.Fatalf("expected updated description, got %q", replaced.Description)
		}
		if len(replaced.FinancialItems) != 1 || replaced.FinancialItems[0].Total != 363.45 {
			t.Fatalf("expected line item preserved, got %+v", replaced.FinancialItems)
		}

		stored, err := uc.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored.FinancialItems) != 1 {
			t.Fatalf("expected 1 stored line item, got %d", len(stored.FinancialItems))
		}
	})

	t.Run("billing period follows completion date", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		d := validDemand()
		d.CompletionDate = "2024-01-15"
		d.BillingPeriod = "adulterado"
		created, err := uc.Upsert(ctx, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.BillingPeriod != "Fevereiro / 2024" {
			t.Fatalf("expected derived period Fevereiro / 2024, got %q", created.BillingPeriod)
		}
	})
}

func TestDemandUseCase_List(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDemandRepository()
	uc := NewDemandUseCase(repo)

	for i, created := range []int64{100, 300, 200} {
		d := validDemand()
		d.ID = string(rune('a' + i))
		d.CreatedAt = created
		if _, err := uc.Upsert(ctx, d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	ds, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("expected 3 demands, got %d", len(ds))
	}
	if ds[0].CreatedAt != 300 || ds[1].CreatedAt != 200 || ds[2].CreatedAt != 100 {
		t.Fatalf("expected newest-first ordering, got %v %v %v", ds[0].CreatedAt, ds[1].CreatedAt, ds[2].CreatedAt)
	}
}

func TestDemandUseCase_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admin denied", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		if err := uc.Remove(ctx, "d1", entities.RoleUser); !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("admin removes, unknown id is a no-op", func(t *testing.T) {
		repo := memory.NewDemandRepository()
		uc := NewDemandUseCase(repo)
		created, err := uc.Upsert(ctx, validDemand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := uc.Remove(ctx, created.ID, entities.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.GetByID(ctx, created.ID); !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound after removal, got %v", err)
		}
		if err := uc.Remove(ctx, "missing", entities.RoleAdmin); err != nil {
			t.Fatalf("expected idempotent removal, got %v", err)
		}
	})
}

func TestDemandUseCase_SetStatus(t *testing.T) {
	ctx := context.Background()

	newDemand := func(t *testing.T, uc *DemandUseCase) entities.Demand {
		t.Helper()
		created, err := uc.Upsert(ctx, validDemand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return created
	}

	t.Run("unknown status", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		if _, err := uc.SetStatus(ctx, "d1", "Arquivada", ""); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("completion requires a date", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		d := newDemand(t, uc)
		if _, err := uc.SetStatus(ctx, d.ID, entities.StatusConcluida, ""); !errors.Is(err, ErrCompletionDateRequired) {
			t.Fatalf("expected ErrCompletionDateRequired, got %v", err)
		}
	})

	t.Run("completion stamps the billing period", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		d := newDemand(t, uc)
		updated, err := uc.SetStatus(ctx, d.ID, entities.StatusConcluida, "2024-12-20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.BillingPeriod != "Janeiro / 2025" {
			t.Fatalf("expected Janeiro / 2025, got %q", updated.BillingPeriod)
		}
	})

	t.Run("backward move keeps the billing period", func(t *testing.T) {
		uc := NewDemandUseCase(memory.NewDemandRepository())
		d := newDemand(t, uc)
		if _, err := uc.SetStatus(ctx, d.ID, entities.StatusConcluida, "2024-01-15"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reopened, err := uc.SetStatus(ctx, d.ID, entities.StatusAberta, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reopened.Status != entities.StatusAberta {
			t.Fatalf("expected status Aberta, got %q", reopened.Status)
		}
		if reopened.BillingPeriod != "Fevereiro / 2024" {
			t.Fatalf("expected billing period kept, got %q", reopened.BillingPeriod)
		}
	})

	t.Run("strict workflow rejects backward moves", func(t *testing.T) {
		uc := NewStrictDemandUseCase(memory.NewDemandRepository())
		d := newDemand(t, uc)
		if _, err := uc.SetStatus(ctx, d.ID, entities.StatusEmExecucao, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.SetStatus(ctx, d.ID, entities.StatusAberta, ""); !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
		}
	})

	t.Run("strict workflow allows forward moves", func(t *testing.T) {
		uc := NewStrictDemandUseCase(memory.NewDemandRepository())
		d := newDemand(t, uc)
		updated, err := uc.SetStatus(ctx, d.ID, entities.StatusConcluida, "2024-03-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.BillingPeriod != "Abril / 2024" {
			t.Fatalf("expected Abril / 2024, got %q", updated.BillingPeriod)
		}
		if _, err := uc.SetStatus(ctx, d.ID, entities.StatusFaturada, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
