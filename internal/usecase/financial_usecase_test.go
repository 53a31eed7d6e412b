package usecase

import (
	"context"
	"errors"
	"testing"

	"sgf_demandas/internal/domain/entities"
	mock_interfaces "sgf_demandas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fptr(f float64) *float64 { return &f }

func TestComputeLineItem(t *testing.T) {
	t.Run("invalid quantity", func(t *testing.T) {
		_, err := ComputeLineItem(entities.CatalogItem{ID: "i1", UnitValue: 10}, 0, nil)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("markup from override", func(t *testing.T) {
		item := entities.CatalogItem{ID: "i1", Name: "Ponto de rede", UnitValue: 150, FixedBDI: fptr(10)}
		res, err := ComputeLineItem(item, 2, fptr(21.15))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BDI != 21.15 {
			t.Fatalf("expected override markup 21.15, got %v", res.BDI)
		}
		if res.Total != 363.45 {
			t.Fatalf("expected total 363.45, got %v", res.Total)
		}
	})

	t.Run("markup from catalog item", func(t *testing.T) {
		item := entities.CatalogItem{ID: "i2", UnitValue: 95, FixedBDI: fptr(18.07)}
		res, err := ComputeLineItem(item, 1, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BDI != 18.07 {
			t.Fatalf("expected fixed markup 18.07, got %v", res.BDI)
		}
		// 95 * 1.1807 = 112.1665, rounded half away from zero.
		if res.Total != 112.17 {
			t.Fatalf("expected total 112.17, got %v", res.Total)
		}
	})

	t.Run("markup defaults to zero", func(t *testing.T) {
		res, err := ComputeLineItem(entities.CatalogItem{ID: "i3", UnitValue: 100}, 3, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BDI != 0 || res.Total != 300 {
			t.Fatalf("expected bdi 0 total 300, got bdi=%v total=%v", res.BDI, res.Total)
		}
	})

	t.Run("snapshot carries catalog values", func(t *testing.T) {
		item := entities.CatalogItem{ID: "i4", Name: "Instalação", UnitValue: 1000, UnitMeasure: "Un"}
		res, err := ComputeLineItem(item, 2, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated line item id")
		}
		if res.ItemID != "i4" || res.Name != "Instalação" || res.UnitValue != 1000 || res.UnitMeasure != "Un" || res.Quantity != 2 {
			t.Fatalf("unexpected snapshot: %+v", res)
		}
	})
}

func TestFinancialUseCase_AddLineItem(t *testing.T) {
	t.Run("invalid demand id", func(t *testing.T) {
		uc := NewFinancialUseCase(nil, nil)
		_, err := uc.AddLineItem(context.Background(), "  ", "i1", 1, nil)
		if !errors.Is(err, ErrInvalidDemandID) {
			t.Fatalf("expected ErrInvalidDemandID, got %v", err)
		}
	})

	t.Run("invalid item id", func(t *testing.T) {
		uc := NewFinancialUseCase(nil, nil)
		_, err := uc.AddLineItem(context.Background(), "d1", "", 1, nil)
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("demand not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		demands := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewFinancialUseCase(demands, nil)

		demands.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Demand{}, nil)

		_, err := uc.AddLineItem(context.Background(), "d1", "i1", 1, nil)
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})

	t.Run("catalog item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		demands := mock_interfaces.NewMockIDemandRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewFinancialUseCase(demands, catalog)

		demands.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Demand{ID: "d1"}, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "i1").Return(entities.CatalogItem{}, nil)

		_, err := uc.AddLineItem(context.Background(), "d1", "i1", 1, nil)
		if !errors.Is(err, ErrCatalogItemNotFound) {
			t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
		}
	})

	t.Run("append success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		demands := mock_interfaces.NewMockIDemandRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewFinancialUseCase(demands, catalog)

		demands.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Demand{ID: "d1"}, nil)
		catalog.EXPECT().GetByID(gomock.Any(), "i1").Return(entities.CatalogItem{ID: "i1", Name: "Ponto", UnitValue: 150}, nil)
		demands.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.Demand{})).DoAndReturn(
			func(_ context.Context, d entities.Demand) (entities.Demand, error) {
				if len(d.FinancialItems) != 1 {
					t.Fatalf("expected one line item, got %d", len(d.FinancialItems))
				}
				if d.FinancialItems[0].Total != 363.45 {
					t.Fatalf("expected total 363.45, got %v", d.FinancialItems[0].Total)
				}
				return d, nil
			},
		)

		res, err := uc.AddLineItem(context.Background(), "d1", "i1", 2, fptr(21.15))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalValue() != 363.45 {
			t.Fatalf("expected demand total 363.45, got %v", res.TotalValue())
		}
	})
}

func TestFinancialUseCase_RemoveLineItem(t *testing.T) {
	t.Run("demand not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		demands := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewFinancialUseCase(demands, nil)

		demands.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Demand{}, nil)

		_, err := uc.RemoveLineItem(context.Background(), "d1", "li1")
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})

	t.Run("removes only the matching item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		demands := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewFinancialUseCase(demands, nil)

		d := entities.Demand{ID: "d1", FinancialItems: []entities.FinancialItem{
			{ID: "li1", Total: 363.45},
			{ID: "li2", Total: 112.17},
		}}
		demands.EXPECT().GetByID(gomock.Any(), "d1").Return(d, nil)
		demands.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(entities.Demand{})).DoAndReturn(
			func(_ context.Context, got entities.Demand) (entities.Demand, error) {
				if len(got.FinancialItems) != 1 || got.FinancialItems[0].ID != "li2" {
					t.Fatalf("unexpected surviving items: %+v", got.FinancialItems)
				}
				return got, nil
			},
		)

		if _, err := uc.RemoveLineItem(context.Background(), "d1", "li1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("does not mutate the loaded slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		demands := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewFinancialUseCase(demands, nil)

		items := []entities.FinancialItem{
			{ID: "li1", Total: 363.45},
			{ID: "li2", Total: 112.17},
		}
		demands.EXPECT().GetByID(gomock.Any(), "d1").Return(entities.Demand{ID: "d1", FinancialItems: items}, nil)
		demands.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.Demand) (entities.Demand, error) {
				return got, nil
			},
		)

		if _, err := uc.RemoveLineItem(context.Background(), "d1", "li1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].ID != "li1" || items[1].ID != "li2" {
			t.Fatalf("loaded slice was rewritten in place: %+v", items)
		}
	})

	t.Run("unknown line item is a no-op write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		demands := mock_interfaces.NewMockIDemandRepository(ctrl)
		uc := NewFinancialUseCase(demands, nil)

		d := entities.Demand{ID: "d1", FinancialItems: []entities.FinancialItem{{ID: "li1"}}}
		demands.EXPECT().GetByID(gomock.Any(), "d1").Return(d, nil)
		demands.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.Demand) (entities.Demand, error) {
				if len(got.FinancialItems) != 1 {
					t.Fatalf("expected item kept, got %+v", got.FinancialItems)
				}
				return got, nil
			},
		)

		if _, err := uc.RemoveLineItem(context.Background(), "d1", "nope"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
