package usecase

import (
	"context"
	"errors"
	"strings"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidItemID   = errors.New("invalid catalog item id")
)

// ComputeLineItem builds an immutable financial line item from a catalog
// entry, a quantity and an optional markup override.
//
// Markup resolution order:
//  1. operator-supplied override, when non-nil;
//  2. the catalog item's fixed BDI, when defined;
//  3. zero.
//
// total = unitValue * quantity * (1 + bdi/100), rounded to 2 decimal places
// half away from zero. The arithmetic runs on decimals so binary float noise
// never leaks into the stored total.
func ComputeLineItem(item entities.CatalogItem, quantity int, overrideBDI *float64) (entities.FinancialItem, error) {
	if quantity < 1 {
		return entities.FinancialItem{}, ErrInvalidQuantity
	}

	bdi := 0.0
	switch {
	case overrideBDI != nil:
		bdi = *overrideBDI
	case item.FixedBDI != nil:
		bdi = *item.FixedBDI
	}

	subtotal := decimal.NewFromFloat(item.UnitValue).Mul(decimal.NewFromInt(int64(quantity)))
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(bdi).Div(decimal.NewFromInt(100)))
	total, _ := subtotal.Mul(factor).Round(2).Float64()

	return entities.FinancialItem{
		ID:          uuid.NewString(),
		ItemID:      item.ID,
		Name:        item.Name,
		UnitValue:   item.UnitValue,
		UnitMeasure: item.UnitMeasure,
		Quantity:    quantity,
		BDI:         bdi,
		Total:       total,
	}, nil
}

// IFinancialUseCase attaches priced line items to demands, consulting the
// catalog for the value snapshot.

type IFinancialUseCase interface {
	AddLineItem(ctx context.Context, demandID, catalogItemID string, quantity int, overrideBDI *float64) (entities.Demand, error)
	RemoveLineItem(ctx context.Context, demandID, lineItemID string) (entities.Demand, error)
}

type FinancialUseCase struct {
	demands interfaces.IDemandRepository
	catalog interfaces.ICatalogRepository
}

var _ IFinancialUseCase = (*FinancialUseCase)(nil)

func NewFinancialUseCase(demands interfaces.IDemandRepository, catalog interfaces.ICatalogRepository) *FinancialUseCase {
	return &FinancialUseCase{demands: demands, catalog: catalog}
}

func (u *FinancialUseCase) AddLineItem(ctx context.Context, demandID, catalogItemID string, quantity int, overrideBDI *float64) (entities.Demand, error) {
	demandID = strings.TrimSpace(demandID)
	if demandID == "" {
		return entities.Demand{}, ErrInvalidDemandID
	}
	catalogItemID = strings.TrimSpace(catalogItemID)
	if catalogItemID == "" {
		return entities.Demand{}, ErrInvalidItemID
	}

	d, err := u.demands.GetByID(ctx, demandID)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}

	item, err := u.catalog.GetByID(ctx, catalogItemID)
	if err != nil {
		return entities.Demand{}, err
	}
	if item.ID == "" {
		return entities.Demand{}, ErrCatalogItemNotFound
	}

	record, err := ComputeLineItem(item, quantity, overrideBDI)
	if err != nil {
		return entities.Demand{}, err
	}

	d.FinancialItems = append(d.FinancialItems, record)
	return u.demands.Upsert(ctx, d)
}

func (u *FinancialUseCase) RemoveLineItem(ctx context.Context, demandID, lineItemID string) (entities.Demand, error) {
	demandID = strings.TrimSpace(demandID)
	if demandID == "" {
		return entities.Demand{}, ErrInvalidDemandID
	}

	d, err := u.demands.GetByID(ctx, demandID)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}

	// Filter into a fresh slice; the loaded one may share its backing array
	// with the repository.
	kept := make([]entities.FinancialItem, 0, len(d.FinancialItems))
	for _, it := range d.FinancialItems {
		if it.ID != lineItemID {
			kept = append(kept, it)
		}
	}
	d.FinancialItems = kept
	return u.demands.Upsert(ctx, d)
}
