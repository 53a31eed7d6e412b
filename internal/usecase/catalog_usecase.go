package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCatalogName  = errors.New("invalid catalog item name")
	ErrInvalidCatalogValue = errors.New("invalid catalog item unit value")
	ErrCatalogItemNotFound = errors.New("catalog item not found")
)

// ICatalogUseCase exposes the service price-catalog operations.
//
// Removal is idempotent on purpose: line items snapshot catalog values at
// creation time, so removing an already-referenced item never rewrites
// history.

type ICatalogUseCase interface {
	List(ctx context.Context) ([]entities.CatalogItem, error)
	Add(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Remove(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogItem, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (u *CatalogUseCase) Add(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return entities.CatalogItem{}, ErrInvalidCatalogName
	}
	if item.UnitValue < 0 {
		return entities.CatalogItem{}, ErrInvalidCatalogValue
	}
	if strings.TrimSpace(item.UnitMeasure) == "" {
		item.UnitMeasure = "Un"
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return u.repo.Save(ctx, item)
}

func (u *CatalogUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return u.repo.Delete(ctx, id)
}
