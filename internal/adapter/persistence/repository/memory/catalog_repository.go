package memory

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type CatalogRepository struct {
	items map[string]entities.CatalogItem
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{items: map[string]entities.CatalogItem{}}
}

func (r *CatalogRepository) Save(_ context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	r.items[item.ID] = item
	return item, nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id string) (entities.CatalogItem, error) {
	return r.items[id], nil
}

func (r *CatalogRepository) List(_ context.Context) ([]entities.CatalogItem, error) {
	out := make([]entities.CatalogItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *CatalogRepository) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *CatalogRepository) ReplaceAll(_ context.Context, items []entities.CatalogItem) error {
	r.items = make(map[string]entities.CatalogItem, len(items))
	for _, it := range items {
		r.items[it.ID] = it
	}
	return nil
}
