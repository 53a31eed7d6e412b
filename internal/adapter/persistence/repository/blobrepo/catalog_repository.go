package blobrepo

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type CatalogRepository struct {
	store interfaces.IBlobStore
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(store interfaces.IBlobStore) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) load(ctx context.Context) ([]entities.CatalogItem, error) {
	var items []entities.CatalogItem
	if err := loadSlice(ctx, r.store, keyCatalog, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository) Save(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	if err := saveSlice(ctx, r.store, keyCatalog, items); err != nil {
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return entities.CatalogItem{}, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	return r.load(ctx)
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return saveSlice(ctx, r.store, keyCatalog, kept)
}

func (r *CatalogRepository) ReplaceAll(ctx context.Context, items []entities.CatalogItem) error {
	if items == nil {
		items = []entities.CatalogItem{}
	}
	return saveSlice(ctx, r.store, keyCatalog, items)
}
