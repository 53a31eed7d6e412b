package blobrepo

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type DemandRepository struct {
	store interfaces.IBlobStore
}

var _ interfaces.IDemandRepository = (*DemandRepository)(nil)

func NewDemandRepository(store interfaces.IBlobStore) *DemandRepository {
	return &DemandRepository{store: store}
}

func (r *DemandRepository) load(ctx context.Context) ([]entities.Demand, error) {
	var ds []entities.Demand
	if err := loadSlice(ctx, r.store, keyDemands, &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *DemandRepository) Upsert(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	ds, err := r.load(ctx)
	if err != nil {
		return entities.Demand{}, err
	}
	replaced := false
	for i := range ds {
		if ds[i].ID == d.ID {
			ds[i] = d
			replaced = true
			break
		}
	}
	if !replaced {
		ds = append(ds, d)
	}
	if err := saveSlice(ctx, r.store, keyDemands, ds); err != nil {
		return entities.Demand{}, err
	}
	return d, nil
}

func (r *DemandRepository) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	ds, err := r.load(ctx)
	if err != nil {
		return entities.Demand{}, err
	}
	for _, d := range ds {
		if d.ID == id {
			return d, nil
		}
	}
	return entities.Demand{}, nil
}

func (r *DemandRepository) List(ctx context.Context) ([]entities.Demand, error) {
	return r.load(ctx)
}

func (r *DemandRepository) Delete(ctx context.Context, id string) error {
	ds, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := ds[:0]
	for _, d := range ds {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return saveSlice(ctx, r.store, keyDemands, kept)
}

func (r *DemandRepository) ReplaceAll(ctx context.Context, ds []entities.Demand) error {
	if ds == nil {
		ds = []entities.Demand{}
	}
	return saveSlice(ctx, r.store, keyDemands, ds)
}
