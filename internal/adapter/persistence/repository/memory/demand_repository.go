// Package memory provides map-backed repositories. They are the reference
// implementation of the persistence contracts and the only fixture the use
// case tests need.
package memory

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type DemandRepository struct {
	demands map[string]entities.Demand
}

var _ interfaces.IDemandRepository = (*DemandRepository)(nil)

func NewDemandRepository() *DemandRepository {
	return &DemandRepository{demands: map[string]entities.Demand{}}
}

func (r *DemandRepository) Upsert(_ context.Context, d entities.Demand) (entities.Demand, error) {
	r.demands[d.ID] = d
	return d, nil
}

func (r *DemandRepository) GetByID(_ context.Context, id string) (entities.Demand, error) {
	return r.demands[id], nil
}

func (r *DemandRepository) List(_ context.Context) ([]entities.Demand, error) {
	out := make([]entities.Demand, 0, len(r.demands))
	for _, d := range r.demands {
		out = append(out, d)
	}
	return out, nil
}

func (r *DemandRepository) Delete(_ context.Context, id string) error {
	delete(r.demands, id)
	return nil
}

func (r *DemandRepository) ReplaceAll(_ context.Context, ds []entities.Demand) error {
	r.demands = make(map[string]entities.Demand, len(ds))
	for _, d := range ds {
		r.demands[d.ID] = d
	}
	return nil
}
