package blobrepo

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type CompanyRepository struct {
	store interfaces.IBlobStore
}

var _ interfaces.ICompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(store interfaces.IBlobStore) *CompanyRepository {
	return &CompanyRepository{store: store}
}

func (r *CompanyRepository) load(ctx context.Context) ([]entities.Company, error) {
	var cs []entities.Company
	if err := loadSlice(ctx, r.store, keyCompanies, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *CompanyRepository) Save(ctx context.Context, c entities.Company) (entities.Company, error) {
	cs, err := r.load(ctx)
	if err != nil {
		return entities.Company{}, err
	}
	replaced := false
	for i := range cs {
		if cs[i].ID == c.ID {
			cs[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		cs = append(cs, c)
	}
	if err := saveSlice(ctx, r.store, keyCompanies, cs); err != nil {
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (entities.Company, error) {
	cs, err := r.load(ctx)
	if err != nil {
		return entities.Company{}, err
	}
	for _, c := range cs {
		if c.Name == name {
			return c, nil
		}
	}
	return entities.Company{}, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]entities.Company, error) {
	return r.load(ctx)
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	cs, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := cs[:0]
	for _, c := range cs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return saveSlice(ctx, r.store, keyCompanies, kept)
}

func (r *CompanyRepository) ReplaceAll(ctx context.Context, cs []entities.Company) error {
	if cs == nil {
		cs = []entities.Company{}
	}
	return saveSlice(ctx, r.store, keyCompanies, cs)
}
