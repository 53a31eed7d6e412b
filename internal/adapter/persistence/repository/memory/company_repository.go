package memory

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type CompanyRepository struct {
	companies map[string]entities.Company
}

var _ interfaces.ICompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{companies: map[string]entities.Company{}}
}

func (r *CompanyRepository) Save(_ context.Context, c entities.Company) (entities.Company, error) {
	r.companies[c.ID] = c
	return c, nil
}

func (r *CompanyRepository) GetByName(_ context.Context, name string) (entities.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return entities.Company{}, nil
}

func (r *CompanyRepository) List(_ context.Context) ([]entities.Company, error) {
	out := make([]entities.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *CompanyRepository) Delete(_ context.Context, id string) error {
	delete(r.companies, id)
	return nil
}

func (r *CompanyRepository) ReplaceAll(_ context.Context, cs []entities.Company) error {
	r.companies = make(map[string]entities.Company, len(cs))
	for _, c := range cs {
		r.companies[c.ID] = c
	}
	return nil
}
