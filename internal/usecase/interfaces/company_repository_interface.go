package interfaces

import (
	"context"

	"sgf_demandas/internal/domain/entities"
)

// ICompanyRepository abstracts persistence for contracting companies.
// Demands reference companies by name, so GetByName is the hot lookup.
type ICompanyRepository interface {
	Save(ctx context.Context, c entities.Company) (entities.Company, error)
	GetByName(ctx context.Context, name string) (entities.Company, error)
	List(ctx context.Context) ([]entities.Company, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, cs []entities.Company) error
}
