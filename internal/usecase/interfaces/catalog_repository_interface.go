package interfaces

import (
	"context"

	"sgf_demandas/internal/domain/entities"
)

// ICatalogRepository abstracts persistence for the service price catalog.
type ICatalogRepository interface {
	Save(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	List(ctx context.Context) ([]entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, items []entities.CatalogItem) error
}
