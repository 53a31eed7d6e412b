package interfaces

import (
	"context"

	"sgf_demandas/internal/domain/entities"
)

// IDemandRepository abstracts persistence for the demand registry.
//
// Contract notes:
//   - Upsert inserts when the id is new and replaces otherwise; ids are
//     supplied by the caller (generated once at creation time).
//   - GetByID returns a zero-value demand (empty ID) when nothing matches;
//     not-found policy belongs to the use case.
//   - List returns the full collection in unspecified order; callers sort.
type IDemandRepository interface {
	Upsert(ctx context.Context, d entities.Demand) (entities.Demand, error)
	GetByID(ctx context.Context, id string) (entities.Demand, error)
	List(ctx context.Context) ([]entities.Demand, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, ds []entities.Demand) error
}
