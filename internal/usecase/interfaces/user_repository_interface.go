package interfaces

import (
	"context"

	"sgf_demandas/internal/domain/entities"
)

// IUserRepository abstracts persistence for operator accounts.
type IUserRepository interface {
	Save(ctx context.Context, u entities.User) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	Delete(ctx context.Context, username string) error
	ReplaceAll(ctx context.Context, us []entities.User) error
}
