package blobrepo

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type UserRepository struct {
	store interfaces.IBlobStore
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(store interfaces.IBlobStore) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) load(ctx context.Context) ([]entities.User, error) {
	var us []entities.User
	if err := loadSlice(ctx, r.store, keyUsers, &us); err != nil {
		return nil, err
	}
	return us, nil
}

func (r *UserRepository) Save(ctx context.Context, u entities.User) (entities.User, error) {
	us, err := r.load(ctx)
	if err != nil {
		return entities.User{}, err
	}
	replaced := false
	for i := range us {
		if us[i].Username == u.Username {
			us[i] = u
			replaced = true
			break
		}
	}
	if !replaced {
		us = append(us, u)
	}
	if err := saveSlice(ctx, r.store, keyUsers, us); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	us, err := r.load(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, u := range us {
		if u.Username == username {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entities.User, error) {
	return r.load(ctx)
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	us, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := us[:0]
	for _, u := range us {
		if u.Username != username {
			kept = append(kept, u)
		}
	}
	return saveSlice(ctx, r.store, keyUsers, kept)
}

func (r *UserRepository) ReplaceAll(ctx context.Context, us []entities.User) error {
	if us == nil {
		us = []entities.User{}
	}
	return saveSlice(ctx, r.store, keyUsers, us)
}
