package memory

import (
	"context"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"
)

type UserRepository struct {
	users map[string]entities.User
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]entities.User{}}
}

func (r *UserRepository) Save(_ context.Context, u entities.User) (entities.User, error) {
	r.users[u.Username] = u
	return u, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (entities.User, error) {
	return r.users[username], nil
}

func (r *UserRepository) List(_ context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *UserRepository) Delete(_ context.Context, username string) error {
	delete(r.users, username)
	return nil
}

func (r *UserRepository) ReplaceAll(_ context.Context, us []entities.User) error {
	r.users = make(map[string]entities.User, len(us))
	for _, u := range us {
		r.users[u.Username] = u
	}
	return nil
}
