package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// IAuthUseCase resolves operator credentials to a role and manages accounts.
// The rest of the core only ever consumes the resolved role.

type IAuthUseCase interface {
	Authenticate(ctx context.Context, username, password string) (entities.User, error)
	AddUser(ctx context.Context, username, password string, role entities.Role) (entities.User, error)
	RemoveUser(ctx context.Context, username string, actor entities.Role) error
	ListUsers(ctx context.Context) ([]entities.User, error)
}

type AuthUseCase struct {
	repo interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(repo interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{repo: repo}
}

func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if user.Username == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

func (u *AuthUseCase) AddUser(ctx context.Context, username, password string, role entities.Role) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.User{}, ErrInvalidUsername
	}
	if password == "" {
		return entities.User{}, ErrInvalidPassword
	}
	if role != entities.RoleAdmin && role != entities.RoleUser {
		return entities.User{}, ErrInvalidRole
	}

	if existing, err := u.repo.GetByUsername(ctx, username); err != nil {
		return entities.User{}, err
	} else if existing.Username != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	created, err := u.repo.Save(ctx, entities.User{Username: username, Role: role, PasswordHash: string(hash)})
	if err != nil {
		return entities.User{}, err
	}
	created.PasswordHash = ""
	return created, nil
}

func (u *AuthUseCase) RemoveUser(ctx context.Context, username string, actor entities.Role) error {
	if actor != entities.RoleAdmin {
		return ErrPermissionDenied
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrInvalidUsername
	}
	return u.repo.Delete(ctx, username)
}

func (u *AuthUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}
