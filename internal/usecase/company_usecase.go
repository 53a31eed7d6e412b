package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCompanyName   = errors.New("invalid company name")
	ErrCompanyAlreadyExists = errors.New("company already exists")
)

// ICompanyUseCase manages the contracting companies demands refer to by
// name. Names are enforced unique so the by-name reference stays unambiguous.

type ICompanyUseCase interface {
	List(ctx context.Context) ([]entities.Company, error)
	Add(ctx context.Context, name string) (entities.Company, error)
	Remove(ctx context.Context, id string) error
}

type CompanyUseCase struct {
	repo interfaces.ICompanyRepository
}

var _ ICompanyUseCase = (*CompanyUseCase)(nil)

func NewCompanyUseCase(repo interfaces.ICompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

func (u *CompanyUseCase) List(ctx context.Context) ([]entities.Company, error) {
	cs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
	return cs, nil
}

func (u *CompanyUseCase) Add(ctx context.Context, name string) (entities.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Company{}, ErrInvalidCompanyName
	}

	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Company{}, err
	} else if existing.ID != "" {
		return entities.Company{}, ErrCompanyAlreadyExists
	}

	return u.repo.Save(ctx, entities.Company{ID: uuid.NewString(), Name: name})
}

func (u *CompanyUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return u.repo.Delete(ctx, id)
}
