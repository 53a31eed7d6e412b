package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"sgf_demandas/internal/domain/billing"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDemandID        = errors.New("invalid demand id")
	ErrDemandNotFound         = errors.New("demand not found")
	ErrInvalidDemandCompany   = errors.New("invalid demand company")
	ErrInvalidRequestDate     = errors.New("invalid request date")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrCompletionDateRequired = errors.New("completion date required")
	ErrPermissionDenied       = errors.New("permission denied")
	ErrTransitionNotAllowed   = errors.New("status transition not allowed")
)

// IDemandUseCase is the demand registry: identity, upsert, status workflow
// and deletion policy.

type IDemandUseCase interface {
	Upsert(ctx context.Context, d entities.Demand) (entities.Demand, error)
	GetByID(ctx context.Context, id string) (entities.Demand, error)
	List(ctx context.Context) ([]entities.Demand, error)
	Remove(ctx context.Context, id string, actor entities.Role) error
	SetStatus(ctx context.Context, id string, status entities.DemandStatus, completionDate string) (entities.Demand, error)
}

// DemandUseCase implements the registry over a repository.
//
// The status workflow is permissive by default (any state to any state), as
// the operators rely on free reassignment to fix data-entry mistakes. The
// strict forward-only workflow is available behind the constructor flag.

type DemandUseCase struct {
	repo   interfaces.IDemandRepository
	strict bool
}

var _ IDemandUseCase = (*DemandUseCase)(nil)

func NewDemandUseCase(repo interfaces.IDemandRepository) *DemandUseCase {
	return &DemandUseCase{repo: repo}
}

// NewStrictDemandUseCase enforces forward-only status transitions
// (Aberta → Em Execução → Concluída → Faturada).
func NewStrictDemandUseCase(repo interfaces.IDemandRepository) *DemandUseCase {
	return &DemandUseCase{repo: repo, strict: true}
}

func (u *DemandUseCase) Upsert(ctx context.Context, d entities.Demand) (entities.Demand, error) {
	d.Company = strings.TrimSpace(d.Company)
	if d.Company == "" {
		return entities.Demand{}, ErrInvalidDemandCompany
	}
	if d.RequestDate == "" {
		return entities.Demand{}, ErrInvalidRequestDate
	}
	if _, err := time.Parse("2006-01-02", d.RequestDate); err != nil {
		return entities.Demand{}, ErrInvalidRequestDate
	}
	if d.Status == "" {
		d.Status = entities.StatusAberta
	}
	if !d.Status.Valid() {
		return entities.Demand{}, ErrInvalidStatus
	}

	if d.ID == "" {
		d.ID = uuid.NewString()
		d.CreatedAt = time.Now().UTC().UnixMilli()
	} else if existing, err := u.repo.GetByID(ctx, d.ID); err != nil {
		return entities.Demand{}, err
	} else if existing.ID != "" {
		// A replace is a metadata edit: the creation timestamp is immutable,
		// and line items are managed through the financial operations only,
		// so a payload without them must not wipe the stored ones.
		d.CreatedAt = existing.CreatedAt
		if len(d.FinancialItems) == 0 {
			d.FinancialItems = existing.FinancialItems
		}
	} else if d.CreatedAt == 0 {
		d.CreatedAt = time.Now().UTC().UnixMilli()
	}

	// mesFaturamento is derived, never hand-edited. It follows the completion
	// date wherever the demand is written.
	period, err := billing.ResolvePeriod(d.CompletionDate)
	if err != nil {
		return entities.Demand{}, err
	}
	d.BillingPeriod = period

	return u.repo.Upsert(ctx, d)
}

func (u *DemandUseCase) GetByID(ctx context.Context, id string) (entities.Demand, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Demand{}, ErrInvalidDemandID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == "" {
		return entities.Demand{}, ErrDemandNotFound
	}
	return d, nil
}

// List returns the registry newest-first.
func (u *DemandUseCase) List(ctx context.Context) ([]entities.Demand, error) {
	ds, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].CreatedAt > ds[j].CreatedAt })
	return ds, nil
}

// Remove deletes a demand. Only ADMIN may delete; removal of an unknown id is
// a no-op, matching the reference behavior.
func (u *DemandUseCase) Remove(ctx context.Context, id string, actor entities.Role) error {
	if actor != entities.RoleAdmin {
		return ErrPermissionDenied
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidDemandID
	}
	return u.repo.Delete(ctx, id)
}

// SetStatus reassigns the workflow state. Moving to Concluída requires a
// completion date (stored or supplied here); supplying one stamps the billing
// period. Moving away from Concluída/Faturada never clears a previously
// computed billing period, because the completion date itself is kept.
func (u *DemandUseCase) SetStatus(ctx context.Context, id string, status entities.DemandStatus, completionDate string) (entities.Demand, error) {
	if !status.Valid() {
		return entities.Demand{}, ErrInvalidStatus
	}

	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, err
	}

	if u.strict && statusRank(status) < statusRank(d.Status) {
		return entities.Demand{}, ErrTransitionNotAllowed
	}

	if completionDate != "" {
		d.CompletionDate = completionDate
	}
	if status == entities.StatusConcluida && d.CompletionDate == "" {
		return entities.Demand{}, ErrCompletionDateRequired
	}

	period, err := billing.ResolvePeriod(d.CompletionDate)
	if err != nil {
		return entities.Demand{}, err
	}
	d.BillingPeriod = period
	d.Status = status

	return u.repo.Upsert(ctx, d)
}

func statusRank(s entities.DemandStatus) int {
	switch s {
	case entities.StatusAberta:
		return 0
	case entities.StatusEmExecucao:
		return 1
	case entities.StatusConcluida:
		return 2
	case entities.StatusFaturada:
		return 3
	}
	return -1
}
