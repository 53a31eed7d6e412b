package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sgf_demandas/internal/domain/billing"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var ErrMalformedBackup = errors.New("malformed backup payload")

// BackupPayload is the canonical import/export envelope. Export always emits
// all four keys; import treats each key as optional and replaces only what is
// present.
type BackupPayload struct {
	Demands   []entities.Demand      `json:"demands"`
	Companies []entities.Company     `json:"companies"`
	Catalog   []entities.CatalogItem `json:"catalog"`
	Users     []entities.User        `json:"users"`
}

// backupUser tolerates the legacy account shape where a plaintext password
// travels in the payload. Plaintext is hashed at this boundary and never
// stored.
type backupUser struct {
	Username     string        `json:"username"`
	Role         entities.Role `json:"role"`
	Password     string        `json:"password"`
	PasswordHash string        `json:"passwordHash"`
}

// IBackupUseCase moves the whole data set across the JSON import/export
// boundary. Import is all-or-nothing: the payload is validated completely
// before any key is applied.

type IBackupUseCase interface {
	Export(ctx context.Context) (BackupPayload, error)
	Import(ctx context.Context, raw json.RawMessage) error
}

type BackupUseCase struct {
	demands   interfaces.IDemandRepository
	companies interfaces.ICompanyRepository
	catalog   interfaces.ICatalogRepository
	users     interfaces.IUserRepository
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(
	demands interfaces.IDemandRepository,
	companies interfaces.ICompanyRepository,
	catalog interfaces.ICatalogRepository,
	users interfaces.IUserRepository,
) *BackupUseCase {
	return &BackupUseCase{demands: demands, companies: companies, catalog: catalog, users: users}
}

func (u *BackupUseCase) Export(ctx context.Context) (BackupPayload, error) {
	ds, err := u.demands.List(ctx)
	if err != nil {
		return BackupPayload{}, err
	}
	cs, err := u.companies.List(ctx)
	if err != nil {
		return BackupPayload{}, err
	}
	items, err := u.catalog.List(ctx)
	if err != nil {
		return BackupPayload{}, err
	}
	us, err := u.users.List(ctx)
	if err != nil {
		return BackupPayload{}, err
	}

	if ds == nil {
		ds = []entities.Demand{}
	}
	if cs == nil {
		cs = []entities.Company{}
	}
	if items == nil {
		items = []entities.CatalogItem{}
	}
	if us == nil {
		us = []entities.User{}
	}
	return BackupPayload{Demands: ds, Companies: cs, Catalog: items, Users: us}, nil
}

// Import parses and validates the full payload, then replaces state per
// present key. Historical exports used Portuguese keys for two collections
// ("empresas", "catalogo"); those aliases are translated here and nowhere
// else, so the core only ever sees the canonical shape.
func (u *BackupUseCase) Import(ctx context.Context, raw json.RawMessage) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	demandsRaw := pickKey(keys, "demands")
	companiesRaw := pickKey(keys, "companies", "empresas")
	catalogRaw := pickKey(keys, "catalog", "catalogo")
	usersRaw := pickKey(keys, "users")

	var demands []entities.Demand
	if demandsRaw != nil {
		if err := json.Unmarshal(demandsRaw, &demands); err != nil {
			return fmt.Errorf("%w: demands: %v", ErrMalformedBackup, err)
		}
		for i, d := range demands {
			if err := validateImportedDemand(d); err != nil {
				return fmt.Errorf("%w: demands[%d]: %v", ErrMalformedBackup, i, err)
			}
			// Billing period is derived state; re-derive instead of trusting
			// the payload.
			period, err := billing.ResolvePeriod(d.CompletionDate)
			if err != nil {
				return fmt.Errorf("%w: demands[%d]: %v", ErrMalformedBackup, i, err)
			}
			demands[i].BillingPeriod = period
		}
	}

	var companies []entities.Company
	if companiesRaw != nil {
		if err := json.Unmarshal(companiesRaw, &companies); err != nil {
			return fmt.Errorf("%w: companies: %v", ErrMalformedBackup, err)
		}
		seen := map[string]bool{}
		for i, c := range companies {
			if c.Name == "" {
				return fmt.Errorf("%w: companies[%d]: empty name", ErrMalformedBackup, i)
			}
			if seen[c.Name] {
				return fmt.Errorf("%w: companies[%d]: duplicate name %q", ErrMalformedBackup, i, c.Name)
			}
			seen[c.Name] = true
		}
	}

	var catalog []entities.CatalogItem
	if catalogRaw != nil {
		if err := json.Unmarshal(catalogRaw, &catalog); err != nil {
			return fmt.Errorf("%w: catalog: %v", ErrMalformedBackup, err)
		}
		for i, it := range catalog {
			if it.Name == "" {
				return fmt.Errorf("%w: catalog[%d]: empty name", ErrMalformedBackup, i)
			}
			if it.UnitValue < 0 {
				return fmt.Errorf("%w: catalog[%d]: negative unit value", ErrMalformedBackup, i)
			}
		}
	}

	var users []entities.User
	if usersRaw != nil {
		var raws []backupUser
		if err := json.Unmarshal(usersRaw, &raws); err != nil {
			return fmt.Errorf("%w: users: %v", ErrMalformedBackup, err)
		}
		for i, bu := range raws {
			if bu.Username == "" {
				return fmt.Errorf("%w: users[%d]: empty username", ErrMalformedBackup, i)
			}
			if bu.Role != entities.RoleAdmin && bu.Role != entities.RoleUser {
				return fmt.Errorf("%w: users[%d]: unknown role %q", ErrMalformedBackup, i, bu.Role)
			}
			hash := bu.PasswordHash
			if hash == "" && bu.Password != "" {
				h, err := bcrypt.GenerateFromPassword([]byte(bu.Password), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				hash = string(h)
			}
			users = append(users, entities.User{Username: bu.Username, Role: bu.Role, PasswordHash: hash})
		}
	}

	// Validation passed for everything present; only now touch state.
	if demandsRaw != nil {
		if err := u.demands.ReplaceAll(ctx, demands); err != nil {
			return err
		}
	}
	if companiesRaw != nil {
		if err := u.companies.ReplaceAll(ctx, companies); err != nil {
			return err
		}
	}
	if catalogRaw != nil {
		if err := u.catalog.ReplaceAll(ctx, catalog); err != nil {
			return err
		}
	}
	if usersRaw != nil {
		if err := u.users.ReplaceAll(ctx, users); err != nil {
			return err
		}
	}
	return nil
}

func validateImportedDemand(d entities.Demand) error {
	if d.ID == "" {
		return errors.New("empty id")
	}
	if d.Company == "" {
		return errors.New("empty company")
	}
	if !d.Status.Valid() {
		return fmt.Errorf("unknown status %q", d.Status)
	}
	for _, date := range []string{d.RequestDate, d.CompletionDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("bad date %q", date)
		}
	}
	for _, it := range d.FinancialItems {
		if it.Quantity < 1 {
			return fmt.Errorf("line item %s: non-positive quantity", it.ID)
		}
		if it.UnitValue < 0 {
			return fmt.Errorf("line item %s: negative unit value", it.ID)
		}
	}
	return nil
}

func pickKey(keys map[string]json.RawMessage, names ...string) json.RawMessage {
	for _, n := range names {
		if v, ok := keys[n]; ok {
			return v
		}
	}
	return nil
}
