// Package seed bootstraps an empty data set with the contractual reference
// data: the four catalog items with their fixed BDI percentages, the two
// historical companies and the initial admin account.
package seed

import (
	"context"
	"log"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

func fixedBDI(v float64) *float64 { return &v }

func defaultCatalog() []entities.CatalogItem {
	return []entities.CatalogItem{
		{ID: "i8", Name: "Item 8", UnitValue: 1000, UnitMeasure: "Un", FixedBDI: fixedBDI(28.15)},
		{ID: "i9", Name: "Item 9", UnitValue: 1000, UnitMeasure: "Un", FixedBDI: fixedBDI(21.15)},
		{ID: "i10", Name: "Item 10", UnitValue: 1000, UnitMeasure: "Un", FixedBDI: fixedBDI(14.38)},
		{ID: "i11", Name: "Item 11", UnitValue: 1000, UnitMeasure: "Un", FixedBDI: fixedBDI(18.07)},
	}
}

func defaultCompanies() []entities.Company {
	return []entities.Company{
		{ID: "1", Name: "Citsmart"},
		{ID: "2", Name: "SEI"},
	}
}

// Run fills each empty collection with its defaults. Collections that
// already hold data are left alone, so a restart never clobbers state.
func Run(
	ctx context.Context,
	catalog interfaces.ICatalogRepository,
	companies interfaces.ICompanyRepository,
	users interfaces.IUserRepository,
	adminPassword string,
) error {
	if items, err := catalog.List(ctx); err != nil {
		return err
	} else if len(items) == 0 {
		for _, it := range defaultCatalog() {
			if _, err := catalog.Save(ctx, it); err != nil {
				return err
			}
		}
		log.Printf("[seed] catalog seeded items=%d", len(defaultCatalog()))
	}

	if cs, err := companies.List(ctx); err != nil {
		return err
	} else if len(cs) == 0 {
		for _, c := range defaultCompanies() {
			if _, err := companies.Save(ctx, c); err != nil {
				return err
			}
		}
		log.Printf("[seed] companies seeded")
	}

	us, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(us) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := users.Save(ctx, entities.User{
			Username:     "admin",
			Role:         entities.RoleAdmin,
			PasswordHash: string(hash),
		}); err != nil {
			return err
		}
		log.Printf("[seed] admin user created")
	}
	return nil
}
