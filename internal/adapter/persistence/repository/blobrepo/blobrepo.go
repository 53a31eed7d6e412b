// Package blobrepo implements the repositories over a named-blob store
// (interfaces.IBlobStore): the whole collection is loaded on read and written
// back on every mutation.
//
// Storage keys mirror the historical data set layout:
//
//	sgf_demands, sgf_companies, sgf_catalog, sgf_all_users
//
// Writes are last-write-wins per key and there is no atomic multi-key write;
// a single logical operator per data set is assumed.
package blobrepo

import (
	"context"
	"encoding/json"

	"sgf_demandas/internal/usecase/interfaces"
)

const (
	keyDemands   = "sgf_demands"
	keyCompanies = "sgf_companies"
	keyCatalog   = "sgf_catalog"
	keyUsers     = "sgf_all_users"
)

func loadSlice(ctx context.Context, store interfaces.IBlobStore, key string, dst any) error {
	blob, found, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found || blob == "" {
		return nil
	}
	return json.Unmarshal([]byte(blob), dst)
}

func saveSlice(ctx context.Context, store interfaces.IBlobStore, key string, src any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(b))
}
