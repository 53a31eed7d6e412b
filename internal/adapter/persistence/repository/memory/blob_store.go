package memory

import (
	"context"

	"sgf_demandas/internal/usecase/interfaces"
)

// BlobStore is the in-memory implementation of the named-blob contract.
type BlobStore struct {
	blobs map[string]string
}

var _ interfaces.IBlobStore = (*BlobStore)(nil)

func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: map[string]string{}}
}

func (s *BlobStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.blobs[key]
	return v, ok, nil
}

func (s *BlobStore) Set(_ context.Context, key, value string) error {
	s.blobs[key] = value
	return nil
}
