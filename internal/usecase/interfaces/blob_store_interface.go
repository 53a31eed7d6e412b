package interfaces

import "context"

// IBlobStore is a key-value store of named string blobs: the persistence
// contract consumed by the blob-backed repositories. Implementations must not
// assume atomic multi-key writes; each Set is an independent last-write-wins
// operation.
type IBlobStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
