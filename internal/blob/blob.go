// Package blob defines the key-value blob store the tracker persists its
// collections to. Two keys exist, one per collection, each holding a JSON
// array.
package blob

import "context"

const (
	KeyTransactions = "palco_transactions_v1"
	KeyCastings     = "palco_castings_v1"
)

//go:generate mockgen -source=blob.go -destination=store_mock.go -package=blob
type Store interface {
	// Load returns the blob stored under key, or nil when the key is
	// absent. Corrupt or missing data is never an error to callers; they
	// treat nil as an empty collection.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
}
