// Package service defines the interfaces between the data layer and its
// consumers.
package service

import (
	"context"
	"time"

	"github.com/gabrielsilvacodes/financas-app/internal/model"
)

// KVStore is the opaque asynchronous key-value medium the repositories
// persist into. Get returns nil with no error when the key is absent.
// Both operations may fail with a generic I/O error; this layer never
// assumes synchronous completion and imposes no timeouts of its own.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TransactionStore owns load/save/heal semantics for the transaction list.
type TransactionStore interface {
	// Load reads, heals and (when anything changed) writes the list back
	// before returning. Storage read failures yield an empty list.
	Load(ctx context.Context) ([]model.Transaction, error)
	// LoadRaw normalizes like Load but never writes back.
	LoadRaw(ctx context.Context) ([]model.Transaction, error)
	// Save overwrites the entire stored list. Write failures propagate.
	Save(ctx context.Context, transactions []model.Transaction) error
	// FindByID returns nil without error when no transaction matches.
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	// Remove reports whether a transaction was actually removed.
	Remove(ctx context.Context, id string) (bool, error)
	// Update replaces the transaction sharing the given id and reports
	// whether a match was found.
	Update(ctx context.Context, transaction model.Transaction) (bool, error)
}

// CategoryStore persists the partitioned user-created category set.
type CategoryStore interface {
	// Load returns the stored set, seeding the defaults when the store is
	// empty or malformed.
	Load(ctx context.Context) (model.CategorySet, error)
	// Save normalizes and overwrites the stored set.
	Save(ctx context.Context, set model.CategorySet) error
	// Add creates one category, rejecting duplicate keys in the partition.
	Add(ctx context.Context, nome, cor string, tipo model.TransactionType) (*model.Category, error)
	// Merged returns user categories merged ahead of the defaults for one
	// partition.
	Merged(ctx context.Context, tipo model.TransactionType) ([]model.Category, error)
}

// RetryOptions configures retry behavior for storage writes. Retry policy
// belongs to callers; the repositories themselves never retry.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
