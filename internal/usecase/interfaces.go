package usecase

import (
	"context"
	"time"

	"github.com/iho/journaldraft/internal/domain"
)

// DraftStore holds open drafts for the lifetime of their editing session.
// Get and List return detached copies; Update is the only way to change a
// stored draft, and implementations run fn while holding the draft
// exclusively so concurrent requests against one draft are serialized.
type DraftStore interface {
	Put(ctx context.Context, draft *domain.Draft) error
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Update(ctx context.Context, id string, fn func(*domain.Draft) error) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Draft, error)
}

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// JournalRepository defines data access for posted journals.
type JournalRepository interface {
	Create(ctx context.Context, tx Transaction, journal *domain.Journal) error
	GetByID(ctx context.Context, id string) (*domain.Journal, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Journal, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Journal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
