package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// AccountListCacheTTL is how long the account picker list stays cached
	AccountListCacheTTL = 5 * time.Minute

	// accountListCacheKey is the cache key for the full account list
	accountListCacheKey = "accounts:list"
)
