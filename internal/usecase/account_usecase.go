package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/iho/journaldraft/internal/domain"
)

// AccountUseCase handles chart-of-accounts business logic. The account list
// is what populates the form's account picker, so reads dominate writes and
// the list is cached.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	cache       Cache
}

// NewAccountUseCase creates a new AccountUseCase. cache may be nil.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, cache Cache) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		cache:       cache,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Code     string
	Name     string
	Type     string
	Currency string
}

// CreateAccount creates a new chart-of-accounts entry.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountCode(input.Code); err != nil {
		return nil, err
	}

	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	accountType := domain.AccountType(strings.ToLower(strings.TrimSpace(input.Type)))
	if !domain.ValidAccountType(accountType) {
		return nil, domain.ErrInvalidAccountType
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if err := domain.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Code:      strings.TrimSpace(input.Code),
		Name:      strings.TrimSpace(input.Name),
		Type:      accountType,
		Currency:  currency,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	uc.invalidateList(ctx)

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts. The first unpaginated page is served from
// cache when available, since that is what account pickers request.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	cacheable := uc.cache != nil && offset == 0

	if cacheable {
		if raw, err := uc.cache.Get(ctx, accountListCacheKey); err == nil && raw != nil {
			var cached []*domain.Account
			if err := json.Unmarshal(raw, &cached); err == nil && len(cached) <= limit {
				return cached, nil
			}
		}
	}

	accounts, err := uc.accountRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if raw, err := json.Marshal(accounts); err == nil {
			_ = uc.cache.Set(ctx, accountListCacheKey, raw, AccountListCacheTTL)
		}
	}

	return accounts, nil
}

func (uc *AccountUseCase) invalidateList(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, accountListCacheKey)
	}
}
