package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/usecase"
)

// MockDraftStore is a mock implementation of DraftStore backed by a map.
type MockDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*domain.Draft

	PutFunc    func(ctx context.Context, draft *domain.Draft) error
	GetFunc    func(ctx context.Context, id string) (*domain.Draft, error)
	UpdateFunc func(ctx context.Context, id string, fn func(*domain.Draft) error) error
	DeleteFunc func(ctx context.Context, id string) error
	ListFunc   func(ctx context.Context) ([]*domain.Draft, error)
}

func NewMockDraftStore() *MockDraftStore {
	return &MockDraftStore{
		drafts: make(map[string]*domain.Draft),
	}
}

func (m *MockDraftStore) Put(ctx context.Context, draft *domain.Draft) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, draft)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[draft.ID] = draft
	return nil
}

func (m *MockDraftStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if draft, ok := m.drafts[id]; ok {
		return draft, nil
	}
	return nil, domain.ErrDraftNotFound
}

func (m *MockDraftStore) Update(ctx context.Context, id string, fn func(*domain.Draft) error) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.drafts[id]
	if !ok {
		return domain.ErrDraftNotFound
	}
	return fn(draft)
}

func (m *MockDraftStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drafts[id]; !ok {
		return domain.ErrDraftNotFound
	}
	delete(m.drafts, id)
	return nil
}

func (m *MockDraftStore) List(ctx context.Context) ([]*domain.Draft, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Draft, 0, len(m.drafts))
	for _, draft := range m.drafts {
		out = append(out, draft)
	}
	return out, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc  func(ctx context.Context, account *domain.Account) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Account, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[id]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		out = append(out, account)
	}
	return out, nil
}

// MockJournalStore is an in-memory JournalRepository for usecase tests.
type MockJournalStore struct {
	mu       sync.RWMutex
	journals map[string]*domain.Journal

	CreateFunc func(ctx context.Context, journal *domain.Journal) error
}

func NewMockJournalStore() *MockJournalStore {
	return &MockJournalStore{
		journals: make(map[string]*domain.Journal),
	}
}

func (m *MockJournalStore) Create(ctx context.Context, tx usecase.Transaction, journal *domain.Journal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, journal)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.journals[journal.ID] = journal
	return nil
}

func (m *MockJournalStore) GetByID(ctx context.Context, id string) (*domain.Journal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if journal, ok := m.journals[id]; ok {
		return journal, nil
	}
	return nil, domain.ErrJournalNotFound
}

func (m *MockJournalStore) List(ctx context.Context, limit, offset int) ([]*domain.Journal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Journal, 0, len(m.journals))
	for _, journal := range m.journals {
		out = append(out, journal)
	}
	return out, nil
}

func (m *MockJournalStore) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Journal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Journal, 0)
	for _, journal := range m.journals {
		for _, line := range journal.Lines {
			if line.AccountID == accountID {
				out = append(out, journal)
				break
			}
		}
	}
	return out, nil
}

// MockTransaction is a no-op transaction that records terminal calls.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTxManager is a mock TransactionManager handing out MockTransactions.
type MockTxManager struct {
	LastTx *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator generates sequential test ids.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("test-id-%d", m.next)
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
