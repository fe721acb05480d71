// Package memory holds process-local storage for draft editing sessions.
// Drafts are deliberately not persisted: a draft exists only while its form
// is open. Put and Get copy drafts at the store boundary so no caller ever
// holds a pointer into the store; mutations go through Update, which runs
// its closure under the lock, serializing concurrent requests touching the
// same draft.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iho/journaldraft/internal/domain"
)

type entry struct {
	draft     *domain.Draft
	expiresAt time.Time
}

// DraftStore implements usecase.DraftStore with an in-memory map. Abandoned
// drafts expire after a TTL so a crashed or closed client does not leak
// sessions forever.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]entry
	ttl    time.Duration
	now    func() time.Time
}

// NewDraftStore creates a new DraftStore. A non-positive ttl disables expiry.
func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		drafts: make(map[string]entry),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Put stores or refreshes a draft, resetting its expiry.
func (s *DraftStore) Put(ctx context.Context, draft *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[draft.ID] = entry{
		draft:     draft.Clone(),
		expiresAt: s.deadline(),
	}

	return nil
}

// Get retrieves a detached copy of an open draft. Expired drafts are dropped
// on access.
func (s *DraftStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}

	if s.expired(e) {
		delete(s.drafts, id)
		return nil, domain.ErrDraftNotFound
	}

	return e.draft.Clone(), nil
}

// Update applies fn to the stored draft under the store lock, refreshing its
// expiry on success. fn must not retain the draft beyond the call.
func (s *DraftStore) Update(ctx context.Context, id string, fn func(*domain.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[id]
	if !ok {
		return domain.ErrDraftNotFound
	}

	if s.expired(e) {
		delete(s.drafts, id)
		return domain.ErrDraftNotFound
	}

	if err := fn(e.draft); err != nil {
		return err
	}

	s.drafts[id] = entry{
		draft:     e.draft,
		expiresAt: s.deadline(),
	}

	return nil
}

// Delete removes a draft.
func (s *DraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return domain.ErrDraftNotFound
	}

	delete(s.drafts, id)

	return nil
}

// List returns all live drafts ordered by creation time.
func (s *DraftStore) List(ctx context.Context) ([]*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Draft, 0, len(s.drafts))
	for id, e := range s.drafts {
		if s.expired(e) {
			delete(s.drafts, id)
			continue
		}
		out = append(out, e.draft.Clone())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (s *DraftStore) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *DraftStore) expired(e entry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}
