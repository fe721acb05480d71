package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/journaldraft/internal/domain"
)

func newDraft(id string, createdAt time.Time) *domain.Draft {
	return &domain.Draft{
		ID:        id,
		Currency:  "USD",
		Lines:     domain.NewSeededLineSet(domain.MinLines),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestDraftStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(0)

	draft := newDraft("d-1", time.Now())
	if err := store.Put(ctx, draft); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != "d-1" {
		t.Fatalf("expected d-1, got %s", got.ID)
	}

	if err := store.Delete(ctx, "d-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := store.Get(ctx, "d-1"); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}

	if err := store.Delete(ctx, "d-1"); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound on double delete, got %v", err)
	}
}

func TestDraftStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(time.Hour)

	current := time.Now()
	store.now = func() time.Time { return current }

	if err := store.Put(ctx, newDraft("d-1", current)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if _, err := store.Get(ctx, "d-1"); err != nil {
		t.Fatalf("fresh draft should be retrievable: %v", err)
	}

	current = current.Add(2 * time.Hour)

	if _, err := store.Get(ctx, "d-1"); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected expired draft to be gone, got %v", err)
	}
}

func TestDraftStore_ListOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(0)

	base := time.Now()
	if err := store.Put(ctx, newDraft("d-2", base.Add(time.Minute))); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, newDraft("d-1", base)); err != nil {
		t.Fatal(err)
	}

	drafts, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(drafts) != 2 || drafts[0].ID != "d-1" || drafts[1].ID != "d-2" {
		ids := make([]string, 0, len(drafts))
		for _, d := range drafts {
			ids = append(ids, d.ID)
		}
		t.Fatalf("expected [d-1 d-2], got %v", ids)
	}
}

func TestDraftStore_GetReturnsDetachedCopy(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(0)

	if err := store.Put(ctx, newDraft("d-1", time.Now())); err != nil {
		t.Fatalf("Put: %v", err)
	}

	first, err := store.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	first.Lines.AddLine()
	first.Memo = "scribbled on"

	second, err := store.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if second.Lines.Len() != domain.MinLines {
		t.Fatalf("mutating a Get result leaked into the store: %d lines", second.Lines.Len())
	}
	if second.Memo != "" {
		t.Fatalf("mutating a Get result leaked into the store: memo %q", second.Memo)
	}
}

func TestDraftStore_PutDetachesFromCaller(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(0)

	draft := newDraft("d-1", time.Now())
	if err := store.Put(ctx, draft); err != nil {
		t.Fatalf("Put: %v", err)
	}

	draft.Lines.AddLine()

	got, err := store.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Lines.Len() != domain.MinLines {
		t.Fatalf("mutating the caller's draft leaked into the store: %d lines", got.Lines.Len())
	}
}

func TestDraftStore_UpdateCommitsMutation(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(0)

	if err := store.Put(ctx, newDraft("d-1", time.Now())); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var lineID string
	err := store.Update(ctx, "d-1", func(d *domain.Draft) error {
		lineID = d.Lines.AddLine()
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Lines.Len() != domain.MinLines+1 {
		t.Fatalf("expected the update to commit, got %d lines", got.Lines.Len())
	}
	if lineID == "" {
		t.Fatal("expected the closure to observe the new line id")
	}

	if err := store.Update(ctx, "missing", func(d *domain.Draft) error { return nil }); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestDraftStore_UpdateErrorLeavesDraftLive(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(0)

	if err := store.Put(ctx, newDraft("d-1", time.Now())); err != nil {
		t.Fatalf("Put: %v", err)
	}

	opErr := errors.New("rejected")
	if err := store.Update(ctx, "d-1", func(d *domain.Draft) error { return opErr }); !errors.Is(err, opErr) {
		t.Fatalf("expected closure error to surface, got %v", err)
	}

	if _, err := store.Get(ctx, "d-1"); err != nil {
		t.Fatalf("draft must survive a failed update: %v", err)
	}
}

// Concurrent amount edits against one draft must serialize through the
// store lock, and readers must never observe a line set mid-mutation.
func TestDraftStore_ConcurrentUpdatesAndReads(t *testing.T) {
	ctx := context.Background()
	store := NewDraftStore(0)

	draft := newDraft("d-1", time.Now())
	lines := draft.Lines.Snapshot()
	if err := store.Put(ctx, draft); err != nil {
		t.Fatalf("Put: %v", err)
	}

	const iterations = 200
	amount := decimal.RequireFromString("100.00")

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			_ = store.Update(ctx, "d-1", func(d *domain.Draft) error {
				return d.Lines.SetDebit(lines[0].ID, amount)
			})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			_ = store.Update(ctx, "d-1", func(d *domain.Draft) error {
				return d.Lines.SetCredit(lines[0].ID, amount)
			})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			got, err := store.Get(ctx, "d-1")
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			result := got.Evaluate()
			// Setting one side clears the other, so under serialized
			// access the totals can never both be nonzero.
			if !result.TotalDebit.IsZero() && !result.TotalCredit.IsZero() {
				t.Errorf("observed a line with both sides set: %s / %s", result.TotalDebit, result.TotalCredit)
				return
			}
		}
	}()

	wg.Wait()
}
