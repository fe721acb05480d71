package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/journaldraft/internal/adapter/http/dto"
	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/usecase"
)

type journalServiceStub struct {
	getFn  func(ctx context.Context, id string) (*domain.Journal, error)
	listFn func(ctx context.Context, input usecase.ListJournalsInput) ([]*domain.Journal, error)
}

func (s *journalServiceStub) GetJournal(ctx context.Context, id string) (*domain.Journal, error) {
	return s.getFn(ctx, id)
}

func (s *journalServiceStub) ListJournals(ctx context.Context, input usecase.ListJournalsInput) ([]*domain.Journal, error) {
	return s.listFn(ctx, input)
}

func testJournal(t *testing.T, id string) *domain.Journal {
	t.Helper()
	return &domain.Journal{
		ID:       id,
		Currency: "USD",
		Lines: []domain.JournalLine{
			{ID: "jl-1", JournalID: id, AccountID: "acc-1", Debit: mustDecimal(t, "100")},
			{ID: "jl-2", JournalID: id, AccountID: "acc-2", Credit: mustDecimal(t, "100")},
		},
		TotalDebit:  mustDecimal(t, "100"),
		TotalCredit: mustDecimal(t, "100"),
		PostedAt:    time.Now(),
	}
}

func TestJournalHandler_Get(t *testing.T) {
	h := NewJournalHandler(&journalServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Journal, error) {
			return testJournal(t, id), nil
		},
	})

	req := withURLParams(
		httptest.NewRequest(http.MethodGet, "/journals/jr-1", nil),
		map[string]string{"id": "jr-1"},
	)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.JournalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "jr-1" || len(resp.Lines) != 2 {
		t.Fatalf("unexpected journal response: %+v", resp)
	}
}

func TestJournalHandler_Get_NotFound(t *testing.T) {
	h := NewJournalHandler(&journalServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Journal, error) {
			return nil, domain.ErrJournalNotFound
		},
	})

	req := withURLParams(
		httptest.NewRequest(http.MethodGet, "/journals/missing", nil),
		map[string]string{"id": "missing"},
	)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestJournalHandler_ListByAccount_PassesAccountID(t *testing.T) {
	var captured usecase.ListJournalsInput
	h := NewJournalHandler(&journalServiceStub{
		listFn: func(ctx context.Context, input usecase.ListJournalsInput) ([]*domain.Journal, error) {
			captured = input
			return []*domain.Journal{testJournal(t, "jr-1")}, nil
		},
	})

	req := withURLParams(
		httptest.NewRequest(http.MethodGet, "/accounts/acc-1/journals?limit=10", nil),
		map[string]string{"id": "acc-1"},
	)
	rec := httptest.NewRecorder()

	h.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.AccountID != "acc-1" || captured.Limit != 10 {
		t.Fatalf("expected account filter to pass through, got %+v", captured)
	}
}
