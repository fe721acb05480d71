package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/journaldraft/internal/adapter/http/handler"
	apimiddleware "github.com/iho/journaldraft/internal/adapter/http/middleware"
	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"currency":"USD"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/drafts/",
		"GET /api/v1/drafts/{id}",
		"DELETE /api/v1/drafts/{id}",
		"GET /api/v1/drafts/{id}/balance",
		"POST /api/v1/drafts/{id}/submit",
		"POST /api/v1/drafts/{id}/lines",
		"DELETE /api/v1/drafts/{id}/lines/{lineID}",
		"PUT /api/v1/drafts/{id}/lines/{lineID}/debit",
		"PUT /api/v1/drafts/{id}/lines/{lineID}/credit",
		"PUT /api/v1/drafts/{id}/lines/{lineID}/account",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/{id}",
		"GET /api/v1/accounts/{id}/journals",
		"GET /api/v1/journals/",
		"GET /api/v1/journals/{id}",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		DraftHandler:   handler.NewDraftHandler(&stubDraftService{}),
		AccountHandler: handler.NewAccountHandler(&stubAccountService{}),
		JournalHandler: handler.NewJournalHandler(&stubJournalService{}),
		HealthHandler:  &handler.HealthHandler{},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubDraftService struct{}

func (stubDraftService) CreateDraft(ctx context.Context, input usecase.CreateDraftInput) (*domain.Draft, error) {
	return &domain.Draft{ID: "draft", Lines: domain.NewSeededLineSet(domain.MinLines)}, nil
}

func (stubDraftService) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	return &domain.Draft{ID: id, Lines: domain.NewSeededLineSet(domain.MinLines)}, nil
}

func (stubDraftService) ListDrafts(ctx context.Context) ([]*domain.Draft, error) {
	return []*domain.Draft{}, nil
}

func (stubDraftService) DiscardDraft(ctx context.Context, id string) error { return nil }

func (stubDraftService) AddLine(ctx context.Context, draftID string) (string, error) {
	return "line-1", nil
}

func (stubDraftService) RemoveLine(ctx context.Context, draftID, lineID string) error { return nil }

func (stubDraftService) SetDebit(ctx context.Context, draftID, lineID, amount string) error {
	return nil
}

func (stubDraftService) SetCredit(ctx context.Context, draftID, lineID, amount string) error {
	return nil
}

func (stubDraftService) SetAccount(ctx context.Context, draftID, lineID, accountID string) error {
	return nil
}

func (stubDraftService) Evaluate(ctx context.Context, draftID string) (domain.BalanceResult, error) {
	return domain.BalanceResult{}, nil
}

func (stubDraftService) SubmitDraft(ctx context.Context, draftID string) (*domain.Journal, error) {
	return &domain.Journal{ID: "journal"}, nil
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: "acc"}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

type stubJournalService struct{}

func (stubJournalService) GetJournal(ctx context.Context, id string) (*domain.Journal, error) {
	return &domain.Journal{ID: id}, nil
}

func (stubJournalService) ListJournals(ctx context.Context, input usecase.ListJournalsInput) ([]*domain.Journal, error) {
	return []*domain.Journal{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
