package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/journaldraft/internal/domain"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"draft not found", domain.ErrDraftNotFound, http.StatusNotFound},
		{"line not found", domain.ErrLineNotFound, http.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"journal not found", domain.ErrJournalNotFound, http.StatusNotFound},
		{"duplicate code", domain.ErrDuplicateCode, http.StatusConflict},
		{"not ready", domain.ErrDraftNotReady, http.StatusUnprocessableEntity},
		{"unbalanced", domain.ErrJournalUnbalanced, http.StatusUnprocessableEntity},
		{"line without account", domain.ErrLineWithoutAccount, http.StatusUnprocessableEntity},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"amount too large", domain.ErrAmountTooLarge, http.StatusBadRequest},
		{"minimum lines", domain.ErrMinimumLines, http.StatusBadRequest},
		{"invalid currency", domain.ErrInvalidCurrency, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Fatalf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestMapDomainError_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrDraftNotFound)
	if got := mapDomainError(wrapped); got != http.StatusNotFound {
		t.Fatalf("expected wrapped sentinel to map to 404, got %d", got)
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=25&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 50); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 50); got != 50 {
		t.Fatalf("expected default 50, got %d", got)
	}
	if got := parseIntQuery(req, "bad", 50); got != 50 {
		t.Fatalf("expected default for unparseable value, got %d", got)
	}
}
