package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/journaldraft/internal/domain"
)

// LineResponse represents a single draft line in API responses.
type LineResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// BalanceResponse represents a balance evaluation in API responses.
type BalanceResponse struct {
	TotalDebit            decimal.Decimal `json:"total_debit"`
	TotalCredit           decimal.Decimal `json:"total_credit"`
	Difference            decimal.Decimal `json:"difference"`
	IsBalanced            bool            `json:"is_balanced"`
	HasAnyAccountSelected bool            `json:"has_any_account_selected"`
	HasDataError          bool            `json:"has_data_error"`
	Readiness             string          `json:"readiness"`
}

// BalanceFromDomain converts a balance result to a response.
func BalanceFromDomain(r domain.BalanceResult) *BalanceResponse {
	return &BalanceResponse{
		TotalDebit:            r.TotalDebit,
		TotalCredit:           r.TotalCredit,
		Difference:            r.Difference,
		IsBalanced:            r.IsBalanced,
		HasAnyAccountSelected: r.HasAnyAccountSelected,
		HasDataError:          r.HasDataError,
		Readiness:             string(r.Readiness),
	}
}

// DraftResponse represents a draft in API responses. Every draft response
// carries the current balance evaluation so clients never render stale
// totals after a mutation.
type DraftResponse struct {
	ID        string           `json:"id"`
	Currency  string           `json:"currency"`
	Memo      string           `json:"memo,omitempty"`
	Lines     []LineResponse   `json:"lines"`
	Balance   *BalanceResponse `json:"balance"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// DraftFromDomain converts a domain draft to a response.
func DraftFromDomain(d *domain.Draft) *DraftResponse {
	snapshot := d.Lines.Snapshot()
	lines := make([]LineResponse, len(snapshot))
	for i, e := range snapshot {
		lines[i] = LineResponse{
			ID:        e.ID,
			AccountID: e.AccountID,
			Debit:     e.Debit,
			Credit:    e.Credit,
		}
	}

	return &DraftResponse{
		ID:        d.ID,
		Currency:  d.Currency,
		Memo:      d.Memo,
		Lines:     lines,
		Balance:   BalanceFromDomain(d.Evaluate()),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// DraftsFromDomain converts domain drafts to responses.
func DraftsFromDomain(drafts []*domain.Draft) []*DraftResponse {
	result := make([]*DraftResponse, len(drafts))
	for i, d := range drafts {
		result[i] = DraftFromDomain(d)
	}
	return result
}

// AddLineResponse carries the identifier of a freshly appended line.
type AddLineResponse struct {
	LineID string         `json:"line_id"`
	Draft  *DraftResponse `json:"draft"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      string(a.Type),
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// JournalLineResponse represents a posted journal line in API responses.
type JournalLineResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalResponse represents a posted journal in API responses.
type JournalResponse struct {
	ID          string                `json:"id"`
	Currency    string                `json:"currency"`
	Memo        string                `json:"memo,omitempty"`
	Lines       []JournalLineResponse `json:"lines"`
	TotalDebit  decimal.Decimal       `json:"total_debit"`
	TotalCredit decimal.Decimal       `json:"total_credit"`
	PostedAt    time.Time             `json:"posted_at"`
}

// JournalFromDomain converts a domain journal to a response.
func JournalFromDomain(j *domain.Journal) *JournalResponse {
	lines := make([]JournalLineResponse, len(j.Lines))
	for i, l := range j.Lines {
		lines[i] = JournalLineResponse{
			ID:        l.ID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		}
	}

	return &JournalResponse{
		ID:          j.ID,
		Currency:    j.Currency,
		Memo:        j.Memo,
		Lines:       lines,
		TotalDebit:  j.TotalDebit,
		TotalCredit: j.TotalCredit,
		PostedAt:    j.PostedAt,
	}
}

// JournalsFromDomain converts domain journals to responses.
func JournalsFromDomain(journals []*domain.Journal) []*JournalResponse {
	result := make([]*JournalResponse, len(journals))
	for i, j := range journals {
		result[i] = JournalFromDomain(j)
	}
	return result
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals []*JournalResponse `json:"journals"`
	Total    int64              `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
