package dto

import (
	"github.com/iho/journaldraft/internal/usecase"
)

// CreateDraftRequest represents a request to open a new draft.
type CreateDraftRequest struct {
	Currency string `json:"currency"`
	Memo     string `json:"memo,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDraftRequest) ToUseCaseInput() usecase.CreateDraftInput {
	return usecase.CreateDraftInput{
		Currency: r.Currency,
		Memo:     r.Memo,
	}
}

// SetAmountRequest represents a request to set one side of a line.
// The amount travels as a string so the caller's exact decimal text
// reaches the parser untouched; an empty string clears the side.
type SetAmountRequest struct {
	Amount string `json:"amount"`
}

// SetAccountRequest represents a request to select a line's account.
// An empty account_id unselects the line.
type SetAccountRequest struct {
	AccountID string `json:"account_id"`
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code:     r.Code,
		Name:     r.Name,
		Type:     r.Type,
		Currency: r.Currency,
	}
}
