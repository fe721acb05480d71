package usecase

import (
	"context"

	"github.com/iho/journaldraft/internal/domain"
)

// JournalUseCase handles the read side of posted journals.
type JournalUseCase struct {
	journalRepo JournalRepository
}

// NewJournalUseCase creates a new JournalUseCase.
func NewJournalUseCase(journalRepo JournalRepository) *JournalUseCase {
	return &JournalUseCase{journalRepo: journalRepo}
}

// GetJournal retrieves a posted journal by ID.
func (uc *JournalUseCase) GetJournal(ctx context.Context, id string) (*domain.Journal, error) {
	return uc.journalRepo.GetByID(ctx, id)
}

// ListJournalsInput represents input for listing journals.
type ListJournalsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListJournals lists posted journals, optionally filtered by account.
func (uc *JournalUseCase) ListJournals(ctx context.Context, input ListJournalsInput) ([]*domain.Journal, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	if input.AccountID != "" {
		return uc.journalRepo.ListByAccount(ctx, input.AccountID, limit, offset)
	}

	return uc.journalRepo.List(ctx, limit, offset)
}
