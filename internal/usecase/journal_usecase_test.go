package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/usecase"
	"github.com/iho/journaldraft/internal/usecase/mocks"
)

func TestJournalUseCase_GetJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	journalRepo := mocks.NewMockJournalRepository(ctrl)
	journalRepo.EXPECT().GetByID(gomock.Any(), "jrn-1").Return(&domain.Journal{
		ID:          "jrn-1",
		Currency:    "USD",
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.NewFromInt(100),
	}, nil)

	uc := usecase.NewJournalUseCase(journalRepo)

	journal, err := uc.GetJournal(context.Background(), "jrn-1")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if journal.ID != "jrn-1" {
		t.Errorf("expected jrn-1, got %s", journal.ID)
	}
}

func TestJournalUseCase_ListJournals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	journalRepo := mocks.NewMockJournalRepository(ctrl)
	journalRepo.EXPECT().List(gomock.Any(), 50, 0).Return([]*domain.Journal{
		{ID: "jrn-1"}, {ID: "jrn-2"},
	}, nil)

	uc := usecase.NewJournalUseCase(journalRepo)

	journals, err := uc.ListJournals(context.Background(), usecase.ListJournalsInput{})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(journals) != 2 {
		t.Errorf("expected 2 journals, got %d", len(journals))
	}
}

func TestJournalUseCase_ListJournalsByAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	journalRepo := mocks.NewMockJournalRepository(ctrl)
	journalRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1", 20, 0).Return([]*domain.Journal{
		{ID: "jrn-1"},
	}, nil)

	uc := usecase.NewJournalUseCase(journalRepo)

	journals, err := uc.ListJournals(context.Background(), usecase.ListJournalsInput{
		AccountID: "acc-1",
		Limit:     20,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(journals) != 1 {
		t.Errorf("expected 1 journal, got %d", len(journals))
	}
}
