package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/journaldraft/internal/adapter/http/dto"
	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/usecase"
)

// JournalService defines the behavior needed by JournalHandler.
type JournalService interface {
	GetJournal(ctx context.Context, id string) (*domain.Journal, error)
	ListJournals(ctx context.Context, input usecase.ListJournalsInput) ([]*domain.Journal, error)
}

// JournalHandler handles posted-journal HTTP requests.
type JournalHandler struct {
	journalUC JournalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalUC JournalService) *JournalHandler {
	return &JournalHandler{journalUC: journalUC}
}

// Get retrieves a posted journal by ID.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing journal ID", "")
		return
	}

	journal, err := h.journalUC.GetJournal(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get journal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromDomain(journal))
}

// List lists posted journals, newest first.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	journals, err := h.journalUC.ListJournals(r.Context(), usecase.ListJournalsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list journals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListJournalsResponse{
		Journals: dto.JournalsFromDomain(journals),
		Total:    int64(len(journals)),
	})
}

// ListByAccount lists journals that touch a given account.
func (h *JournalHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	journals, err := h.journalUC.ListJournals(r.Context(), usecase.ListJournalsInput{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list journals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListJournalsResponse{
		Journals: dto.JournalsFromDomain(journals),
		Total:    int64(len(journals)),
	})
}
