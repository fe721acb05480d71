package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/journaldraft/internal/adapter/http/dto"
	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/usecase"
)

// DraftService defines the behavior needed by DraftHandler.
type DraftService interface {
	CreateDraft(ctx context.Context, input usecase.CreateDraftInput) (*domain.Draft, error)
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)
	ListDrafts(ctx context.Context) ([]*domain.Draft, error)
	DiscardDraft(ctx context.Context, id string) error
	AddLine(ctx context.Context, draftID string) (string, error)
	RemoveLine(ctx context.Context, draftID, lineID string) error
	SetDebit(ctx context.Context, draftID, lineID, amount string) error
	SetCredit(ctx context.Context, draftID, lineID, amount string) error
	SetAccount(ctx context.Context, draftID, lineID, accountID string) error
	Evaluate(ctx context.Context, draftID string) (domain.BalanceResult, error)
	SubmitDraft(ctx context.Context, draftID string) (*domain.Journal, error)
}

// DraftHandler handles draft-related HTTP requests.
type DraftHandler struct {
	draftUC DraftService
}

// NewDraftHandler creates a new DraftHandler.
func NewDraftHandler(draftUC DraftService) *DraftHandler {
	return &DraftHandler{draftUC: draftUC}
}

// Create opens a new draft.
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	draft, err := h.draftUC.CreateDraft(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create draft", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DraftFromDomain(draft))
}

// Get retrieves a draft by ID.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing draft ID", "")
		return
	}

	draft, err := h.draftUC.GetDraft(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get draft", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DraftFromDomain(draft))
}

// List lists open drafts.
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.draftUC.ListDrafts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list drafts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DraftsFromDomain(drafts))
}

// Discard removes a draft without posting it.
func (h *DraftHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.draftUC.DiscardDraft(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to discard draft", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddLine appends an empty line to the draft.
func (h *DraftHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lineID, err := h.draftUC.AddLine(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add line", err.Error())
		return
	}

	draft, err := h.draftUC.GetDraft(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get draft", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AddLineResponse{
		LineID: lineID,
		Draft:  dto.DraftFromDomain(draft),
	})
}

// RemoveLine deletes a line from the draft.
func (h *DraftHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineID")

	if err := h.draftUC.RemoveLine(r.Context(), id, lineID); err != nil {
		writeError(w, mapDomainError(err), "failed to remove line", err.Error())
		return
	}

	h.respondWithDraft(w, r, id)
}

// SetDebit sets the debit side of a line, clearing any credit.
func (h *DraftHandler) SetDebit(w http.ResponseWriter, r *http.Request) {
	h.setAmount(w, r, h.draftUC.SetDebit, "failed to set debit")
}

// SetCredit sets the credit side of a line, clearing any debit.
func (h *DraftHandler) SetCredit(w http.ResponseWriter, r *http.Request) {
	h.setAmount(w, r, h.draftUC.SetCredit, "failed to set credit")
}

func (h *DraftHandler) setAmount(
	w http.ResponseWriter,
	r *http.Request,
	set func(ctx context.Context, draftID, lineID, amount string) error,
	failMsg string,
) {
	id := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineID")

	var req dto.SetAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := set(r.Context(), id, lineID, req.Amount); err != nil {
		writeError(w, mapDomainError(err), failMsg, err.Error())
		return
	}

	h.respondWithDraft(w, r, id)
}

// SetAccount selects or unselects the account on a line.
func (h *DraftHandler) SetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineID")

	var req dto.SetAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.draftUC.SetAccount(r.Context(), id, lineID, req.AccountID); err != nil {
		writeError(w, mapDomainError(err), "failed to set account", err.Error())
		return
	}

	h.respondWithDraft(w, r, id)
}

// Evaluate returns the current balance verdict for the draft.
func (h *DraftHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.draftUC.Evaluate(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to evaluate draft", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(result))
}

// Submit posts a ready draft as a journal.
func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	journal, err := h.draftUC.SubmitDraft(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to submit draft", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.JournalFromDomain(journal))
}

// respondWithDraft re-reads the draft after a mutation so clients get the
// freshly evaluated state in one round trip.
func (h *DraftHandler) respondWithDraft(w http.ResponseWriter, r *http.Request, id string) {
	draft, err := h.draftUC.GetDraft(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get draft", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DraftFromDomain(draft))
}
