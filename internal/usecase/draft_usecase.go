package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/infrastructure/metrics"
)

// DraftUseCase drives the journal-entry form: it owns the draft lifecycle,
// routes line mutations into the draft's LineSet, and turns a ready draft
// into a posted journal.
type DraftUseCase struct {
	draftStore  DraftStore
	accountRepo AccountRepository
	journalRepo JournalRepository
	txManager   TransactionManager
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewDraftUseCase creates a new DraftUseCase.
func NewDraftUseCase(
	draftStore DraftStore,
	accountRepo AccountRepository,
	journalRepo JournalRepository,
	txManager TransactionManager,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *DraftUseCase {
	return &DraftUseCase{
		draftStore:  draftStore,
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		txManager:   txManager,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// CreateDraftInput represents input for opening a new draft.
type CreateDraftInput struct {
	Currency string
	Memo     string
}

// CreateDraft opens a new draft seeded with the two-line minimum.
func (uc *DraftUseCase) CreateDraft(ctx context.Context, input CreateDraftInput) (*domain.Draft, error) {
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if err := domain.ValidateCurrency(currency); err != nil {
		return nil, err
	}

	if err := domain.ValidateMemo(input.Memo); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	draft := &domain.Draft{
		ID:        uc.idGen.Generate(),
		Currency:  currency,
		Memo:      input.Memo,
		Lines:     domain.NewSeededLineSet(domain.MinLines),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.draftStore.Put(ctx, draft); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DraftsCreated.Inc()
	}

	return draft, nil
}

// GetDraft retrieves an open draft by ID.
func (uc *DraftUseCase) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	return uc.draftStore.Get(ctx, id)
}

// ListDrafts lists all open drafts.
func (uc *DraftUseCase) ListDrafts(ctx context.Context) ([]*domain.Draft, error) {
	return uc.draftStore.List(ctx)
}

// DiscardDraft abandons a draft without posting it.
func (uc *DraftUseCase) DiscardDraft(ctx context.Context, id string) error {
	if _, err := uc.draftStore.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.draftStore.Delete(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.DraftsDiscarded.Inc()
	}

	return nil
}

// AddLine appends an empty line to the draft and returns its id.
func (uc *DraftUseCase) AddLine(ctx context.Context, draftID string) (string, error) {
	var lineID string
	err := uc.draftStore.Update(ctx, draftID, func(draft *domain.Draft) error {
		lineID = draft.Lines.AddLine()
		draft.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.recordMutation("add_line")

	return lineID, nil
}

// RemoveLine removes a line from the draft. The two-line floor is enforced by
// the line set; the error surfaces unchanged so the form can react.
func (uc *DraftUseCase) RemoveLine(ctx context.Context, draftID, lineID string) error {
	err := uc.draftStore.Update(ctx, draftID, func(draft *domain.Draft) error {
		if err := draft.Lines.RemoveLine(lineID); err != nil {
			return err
		}
		draft.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return err
	}

	uc.recordMutation("remove_line")

	return nil
}

// SetDebit parses and applies a debit amount to a line. The amount arrives as
// the text the user typed; parsing rejects non-numeric and negative input
// before the line set is touched.
func (uc *DraftUseCase) SetDebit(ctx context.Context, draftID, lineID, amount string) error {
	return uc.setAmount(ctx, draftID, lineID, amount, "set_debit")
}

// SetCredit parses and applies a credit amount to a line.
func (uc *DraftUseCase) SetCredit(ctx context.Context, draftID, lineID, amount string) error {
	return uc.setAmount(ctx, draftID, lineID, amount, "set_credit")
}

func (uc *DraftUseCase) setAmount(ctx context.Context, draftID, lineID, amount, op string) error {
	parsed, err := domain.ParseAmount(amount)
	if err != nil {
		return err
	}

	err = uc.draftStore.Update(ctx, draftID, func(draft *domain.Draft) error {
		var setErr error
		if op == "set_debit" {
			setErr = draft.Lines.SetDebit(lineID, parsed)
		} else {
			setErr = draft.Lines.SetCredit(lineID, parsed)
		}
		if setErr != nil {
			return setErr
		}
		draft.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return err
	}

	uc.recordMutation(op)

	return nil
}

// SetAccount assigns an account to a line after verifying the account exists
// and matches the draft currency. An empty account id unselects the line.
// The account lookup happens against a snapshot so the repository round trip
// stays outside the store lock; a draft's currency never changes, so the
// check cannot go stale.
func (uc *DraftUseCase) SetAccount(ctx context.Context, draftID, lineID, accountID string) error {
	draft, err := uc.draftStore.Get(ctx, draftID)
	if err != nil {
		return err
	}

	if accountID != "" {
		account, err := uc.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account.Currency != draft.Currency {
			return domain.ErrInvalidCurrency
		}
	}

	err = uc.draftStore.Update(ctx, draftID, func(draft *domain.Draft) error {
		if err := draft.Lines.SetAccount(lineID, accountID); err != nil {
			return err
		}
		draft.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return err
	}

	uc.recordMutation("set_account")

	return nil
}

// Evaluate runs the balance engine over the draft's current lines.
func (uc *DraftUseCase) Evaluate(ctx context.Context, draftID string) (domain.BalanceResult, error) {
	draft, err := uc.draftStore.Get(ctx, draftID)
	if err != nil {
		return domain.BalanceResult{}, err
	}

	result := draft.Evaluate()

	if uc.metrics != nil {
		uc.metrics.Evaluations.WithLabelValues(string(result.Readiness)).Inc()
	}

	return result, nil
}

// SubmitDraft posts a ready draft as an immutable journal and discards the
// draft. Submission is refused with ErrDraftNotReady unless the most recent
// evaluation of the current lines is Ready. Submission works on a snapshot
// taken at entry; edits racing the submit are discarded with the draft.
func (uc *DraftUseCase) SubmitDraft(ctx context.Context, draftID string) (*domain.Journal, error) {
	draft, err := uc.draftStore.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	result := draft.Evaluate()
	if result.Readiness != domain.ReadinessReady {
		return nil, domain.ErrDraftNotReady
	}

	journal := uc.buildJournal(draft, result)
	if err := journal.Validate(); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(txCtx)

	if err := uc.journalRepo.Create(txCtx, tx, journal); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	// The draft is gone once the journal is durable. A failed delete leaves a
	// stale draft behind, which is harmless; it must not undo the post.
	_ = uc.draftStore.Delete(ctx, draftID)

	if uc.metrics != nil {
		uc.metrics.JournalsPosted.Inc()
	}

	return journal, nil
}

func (uc *DraftUseCase) buildJournal(draft *domain.Draft, result domain.BalanceResult) *domain.Journal {
	journalID := uc.idGen.Generate()

	lines := draft.Lines.Snapshot()
	posted := make([]domain.JournalLine, 0, len(lines))
	for _, l := range lines {
		posted = append(posted, domain.JournalLine{
			ID:        uc.idGen.Generate(),
			JournalID: journalID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		})
	}

	return &domain.Journal{
		ID:          journalID,
		Currency:    draft.Currency,
		Memo:        draft.Memo,
		Lines:       posted,
		TotalDebit:  result.TotalDebit,
		TotalCredit: result.TotalCredit,
		PostedAt:    time.Now().UTC(),
	}
}

func (uc *DraftUseCase) recordMutation(op string) {
	if uc.metrics != nil {
		uc.metrics.LineMutations.WithLabelValues(op).Inc()
	}
}
