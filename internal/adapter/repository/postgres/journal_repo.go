package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/journaldraft/internal/domain"
	"github.com/iho/journaldraft/internal/usecase"
)

// JournalRepository implements usecase.JournalRepository. Amounts travel as
// NUMERIC text so no precision is lost between decimal.Decimal and Postgres.
type JournalRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Create inserts a journal and its lines inside the caller's transaction.
func (r *JournalRepository) Create(ctx context.Context, tx usecase.Transaction, journal *domain.Journal) error {
	pgxTx := tx.(*Tx).PgxTx()

	journalQuery := `
		INSERT INTO journals (id, currency, memo, total_debit, total_credit, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := pgxTx.Exec(ctx, journalQuery,
		journal.ID,
		journal.Currency,
		journal.Memo,
		journal.TotalDebit.String(),
		journal.TotalCredit.String(),
		journal.PostedAt,
	)
	if err != nil {
		return err
	}

	lineQuery := `
		INSERT INTO journal_lines (id, journal_id, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i := range journal.Lines {
		line := &journal.Lines[i]
		if _, err := pgxTx.Exec(ctx, lineQuery,
			line.ID,
			line.JournalID,
			line.AccountID,
			line.Debit.String(),
			line.Credit.String(),
		); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a journal with its lines.
func (r *JournalRepository) GetByID(ctx context.Context, id string) (*domain.Journal, error) {
	var journal *domain.Journal

	err := r.retrier.Retry(ctx, func() error {
		var err error
		journal, err = r.getByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return journal, nil
}

func (r *JournalRepository) getByID(ctx context.Context, id string) (*domain.Journal, error) {
	query := `
		SELECT id, currency, memo, total_debit::text, total_credit::text, posted_at
		FROM journals
		WHERE id = $1
	`

	journal := &domain.Journal{}
	var totalDebit, totalCredit string

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&journal.ID,
		&journal.Currency,
		&journal.Memo,
		&totalDebit,
		&totalCredit,
		&journal.PostedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJournalNotFound
		}
		return nil, err
	}

	if journal.TotalDebit, err = decimal.NewFromString(totalDebit); err != nil {
		return nil, err
	}
	if journal.TotalCredit, err = decimal.NewFromString(totalCredit); err != nil {
		return nil, err
	}

	journal.Lines, err = r.linesFor(ctx, journal.ID)
	if err != nil {
		return nil, err
	}

	return journal, nil
}

// List lists journals most recent first.
func (r *JournalRepository) List(ctx context.Context, limit, offset int) ([]*domain.Journal, error) {
	query := `
		SELECT id
		FROM journals
		ORDER BY posted_at DESC
		LIMIT $1 OFFSET $2
	`

	ids, err := r.journalIDs(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return r.load(ctx, ids)
}

// ListByAccount lists journals that touch the given account.
func (r *JournalRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Journal, error) {
	query := `
		SELECT j.id
		FROM journals j
		WHERE EXISTS (
			SELECT 1 FROM journal_lines l
			WHERE l.journal_id = j.id AND l.account_id = $3
		)
		ORDER BY j.posted_at DESC
		LIMIT $1 OFFSET $2
	`

	ids, err := r.journalIDs(ctx, query, limit, offset, accountID)
	if err != nil {
		return nil, err
	}

	return r.load(ctx, ids)
}

func (r *JournalRepository) journalIDs(ctx context.Context, query string, limit, offset int, extraArgs ...any) ([]string, error) {
	args := append([]any{limit, offset}, extraArgs...)

	var ids []string

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		ids = ids[:0]
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *JournalRepository) load(ctx context.Context, ids []string) ([]*domain.Journal, error) {
	journals := make([]*domain.Journal, 0, len(ids))
	for _, id := range ids {
		journal, err := r.getByID(ctx, id)
		if err != nil {
			return nil, err
		}
		journals = append(journals, journal)
	}

	return journals, nil
}

func (r *JournalRepository) linesFor(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT id, journal_id, account_id, debit::text, credit::text
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.JournalLine, 0)
	for rows.Next() {
		var line domain.JournalLine
		var debit, credit string

		if err := rows.Scan(&line.ID, &line.JournalID, &line.AccountID, &debit, &credit); err != nil {
			return nil, err
		}

		if line.Debit, err = decimal.NewFromString(debit); err != nil {
			return nil, err
		}
		if line.Credit, err = decimal.NewFromString(credit); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, rows.Err()
}
