package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is one posted row of a journal. Unlike a draft line it is
// immutable and always carries an account.
type JournalLine struct {
	ID        string
	JournalID string
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// Journal is a posted journal entry, produced from a draft whose evaluation
// reached ReadinessReady.
type Journal struct {
	ID          string
	Currency    string
	Memo        string
	Lines       []JournalLine
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	PostedAt    time.Time
}

// Validate re-checks the double-entry rule over the posted lines. Submission
// already gates on the balance engine, but readiness only demands that some
// account is selected; a balanced draft can still carry an amount on an
// unassigned line, and a posted line without an account is meaningless.
func (j *Journal) Validate() error {
	if len(j.Lines) < MinLines {
		return ErrMinimumLines
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i := range j.Lines {
		if j.Lines[i].AccountID == "" {
			return ErrLineWithoutAccount
		}
		totalDebit = totalDebit.Add(j.Lines[i].Debit)
		totalCredit = totalCredit.Add(j.Lines[i].Credit)
	}

	if !totalDebit.Sub(totalCredit).Abs().LessThan(Tolerance) {
		return ErrJournalUnbalanced
	}

	return nil
}
