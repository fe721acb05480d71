package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineEntry is one row of a journal transaction. AccountID is empty until
// the user picks an account. At most one of Debit/Credit is nonzero; the
// setters on LineSet enforce this.
type LineEntry struct {
	ID        string
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// HasAccount reports whether an account has been selected for this line.
func (e *LineEntry) HasAccount() bool {
	return e.AccountID != ""
}

// IsEmpty reports whether the line carries neither an account nor an amount.
func (e *LineEntry) IsEmpty() bool {
	return e.AccountID == "" && e.Debit.IsZero() && e.Credit.IsZero()
}

// MinLines is the floor below which a line set cannot shrink. A single-sided
// entry can never balance, so two lines is the smallest meaningful journal.
const MinLines = 2

// LineSet is an ordered, mutable collection of journal lines. Line ids are
// allocated per instance and never reused after removal. A LineSet is not
// safe for concurrent use; callers must serialize access.
type LineSet struct {
	entries []LineEntry
	nextID  uint64
}

// NewLineSet creates an empty LineSet.
func NewLineSet() *LineSet {
	return &LineSet{}
}

// NewSeededLineSet creates a LineSet pre-populated with n empty lines.
func NewSeededLineSet(n int) *LineSet {
	ls := NewLineSet()
	for i := 0; i < n; i++ {
		ls.AddLine()
	}
	return ls
}

// Clone returns a deep copy sharing no state with the original. The id
// counter is copied too, so clone and original mint the same next id.
func (ls *LineSet) Clone() *LineSet {
	return &LineSet{
		entries: append([]LineEntry(nil), ls.entries...),
		nextID:  ls.nextID,
	}
}

// Len returns the number of lines.
func (ls *LineSet) Len() int {
	return len(ls.entries)
}

// AddLine appends an empty line and returns its id. It never fails.
func (ls *LineSet) AddLine() string {
	ls.nextID++
	id := fmt.Sprintf("line-%d", ls.nextID)
	ls.entries = append(ls.entries, LineEntry{ID: id})
	return id
}

// RemoveLine removes the line with the given id. It fails with ErrMinimumLines
// if the set holds MinLines entries or fewer, and with ErrLineNotFound if the
// id is absent. On failure the set is unchanged.
func (ls *LineSet) RemoveLine(id string) error {
	idx := ls.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}

	if len(ls.entries) <= MinLines {
		return ErrMinimumLines
	}

	ls.entries = append(ls.entries[:idx], ls.entries[idx+1:]...)

	return nil
}

// SetDebit sets the debit amount of a line. On success the line's credit is
// cleared so that debit and credit are never both nonzero.
func (ls *LineSet) SetDebit(id string, amount decimal.Decimal) error {
	idx := ls.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}

	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	ls.entries[idx].Debit = amount
	ls.entries[idx].Credit = decimal.Zero

	return nil
}

// SetCredit sets the credit amount of a line, clearing its debit on success.
func (ls *LineSet) SetCredit(id string, amount decimal.Decimal) error {
	idx := ls.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}

	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	ls.entries[idx].Credit = amount
	ls.entries[idx].Debit = decimal.Zero

	return nil
}

// SetAccount assigns an account to a line. An empty accountID unselects.
func (ls *LineSet) SetAccount(id, accountID string) error {
	idx := ls.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, id)
	}

	ls.entries[idx].AccountID = accountID

	return nil
}

// Snapshot returns a copy of the current lines in insertion order. The copy
// reflects the exact state at the time of the call; later mutations do not
// leak into it.
func (ls *LineSet) Snapshot() []LineEntry {
	out := make([]LineEntry, len(ls.entries))
	copy(out, ls.entries)
	return out
}

func (ls *LineSet) indexOf(id string) int {
	for i := range ls.entries {
		if ls.entries[i].ID == id {
			return i
		}
	}
	return -1
}
