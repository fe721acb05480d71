package domain

import "time"

// Draft is one open journal-entry form: a line set plus descriptive metadata.
// Drafts are ephemeral; they exist only while the form is being edited and
// are discarded on submit or abandon.
type Draft struct {
	ID        string
	Currency  string
	Memo      string
	Lines     *LineSet
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Evaluate runs the balance engine over the draft's current lines.
func (d *Draft) Evaluate() BalanceResult {
	return Evaluate(d.Lines.Snapshot())
}

// Clone returns a deep copy detached from the original's lines.
func (d *Draft) Clone() *Draft {
	c := *d
	c.Lines = d.Lines.Clone()
	return &c
}
