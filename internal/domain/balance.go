package domain

import "github.com/shopspring/decimal"

// Readiness is the verdict on whether a draft may currently be submitted.
type Readiness string

const (
	// ReadinessNeedsAccounts means no line has an account selected yet.
	ReadinessNeedsAccounts Readiness = "needs_accounts"
	// ReadinessNeedsAmounts means one side of the journal still sums to zero.
	ReadinessNeedsAmounts Readiness = "needs_amounts"
	// ReadinessUnbalanced means debits and credits differ beyond tolerance.
	ReadinessUnbalanced Readiness = "unbalanced"
	// ReadinessReady means the draft may be submitted.
	ReadinessReady Readiness = "ready"
)

// Tolerance is the margin below which total debits and credits are considered
// equal. Rounding on multi-line journals can leave sub-cent residues, so
// anything under one cent balances.
var Tolerance = decimal.NewFromFloat(0.01)

// BalanceResult is the outcome of evaluating a line set snapshot.
type BalanceResult struct {
	TotalDebit            decimal.Decimal
	TotalCredit           decimal.Decimal
	Difference            decimal.Decimal
	IsBalanced            bool
	HasAnyAccountSelected bool
	HasDataError          bool
	Readiness             Readiness
}

// Evaluate computes totals and a readiness verdict for a snapshot of journal
// lines. It is a pure function: no state is retained between calls, every
// call recomputes from scratch, and it cannot fail. A line whose amounts are
// negative (which cannot occur through LineSet mutations) contributes zero
// and flags HasDataError instead of corrupting the totals. A line with both
// sides nonzero contributes to both totals.
func Evaluate(lines []LineEntry) BalanceResult {
	result := BalanceResult{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	missingAmounts := false

	for i := range lines {
		line := &lines[i]

		if line.HasAccount() {
			result.HasAnyAccountSelected = true
		}

		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			result.HasDataError = true
			continue
		}

		if line.Debit.IsZero() && line.Credit.IsZero() {
			missingAmounts = true
		}

		result.TotalDebit = result.TotalDebit.Add(line.Debit)
		result.TotalCredit = result.TotalCredit.Add(line.Credit)
	}

	result.Difference = result.TotalDebit.Sub(result.TotalCredit).Abs()
	result.IsBalanced = result.Difference.LessThan(Tolerance)
	result.Readiness = readiness(result, missingAmounts)

	return result
}

// readiness derives the verdict from the computed aggregates. Account
// selection is checked first: an untouched form is the most common state and
// should not surface as a balance error. A journal needs amounts while either
// total is still zero or any line has no amount on either side, so adding a
// fresh empty line pulls a ready draft back out of readiness.
func readiness(r BalanceResult, missingAmounts bool) Readiness {
	switch {
	case !r.HasAnyAccountSelected:
		return ReadinessNeedsAccounts
	case r.TotalDebit.IsZero() || r.TotalCredit.IsZero() || missingAmounts:
		return ReadinessNeedsAmounts
	case !r.IsBalanced:
		return ReadinessUnbalanced
	default:
		return ReadinessReady
	}
}
