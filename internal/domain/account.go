package domain

import "time"

// AccountType classifies an account within the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// ValidAccountType reports whether t is a known account type.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// Account is a chart-of-accounts entry. Journal lines reference accounts by
// ID; the account list is what the form's account picker is populated from.
type Account struct {
	ID        string
	Code      string
	Name      string
	Type      AccountType
	Currency  string
	CreatedAt time.Time
}
