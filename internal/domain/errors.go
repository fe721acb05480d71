package domain

import "errors"

var (
	// Line set errors
	ErrLineNotFound  = errors.New("line not found")
	ErrInvalidAmount = errors.New("amount must be a non-negative number")
	ErrMinimumLines  = errors.New("a journal requires at least two lines")

	// Draft errors
	ErrDraftNotFound = errors.New("draft not found")
	ErrDraftNotReady = errors.New("draft is not ready for submission")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateCode   = errors.New("account code already exists")

	// Journal errors
	ErrJournalNotFound    = errors.New("journal not found")
	ErrJournalUnbalanced  = errors.New("journal debits and credits do not balance")
	ErrLineWithoutAccount = errors.New("journal line has no account")
)
