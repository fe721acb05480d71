package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		want        string
		expectError error
	}{
		{name: "plain amount", input: "100.50", want: "100.50"},
		{name: "integer amount", input: "42", want: "42"},
		{name: "empty input means zero", input: "", want: "0"},
		{name: "whitespace trimmed", input: "  12.34  ", want: "12.34"},
		{name: "non-numeric rejected", input: "abc", expectError: ErrInvalidAmount},
		{name: "mixed text rejected", input: "12x", expectError: ErrInvalidAmount},
		{name: "negative rejected", input: "-5", expectError: ErrInvalidAmount},
		{name: "excessive amount rejected", input: "1000000000001", expectError: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestValidateAccountCode(t *testing.T) {
	t.Parallel()

	if err := ValidateAccountCode("1000"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, code := range []string{"", "12", "123456789", "10a0", "acct"} {
		if err := ValidateAccountCode(code); !errors.Is(err, ErrInvalidAccountCode) {
			t.Fatalf("code %q: expected ErrInvalidAccountCode, got %v", code, err)
		}
	}
}

func TestValidateAccountName(t *testing.T) {
	t.Parallel()

	if err := ValidateAccountName("Cash at Bank"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := ValidateAccountName("   "); !errors.Is(err, ErrInvalidAccountName) {
		t.Fatalf("expected ErrInvalidAccountName, got %v", err)
	}

	tooLong := strings.Repeat("a", MaxAccountNameLength+1)
	if err := ValidateAccountName(tooLong); !errors.Is(err, ErrInvalidAccountName) {
		t.Fatalf("expected ErrInvalidAccountName, got %v", err)
	}
}

func TestValidateCurrency(t *testing.T) {
	t.Parallel()

	if err := ValidateCurrency("usd"); err != nil {
		t.Fatalf("expected uppercase conversion to succeed, got %v", err)
	}

	if err := ValidateCurrency("XYZ"); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestValidateMemo(t *testing.T) {
	t.Parallel()

	if err := ValidateMemo("office supplies for Q3"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := ValidateMemo(strings.Repeat("m", MaxMemoLength+1)); !errors.Is(err, ErrMemoTooLong) {
		t.Fatalf("expected ErrMemoTooLong, got %v", err)
	}
}

func TestValidAccountType(t *testing.T) {
	t.Parallel()

	for _, at := range []AccountType{
		AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense,
	} {
		if !ValidAccountType(at) {
			t.Errorf("expected %s to be valid", at)
		}
	}

	if ValidAccountType("piggybank") {
		t.Error("expected unknown type to be invalid")
	}
}

func TestValidatePagination(t *testing.T) {
	t.Parallel()

	limit, offset := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Fatalf("expected defaults 50/0, got %d/%d", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Fatalf("expected cap at 1000, got %d", limit)
	}
}
