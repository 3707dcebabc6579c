package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	amountPlaces = 2

	// Bounds checked before any arithmetic on a parsed value.
	maxAmountLength   = 32
	minAmountExponent = -maxAmountLength
	maxAmountExponent = 12
)

var (
	MaxAmount = decimal.NewFromInt(1_000_000_000_000)

	// MaxBalance keeps every balance inside NUMERIC(18, 2).
	MaxBalance = decimal.NewFromInt(1_000_000_000_000_000)
)

// ParseAmount accepts a positive decimal with at most two fractional digits.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := parseDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}

	return amount, nil
}

// ParseBalance accepts a non-negative decimal with at most two fractional
// digits, not above MaxBalance.
func ParseBalance(raw string) (decimal.Decimal, error) {
	balance, err := parseDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if balance.IsNegative() {
		return decimal.Decimal{}, &InvalidAmountError{Msg: "balance must not be negative"}
	}

	if !balance.Equal(balance.Round(amountPlaces)) {
		return decimal.Decimal{}, &InvalidAmountError{Msg: "balance must have at most two fractional digits"}
	}

	if balance.GreaterThan(MaxBalance) {
		return decimal.Decimal{}, &InvalidAmountError{Msg: "balance exceeds the allowed maximum"}
	}

	return balance, nil
}

func ValidateAmount(amount decimal.Decimal) error {
	if err := checkMagnitude(amount); err != nil {
		return err
	}

	if !amount.IsPositive() {
		return &InvalidAmountError{Msg: "amount must be positive"}
	}

	if !amount.Equal(amount.Round(amountPlaces)) {
		return &InvalidAmountError{Msg: "amount must have at most two fractional digits"}
	}

	if amount.GreaterThan(MaxAmount) {
		return &InvalidAmountError{Msg: "amount exceeds the allowed maximum"}
	}

	return nil
}

// CheckBalanceLimit fails when balance is above MaxBalance.
func CheckBalanceLimit(balance decimal.Decimal) error {
	if balance.GreaterThan(MaxBalance) {
		return &InvalidAmountError{Msg: "balance would exceed the allowed maximum"}
	}

	return nil
}

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(amountPlaces)
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > maxAmountLength {
		return decimal.Decimal{}, &InvalidAmountError{Msg: "amount is too long"}
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, &InvalidAmountError{Msg: fmt.Sprintf("amount %q is not a number", raw)}
	}

	if err := checkMagnitude(value); err != nil {
		return decimal.Decimal{}, err
	}

	return value, nil
}

// checkMagnitude rejects exponents that would make rescaling expensive.
func checkMagnitude(value decimal.Decimal) error {
	exp := value.Exponent()
	if exp < minAmountExponent || exp > maxAmountExponent {
		return &InvalidAmountError{Msg: "amount is out of range"}
	}

	return nil
}
