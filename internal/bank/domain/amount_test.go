package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		input string

		expected    decimal.Decimal
		expectedErr error
	}

	tests := []testCase{
		{name: "integer", input: "50", expected: decimal.NewFromInt(50)},
		{name: "cents", input: "12.34", expected: decimal.RequireFromString("12.34")},
		{name: "surrounding spaces", input: " 7.5 ", expected: decimal.RequireFromString("7.5")},
		{name: "trailing zeros beyond cents", input: "3.000", expected: decimal.NewFromInt(3)},
		{name: "zero", input: "0", expectedErr: &InvalidAmountError{}},
		{name: "negative", input: "-10", expectedErr: &InvalidAmountError{}},
		{name: "not a number", input: "ten", expectedErr: &InvalidAmountError{}},
		{name: "empty", input: "", expectedErr: &InvalidAmountError{}},
		{name: "NaN", input: "NaN", expectedErr: &InvalidAmountError{}},
		{name: "infinity", input: "Inf", expectedErr: &InvalidAmountError{}},
		{name: "sub-cent precision", input: "0.001", expectedErr: &InvalidAmountError{}},
		{name: "over maximum", input: "1000000000000.01", expectedErr: &InvalidAmountError{}},
		{name: "exponent notation within range", input: "1.5e2", expected: decimal.NewFromInt(150)},
		{name: "huge positive exponent", input: "1e20000000", expectedErr: &InvalidAmountError{}},
		{name: "huge negative exponent", input: "1e-20000000", expectedErr: &InvalidAmountError{}},
		{name: "exponent past maximum", input: "1e13", expectedErr: &InvalidAmountError{}},
		{name: "too many digits", input: strings.Repeat("9", 40), expectedErr: &InvalidAmountError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := ParseAmount(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expected.Equal(amount), "expected %s, got %s", tt.expected, amount)
			}
		})
	}
}

func TestParseAmount_RejectsHugeExponentsQuickly(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"1e2000000000", "1e-2000000000", "9.99e999999999"} {
		start := time.Now()
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, &InvalidAmountError{})
		assert.Less(t, time.Since(start), 100*time.Millisecond, "parsing %q", input)
	}
}

func TestValidateAmount_HugeExponent(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ValidateAmount(decimal.New(1, 1_000_000_000)), &InvalidAmountError{})
	assert.ErrorIs(t, ValidateAmount(decimal.New(1, -1_000_000_000)), &InvalidAmountError{})
	assert.NoError(t, ValidateAmount(decimal.New(5, 0)))
}

func TestParseBalance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		input string

		expected    decimal.Decimal
		expectedErr error
	}

	tests := []testCase{
		{name: "zero", input: "0", expected: decimal.Zero},
		{name: "cents", input: "100.50", expected: decimal.RequireFromString("100.50")},
		{name: "at maximum", input: "1000000000000000", expected: MaxBalance},
		{name: "over maximum", input: "1000000000000000.01", expectedErr: &InvalidAmountError{}},
		{name: "negative", input: "-1", expectedErr: &InvalidAmountError{}},
		{name: "sub-cent precision", input: "1.001", expectedErr: &InvalidAmountError{}},
		{name: "not a number", input: "lots", expectedErr: &InvalidAmountError{}},
		{name: "huge exponent", input: "1e20000000", expectedErr: &InvalidAmountError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			balance, err := ParseBalance(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, tt.expected.Equal(balance), "expected %s, got %s", tt.expected, balance)
			}
		})
	}
}

func TestCheckBalanceLimit(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckBalanceLimit(MaxBalance))
	assert.ErrorIs(t, CheckBalanceLimit(MaxBalance.Add(decimal.RequireFromString("0.01"))), &InvalidAmountError{})
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "150.00", FormatAmount(decimal.NewFromInt(150)))
	assert.Equal(t, "0.50", FormatAmount(decimal.RequireFromString("0.5")))
}

func TestCanonicalLockOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"alice", "bob"}, CanonicalLockOrder([]string{"bob", "alice"}))
	assert.Equal(t, []string{"alice", "bob"}, CanonicalLockOrder([]string{"alice", "bob"}))
	assert.Equal(t, []string{"alice"}, CanonicalLockOrder([]string{"alice", "alice"}))

	input := []string{"zed", "amy"}
	_ = CanonicalLockOrder(input)
	assert.Equal(t, []string{"zed", "amy"}, input)
}
