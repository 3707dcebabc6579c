package application

import (
	"fmt"
	"testing"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/bank/infrastructure/memory"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newMemoryEngine(t *testing.T, balances map[string]string) (*TransactionEngine, *memory.AccountsStore, domain.PasswordHasher) {
	t.Helper()

	hasher := domain.NewArgonPasswordHasherWithParams(domain.LightArgonParams)
	store := memory.NewAccountsStore()

	for username, balance := range balances {
		hash, err := hasher.HashPassword("password-" + username)
		require.NoError(t, err)

		_, err = store.EnsureAccountCreated(testContext(t), username, hash, decimal.RequireFromString(balance))
		require.NoError(t, err)
	}

	engine := NewTransactionEngine(store, hasher, domain.NopEventPublisher{}, logging.NopLogger)

	return engine, store, hasher
}

func TestTransactionEngine_DepositWithdrawSequence(t *testing.T) {
	t.Parallel()

	engine, store, _ := newMemoryEngine(t, map[string]string{"alice": "10"})

	type step struct {
		deposit bool
		amount  string
	}

	steps := []step{
		{deposit: true, amount: "5.25"},
		{deposit: false, amount: "12"},
		{deposit: false, amount: "4"},
		{deposit: true, amount: "0.75"},
		{deposit: false, amount: "1"},
	}

	expected := decimal.RequireFromString("10")
	succeeded := 0

	for _, s := range steps {
		amount := decimal.RequireFromString(s.amount)

		if s.deposit {
			require.NoError(t, engine.Deposit(testContext(t), "alice", amount))
			expected = expected.Add(amount)
			succeeded++
			continue
		}

		err := engine.Withdraw(testContext(t), "alice", amount)
		if expected.LessThan(amount) {
			assert.ErrorIs(t, err, &domain.InsufficientFundsError{})
			continue
		}

		require.NoError(t, err)
		expected = expected.Sub(amount)
		succeeded++
	}

	balance, err := engine.GetBalance(testContext(t), "alice")
	require.NoError(t, err)
	assert.True(t, expected.Equal(balance), "expected %s, got %s", expected, balance)

	records, err := store.ListRecords(testContext(t), "alice")
	require.NoError(t, err)
	assert.Len(t, records, succeeded)
}

func TestTransactionEngine_ConcurrentOppositeTransfers(t *testing.T) {
	t.Parallel()

	engine, _, _ := newMemoryEngine(t, map[string]string{"alice": "1000", "bob": "1000"})

	const transfers = 200

	g, ctx := errgroup.WithContext(testContext(t))
	for i := 0; i < transfers; i++ {
		g.Go(func() error {
			return engine.Transfer(ctx, "alice", "bob", decimal.NewFromInt(1))
		})
		g.Go(func() error {
			return engine.Transfer(ctx, "bob", "alice", decimal.NewFromInt(1))
		})
	}
	require.NoError(t, g.Wait())

	aliceBalance, err := engine.GetBalance(testContext(t), "alice")
	require.NoError(t, err)
	bobBalance, err := engine.GetBalance(testContext(t), "bob")
	require.NoError(t, err)

	assert.True(t, aliceBalance.Add(bobBalance).Equal(decimal.NewFromInt(2000)))
	assert.True(t, aliceBalance.Equal(decimal.NewFromInt(1000)))

	aliceRecords, err := engine.Transactions(testContext(t), "alice")
	require.NoError(t, err)
	assert.Len(t, aliceRecords, transfers)
}

func TestTransactionEngine_ConcurrentWithdrawNeverOverdraws(t *testing.T) {
	t.Parallel()

	engine, _, _ := newMemoryEngine(t, map[string]string{"alice": "100"})

	const attempts = 50

	var g errgroup.Group
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			results[i] = engine.Withdraw(testContext(t), "alice", decimal.NewFromInt(10))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, &domain.InsufficientFundsError{})
	}

	assert.Equal(t, 10, succeeded)

	balance, err := engine.GetBalance(testContext(t), "alice")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestTransactionEngine_AliceBobScenario(t *testing.T) {
	t.Parallel()

	engine, _, _ := newMemoryEngine(t, map[string]string{"alice": "100", "bob": "50"})

	require.NoError(t, engine.Deposit(testContext(t), "alice", decimal.NewFromInt(50)))
	require.NoError(t, engine.Transfer(testContext(t), "alice", "bob", decimal.NewFromInt(30)))

	err := engine.Withdraw(testContext(t), "alice", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, &domain.InsufficientFundsError{})

	err = engine.Transfer(testContext(t), "alice", "carol", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, &domain.AccountNotFoundError{})

	aliceBalance, err := engine.GetBalance(testContext(t), "alice")
	require.NoError(t, err)
	assert.Equal(t, "120.00", domain.FormatAmount(aliceBalance))

	bobBalance, err := engine.GetBalance(testContext(t), "bob")
	require.NoError(t, err)
	assert.Equal(t, "80.00", domain.FormatAmount(bobBalance))

	records, err := engine.Transactions(testContext(t), "alice")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.KindDeposit, records[0].Kind)
	assert.Equal(t, domain.KindTransfer, records[1].Kind)
	assert.Equal(t, "bob", records[1].Counterparty)

	bobRecords, err := engine.Transactions(testContext(t), "bob")
	require.NoError(t, err)
	assert.Empty(t, bobRecords)
}

func TestTransactionEngine_ChangePasswordRoundTrip(t *testing.T) {
	t.Parallel()

	engine, store, _ := newMemoryEngine(t, map[string]string{"alice": "100"})
	authenticator := NewAuthenticator(store, domain.NewArgonPasswordHasherWithParams(domain.LightArgonParams))

	err := engine.ChangePassword(testContext(t), "alice", "wrong", "new-password")
	assert.ErrorIs(t, err, &domain.InvalidCredentialsError{})
	require.NoError(t, authenticator.Authenticate(testContext(t), "alice", "password-alice"))

	require.NoError(t, engine.ChangePassword(testContext(t), "alice", "password-alice", "new-password"))

	err = authenticator.Authenticate(testContext(t), "alice", "password-alice")
	assert.ErrorIs(t, err, &domain.InvalidCredentialsError{})
	assert.NoError(t, authenticator.Authenticate(testContext(t), "alice", "new-password"))

	records, err := engine.Transactions(testContext(t), "alice")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestTransactionEngine_ConcurrentPasswordChangesOneWins(t *testing.T) {
	t.Parallel()

	engine, store, _ := newMemoryEngine(t, map[string]string{"alice": "100"})
	authenticator := NewAuthenticator(store, domain.NewArgonPasswordHasherWithParams(domain.LightArgonParams))

	const changers = 4

	var g errgroup.Group
	results := make([]error, changers)
	for i := 0; i < changers; i++ {
		g.Go(func() error {
			results[i] = engine.ChangePassword(testContext(t), "alice", "password-alice", fmt.Sprintf("new-%d", i))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	winners := 0
	winner := ""
	for i, err := range results {
		if err == nil {
			winners++
			winner = fmt.Sprintf("new-%d", i)
			continue
		}
		assert.ErrorIs(t, err, &domain.InvalidCredentialsError{})
	}

	require.Equal(t, 1, winners)
	assert.NoError(t, authenticator.Authenticate(testContext(t), "alice", winner))
}

func TestTransactionEngine_BalanceCeiling(t *testing.T) {
	t.Parallel()

	engine, store, _ := newMemoryEngine(t, map[string]string{
		"alice": "999999999999999",
		"bob":   "1000",
	})

	err := engine.Deposit(testContext(t), "alice", decimal.NewFromInt(1))
	require.NoError(t, err)

	err = engine.Deposit(testContext(t), "alice", decimal.RequireFromString("0.01"))
	assert.ErrorIs(t, err, &domain.InvalidAmountError{})

	err = engine.Transfer(testContext(t), "bob", "alice", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, &domain.InvalidAmountError{})

	aliceBalance, err := engine.GetBalance(testContext(t), "alice")
	require.NoError(t, err)
	assert.True(t, domain.MaxBalance.Equal(aliceBalance), "got %s", aliceBalance)

	bobBalance, err := engine.GetBalance(testContext(t), "bob")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(bobBalance), "got %s", bobBalance)

	aliceRecords, err := store.ListRecords(testContext(t), "alice")
	require.NoError(t, err)
	assert.Len(t, aliceRecords, 1)

	bobRecords, err := store.ListRecords(testContext(t), "bob")
	require.NoError(t, err)
	assert.Empty(t, bobRecords)
}
