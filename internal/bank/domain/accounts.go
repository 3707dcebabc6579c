package domain

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=accounts.go -destination=../../../gen/mocks/bank/mock_accounts.go -package=mocks

type Account struct {
	Username     string
	Balance      decimal.Decimal
	PasswordHash string
}

type TransactionKind string

const (
	KindDeposit  TransactionKind = "DEPOSIT"
	KindWithdraw TransactionKind = "WITHDRAW"
	KindTransfer TransactionKind = "TRANSFER"
)

type TransactionRecord struct {
	Username     string
	Kind         TransactionKind
	Amount       decimal.Decimal
	Counterparty string
	Timestamp    time.Time
}

type AccountsReader interface {
	GetAccount(ctx context.Context, username string) (Account, error)
	ListRecords(ctx context.Context, username string) ([]TransactionRecord, error)
}

type AccountCreator interface {
	EnsureAccountCreated(ctx context.Context, username, passwordHash string, balance decimal.Decimal) (bool, error)
}

// LockedAccounts is a view over accounts whose locks are held by the caller.
// Writes become visible only when the surrounding LockedFunc returns nil.
type LockedAccounts interface {
	GetAccount(ctx context.Context, username string) (Account, error)
	SetBalance(ctx context.Context, username string, balance decimal.Decimal) error
	SetPasswordHash(ctx context.Context, username, passwordHash string) error
	AppendRecord(ctx context.Context, record TransactionRecord) error
}

type LockedFunc func(ctx context.Context, accounts LockedAccounts) error

type AccountsLocker interface {
	WithinLockedAccounts(ctx context.Context, usernames []string, fn LockedFunc) error
}

type AccountsStore interface {
	AccountsReader
	AccountCreator
	AccountsLocker
}

// CanonicalLockOrder sorts and deduplicates usernames. Every store acquires
// account locks in this order, so two transfers in opposite directions
// cannot deadlock.
func CanonicalLockOrder(usernames []string) []string {
	ordered := slices.Clone(usernames)
	slices.Sort(ordered)

	return slices.Compact(ordered)
}
