package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/bank/mock_services.go -package=mocks

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) error
}

type BankingService interface {
	GetBalance(ctx context.Context, username string) (decimal.Decimal, error)
	Transactions(ctx context.Context, username string) ([]TransactionRecord, error)
	Deposit(ctx context.Context, username string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, username string, amount decimal.Decimal) error
	Transfer(ctx context.Context, fromUsername, toUsername string, amount decimal.Decimal) error
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}
