package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/shopspring/decimal"
)

// TransactionEngine is the only writer of balances and credentials.
type TransactionEngine struct {
	store          domain.AccountsStore
	passwordHasher domain.PasswordHasher
	publisher      domain.EventPublisher
	logger         logging.Logger

	now func() time.Time
}

func NewTransactionEngine(
	store domain.AccountsStore,
	passwordHasher domain.PasswordHasher,
	publisher domain.EventPublisher,
	logger logging.Logger,
) *TransactionEngine {
	return &TransactionEngine{
		store:          store,
		passwordHasher: passwordHasher,
		publisher:      publisher,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (e *TransactionEngine) GetBalance(ctx context.Context, username string) (decimal.Decimal, error) {
	account, err := e.store.GetAccount(ctx, username)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return account.Balance, nil
}

func (e *TransactionEngine) Transactions(ctx context.Context, username string) ([]domain.TransactionRecord, error) {
	return e.store.ListRecords(ctx, username)
}

func (e *TransactionEngine) Deposit(ctx context.Context, username string, amount decimal.Decimal) error {
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	record := domain.TransactionRecord{
		Username: username,
		Kind:     domain.KindDeposit,
		Amount:   amount,
	}

	err := e.store.WithinLockedAccounts(context.WithoutCancel(ctx), []string{username}, func(ctx context.Context, accounts domain.LockedAccounts) error {
		account, err := accounts.GetAccount(ctx, username)
		if err != nil {
			return err
		}

		balance := account.Balance.Add(amount)
		if err := domain.CheckBalanceLimit(balance); err != nil {
			return err
		}

		if err := accounts.SetBalance(ctx, username, balance); err != nil {
			return err
		}

		record.Timestamp = e.now()
		return accounts.AppendRecord(ctx, record)
	})
	if err != nil {
		return err
	}

	e.publish(ctx, record)
	return nil
}

func (e *TransactionEngine) Withdraw(ctx context.Context, username string, amount decimal.Decimal) error {
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	record := domain.TransactionRecord{
		Username: username,
		Kind:     domain.KindWithdraw,
		Amount:   amount,
	}

	err := e.store.WithinLockedAccounts(context.WithoutCancel(ctx), []string{username}, func(ctx context.Context, accounts domain.LockedAccounts) error {
		account, err := accounts.GetAccount(ctx, username)
		if err != nil {
			return err
		}

		if account.Balance.LessThan(amount) {
			return &domain.InsufficientFundsError{Msg: fmt.Sprintf("balance of %q is lower than %s", username, domain.FormatAmount(amount))}
		}

		if err := accounts.SetBalance(ctx, username, account.Balance.Sub(amount)); err != nil {
			return err
		}

		record.Timestamp = e.now()
		return accounts.AppendRecord(ctx, record)
	})
	if err != nil {
		return err
	}

	e.publish(ctx, record)
	return nil
}

// Transfer moves amount from one account to another and logs a single
// TRANSFER record under the sender.
func (e *TransactionEngine) Transfer(ctx context.Context, fromUsername, toUsername string, amount decimal.Decimal) error {
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	if fromUsername == toUsername {
		return &domain.InvalidArgumentsError{Msg: "cannot transfer to the same account"}
	}

	record := domain.TransactionRecord{
		Username:     fromUsername,
		Kind:         domain.KindTransfer,
		Amount:       amount,
		Counterparty: toUsername,
	}

	usernames := []string{fromUsername, toUsername}
	err := e.store.WithinLockedAccounts(context.WithoutCancel(ctx), usernames, func(ctx context.Context, accounts domain.LockedAccounts) error {
		sender, err := accounts.GetAccount(ctx, fromUsername)
		if err != nil {
			return err
		}

		recipient, err := accounts.GetAccount(ctx, toUsername)
		if err != nil {
			return err
		}

		if sender.Balance.LessThan(amount) {
			return &domain.InsufficientFundsError{Msg: fmt.Sprintf("balance of %q is lower than %s", fromUsername, domain.FormatAmount(amount))}
		}

		recipientBalance := recipient.Balance.Add(amount)
		if err := domain.CheckBalanceLimit(recipientBalance); err != nil {
			return err
		}

		if err := accounts.SetBalance(ctx, fromUsername, sender.Balance.Sub(amount)); err != nil {
			return err
		}

		if err := accounts.SetBalance(ctx, toUsername, recipientBalance); err != nil {
			return err
		}

		record.Timestamp = e.now()
		return accounts.AppendRecord(ctx, record)
	})
	if err != nil {
		return err
	}

	e.publish(ctx, record)
	return nil
}

// ChangePassword hashes outside the account lock. The new hash is stored only
// if the credential has not changed since oldPassword was verified.
func (e *TransactionEngine) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	account, err := e.store.GetAccount(ctx, username)
	if err != nil {
		return err
	}

	valid, err := e.passwordHasher.VerifyPassword(oldPassword, account.PasswordHash)
	if err != nil {
		return err
	}

	if !valid {
		return &domain.InvalidCredentialsError{Msg: "old password is incorrect"}
	}

	newHash, err := e.passwordHasher.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return e.store.WithinLockedAccounts(context.WithoutCancel(ctx), []string{username}, func(ctx context.Context, accounts domain.LockedAccounts) error {
		current, err := accounts.GetAccount(ctx, username)
		if err != nil {
			return err
		}

		if current.PasswordHash != account.PasswordHash {
			return &domain.InvalidCredentialsError{Msg: "password was changed concurrently"}
		}

		return accounts.SetPasswordHash(ctx, username, newHash)
	})
}

func (e *TransactionEngine) publish(ctx context.Context, record domain.TransactionRecord) {
	err := e.publisher.PublishRecord(context.WithoutCancel(ctx), record)
	if err != nil {
		e.logger.Warn("failed to publish transaction record",
			"username", record.Username,
			"kind", string(record.Kind),
			"error", err.Error(),
		)
	}
}
