package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AccountsStore struct {
	querier   database.QueryExecuter
	txManager database.TxManager
}

func NewAccountsStore(querier database.QueryExecuter, txManager database.TxManager) *AccountsStore {
	return &AccountsStore{
		querier:   querier,
		txManager: txManager,
	}
}

func (s *AccountsStore) EnsureAccountCreated(ctx context.Context, username, passwordHash string, balance decimal.Decimal) (bool, error) {
	if balance.IsNegative() {
		return false, &domain.InvalidAmountError{Msg: "initial balance must not be negative"}
	}

	insertSQL := `INSERT INTO accounts (username, balance, password_hash) VALUES ($1, $2::numeric, $3) ON CONFLICT (username) DO NOTHING`

	tag, err := s.querier.Exec(ctx, insertSQL, username, domain.FormatAmount(balance), passwordHash)
	if err != nil {
		return false, fmt.Errorf("failed to create account: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *AccountsStore) GetAccount(ctx context.Context, username string) (domain.Account, error) {
	selectSQL := `SELECT username, balance::text, password_hash FROM accounts WHERE username = $1`

	account, err := scanAccount(s.querier.QueryRow(ctx, selectSQL, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, accountNotFound(username)
		}

		return domain.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

func (s *AccountsStore) ListRecords(ctx context.Context, username string) ([]domain.TransactionRecord, error) {
	existsSQL := `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`

	var exists bool
	if err := s.querier.QueryRow(ctx, existsSQL, username).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return nil, accountNotFound(username)
	}

	recordsSQL := `SELECT username, kind, amount::text, COALESCE(counterparty, ''), created_at
FROM transactions
WHERE username = $1
ORDER BY id`

	rows, err := s.querier.Query(ctx, recordsSQL, username)
	if err != nil {
		return nil, fmt.Errorf("failed to select transactions: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TransactionRecord, 0)
	for rows.Next() {
		var (
			record domain.TransactionRecord
			kind   string
			amount string
		)

		err = rows.Scan(&record.Username, &kind, &amount, &record.Counterparty, &record.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}

		record.Kind = domain.TransactionKind(kind)
		record.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction amount %q: %w", amount, err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return records, nil
}

// WithinLockedAccounts row-locks the accounts ordered by byte-wise username
// comparison, matching domain.CanonicalLockOrder.
func (s *AccountsStore) WithinLockedAccounts(ctx context.Context, usernames []string, fn domain.LockedFunc) error {
	ordered := domain.CanonicalLockOrder(usernames)

	return s.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		locked, err := lockAccounts(ctx, executor, ordered)
		if err != nil {
			return err
		}

		view := &lockedAccounts{
			executor:  executor,
			requested: make(map[string]struct{}, len(ordered)),
			accounts:  locked,
		}
		for _, username := range ordered {
			view.requested[username] = struct{}{}
		}

		return fn(ctx, view)
	})
}

func lockAccounts(ctx context.Context, querier database.Querier, usernames []string) (map[string]domain.Account, error) {
	lockSQL := `SELECT username, balance::text, password_hash
FROM accounts
WHERE username = ANY($1)
ORDER BY username COLLATE "C"
FOR UPDATE`

	rows, err := querier.Query(ctx, lockSQL, usernames)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(usernames))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[account.Username] = account
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locked accounts: %w", err)
	}

	return accounts, nil
}

type lockedAccounts struct {
	executor  database.QueryExecuter
	requested map[string]struct{}
	accounts  map[string]domain.Account
}

func (la *lockedAccounts) current(username string) (domain.Account, error) {
	if _, ok := la.requested[username]; !ok {
		return domain.Account{}, fmt.Errorf("account %q is not locked by this operation", username)
	}

	account, ok := la.accounts[username]
	if !ok {
		return domain.Account{}, accountNotFound(username)
	}

	return account, nil
}

func (la *lockedAccounts) GetAccount(_ context.Context, username string) (domain.Account, error) {
	return la.current(username)
}

func (la *lockedAccounts) SetBalance(ctx context.Context, username string, balance decimal.Decimal) error {
	account, err := la.current(username)
	if err != nil {
		return err
	}

	if balance.IsNegative() {
		return &domain.InsufficientFundsError{Msg: fmt.Sprintf("balance of %q would become negative", username)}
	}

	updateSQL := `UPDATE accounts SET balance = $1::numeric WHERE username = $2`
	if _, err := la.executor.Exec(ctx, updateSQL, domain.FormatAmount(balance), username); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	account.Balance = balance
	la.accounts[username] = account

	return nil
}

func (la *lockedAccounts) SetPasswordHash(ctx context.Context, username, passwordHash string) error {
	account, err := la.current(username)
	if err != nil {
		return err
	}

	updateSQL := `UPDATE accounts SET password_hash = $1 WHERE username = $2`
	if _, err := la.executor.Exec(ctx, updateSQL, passwordHash, username); err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	account.PasswordHash = passwordHash
	la.accounts[username] = account

	return nil
}

func (la *lockedAccounts) AppendRecord(ctx context.Context, record domain.TransactionRecord) error {
	if _, err := la.current(record.Username); err != nil {
		return err
	}

	insertSQL := `INSERT INTO transactions (username, kind, amount, counterparty, created_at)
VALUES ($1, $2, $3::numeric, NULLIF($4, ''), $5)`

	_, err := la.executor.Exec(ctx, insertSQL,
		record.Username, string(record.Kind), domain.FormatAmount(record.Amount), record.Counterparty, record.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert transaction record: %w", err)
	}

	return nil
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var (
		account domain.Account
		balance string
	)

	if err := row.Scan(&account.Username, &balance, &account.PasswordHash); err != nil {
		return domain.Account{}, err
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("failed to parse balance %q: %w", balance, err)
	}
	account.Balance = parsed

	return account, nil
}

func accountNotFound(username string) *domain.AccountNotFoundError {
	return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %q not found", username)}
}
