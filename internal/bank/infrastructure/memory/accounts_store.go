// Package memory keeps accounts in process memory. Each account has its own
// mutex, and multi-account operations lock in canonical order.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/shopspring/decimal"
)

type accountEntry struct {
	mu      sync.Mutex
	account domain.Account
	records []domain.TransactionRecord
}

type AccountsStore struct {
	mu       sync.RWMutex
	accounts map[string]*accountEntry
}

func NewAccountsStore() *AccountsStore {
	return &AccountsStore{
		accounts: make(map[string]*accountEntry),
	}
}

func (s *AccountsStore) entry(username string) (*accountEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.accounts[username]
	return e, ok
}

func (s *AccountsStore) EnsureAccountCreated(_ context.Context, username, passwordHash string, balance decimal.Decimal) (bool, error) {
	if balance.IsNegative() {
		return false, &domain.InvalidAmountError{Msg: "initial balance must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[username]; exists {
		return false, nil
	}

	s.accounts[username] = &accountEntry{
		account: domain.Account{
			Username:     username,
			Balance:      balance,
			PasswordHash: passwordHash,
		},
	}

	return true, nil
}

func (s *AccountsStore) GetAccount(_ context.Context, username string) (domain.Account, error) {
	e, ok := s.entry(username)
	if !ok {
		return domain.Account{}, accountNotFound(username)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.account, nil
}

func (s *AccountsStore) ListRecords(_ context.Context, username string) ([]domain.TransactionRecord, error) {
	e, ok := s.entry(username)
	if !ok {
		return nil, accountNotFound(username)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.records), nil
}

// WithinLockedAccounts holds the locks of every existing account in usernames
// while fn runs. Usernames without an account are still part of the view and
// report AccountNotFoundError.
func (s *AccountsStore) WithinLockedAccounts(ctx context.Context, usernames []string, fn domain.LockedFunc) error {
	ordered := domain.CanonicalLockOrder(usernames)

	view := &lockedAccounts{
		requested: make(map[string]struct{}, len(ordered)),
		entries:   make(map[string]*accountEntry, len(ordered)),
		staged:    make(map[string]domain.Account, len(ordered)),
	}

	for _, username := range ordered {
		view.requested[username] = struct{}{}

		e, ok := s.entry(username)
		if !ok {
			continue
		}

		e.mu.Lock()
		defer e.mu.Unlock()

		view.entries[username] = e
	}

	if err := fn(ctx, view); err != nil {
		return err
	}

	view.apply()
	return nil
}

type lockedAccounts struct {
	requested map[string]struct{}
	entries   map[string]*accountEntry

	staged  map[string]domain.Account
	records []domain.TransactionRecord
}

func (la *lockedAccounts) current(username string) (domain.Account, error) {
	if _, ok := la.requested[username]; !ok {
		return domain.Account{}, fmt.Errorf("account %q is not locked by this operation", username)
	}

	if account, ok := la.staged[username]; ok {
		return account, nil
	}

	e, ok := la.entries[username]
	if !ok {
		return domain.Account{}, accountNotFound(username)
	}

	return e.account, nil
}

func (la *lockedAccounts) GetAccount(_ context.Context, username string) (domain.Account, error) {
	return la.current(username)
}

func (la *lockedAccounts) SetBalance(_ context.Context, username string, balance decimal.Decimal) error {
	account, err := la.current(username)
	if err != nil {
		return err
	}

	if balance.IsNegative() {
		return &domain.InsufficientFundsError{Msg: fmt.Sprintf("balance of %q would become negative", username)}
	}

	account.Balance = balance
	la.staged[username] = account

	return nil
}

func (la *lockedAccounts) SetPasswordHash(_ context.Context, username, passwordHash string) error {
	account, err := la.current(username)
	if err != nil {
		return err
	}

	account.PasswordHash = passwordHash
	la.staged[username] = account

	return nil
}

func (la *lockedAccounts) AppendRecord(_ context.Context, record domain.TransactionRecord) error {
	if _, err := la.current(record.Username); err != nil {
		return err
	}

	la.records = append(la.records, record)
	return nil
}

func (la *lockedAccounts) apply() {
	for username, account := range la.staged {
		la.entries[username].account = account
	}

	for _, record := range la.records {
		e := la.entries[record.Username]
		e.records = append(e.records, record)
	}
}

func accountNotFound(username string) *domain.AccountNotFoundError {
	return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %q not found", username)}
}
