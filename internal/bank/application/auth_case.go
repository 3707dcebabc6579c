package application

import (
	"context"
	"errors"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
)

type Authenticator struct {
	accountsReader domain.AccountsReader
	passwordHasher domain.PasswordHasher
}

func NewAuthenticator(accountsReader domain.AccountsReader, passwordHasher domain.PasswordHasher) *Authenticator {
	return &Authenticator{
		accountsReader: accountsReader,
		passwordHasher: passwordHasher,
	}
}

// Authenticate reports an unknown username and a wrong password the same way.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) error {
	account, err := a.accountsReader.GetAccount(ctx, username)
	if errors.Is(err, &domain.AccountNotFoundError{}) {
		return &domain.InvalidCredentialsError{Msg: "username or password is incorrect"}
	}
	if err != nil {
		return err
	}

	valid, err := a.passwordHasher.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		return err
	}

	if !valid {
		return &domain.InvalidCredentialsError{Msg: "username or password is incorrect"}
	}

	return nil
}
