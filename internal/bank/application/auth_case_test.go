package application

import (
	"testing"

	bankmocks "github.com/Lexv0lk/atm-bank/gen/mocks/bank"
	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticator_Authenticate(t *testing.T) {
	t.Parallel()

	type deps struct {
		accountsReader *bankmocks.MockAccountsReader
		passwordHasher *bankmocks.MockPasswordHasher
	}

	type testCase struct {
		name               string
		username, password string

		prepareFn func(t *testing.T, d *deps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:     "correct password",
			username: "alice",
			password: "password123",
			prepareFn: func(t *testing.T, d *deps) {
				d.accountsReader.EXPECT().GetAccount(gomock.Any(), "alice").
					Return(domain.Account{Username: "alice", PasswordHash: "stored_hash"}, nil)
				d.passwordHasher.EXPECT().VerifyPassword("password123", "stored_hash").
					Return(true, nil)
			},
		},
		{
			name:     "incorrect password",
			username: "alice",
			password: "wrong",
			prepareFn: func(t *testing.T, d *deps) {
				d.accountsReader.EXPECT().GetAccount(gomock.Any(), "alice").
					Return(domain.Account{Username: "alice", PasswordHash: "stored_hash"}, nil)
				d.passwordHasher.EXPECT().VerifyPassword("wrong", "stored_hash").
					Return(false, nil)
			},
			expectedErr: &domain.InvalidCredentialsError{},
		},
		{
			name:     "unknown username looks like a wrong password",
			username: "ghost",
			password: "password123",
			prepareFn: func(t *testing.T, d *deps) {
				d.accountsReader.EXPECT().GetAccount(gomock.Any(), "ghost").
					Return(domain.Account{}, &domain.AccountNotFoundError{Msg: "not found"})
			},
			expectedErr: &domain.InvalidCredentialsError{},
		},
		{
			name:     "store error",
			username: "alice",
			password: "password123",
			prepareFn: func(t *testing.T, d *deps) {
				d.accountsReader.EXPECT().GetAccount(gomock.Any(), "alice").
					Return(domain.Account{}, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "malformed stored hash",
			username: "alice",
			password: "password123",
			prepareFn: func(t *testing.T, d *deps) {
				d.accountsReader.EXPECT().GetAccount(gomock.Any(), "alice").
					Return(domain.Account{Username: "alice", PasswordHash: "broken"}, nil)
				d.passwordHasher.EXPECT().VerifyPassword("password123", "broken").
					Return(false, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				accountsReader: bankmocks.NewMockAccountsReader(ctrl),
				passwordHasher: bankmocks.NewMockPasswordHasher(ctrl),
			}

			tt.prepareFn(t, d)

			authenticator := NewAuthenticator(d.accountsReader, d.passwordHasher)
			err := authenticator.Authenticate(testContext(t), tt.username, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
