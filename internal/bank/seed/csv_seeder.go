// Package seed creates the initial accounts from a CSV file with the header
// username,password,balance.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
)

var expectedHeader = []string{"username", "password", "balance"}

type Seeder struct {
	accountCreator domain.AccountCreator
	passwordHasher domain.PasswordHasher
	logger         logging.Logger
}

func NewSeeder(accountCreator domain.AccountCreator, passwordHasher domain.PasswordHasher, logger logging.Logger) *Seeder {
	return &Seeder{
		accountCreator: accountCreator,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (s *Seeder) SeedFile(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	return s.Seed(ctx, file)
}

// Seed creates every listed account that does not exist yet and returns how
// many were created. Existing accounts keep their balance and credential.
func (s *Seeder) Seed(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(expectedHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read seed header: %w", err)
	}

	if !isExpectedHeader(header) {
		return 0, fmt.Errorf("unexpected seed header %q, want %q", header, expectedHeader)
	}

	created := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return created, fmt.Errorf("failed to read seed row: %w", err)
		}

		line, _ := reader.FieldPos(0)

		ok, err := s.seedRow(ctx, row)
		if err != nil {
			return created, fmt.Errorf("seed line %d: %w", line, err)
		}

		if ok {
			created++
		}
	}

	s.logger.Info("accounts seeded", "created", created)
	return created, nil
}

func (s *Seeder) seedRow(ctx context.Context, row []string) (bool, error) {
	username := strings.TrimSpace(row[0])
	password := row[1]

	if err := domain.ValidateUsername(username); err != nil {
		return false, err
	}

	balance, err := domain.ParseBalance(row[2])
	if err != nil {
		return false, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.accountCreator.EnsureAccountCreated(ctx, username, passwordHash, balance)
}

func isExpectedHeader(header []string) bool {
	for i, column := range expectedHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != column {
			return false
		}
	}

	return true
}
