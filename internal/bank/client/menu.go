package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/bank/protocol"
)

const requestTimeout = 10 * time.Second

const menuText = `
ATM Simulation
1. Login
2. Check Balance
3. Deposit
4. Withdraw
5. Change Password
6. Transfer
7. View Transactions
8. Exit
`

// Menu is the interactive ATM loop over a Client.
type Menu struct {
	client   *Client
	in       *bufio.Scanner
	out      io.Writer
	loggedIn bool
}

func NewMenu(client *Client, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		client: client,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run shows the menu until the user exits, the input ends or the connection
// fails.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		if choice == "8" {
			err := m.withTimeout(ctx, m.client.Exit)
			fmt.Fprintln(m.out, "Goodbye!")
			return err
		}

		if err := m.handle(ctx, choice); err != nil {
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				return err
			}

			fmt.Fprintln(m.out, describe(statusErr.Status))
		}
	}
}

func (m *Menu) handle(ctx context.Context, choice string) error {
	if choice == "1" {
		return m.login(ctx)
	}

	if !m.loggedIn {
		fmt.Fprintln(m.out, "Please login first!")
		return nil
	}

	switch choice {
	case "2":
		return m.withTimeout(ctx, func(ctx context.Context) error {
			balance, err := m.client.Balance(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(m.out, "Your balance is: %s\n", balance)
			return nil
		})
	case "3":
		amount, _ := m.prompt("Enter deposit amount: ")
		return m.expectSuccess(ctx, func(ctx context.Context) error {
			return m.client.Deposit(ctx, amount)
		})
	case "4":
		amount, _ := m.prompt("Enter withdrawal amount: ")
		return m.expectSuccess(ctx, func(ctx context.Context) error {
			return m.client.Withdraw(ctx, amount)
		})
	case "5":
		oldPassword, _ := m.prompt("Enter old password: ")
		newPassword, _ := m.prompt("Enter new password: ")
		return m.expectSuccess(ctx, func(ctx context.Context) error {
			return m.client.ChangePassword(ctx, oldPassword, newPassword)
		})
	case "6":
		recipient, _ := m.prompt("Enter recipient username: ")
		amount, _ := m.prompt("Enter transfer amount: ")
		return m.expectSuccess(ctx, func(ctx context.Context) error {
			return m.client.Transfer(ctx, recipient, amount)
		})
	case "7":
		return m.withTimeout(ctx, m.printTransactions)
	default:
		fmt.Fprintln(m.out, "Unknown choice")
		return nil
	}
}

func (m *Menu) login(ctx context.Context) error {
	username, _ := m.prompt("Enter username: ")
	password, _ := m.prompt("Enter password: ")

	err := m.withTimeout(ctx, func(ctx context.Context) error {
		return m.client.Login(ctx, username, password)
	})

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintln(m.out, "Login failed!")
		return nil
	}
	if err != nil {
		return err
	}

	m.loggedIn = true
	fmt.Fprintln(m.out, "Login successful!")
	return nil
}

func (m *Menu) printTransactions(ctx context.Context) error {
	records, err := m.client.Transactions(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Transactions:")
	if len(records) == 0 {
		fmt.Fprintln(m.out, "  none")
	}

	for _, record := range records {
		line := fmt.Sprintf("  %s  %-8s %s", record.Timestamp.Local().Format(time.DateTime), record.Kind, record.Amount)
		if record.Counterparty != "" {
			line += " to " + record.Counterparty
		}
		fmt.Fprintln(m.out, line)
	}

	return nil
}

func (m *Menu) expectSuccess(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.withTimeout(ctx, fn); err != nil {
		return err
	}

	fmt.Fprintln(m.out, describe(protocol.StatusSuccess))
	return nil
}

func (m *Menu) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	return fn(ctx)
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)

	if !m.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(m.in.Text()), true
}

func describe(status protocol.Status) string {
	switch status {
	case protocol.StatusSuccess:
		return "Done."
	case protocol.StatusInsufficientFunds:
		return "Insufficient funds."
	case protocol.StatusInvalidAmount:
		return "Invalid amount."
	case protocol.StatusInvalidOldPassword:
		return "Old password is incorrect."
	case protocol.StatusUnknownAccount:
		return "No such account."
	case protocol.StatusInvalidRecipient:
		return "Cannot transfer to yourself."
	case protocol.StatusLoginRequired:
		return "Please login first!"
	default:
		return string(status)
	}
}
