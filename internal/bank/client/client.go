// Package client talks to a bank server over the framed protocol.
package client

import (
	"context"
	"fmt"
	"net"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/bank/protocol"
	"github.com/Lexv0lk/atm-bank/internal/pkg/wire"
)

// StatusError is returned when the server answers with anything other than
// the expected success response.
type StatusError struct {
	Status protocol.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server responded %s", e.Status)
}

func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	return ok && (t.Status == "" || t.Status == e.Status)
}

type Client struct {
	conn   net.Conn
	reader *wire.Reader
	writer *wire.Writer
	cipher domain.CredentialCipher
}

func Dial(ctx context.Context, addr string, cipher domain.CredentialCipher) (*Client, error) {
	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to bank: %w", err)
	}

	return New(conn, cipher), nil
}

func New(conn net.Conn, cipher domain.CredentialCipher) *Client {
	return &Client{
		conn:   conn,
		reader: wire.NewReader(conn, wire.DefaultMaxPayloadSize),
		writer: wire.NewWriter(conn),
		cipher: cipher,
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// RoundTrip sends frames as one request and returns the single response frame.
func (c *Client) RoundTrip(ctx context.Context, frames ...wire.Frame) (wire.Frame, error) {
	deadline, _ := ctx.Deadline()
	if err := c.conn.SetDeadline(deadline); err != nil {
		return wire.Frame{}, fmt.Errorf("failed to set deadline: %w", err)
	}

	if err := c.writer.WriteFrames(frames...); err != nil {
		return wire.Frame{}, err
	}

	response, err := c.reader.ReadFrame()
	if err != nil {
		return wire.Frame{}, fmt.Errorf("failed to read response: %w", err)
	}

	return response, nil
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	encrypted, err := c.cipher.Encrypt(password)
	if err != nil {
		return err
	}

	return c.expectStatus(ctx, protocol.StatusSuccess,
		protocol.Request(protocol.CommandLogin, wire.Text(username), wire.Cipher(encrypted))...)
}

// Balance returns the balance as the server formats it, e.g. "150.00".
func (c *Client) Balance(ctx context.Context) (string, error) {
	response, err := c.RoundTrip(ctx, protocol.Request(protocol.CommandBalance)...)
	if err != nil {
		return "", err
	}

	if response.Kind != wire.KindCipher {
		return "", statusError(response)
	}

	return c.cipher.Decrypt(response.Payload)
}

func (c *Client) Deposit(ctx context.Context, amount string) error {
	return c.expectStatus(ctx, protocol.StatusSuccess,
		protocol.Request(protocol.CommandDeposit, wire.Text(amount))...)
}

func (c *Client) Withdraw(ctx context.Context, amount string) error {
	return c.expectStatus(ctx, protocol.StatusSuccess,
		protocol.Request(protocol.CommandWithdraw, wire.Text(amount))...)
}

func (c *Client) Transfer(ctx context.Context, recipient, amount string) error {
	return c.expectStatus(ctx, protocol.StatusSuccess,
		protocol.Request(protocol.CommandTransfer, wire.Text(recipient), wire.Text(amount))...)
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	encryptedOld, err := c.cipher.Encrypt(oldPassword)
	if err != nil {
		return err
	}

	encryptedNew, err := c.cipher.Encrypt(newPassword)
	if err != nil {
		return err
	}

	return c.expectStatus(ctx, protocol.StatusSuccess,
		protocol.Request(protocol.CommandChangePassword, wire.Cipher(encryptedOld), wire.Cipher(encryptedNew))...)
}

func (c *Client) Transactions(ctx context.Context) ([]protocol.Record, error) {
	response, err := c.RoundTrip(ctx, protocol.Request(protocol.CommandTransactions)...)
	if err != nil {
		return nil, err
	}

	if response.Kind != wire.KindText {
		return nil, statusError(response)
	}

	return protocol.DecodeRecords(response.Payload)
}

// Exit ends the session. The connection is closed afterwards.
func (c *Client) Exit(ctx context.Context) error {
	defer c.conn.Close()

	return c.expectStatus(ctx, protocol.StatusGoodbye, protocol.Request(protocol.CommandExit)...)
}

func (c *Client) expectStatus(ctx context.Context, expected protocol.Status, frames ...wire.Frame) error {
	response, err := c.RoundTrip(ctx, frames...)
	if err != nil {
		return err
	}

	if response.Kind != wire.KindTag || protocol.Status(response.Payload) != expected {
		return statusError(response)
	}

	return nil
}

func statusError(response wire.Frame) error {
	if response.Kind != wire.KindTag {
		return fmt.Errorf("unexpected %s frame in response", response.Kind)
	}

	return &StatusError{Status: protocol.Status(response.Payload)}
}
