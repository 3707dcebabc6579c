// Package nats publishes committed transaction records to NATS subjects.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/nats-io/nats.go"
)

const SubjectPrefix = "bank.transactions"

type messagePublisher interface {
	Publish(subject string, data []byte) error
}

type recordMessage struct {
	Username     string    `json:"username"`
	Kind         string    `json:"kind"`
	Amount       string    `json:"amount"`
	Counterparty string    `json:"counterparty,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type RecordsPublisher struct {
	conn messagePublisher
}

func NewRecordsPublisher(conn *nats.Conn) *RecordsPublisher {
	return &RecordsPublisher{conn: conn}
}

func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("atm-bank"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return conn, nil
}

// Subject returns the subject records of username are published to. The
// username must form a single subject token.
func Subject(username string) (string, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return "", fmt.Errorf("no subject for username: %w", err)
	}

	return SubjectPrefix + "." + username, nil
}

func (p *RecordsPublisher) PublishRecord(_ context.Context, record domain.TransactionRecord) error {
	subject, err := Subject(record.Username)
	if err != nil {
		return err
	}

	data, err := json.Marshal(recordMessage{
		Username:     record.Username,
		Kind:         string(record.Kind),
		Amount:       domain.FormatAmount(record.Amount),
		Counterparty: record.Counterparty,
		Timestamp:    record.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish record: %w", err)
	}

	return nil
}
