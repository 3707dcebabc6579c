package domain

import "context"

//go:generate mockgen -source=events.go -destination=../../../gen/mocks/bank/mock_events.go -package=mocks

// EventPublisher announces committed transaction records to other systems.
type EventPublisher interface {
	PublishRecord(ctx context.Context, record TransactionRecord) error
}

type NopEventPublisher struct{}

func (NopEventPublisher) PublishRecord(context.Context, TransactionRecord) error {
	return nil
}
