package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
)

// Record is the JSON shape of a transaction record in a TRANSACTIONS response.
type Record struct {
	Kind         string    `json:"kind"`
	Amount       string    `json:"amount"`
	Counterparty string    `json:"counterparty,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func RecordsFromDomain(records []domain.TransactionRecord) []Record {
	result := make([]Record, 0, len(records))
	for _, record := range records {
		result = append(result, recordFromDomain(record))
	}

	return result
}

func recordFromDomain(record domain.TransactionRecord) Record {
	return Record{
		Kind:         string(record.Kind),
		Amount:       domain.FormatAmount(record.Amount),
		Counterparty: record.Counterparty,
		Timestamp:    record.Timestamp.UTC(),
	}
}

// EncodeRecords encodes the newest records whose JSON array fits in maxSize
// bytes, oldest first, and reports how many were kept. A maxSize of zero or
// less keeps every record.
func EncodeRecords(records []domain.TransactionRecord, maxSize int) ([]byte, int, error) {
	encoded := make([][]byte, 0, len(records))
	size := len("[]")

	for i := len(records) - 1; i >= 0; i-- {
		item, err := json.Marshal(recordFromDomain(records[i]))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode records: %w", err)
		}

		itemSize := len(item)
		if len(encoded) > 0 {
			itemSize++
		}

		if maxSize > 0 && size+itemSize > maxSize {
			break
		}

		size += itemSize
		encoded = append(encoded, item)
	}

	slices.Reverse(encoded)

	data := make([]byte, 0, size)
	data = append(data, '[')
	data = append(data, bytes.Join(encoded, []byte{','})...)
	data = append(data, ']')

	return data, len(encoded), nil
}

func DecodeRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	return records, nil
}
