package domain

import (
	"encoding/json"
	"time"
)

// Donation is a persisted record of one incoming payment to the treasury.
// TxHash is the natural key: at most one record exists per hash, and a record
// is derived deterministically from exactly one ledger entry. Records are
// never mutated or deleted after creation.
type Donation struct {
	ID             string
	TxHash         string
	Sender         string
	AmountValue    string
	Currency       string
	Issuer         *string
	Timestamp      string
	ExplorerURL    string
	DestinationTag *uint32
	Raw            json.RawMessage
	CreatedAt      time.Time
}
