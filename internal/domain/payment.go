package domain

import "encoding/json"

const (
	// TxResultSuccess is the result sentinel a validated payment must carry.
	TxResultSuccess = "tesSUCCESS"
	// TxTypePayment is the only transaction type this service acts on.
	TxTypePayment = "Payment"
)

// Direction selects which side of the treasury account a payment must be on.
type Direction int

const (
	// Incoming selects payments whose destination is the treasury.
	Incoming Direction = iota
	// Outgoing selects payments the treasury sent to someone else.
	Outgoing
)

// PaymentTx is a ledger transaction entry normalized from the wire format.
// Entries are produced by the ledger gateway per query and never mutated.
type PaymentTx struct {
	Hash            string
	Account         string
	Destination     string
	TransactionType string
	ResultCode      string
	Validated       bool
	Delivered       DeliveredAmount
	CloseTimeISO    string
	Date            int64
	DestinationTag  *uint32
	Raw             json.RawMessage
}

// Timestamp returns the entry's close time as ISO-8601, preferring the
// ledger-reported ISO form and falling back to the ripple-epoch date field.
// Entries with neither report TimestampUnknown.
func (t *PaymentTx) Timestamp() string {
	if t.CloseTimeISO != "" {
		return t.CloseTimeISO
	}
	if t.Date > 0 {
		return RippleTimeToISO(t.Date)
	}

	return TimestampUnknown
}

// ClassifyPayment reports whether an entry is a validated, successful payment
// on the requested side of the treasury account. Rejections are skips, not
// errors. A self-payment (source and destination both the treasury) passes
// Incoming but never Outgoing.
func ClassifyPayment(tx *PaymentTx, dir Direction, treasury string) bool {
	if !tx.Validated {
		return false
	}
	if tx.TransactionType != TxTypePayment {
		return false
	}
	if tx.ResultCode != TxResultSuccess {
		return false
	}

	switch dir {
	case Incoming:
		return tx.Destination == treasury
	case Outgoing:
		return tx.Account == treasury && tx.Destination != treasury
	default:
		return false
	}
}
