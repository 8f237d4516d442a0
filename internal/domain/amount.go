package domain

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// NativeCurrency is the currency code reported for native-coin payments.
const NativeCurrency = "XRP"

// dropsPerXRP converts the ledger's minor-unit denomination to major units.
var dropsPerXRP = decimal.NewFromInt(1_000_000)

// AmountKind tags the two wire forms a delivered amount can take.
type AmountKind int

const (
	// AmountNone marks a delivered amount that matched neither wire form.
	AmountNone AmountKind = iota
	// AmountNative is a bare drops scalar.
	AmountNative
	// AmountIssued is a {value, currency, issuer} object.
	AmountIssued
)

// DeliveredAmount is the tagged variant of the ledger's delivered-amount union.
// The shape is decided once, at decode time; downstream code switches on Kind
// instead of re-sniffing JSON.
type DeliveredAmount struct {
	Kind     AmountKind
	Drops    string
	Value    string
	Currency string
	Issuer   string
}

// UnmarshalJSON accepts either the drops string or the issued-currency object.
// Anything else decodes to AmountNone rather than failing, so one odd entry
// cannot abort a whole batch.
func (a *DeliveredAmount) UnmarshalJSON(data []byte) error {
	var drops string
	if err := json.Unmarshal(data, &drops); err == nil {
		*a = DeliveredAmount{Kind: AmountNative, Drops: drops}
		return nil
	}

	var issued struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
		Issuer   string `json:"issuer"`
	}
	if err := json.Unmarshal(data, &issued); err == nil && issued.Value != "" && issued.Currency != "" {
		*a = DeliveredAmount{
			Kind:     AmountIssued,
			Value:    issued.Value,
			Currency: issued.Currency,
			Issuer:   issued.Issuer,
		}
		return nil
	}

	*a = DeliveredAmount{Kind: AmountNone}
	return nil
}

// Amount is a normalized (value, currency) pair in major units.
type Amount struct {
	Value    decimal.Decimal
	Currency string
	Issuer   string
}

// ParseDeliveredAmount normalizes a delivered amount. Native scalars are
// divided by 1,000,000; issued values are taken as-is and the currency code is
// de-hexed when it is the 40-character encoded form. Returns
// ErrUnparsableAmount when the shape matched neither form; callers skip the
// transaction rather than abort.
func ParseDeliveredAmount(da DeliveredAmount) (Amount, error) {
	switch da.Kind {
	case AmountNative:
		drops, err := decimal.NewFromString(da.Drops)
		if err != nil {
			return Amount{}, ErrUnparsableAmount
		}

		return Amount{Value: drops.Div(dropsPerXRP), Currency: NativeCurrency}, nil

	case AmountIssued:
		value, err := decimal.NewFromString(da.Value)
		if err != nil {
			return Amount{}, ErrUnparsableAmount
		}

		return Amount{
			Value:    value,
			Currency: NormalizeCurrencyCode(da.Currency),
			Issuer:   da.Issuer,
		}, nil

	default:
		return Amount{}, ErrUnparsableAmount
	}
}

// NormalizeCurrencyCode decodes the ledger's fixed-length hex currency
// encoding. A 40-hex-character code is decoded as bytes with trailing padding
// trimmed; the decoded form is used only if it is printable and non-empty,
// otherwise the raw hex is kept.
func NormalizeCurrencyCode(code string) string {
	if len(code) != 40 {
		return code
	}

	raw, err := hex.DecodeString(code)
	if err != nil {
		return code
	}

	decoded := strings.TrimRight(string(raw), "\x00")
	decoded = strings.TrimSpace(decoded)
	if decoded == "" || !isPrintable(decoded) {
		return code
	}

	return decoded
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}
