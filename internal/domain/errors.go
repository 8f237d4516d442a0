package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Amount errors
	ErrUnparsableAmount = errors.New("delivered amount has an unrecognized shape")

	// Donation errors
	ErrDonationNotFound = errors.New("donation not found")

	// School errors
	ErrSchoolNotFound = errors.New("school not found")

	// Ledger errors
	ErrLedgerUnavailable = errors.New("ledger node unreachable")

	// Address errors
	ErrInvalidAddress = errors.New("invalid ledger address")

	// Authorization errors
	ErrUnauthorized = errors.New("missing or invalid credential")
)

// ConfigurationError reports every required setting that was absent at startup.
// It is produced once by config validation; no partial work is attempted after it.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}
