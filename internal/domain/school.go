package domain

import "time"

// School is a verified-recipient registry row. The registry is owned by the
// relational store; this service reads it to filter outgoing payments and to
// decide distribution eligibility.
type School struct {
	ID            string
	Name          string
	WalletAddress string
	ContactEmail  string
	WebsiteURL    string
	Country       string
	DID           string
	Description   string
	IsVerified    bool
	CreatedAt     time.Time
}

// Eligible reports whether a school can receive a distribution payout.
func (s *School) Eligible() bool {
	return s.IsVerified && s.WalletAddress != ""
}
