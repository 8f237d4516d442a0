package usecase

import "github.com/tuitiontrust/treasury/internal/domain"

const (
	// recentDonationsCap bounds the live donations view.
	recentDonationsCap = 10
	// outgoingViewCap bounds the outgoing-to-verified view.
	outgoingViewCap = 20
	// trustLineLimit is the limit value used when establishing the treasury's
	// issued-currency trust line.
	trustLineLimit = "10000000000"
)

// TreasuryConfig carries the treasury-side settings shared by the use cases.
// It is validated once at process start; use cases assume it is complete.
type TreasuryConfig struct {
	// Address is the treasury account that receives donations and sends
	// distributions.
	Address string
	// IssuedCurrencyCode is the 40-hex-character wire form of the issued
	// currency. Comparisons against ledger-reported lines use this raw form.
	IssuedCurrencyCode string
	// IssuedCurrencyIssuer is the issuing account of the issued currency.
	IssuedCurrencyIssuer string
	// ExplorerBaseURL prefixes transaction hashes to build deep links.
	ExplorerBaseURL string
	// TxLimit is how many recent entries each reconciliation run examines.
	TxLimit int
	// DistributionAmount is the fixed per-recipient payout in major units.
	DistributionAmount string
}

// ExplorerURL builds the deep link for a transaction hash.
func (c TreasuryConfig) ExplorerURL(hash string) string {
	return c.ExplorerBaseURL + hash
}

// DisplayCurrency is the human-readable form of the issued currency code.
func (c TreasuryConfig) DisplayCurrency() string {
	return domain.NormalizeCurrencyCode(c.IssuedCurrencyCode)
}
