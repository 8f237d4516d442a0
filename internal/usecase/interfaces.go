package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// PaymentInstruction describes one outbound issued-currency payment.
type PaymentInstruction struct {
	Destination string
	Value       string
	Currency    string
	Issuer      string
}

// TrustSetInstruction describes a trust line to establish for the treasury.
type TrustSetInstruction struct {
	Currency string
	Issuer   string
	Limit    string
}

// SubmitResult is the validated outcome of a submitted transaction.
type SubmitResult struct {
	Hash       string
	ResultCode string
	Validated  bool
}

// LedgerGateway is the ledger collaborator. One gateway call maps to one
// request/response RPC exchange; submissions block until validation.
type LedgerGateway interface {
	// AccountTransactions returns up to limit entries for account, newest first.
	AccountTransactions(ctx context.Context, account string, limit int) ([]*domain.PaymentTx, error)
	// AccountBalance returns the native balance in major units.
	AccountBalance(ctx context.Context, account string) (decimal.Decimal, error)
	// AccountLines returns the trust lines between account and peer.
	AccountLines(ctx context.Context, account, peer string) ([]domain.TrustLine, error)
	// SubmitPayment signs, submits and awaits validation of one payment from
	// the treasury account.
	SubmitPayment(ctx context.Context, p PaymentInstruction) (*SubmitResult, error)
	// SubmitTrustSet signs, submits and awaits validation of a TrustSet for
	// the treasury account.
	SubmitTrustSet(ctx context.Context, t TrustSetInstruction) (*SubmitResult, error)
}

// DonationRepository defines data access for persisted donations.
type DonationRepository interface {
	ExistsByTxHash(ctx context.Context, hash string) (bool, error)
	// Insert stores a donation if its hash is absent. Returns false when the
	// row already existed; the unique index on tx_hash is the backstop under
	// concurrent overlapping runs.
	Insert(ctx context.Context, donation *domain.Donation) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Donation, error)
}

// SchoolRepository defines read access to the verified-recipient registry.
type SchoolRepository interface {
	// ListEligible returns verified schools with a non-empty wallet address.
	ListEligible(ctx context.Context) ([]*domain.School, error)
	// ListVerifiedByWallets returns verified schools whose wallet is in wallets.
	ListVerifiedByWallets(ctx context.Context, wallets []string) ([]*domain.School, error)
	// ExistingWallets reports which of wallets already have a registry row.
	ExistingWallets(ctx context.Context, wallets []string) (map[string]bool, error)
	Insert(ctx context.Context, school *domain.School) error
}

// Cache defines short-TTL view caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
