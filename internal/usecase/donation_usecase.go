package usecase

import (
	"context"
	"fmt"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// DonationUseCase serves donation views: the live ledger feed and the
// persisted record.
type DonationUseCase struct {
	ledger    LedgerGateway
	donations DonationRepository
	cfg       TreasuryConfig
}

// NewDonationUseCase creates a new donation use case.
func NewDonationUseCase(ledger LedgerGateway, donations DonationRepository, cfg TreasuryConfig) *DonationUseCase {
	return &DonationUseCase{
		ledger:    ledger,
		donations: donations,
		cfg:       cfg,
	}
}

// DonationView is one row of the donations feed.
type DonationView struct {
	ID          string `json:"id"`
	Sender      string `json:"sender"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Timestamp   string `json:"timestamp"`
	ExplorerURL string `json:"explorerUrl"`
}

// ListRecent reads the latest incoming donations straight from the ledger,
// capped to a display page. Entries that fail classification or amount
// parsing are skipped.
func (uc *DonationUseCase) ListRecent(ctx context.Context) ([]DonationView, error) {
	entries, err := uc.ledger.AccountTransactions(ctx, uc.cfg.Address, uc.cfg.TxLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch account transactions: %w", err)
	}

	views := make([]DonationView, 0, recentDonationsCap)

	for _, entry := range entries {
		if len(views) >= recentDonationsCap {
			break
		}
		if !domain.ClassifyPayment(entry, domain.Incoming, uc.cfg.Address) {
			continue
		}
		if entry.Hash == "" {
			continue
		}

		amount, err := domain.ParseDeliveredAmount(entry.Delivered)
		if err != nil {
			continue
		}

		views = append(views, DonationView{
			ID:          entry.Hash,
			Sender:      entry.Account,
			Amount:      amount.Value.String(),
			Currency:    amount.Currency,
			Timestamp:   entry.Timestamp(),
			ExplorerURL: uc.cfg.ExplorerURL(entry.Hash),
		})
	}

	return views, nil
}

// ForAccount reads incoming successful payments for an arbitrary address.
func (uc *DonationUseCase) ForAccount(ctx context.Context, address string) ([]DonationView, error) {
	if !domain.ValidAddress(address) {
		return nil, domain.ErrInvalidAddress
	}

	entries, err := uc.ledger.AccountTransactions(ctx, address, outgoingViewCap)
	if err != nil {
		return nil, fmt.Errorf("fetch account transactions: %w", err)
	}

	views := make([]DonationView, 0, len(entries))

	for _, entry := range entries {
		if !domain.ClassifyPayment(entry, domain.Incoming, address) {
			continue
		}

		// Amount degrades rather than dropping the row.
		amountStr, currencyStr := "N/A", "N/A"
		if amount, err := domain.ParseDeliveredAmount(entry.Delivered); err == nil {
			amountStr = amount.Value.String()
			currencyStr = amount.Currency
		}

		views = append(views, DonationView{
			ID:          entry.Hash,
			Sender:      entry.Account,
			Amount:      amountStr,
			Currency:    currencyStr,
			Timestamp:   entry.Timestamp(),
			ExplorerURL: uc.cfg.ExplorerURL(entry.Hash),
		})
	}

	return views, nil
}
