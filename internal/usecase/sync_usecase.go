package usecase

import (
	"context"
	"fmt"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// SyncUseCase reconciles incoming treasury payments against the persisted
// donation record. Running it twice over an overlapping transaction window
// leaves the persisted set unchanged; the only side effect of a repeat run is
// zero new inserts.
type SyncUseCase struct {
	ledger    LedgerGateway
	donations DonationRepository
	idGen     IDGenerator
	cfg       TreasuryConfig
}

// NewSyncUseCase creates a new sync use case.
func NewSyncUseCase(ledger LedgerGateway, donations DonationRepository, idGen IDGenerator, cfg TreasuryConfig) *SyncUseCase {
	return &SyncUseCase{
		ledger:    ledger,
		donations: donations,
		idGen:     idGen,
		cfg:       cfg,
	}
}

// SyncResult reports the counters of one reconciliation run.
type SyncResult struct {
	TransactionsChecked int      `json:"transactionsChecked"`
	NewDonationsSynced  int      `json:"newDonationsSynced"`
	Errors              []string `json:"errors,omitempty"`
}

// SyncDonations pulls recent treasury transactions, classifies incoming
// payments, and inserts the ones not yet recorded. Per-entry failures are
// recorded and skipped; only a ledger connectivity failure aborts the run.
func (uc *SyncUseCase) SyncDonations(ctx context.Context) (*SyncResult, error) {
	entries, err := uc.ledger.AccountTransactions(ctx, uc.cfg.Address, uc.cfg.TxLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch account transactions: %w", err)
	}

	result := &SyncResult{TransactionsChecked: len(entries)}

	for _, entry := range entries {
		if !domain.ClassifyPayment(entry, domain.Incoming, uc.cfg.Address) {
			continue
		}
		if entry.Hash == "" {
			continue
		}

		amount, err := domain.ParseDeliveredAmount(entry.Delivered)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("tx %s: %v", entry.Hash, err))
			continue
		}

		exists, err := uc.donations.ExistsByTxHash(ctx, entry.Hash)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("tx %s: existence check: %v", entry.Hash, err))
			continue
		}
		if exists {
			// Already synced; duplicate reporting of the same hash is a no-op.
			continue
		}

		donation := &domain.Donation{
			ID:             uc.idGen.Generate(),
			TxHash:         entry.Hash,
			Sender:         entry.Account,
			AmountValue:    amount.Value.String(),
			Currency:       amount.Currency,
			Timestamp:      entry.Timestamp(),
			ExplorerURL:    uc.cfg.ExplorerURL(entry.Hash),
			DestinationTag: entry.DestinationTag,
			Raw:            entry.Raw,
		}
		if amount.Issuer != "" {
			issuer := amount.Issuer
			donation.Issuer = &issuer
		}

		inserted, err := uc.donations.Insert(ctx, donation)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("tx %s: insert: %v", entry.Hash, err))
			continue
		}
		if inserted {
			result.NewDonationsSynced++
		}
	}

	return result, nil
}
