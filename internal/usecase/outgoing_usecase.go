package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// OutgoingUseCase cross-references outgoing treasury payments against the
// verified-recipient registry and shapes them for display.
type OutgoingUseCase struct {
	ledger  LedgerGateway
	schools SchoolRepository
	cfg     TreasuryConfig
}

// NewOutgoingUseCase creates a new outgoing-view use case.
func NewOutgoingUseCase(ledger LedgerGateway, schools SchoolRepository, cfg TreasuryConfig) *OutgoingUseCase {
	return &OutgoingUseCase{
		ledger:  ledger,
		schools: schools,
		cfg:     cfg,
	}
}

// OutgoingPayment is one row of the outgoing-to-verified view. A destination
// with multiple payments appears once per transaction.
type OutgoingPayment struct {
	ID                 string `json:"id"`
	Timestamp          string `json:"timestamp"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	DestinationAddress string `json:"destinationAddress"`
	SchoolName         string `json:"destinationSchoolName"`
	ExplorerURL        string `json:"explorerUrl"`
}

// ToVerified lists recent treasury payments whose destination is a verified
// school: classify outgoing entries, resolve the destination set against the
// registry in one query, then emit one display row per transaction.
// Unrecognized amount shapes degrade to "N/A" instead of dropping the row.
func (uc *OutgoingUseCase) ToVerified(ctx context.Context) ([]OutgoingPayment, error) {
	entries, err := uc.ledger.AccountTransactions(ctx, uc.cfg.Address, uc.cfg.TxLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch account transactions: %w", err)
	}

	byDestination := make(map[string][]*domain.PaymentTx)
	destinations := make([]string, 0)

	for _, entry := range entries {
		if !domain.ClassifyPayment(entry, domain.Outgoing, uc.cfg.Address) {
			continue
		}
		if _, seen := byDestination[entry.Destination]; !seen {
			destinations = append(destinations, entry.Destination)
		}
		byDestination[entry.Destination] = append(byDestination[entry.Destination], entry)
	}

	if len(destinations) == 0 {
		return []OutgoingPayment{}, nil
	}

	verified, err := uc.schools.ListVerifiedByWallets(ctx, destinations)
	if err != nil {
		return nil, fmt.Errorf("fetch verified schools: %w", err)
	}

	rows := make([]OutgoingPayment, 0)

	for _, school := range verified {
		for _, entry := range byDestination[school.WalletAddress] {
			amountStr, currencyStr := "N/A", "N/A"
			if amount, err := domain.ParseDeliveredAmount(entry.Delivered); err == nil {
				amountStr = amount.Value.String()
				currencyStr = amount.Currency
			}

			rows = append(rows, OutgoingPayment{
				ID:                 entry.Hash,
				Timestamp:          entry.Timestamp(),
				Amount:             amountStr,
				Currency:           currencyStr,
				DestinationAddress: school.WalletAddress,
				SchoolName:         school.Name,
				ExplorerURL:        uc.cfg.ExplorerURL(entry.Hash),
			})
		}
	}

	sortByTimestampDesc(rows)

	if len(rows) > outgoingViewCap {
		rows = rows[:outgoingViewCap]
	}

	return rows, nil
}

// sortByTimestampDesc orders rows newest first; rows whose timestamp could
// not be resolved sort last.
func sortByTimestampDesc(rows []OutgoingPayment) {
	sort.SliceStable(rows, func(i, j int) bool {
		ti, okI := parseTimestamp(rows[i].Timestamp)
		tj, okJ := parseTimestamp(rows[j].Timestamp)

		switch {
		case !okI:
			return false
		case !okJ:
			return true
		default:
			return ti.After(tj)
		}
	})
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == domain.TimestampUnknown {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
