package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// DistributionUseCase pays the configured fixed amount of the issued currency
// to every eligible school. Partial failure is expected: one recipient's
// outcome never aborts the batch.
type DistributionUseCase struct {
	ledger  LedgerGateway
	schools SchoolRepository
	cfg     TreasuryConfig
	logger  zerolog.Logger
}

// NewDistributionUseCase creates a new distribution use case.
func NewDistributionUseCase(ledger LedgerGateway, schools SchoolRepository, cfg TreasuryConfig, logger zerolog.Logger) *DistributionUseCase {
	return &DistributionUseCase{
		ledger:  ledger,
		schools: schools,
		cfg:     cfg,
		logger:  logger,
	}
}

// Distribute issues one payment per eligible recipient and collects a
// per-recipient result. The returned slice has exactly one entry per
// recipient regardless of individual outcomes.
func (uc *DistributionUseCase) Distribute(ctx context.Context) ([]domain.DistributionResult, error) {
	schools, err := uc.schools.ListEligible(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch eligible schools: %w", err)
	}

	currency := uc.cfg.DisplayCurrency()
	results := make([]domain.DistributionResult, 0, len(schools))

	for _, school := range schools {
		if !school.Eligible() {
			continue
		}

		result := domain.DistributionResult{
			SchoolName:    school.Name,
			SchoolAddress: school.WalletAddress,
			Amount:        uc.cfg.DistributionAmount,
			Currency:      currency,
		}

		submit, err := uc.ledger.SubmitPayment(ctx, PaymentInstruction{
			Destination: school.WalletAddress,
			Value:       uc.cfg.DistributionAmount,
			Currency:    uc.cfg.IssuedCurrencyCode,
			Issuer:      uc.cfg.IssuedCurrencyIssuer,
		})

		switch {
		case err != nil:
			result.Status = domain.DistributionException
			result.Error = err.Error()
			uc.logger.Error().Err(err).Str("school", school.Name).Msg("payout submission failed")

		case submit.ResultCode == domain.TxResultSuccess:
			result.Status = domain.DistributionSuccess
			result.TxHash = submit.Hash
			uc.logger.Info().
				Str("school", school.Name).
				Str("tx_hash", submit.Hash).
				Str("amount", uc.cfg.DistributionAmount).
				Msg("payout sent")

		default:
			result.Status = domain.DistributionFailed
			result.TxHash = submit.Hash
			result.Error = submit.ResultCode
			uc.logger.Warn().
				Str("school", school.Name).
				Str("result", submit.ResultCode).
				Msg("payout rejected by ledger")
		}

		results = append(results, result)
	}

	return results, nil
}
