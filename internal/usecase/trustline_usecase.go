package usecase

import (
	"context"
	"fmt"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// TrustlineUseCase establishes the treasury's issued-currency trust line.
type TrustlineUseCase struct {
	ledger LedgerGateway
	cfg    TreasuryConfig
}

// NewTrustlineUseCase creates a new trustline use case.
func NewTrustlineUseCase(ledger LedgerGateway, cfg TreasuryConfig) *TrustlineUseCase {
	return &TrustlineUseCase{
		ledger: ledger,
		cfg:    cfg,
	}
}

// TrustlineStatus reports the outcome of an EnsureTrustline call.
type TrustlineStatus struct {
	AlreadyExists bool   `json:"alreadyExists"`
	Currency      string `json:"currency"`
	Issuer        string `json:"issuer"`
	Limit         string `json:"limit"`
	TxHash        string `json:"txHash,omitempty"`
}

// EnsureTrustline checks for an existing trust line to the configured issuer
// and establishes one when absent. A ledger rejection surfaces as an error
// carrying the result sentinel.
func (uc *TrustlineUseCase) EnsureTrustline(ctx context.Context) (*TrustlineStatus, error) {
	lines, err := uc.ledger.AccountLines(ctx, uc.cfg.Address, uc.cfg.IssuedCurrencyIssuer)
	if err != nil {
		return nil, fmt.Errorf("fetch account lines: %w", err)
	}

	for _, line := range lines {
		if line.Currency == uc.cfg.IssuedCurrencyCode {
			return &TrustlineStatus{
				AlreadyExists: true,
				Currency:      uc.cfg.DisplayCurrency(),
				Issuer:        uc.cfg.IssuedCurrencyIssuer,
				Limit:         line.Limit,
			}, nil
		}
	}

	submit, err := uc.ledger.SubmitTrustSet(ctx, TrustSetInstruction{
		Currency: uc.cfg.IssuedCurrencyCode,
		Issuer:   uc.cfg.IssuedCurrencyIssuer,
		Limit:    trustLineLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("submit trust set: %w", err)
	}
	if submit.ResultCode != domain.TxResultSuccess {
		return nil, fmt.Errorf("trust set rejected: %s", submit.ResultCode)
	}

	return &TrustlineStatus{
		Currency: uc.cfg.DisplayCurrency(),
		Issuer:   uc.cfg.IssuedCurrencyIssuer,
		Limit:    trustLineLimit,
		TxHash:   submit.Hash,
	}, nil
}
