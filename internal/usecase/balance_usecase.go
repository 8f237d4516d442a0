package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// balanceCacheTTL bounds how stale the balances view may be.
const balanceCacheTTL = 30 * time.Second

// BalanceUseCase reads the treasury's native and issued-currency balances.
// Each side degrades to "0" independently when its RPC fails, so a trustline
// hiccup does not blank the native balance and vice versa.
type BalanceUseCase struct {
	ledger LedgerGateway
	cache  Cache
	cfg    TreasuryConfig
	logger zerolog.Logger
}

// NewBalanceUseCase creates a new balance use case. cache may be nil.
func NewBalanceUseCase(ledger LedgerGateway, cache Cache, cfg TreasuryConfig, logger zerolog.Logger) *BalanceUseCase {
	return &BalanceUseCase{
		ledger: ledger,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
	}
}

// BalanceView is the treasury balances response.
type BalanceView struct {
	XRPBalance    string `json:"xrpBalance"`
	IssuedBalance string `json:"rlusdBalance"`
	Currency      struct {
		XRP    string `json:"xrp"`
		Issued string `json:"rlusd"`
	} `json:"currency"`
	Account string `json:"account"`
}

// Balances returns the treasury's balances, served from cache when fresh.
func (uc *BalanceUseCase) Balances(ctx context.Context) (*BalanceView, error) {
	cacheKey := "balances:" + uc.cfg.Address

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var view BalanceView
			if err := json.Unmarshal([]byte(cached), &view); err == nil {
				return &view, nil
			}
		}
	}

	view := &BalanceView{
		XRPBalance:    "0",
		IssuedBalance: "0",
		Account:       uc.cfg.Address,
	}
	view.Currency.XRP = "XRP"
	view.Currency.Issued = uc.cfg.DisplayCurrency()

	if native, err := uc.ledger.AccountBalance(ctx, uc.cfg.Address); err != nil {
		uc.logger.Warn().Err(err).Msg("native balance fetch failed")
	} else {
		view.XRPBalance = native.String()
	}

	lines, err := uc.ledger.AccountLines(ctx, uc.cfg.Address, uc.cfg.IssuedCurrencyIssuer)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("trust line fetch failed")
	} else {
		for _, line := range lines {
			if line.Currency == uc.cfg.IssuedCurrencyCode && line.Account == uc.cfg.IssuedCurrencyIssuer {
				view.IssuedBalance = line.Balance
				break
			}
		}
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(view); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, string(encoded), balanceCacheTTL); err != nil {
				uc.logger.Warn().Err(err).Msg("balance cache write failed")
			}
		}
	}

	return view, nil
}
