package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/usecase"
	"github.com/tuitiontrust/treasury/internal/usecase/mocks"
)

func TestBalances(t *testing.T) {
	t.Run("native and issued balances resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cfg := testConfig()

		ledger.EXPECT().
			AccountBalance(gomock.Any(), testTreasury).
			Return(decimal.RequireFromString("41.5"), nil)
		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return([]domain.TrustLine{
				{Account: "rOTHERddddddddddddddddddddddddddd", Currency: cfg.IssuedCurrencyCode, Balance: "99"},
				{Account: cfg.IssuedCurrencyIssuer, Currency: cfg.IssuedCurrencyCode, Balance: "12.34", Limit: "10000000000"},
			}, nil)

		uc := usecase.NewBalanceUseCase(ledger, nil, cfg, zerolog.Nop())

		view, err := uc.Balances(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.XRPBalance != "41.5" {
			t.Errorf("xrp balance: got %s, want 41.5", view.XRPBalance)
		}
		if view.IssuedBalance != "12.34" {
			t.Errorf("issued balance: got %s, want 12.34", view.IssuedBalance)
		}
		if view.Currency.Issued != "RLUSD" {
			t.Errorf("issued currency: got %s, want RLUSD", view.Currency.Issued)
		}
		if view.Account != testTreasury {
			t.Errorf("account: got %s", view.Account)
		}
	})

	t.Run("each side degrades to zero independently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cfg := testConfig()

		ledger.EXPECT().
			AccountBalance(gomock.Any(), testTreasury).
			Return(decimal.Zero, errors.New("account not found"))
		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return([]domain.TrustLine{
				{Account: cfg.IssuedCurrencyIssuer, Currency: cfg.IssuedCurrencyCode, Balance: "7"},
			}, nil)

		uc := usecase.NewBalanceUseCase(ledger, nil, cfg, zerolog.Nop())

		view, err := uc.Balances(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.XRPBalance != "0" {
			t.Errorf("xrp balance: got %s, want 0", view.XRPBalance)
		}
		if view.IssuedBalance != "7" {
			t.Errorf("issued balance: got %s, want 7", view.IssuedBalance)
		}
	})

	t.Run("missing trust line leaves issued balance at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cfg := testConfig()

		ledger.EXPECT().
			AccountBalance(gomock.Any(), testTreasury).
			Return(decimal.RequireFromString("10"), nil)
		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return(nil, nil)

		uc := usecase.NewBalanceUseCase(ledger, nil, cfg, zerolog.Nop())

		view, err := uc.Balances(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.IssuedBalance != "0" {
			t.Errorf("issued balance: got %s, want 0", view.IssuedBalance)
		}
	})

	t.Run("fresh cache entry short-circuits the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cache := mocks.NewMockCache()

		cached := usecase.BalanceView{XRPBalance: "5", IssuedBalance: "1", Account: testTreasury}
		encoded, err := json.Marshal(cached)
		if err != nil {
			t.Fatal(err)
		}
		if err := cache.Set(context.Background(), "balances:"+testTreasury, string(encoded), 0); err != nil {
			t.Fatal(err)
		}

		uc := usecase.NewBalanceUseCase(ledger, cache, testConfig(), zerolog.Nop())

		view, err := uc.Balances(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.XRPBalance != "5" || view.IssuedBalance != "1" {
			t.Errorf("cached view not served: %+v", view)
		}
	})

	t.Run("miss populates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cache := mocks.NewMockCache()
		cfg := testConfig()

		ledger.EXPECT().
			AccountBalance(gomock.Any(), testTreasury).
			Return(decimal.RequireFromString("3"), nil)
		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return(nil, nil)

		uc := usecase.NewBalanceUseCase(ledger, cache, cfg, zerolog.Nop())

		if _, err := uc.Balances(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := cache.Get(context.Background(), "balances:"+testTreasury)
		if err != nil {
			t.Fatal(err)
		}
		if stored == "" {
			t.Fatal("cache was not populated")
		}
		var view usecase.BalanceView
		if err := json.Unmarshal([]byte(stored), &view); err != nil {
			t.Fatalf("cached payload not decodable: %v", err)
		}
		if view.XRPBalance != "3" {
			t.Errorf("cached xrp balance: got %s, want 3", view.XRPBalance)
		}
	})
}
