package usecase_test

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/usecase"
	"github.com/tuitiontrust/treasury/internal/usecase/mocks"
)

func TestEnsureTrustline(t *testing.T) {
	t.Run("existing line reported without submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cfg := testConfig()

		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return([]domain.TrustLine{
				{Account: cfg.IssuedCurrencyIssuer, Currency: cfg.IssuedCurrencyCode, Balance: "0", Limit: "10000000000"},
			}, nil)

		uc := usecase.NewTrustlineUseCase(ledger, cfg)

		status, err := uc.EnsureTrustline(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.AlreadyExists {
			t.Error("expected alreadyExists")
		}
		if status.Currency != "RLUSD" {
			t.Errorf("currency: got %s, want RLUSD", status.Currency)
		}
		if status.TxHash != "" {
			t.Errorf("unexpected tx hash %s", status.TxHash)
		}
	})

	t.Run("absent line triggers a trust set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cfg := testConfig()

		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return(nil, nil)
		ledger.EXPECT().
			SubmitTrustSet(gomock.Any(), usecase.TrustSetInstruction{
				Currency: cfg.IssuedCurrencyCode,
				Issuer:   cfg.IssuedCurrencyIssuer,
				Limit:    "10000000000",
			}).
			Return(&usecase.SubmitResult{Hash: "TSHASH", ResultCode: domain.TxResultSuccess, Validated: true}, nil)

		uc := usecase.NewTrustlineUseCase(ledger, cfg)

		status, err := uc.EnsureTrustline(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.AlreadyExists {
			t.Error("did not expect alreadyExists")
		}
		if status.TxHash != "TSHASH" {
			t.Errorf("tx hash: got %s, want TSHASH", status.TxHash)
		}
		if status.Limit != "10000000000" {
			t.Errorf("limit: got %s", status.Limit)
		}
	})

	t.Run("ledger rejection surfaces the result sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cfg := testConfig()

		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return(nil, nil)
		ledger.EXPECT().
			SubmitTrustSet(gomock.Any(), gomock.Any()).
			Return(&usecase.SubmitResult{Hash: "TSHASH", ResultCode: "tecNO_PERMISSION", Validated: true}, nil)

		uc := usecase.NewTrustlineUseCase(ledger, cfg)

		_, err := uc.EnsureTrustline(context.Background())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "tecNO_PERMISSION") {
			t.Errorf("error missing sentinel: %v", err)
		}
	})

	t.Run("account lines failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		cfg := testConfig()

		ledger.EXPECT().
			AccountLines(gomock.Any(), testTreasury, cfg.IssuedCurrencyIssuer).
			Return(nil, domain.ErrLedgerUnavailable)

		uc := usecase.NewTrustlineUseCase(ledger, cfg)

		if _, err := uc.EnsureTrustline(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
