package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/usecase"
	"github.com/tuitiontrust/treasury/internal/usecase/mocks"
)

func eligibleSchools() []*domain.School {
	return []*domain.School{
		{Name: "School One", WalletAddress: "rweachc46DLM9S5avhfubKT2p9Xt3S6cEd", IsVerified: true},
		{Name: "School Two", WalletAddress: "rLbmFWAe6JDCaZ2Zffe1Wjn9weSwhJiXsb", IsVerified: true},
		{Name: "School Three", WalletAddress: "rwQBkAke9HScNzAe1qoe6cY3nETZCkCEP5", IsVerified: true},
	}
}

func TestDistribute(t *testing.T) {
	t.Run("one result per recipient despite mid-batch exception", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		schools := mocks.NewMockSchoolRepository()
		schools.ListEligibleFunc = func(ctx context.Context) ([]*domain.School, error) {
			return eligibleSchools(), nil
		}

		ledger.EXPECT().
			SubmitPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p usecase.PaymentInstruction) (*usecase.SubmitResult, error) {
				if p.Destination == "rLbmFWAe6JDCaZ2Zffe1Wjn9weSwhJiXsb" {
					return nil, errors.New("websocket closed")
				}
				return &usecase.SubmitResult{Hash: "TX-" + p.Destination[:6], ResultCode: domain.TxResultSuccess, Validated: true}, nil
			}).
			Times(3)

		uc := usecase.NewDistributionUseCase(ledger, schools, testConfig(), zerolog.Nop())

		results, err := uc.Distribute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("results: got %d, want 3", len(results))
		}
		if results[0].Status != domain.DistributionSuccess {
			t.Errorf("first: got %s, want success", results[0].Status)
		}
		if results[1].Status != domain.DistributionException {
			t.Errorf("second: got %s, want exception", results[1].Status)
		}
		if results[1].Error == "" {
			t.Error("exception result missing error detail")
		}
		if results[2].Status != domain.DistributionSuccess {
			t.Errorf("third: got %s, want success", results[2].Status)
		}
	})

	t.Run("ledger rejection captured as failed with sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		schools := mocks.NewMockSchoolRepository()
		schools.ListEligibleFunc = func(ctx context.Context) ([]*domain.School, error) {
			return eligibleSchools()[:1], nil
		}

		ledger.EXPECT().
			SubmitPayment(gomock.Any(), gomock.Any()).
			Return(&usecase.SubmitResult{Hash: "TXREJ", ResultCode: "tecPATH_DRY", Validated: true}, nil)

		uc := usecase.NewDistributionUseCase(ledger, schools, testConfig(), zerolog.Nop())

		results, err := uc.Distribute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("results: got %d, want 1", len(results))
		}
		if results[0].Status != domain.DistributionFailed {
			t.Errorf("status: got %s, want failed", results[0].Status)
		}
		if results[0].Error != "tecPATH_DRY" {
			t.Errorf("error: got %q, want sentinel", results[0].Error)
		}
	})

	t.Run("payment instruction carries configured amount and currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		schools := mocks.NewMockSchoolRepository()
		schools.ListEligibleFunc = func(ctx context.Context) ([]*domain.School, error) {
			return eligibleSchools()[:1], nil
		}

		cfg := testConfig()
		ledger.EXPECT().
			SubmitPayment(gomock.Any(), usecase.PaymentInstruction{
				Destination: "rweachc46DLM9S5avhfubKT2p9Xt3S6cEd",
				Value:       cfg.DistributionAmount,
				Currency:    cfg.IssuedCurrencyCode,
				Issuer:      cfg.IssuedCurrencyIssuer,
			}).
			Return(&usecase.SubmitResult{Hash: "TX1", ResultCode: domain.TxResultSuccess, Validated: true}, nil)

		uc := usecase.NewDistributionUseCase(ledger, schools, cfg, zerolog.Nop())

		results, err := uc.Distribute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results[0].Amount != "0.05" {
			t.Errorf("amount: got %s, want 0.05", results[0].Amount)
		}
		if results[0].Currency != "RLUSD" {
			t.Errorf("currency: got %s, want RLUSD", results[0].Currency)
		}
	})

	t.Run("no eligible schools submits nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		schools := mocks.NewMockSchoolRepository()

		uc := usecase.NewDistributionUseCase(ledger, schools, testConfig(), zerolog.Nop())

		results, err := uc.Distribute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("results: got %d, want 0", len(results))
		}
	})

	t.Run("registry failure aborts before any submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mocks.NewMockLedgerGateway(ctrl)
		schools := mocks.NewMockSchoolRepository()
		schools.ListEligibleFunc = func(ctx context.Context) ([]*domain.School, error) {
			return nil, errors.New("store unreachable")
		}

		uc := usecase.NewDistributionUseCase(ledger, schools, testConfig(), zerolog.Nop())

		if _, err := uc.Distribute(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
