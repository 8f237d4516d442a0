package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tuitiontrust/treasury/internal/adapter/http/handler"
	"github.com/tuitiontrust/treasury/internal/domain"
)

type distributionStub struct{}

func (distributionStub) Distribute(ctx context.Context) ([]domain.DistributionResult, error) {
	return []domain.DistributionResult{
		{SchoolName: "A", Status: domain.DistributionSuccess, TxHash: "TX1"},
	}, nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		DonationHandler:     handler.NewDonationHandler(nil, nil, nil, nil, nil),
		TransactionHandler:  handler.NewTransactionHandler(nil),
		DistributionHandler: handler.NewDistributionHandler(distributionStub{}, "0.05", true, nil),
		TrustlineHandler:    handler.NewTrustlineHandler(nil, false),
		SchoolHandler:       handler.NewSchoolHandler(nil, false),
		HealthHandler:       handler.NewHealthHandler(nil, nil),
		DistributionSecret:  "hunter2",
		Logger:              zerolog.Nop(),
	})
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterDistributionsRequireBearer(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/distributions", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouterDistributionsWithBearer(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/distributions", nil)
	req.Header.Set("Authorization", "Bearer hunter2")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterDisabledFeaturesReturnForbidden(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/api/v1/trustline", "/api/v1/schools/seed"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", path, rec.Code)
		}
	}
}
