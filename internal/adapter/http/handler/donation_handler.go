package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/tuitiontrust/treasury/internal/adapter/http/dto"
	"github.com/tuitiontrust/treasury/internal/infrastructure/metrics"
	"github.com/tuitiontrust/treasury/internal/usecase"
)

// DonationService defines the behavior needed by DonationHandler.
type DonationService interface {
	ListRecent(ctx context.Context) ([]usecase.DonationView, error)
}

// SyncService runs a donation reconciliation pass.
type SyncService interface {
	SyncDonations(ctx context.Context) (*usecase.SyncResult, error)
}

// BalanceService reads the treasury balances view.
type BalanceService interface {
	Balances(ctx context.Context) (*usecase.BalanceView, error)
}

// OutgoingService reads the outgoing-to-verified view.
type OutgoingService interface {
	ToVerified(ctx context.Context) ([]usecase.OutgoingPayment, error)
}

// DonationHandler handles the donation routes.
type DonationHandler struct {
	donations DonationService
	sync      SyncService
	balances  BalanceService
	outgoing  OutgoingService
	metrics   *metrics.Metrics
}

// NewDonationHandler creates a new DonationHandler. m may be nil.
func NewDonationHandler(donations DonationService, sync SyncService, balances BalanceService, outgoing OutgoingService, m *metrics.Metrics) *DonationHandler {
	return &DonationHandler{
		donations: donations,
		sync:      sync,
		balances:  balances,
		outgoing:  outgoing,
		metrics:   m,
	}
}

// List returns the recent donations feed.
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.donations.ListRecent(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list donations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DonationsResponse{
		Donations: views,
		Total:     len(views),
	})
}

// Sync runs one reconciliation pass against the ledger.
func (h *DonationHandler) Sync(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result, err := h.sync.SyncDonations(r.Context())
	if h.metrics != nil {
		h.metrics.SyncRuns.Inc()
		h.metrics.SyncDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		writeError(w, mapDomainError(err), "sync failed", err.Error())
		return
	}
	if h.metrics != nil {
		h.metrics.DonationsSynced.Add(float64(result.NewDonationsSynced))
		h.metrics.SyncErrors.Add(float64(len(result.Errors)))
	}

	writeJSON(w, http.StatusOK, result)
}

// Balances returns the treasury balances view.
func (h *DonationHandler) Balances(w http.ResponseWriter, r *http.Request) {
	view, err := h.balances.Balances(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to fetch balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Outgoing returns outgoing payments to verified schools.
func (h *DonationHandler) Outgoing(w http.ResponseWriter, r *http.Request) {
	rows, err := h.outgoing.ToVerified(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list outgoing payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OutgoingResponse{
		Payments: rows,
		Total:    len(rows),
	})
}
