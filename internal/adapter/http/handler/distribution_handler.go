package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tuitiontrust/treasury/internal/adapter/http/dto"
	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/infrastructure/metrics"
)

// DistributionService runs a payout batch.
type DistributionService interface {
	Distribute(ctx context.Context) ([]domain.DistributionResult, error)
}

// DistributionHandler handles payout requests.
type DistributionHandler struct {
	distributions DistributionService
	amount        string
	enabled       bool
	metrics       *metrics.Metrics
}

// NewDistributionHandler creates a new DistributionHandler. m may be nil.
func NewDistributionHandler(distributions DistributionService, amount string, enabled bool, m *metrics.Metrics) *DistributionHandler {
	return &DistributionHandler{
		distributions: distributions,
		amount:        amount,
		enabled:       enabled,
		metrics:       m,
	}
}

// Create runs one distribution batch across all eligible schools.
func (h *DistributionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		writeError(w, http.StatusForbidden, "distribution disabled", "set ENABLE_DISTRIBUTION to enable payouts")
		return
	}

	results, err := h.distributions.Distribute(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "distribution failed", err.Error())
		return
	}

	if h.metrics != nil {
		amount, parseErr := strconv.ParseFloat(h.amount, 64)
		for _, result := range results {
			h.metrics.Distributions.WithLabelValues(string(result.Status)).Inc()
			if result.Status == domain.DistributionSuccess && parseErr == nil {
				h.metrics.DistributionAmount.Observe(amount)
			}
		}
	}

	writeJSON(w, http.StatusOK, dto.DistributionResponse{
		Results: results,
		Summary: dto.Summarize(results),
	})
}
