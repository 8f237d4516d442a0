package handler

import (
	"context"
	"net/http"

	"github.com/tuitiontrust/treasury/internal/usecase"
)

// TrustlineService establishes the treasury's issued-currency trust line.
type TrustlineService interface {
	EnsureTrustline(ctx context.Context) (*usecase.TrustlineStatus, error)
}

// TrustlineHandler handles trust line setup requests.
type TrustlineHandler struct {
	trustline TrustlineService
	enabled   bool
}

// NewTrustlineHandler creates a new TrustlineHandler.
func NewTrustlineHandler(trustline TrustlineService, enabled bool) *TrustlineHandler {
	return &TrustlineHandler{
		trustline: trustline,
		enabled:   enabled,
	}
}

// Create ensures the issued-currency trust line exists.
func (h *TrustlineHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		writeError(w, http.StatusForbidden, "trustline setup disabled", "set ENABLE_TRUSTLINE_SETUP to enable")
		return
	}

	status, err := h.trustline.EnsureTrustline(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "trustline setup failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, status)
}
