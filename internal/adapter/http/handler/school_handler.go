package handler

import (
	"context"
	"net/http"

	"github.com/tuitiontrust/treasury/internal/usecase"
)

// SeedService populates the school registry with development fixtures.
type SeedService interface {
	SeedSchools(ctx context.Context) (*usecase.SeedResult, error)
}

// SchoolHandler handles school registry requests.
type SchoolHandler struct {
	seed    SeedService
	enabled bool
}

// NewSchoolHandler creates a new SchoolHandler.
func NewSchoolHandler(seed SeedService, enabled bool) *SchoolHandler {
	return &SchoolHandler{
		seed:    seed,
		enabled: enabled,
	}
}

// Seed creates fake school rows for the fixed testnet wallets.
func (h *SchoolHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		writeError(w, http.StatusForbidden, "school seeding disabled", "set ENABLE_SEED_SCHOOLS to enable")
		return
	}

	result, err := h.seed.SeedSchools(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "school seeding failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
