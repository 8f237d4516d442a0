package dto

import (
	"github.com/tuitiontrust/treasury/internal/domain"
	"github.com/tuitiontrust/treasury/internal/usecase"
)

// DonationsResponse wraps the donations feed.
type DonationsResponse struct {
	Donations []usecase.DonationView `json:"donations"`
	Total     int                    `json:"total"`
}

// OutgoingResponse wraps the outgoing-to-verified view.
type OutgoingResponse struct {
	Payments []usecase.OutgoingPayment `json:"payments"`
	Total    int                       `json:"total"`
}

// TransactionsResponse wraps the per-address transaction lookup.
type TransactionsResponse struct {
	Transactions []usecase.DonationView `json:"transactions"`
	Total        int                    `json:"total"`
}

// DistributionSummary counts distribution outcomes by status.
type DistributionSummary struct {
	Success   int `json:"success"`
	Failed    int `json:"failed"`
	Exception int `json:"exception"`
}

// DistributionResponse wraps a distribution run.
type DistributionResponse struct {
	Results []domain.DistributionResult `json:"results"`
	Summary DistributionSummary         `json:"summary"`
}

// Summarize builds the per-status counts for a distribution run.
func Summarize(results []domain.DistributionResult) DistributionSummary {
	var summary DistributionSummary
	for _, r := range results {
		switch r.Status {
		case domain.DistributionSuccess:
			summary.Success++
		case domain.DistributionFailed:
			summary.Failed++
		case domain.DistributionException:
			summary.Exception++
		}
	}

	return summary
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
