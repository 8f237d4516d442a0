package domain

// DistributionStatus classifies the outcome of one payout attempt.
type DistributionStatus string

const (
	// DistributionSuccess means the payment validated with the success sentinel.
	DistributionSuccess DistributionStatus = "success"
	// DistributionFailed means submission completed but the ledger rejected it;
	// Error carries the result sentinel.
	DistributionFailed DistributionStatus = "failed"
	// DistributionException means submission itself errored or timed out.
	DistributionException DistributionStatus = "exception"
)

// DistributionResult is the transient per-recipient outcome of a payout run.
type DistributionResult struct {
	SchoolName    string             `json:"schoolName"`
	SchoolAddress string             `json:"schoolAddress"`
	Status        DistributionStatus `json:"status"`
	Amount        string             `json:"amount"`
	Currency      string             `json:"currency"`
	TxHash        string             `json:"txHash,omitempty"`
	Error         string             `json:"error,omitempty"`
}
