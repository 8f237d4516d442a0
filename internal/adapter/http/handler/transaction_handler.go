package handler

import (
	"context"
	"net/http"

	"github.com/tuitiontrust/treasury/internal/adapter/http/dto"
	"github.com/tuitiontrust/treasury/internal/usecase"
)

// TransactionService reads incoming payments for an arbitrary address.
type TransactionService interface {
	ForAccount(ctx context.Context, address string) ([]usecase.DonationView, error)
}

// TransactionHandler handles the per-address transaction lookup.
type TransactionHandler struct {
	transactions TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// ForAccount lists incoming payments for the address query parameter.
func (h *TransactionHandler) ForAccount(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, "missing address parameter", "")
		return
	}

	views, err := h.transactions.ForAccount(r.Context(), address)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsResponse{
		Transactions: views,
		Total:        len(views),
	})
}
