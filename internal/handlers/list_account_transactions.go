package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
)

// AccountTransactionLister defines the interface that the service must implement.
type AccountTransactionLister interface {
	ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]models.TransactionDB, error)
}

// ListAccountTransactionsErrorResponse represents an error response for per-account transaction listing
// swagger:model ListAccountTransactionsErrorResponse
type ListAccountTransactionsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListAccountTransactionsHandler returns an HTTP handler for listing
// transactions originating from one account.
// @Summary List transactions by account
// @Description Returns transactions where the given account is the originator. Deposits and withdrawals are included since they record the account as both source and destination.
// @Tags transactions
// @Produce json
// @Param accNum path string true "Account number"
// @Success 200 {array} models.TransactionDB "Transactions"
// @Failure 500 {object} handlers.ListAccountTransactionsErrorResponse "Internal server error"
// @Router /transactions/{accNum} [get]
func NewListAccountTransactionsHandler(svc AccountTransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountNumber := chi.URLParam(r, "accNum")

		txns, err := svc.ListTransactionsByAccount(r.Context(), accountNumber)
		if err != nil {
			logger.Log.Errorw("failed to list transactions by account", "account_number", accountNumber, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListAccountTransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		if txns == nil {
			txns = []models.TransactionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txns)
	}
}
