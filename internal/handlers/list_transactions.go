package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context) ([]models.TransactionDB, error)
}

// ListTransactionsErrorResponse represents an error response for transaction listing
// swagger:model ListTransactionsErrorResponse
type ListTransactionsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler for listing all transactions.
// @Summary List transactions
// @Description Returns the whole transaction log
// @Tags transactions
// @Produce json
// @Success 200 {array} models.TransactionDB "Transactions"
// @Failure 500 {object} handlers.ListTransactionsErrorResponse "Internal server error"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txns, err := svc.ListTransactions(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Internal server error"})
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
