package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
)

// AccountLister defines the interface that the service must implement.
type AccountLister interface {
	ListAccounts(ctx context.Context) ([]models.AccountDB, error)
}

// ListAccountsErrorResponse represents an error response for account listing
// swagger:model ListAccountsErrorResponse
type ListAccountsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListAccountsHandler returns an HTTP handler for listing all accounts.
// @Summary List accounts
// @Description Returns all accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} handlers.AccountResponse "Accounts"
// @Failure 500 {object} handlers.ListAccountsErrorResponse "Internal server error"
// @Router /accounts [get]
func NewListAccountsHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := svc.ListAccounts(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list accounts", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListAccountsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]AccountResponse, 0, len(accounts))
		for i := range accounts {
			resp = append(resp, toAccountResponse(&accounts[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
