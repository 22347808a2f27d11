package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// AccountGetter defines the interface that the service must implement.
type AccountGetter interface {
	GetAccount(ctx context.Context, accountNumber string) (*models.AccountDB, error)
}

// AccountResponse represents an account in API responses.
// The pin is never exposed.
// swagger:model AccountResponse
type AccountResponse struct {
	// Unique account number
	AccountNumber string `json:"account_number"`

	// Owner display name
	// example: Ivan
	OwnerName string `json:"owner_name"`

	// Current balance
	// example: 500
	Balance decimal.Decimal `json:"balance"`

	// Timestamp when the account was created
	CreatedAt time.Time `json:"created_at"`
}

// GetAccountErrorResponse represents an error response for account lookup
// swagger:model GetAccountErrorResponse
type GetAccountErrorResponse struct {
	// Error message
	// example: Account not found
	Error string `json:"error"`
}

func toAccountResponse(account *models.AccountDB) AccountResponse {
	return AccountResponse{
		AccountNumber: account.AccountNumber,
		OwnerName:     account.OwnerName,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt,
	}
}

// NewGetAccountHandler returns an HTTP handler for fetching a single account.
// @Summary Get account
// @Description Returns the account with the given number
// @Tags accounts
// @Produce json
// @Param accNum path string true "Account number"
// @Success 200 {object} handlers.AccountResponse "Account"
// @Failure 404 {object} handlers.GetAccountErrorResponse "Account not found"
// @Router /accounts/{accNum} [get]
func NewGetAccountHandler(svc AccountGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountNumber := chi.URLParam(r, "accNum")

		account, err := svc.GetAccount(r.Context(), accountNumber)
		if err != nil {
			logger.Log.Errorw("failed to get account", "account_number", accountNumber, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GetAccountErrorResponse{Error: "Internal server error"})
			return
		}
		if account == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetAccountErrorResponse{Error: "Account not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toAccountResponse(account))
	}
}
