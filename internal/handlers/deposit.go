package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// Depositor defines the interface that the service must implement.
type Depositor interface {
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) error
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit
	// required: true
	// example: 500
	Amount decimal.Decimal `json:"amount"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// example: Deposit successful
	Message string `json:"message"`
}

// DepositErrorResponse represents an error response for deposit
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// example: Invalid amount
	Error string `json:"error"`
}

// NewDepositHandler returns an HTTP handler for depositing funds.
// @Summary Deposit funds
// @Description Credits the account balance and records a DEPOSIT transaction.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accNum path string true "Account number"
// @Param request body handlers.DepositRequest true "Deposit request"
// @Success 200 {object} handlers.DepositResponse "Deposit successful"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid amount"
// @Failure 404 {object} handlers.DepositErrorResponse "Account not found"
// @Router /accounts/{accNum}/deposit [patch]
func NewDepositHandler(svc Depositor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountNumber := chi.URLParam(r, "accNum")

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.Deposit(r.Context(), accountNumber, req.Amount)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to deposit funds", "account_number", accountNumber, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositResponse{Message: "Deposit successful"})
	}
}
