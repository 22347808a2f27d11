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

// Withdrawer defines the interface that the service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, pin string) error
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// example: 500
	Amount decimal.Decimal `json:"amount"`

	// Four-digit pin code
	// required: true
	// example: 1234
	PinCode string `json:"pin_code"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// example: Withdrawal successful
	Message string `json:"message"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// example: Insufficient funds
	Error string `json:"error"`
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds.
// Each failure kind maps to its own message so callers can tell an unknown
// account from a wrong pin or an overdraft.
// @Summary Withdraw funds
// @Description Debits the account balance and records a WITHDRAW transaction.
// @Tags accounts
// @Accept json
// @Produce json
// @Param accNum path string true "Account number"
// @Param request body handlers.WithdrawRequest true "Withdraw request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal successful"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Account not found / insufficient funds / invalid pin"
// @Router /accounts/{accNum}/withdraw [patch]
func NewWithdrawHandler(svc Withdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountNumber := chi.URLParam(r, "accNum")

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.Withdraw(r.Context(), accountNumber, req.Amount, req.PinCode)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Account not found"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrInvalidPin):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid pin"})
			default:
				logger.Log.Errorw("failed to withdraw funds", "account_number", accountNumber, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawResponse{Message: "Withdrawal successful"})
	}
}
