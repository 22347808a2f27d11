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

// Transferrer defines the interface that the service must implement.
type Transferrer interface {
	Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, pin string) error
}

// TransferRequest represents the JSON body for transferring funds
// swagger:model TransferRequest
type TransferRequest struct {
	// Amount to transfer
	// required: true
	// example: 10
	Amount decimal.Decimal `json:"amount"`

	// Four-digit pin code of the source account
	// required: true
	// example: 1234
	PinCode string `json:"pin_code"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// example: Transfer successful
	Message string `json:"message"`
}

// TransferErrorResponse represents an error response for transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// example: Insufficient funds
	Error string `json:"error"`
}

// NewTransferHandler returns an HTTP handler for transferring funds between accounts.
// @Summary Transfer funds
// @Description Moves funds between two accounts and records one TRANSFER transaction.
// @Tags accounts
// @Accept json
// @Produce json
// @Param fromAccNum path string true "Source account number"
// @Param toAccNum path string true "Destination account number"
// @Param request body handlers.TransferRequest true "Transfer request"
// @Success 200 {object} handlers.TransferResponse "Transfer successful"
// @Failure 400 {object} handlers.TransferErrorResponse "Account not found / invalid pin / insufficient funds"
// @Router /accounts/{fromAccNum}/transfer/{toAccNum} [patch]
func NewTransferHandler(svc Transferrer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fromAccount := chi.URLParam(r, "fromAccNum")
		toAccount := chi.URLParam(r, "toAccNum")

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.Transfer(r.Context(), fromAccount, toAccount, req.Amount, req.PinCode)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Account not found"})
			case errors.Is(err, services.ErrInvalidPin):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid pin"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to transfer funds", "from", fromAccount, "to", toAccount, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransferResponse{Message: "Transfer successful"})
	}
}
