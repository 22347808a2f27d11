package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
	"github.com/sbilibin2017/bank-ledger/internal/services"
)

// AccountCreator defines the interface that the service must implement.
type AccountCreator interface {
	CreateAccount(ctx context.Context, name, pin string) (*models.AccountDB, error)
}

// CreateAccountRequest represents the JSON body for account creation
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Owner display name
	// required: true
	// example: Ivan
	Name string `json:"name"`

	// Four-digit pin code
	// required: true
	// example: 1234
	PinCode string `json:"pin_code"`
}

// CreateAccountResponse represents a successful account creation response
// swagger:model CreateAccountResponse
type CreateAccountResponse struct {
	// Success message
	// example: Account created successfully
	Message string `json:"message"`

	// Number of the created account
	AccountNumber string `json:"account_number"`
}

// CreateAccountErrorResponse represents an error response for account creation
// swagger:model CreateAccountErrorResponse
type CreateAccountErrorResponse struct {
	// Error message
	// example: Invalid name or pin code
	Error string `json:"error"`
}

// NewCreateAccountHandler returns an HTTP handler for creating accounts.
// @Summary Create a new account
// @Description Creates an account with a zero balance. The name must be present and the pin exactly 4 characters.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "Account creation request"
// @Success 200 {object} handlers.CreateAccountResponse "Account created"
// @Failure 400 {object} handlers.CreateAccountErrorResponse "Invalid name or pin code"
// @Router /accounts [post]
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create account request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Invalid request body"})
			return
		}

		account, err := svc.CreateAccount(r.Context(), req.Name, req.PinCode)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			if errors.Is(err, services.ErrInvalidAccountData) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Invalid name or pin code"})
				return
			}
			logger.Log.Errorw("failed to create account", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateAccountErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateAccountResponse{
			Message:       "Account created successfully",
			AccountNumber: account.AccountNumber,
		})
	}
}
