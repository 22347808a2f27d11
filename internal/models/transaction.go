package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation kinds recorded in the transaction log.
const (
	OperationDeposit  = "DEPOSIT"
	OperationWithdraw = "WITHDRAW"
	OperationTransfer = "TRANSFER"
)

// TransactionDB represents a transaction row in the database.
// For DEPOSIT and WITHDRAW operations FromAccount and ToAccount hold the
// same account number.
type TransactionDB struct {
	TransactionID int64           `json:"transaction_id" db:"transaction_id"` // Surrogate key assigned by the store
	FromAccount   string          `json:"from_account" db:"from_account"`     // Account the operation originated from
	ToAccount     string          `json:"to_account" db:"to_account"`         // Account the operation credited
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Positive amount of the operation
	Operation     string          `json:"operation" db:"operation"`           // DEPOSIT, WITHDRAW or TRANSFER
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the operation happened
}

// TransactionEvent is the payload published to Kafka for every recorded
// ledger transaction.
type TransactionEvent struct {
	TransactionID int64  `json:"transaction_id"` // Identifier of the recorded transaction
	FromAccount   string `json:"from_account"`   // Originating account number
	ToAccount     string `json:"to_account"`     // Receiving account number
	Amount        string `json:"amount"`         // Decimal amount as a string
	Operation     string `json:"operation"`      // DEPOSIT, WITHDRAW or TRANSFER
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (in seconds) of the operation
}
