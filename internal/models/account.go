package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountDB represents an account row in the database
type AccountDB struct {
	AccountNumber string          `json:"account_number" db:"account_number"` // Unique account identifier (UUID string)
	OwnerName     string          `json:"owner_name" db:"owner_name"`         // Display name of the account owner
	PinHash       string          `json:"-" db:"pin_hash"`                    // Bcrypt hash of the 4-digit pin, never serialized
	Balance       decimal.Decimal `json:"balance" db:"balance"`               // Current account balance
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the account was created
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`         // Timestamp of the last balance change
}
