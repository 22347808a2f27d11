package services

import (
	"context"

	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
)

// TransactionReader defines read operations for the transaction log.
type TransactionReader interface {
	ListAll(ctx context.Context) ([]models.TransactionDB, error)                                  // Returns all transactions
	ListByFromAccount(ctx context.Context, accountNumber string) ([]models.TransactionDB, error) // Returns transactions originating from the account
}

// TransactionService exposes the transaction log.
type TransactionService struct {
	reader TransactionReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader TransactionReader) *TransactionService {
	return &TransactionService{reader: reader}
}

// ListTransactions returns all recorded transactions.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]models.TransactionDB, error) {
	txns, err := s.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}
	return txns, nil
}

// ListTransactionsByAccount returns transactions where the given account is
// the originator. Deposits and withdrawals are included since they record
// the account as both source and destination.
func (s *TransactionService) ListTransactionsByAccount(ctx context.Context, accountNumber string) ([]models.TransactionDB, error) {
	txns, err := s.reader.ListByFromAccount(ctx, accountNumber)
	if err != nil {
		logger.Log.Errorw("failed to list transactions by account", "account_number", accountNumber, "error", err)
		return nil, err
	}
	return txns, nil
}
