package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionWriteRepository appends transaction records
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends a transaction record, letting the store assign its id, and
// returns the stored row.
func (r *TransactionWriteRepository) Save(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, operation string) (*models.TransactionDB, error) {
	const query = `
		INSERT INTO transactions (from_account, to_account, amount, operation, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING transaction_id, from_account, to_account, amount, operation, created_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, executor, &txn, query, fromAccount, toAccount, amount, operation)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fromAccount, toAccount, amount, operation},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// TransactionReadRepository reads transaction records
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListAll retrieves all transactions in insertion order.
func (r *TransactionReadRepository) ListAll(ctx context.Context) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, from_account, to_account, amount, operation, created_at
		FROM transactions
		ORDER BY transaction_id
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(txns),
		"error", err,
	)

	return txns, err
}

// ListByFromAccount retrieves all transactions originating from the given
// account. Deposits and withdrawals are included since they record the
// account as both source and destination.
func (r *TransactionReadRepository) ListByFromAccount(ctx context.Context, accountNumber string) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, from_account, to_account, amount, operation, created_at
		FROM transactions
		WHERE from_account = $1
		ORDER BY transaction_id
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, accountNumber)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountNumber},
		"result_count", len(txns),
		"error", err,
	)

	return txns, err
}
