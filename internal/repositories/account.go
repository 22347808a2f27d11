package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

func (r *AccountWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new account with a zero balance and returns the stored row.
func (r *AccountWriteRepository) Save(ctx context.Context, accountNumber, ownerName, pinHash string) (*models.AccountDB, error) {
	const query = `
		INSERT INTO accounts (account_number, owner_name, pin_hash, balance, created_at, updated_at)
		VALUES ($1, $2, $3, 0, NOW(), NOW())
		RETURNING account_number, owner_name, pin_hash, balance, created_at, updated_at
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, accountNumber, ownerName, pinHash)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountNumber, ownerName},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Credit increases the account balance in a single statement and returns the
// new balance. sql.ErrNoRows means the account does not exist.
func (r *AccountWriteRepository) Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE accounts
		SET balance = balance + $2, updated_at = NOW()
		WHERE account_number = $1
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, accountNumber, amount)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountNumber, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Debit decreases the account balance in a single statement guarded by the
// balance >= amount check and returns the new balance. sql.ErrNoRows means
// the account is missing or the funds are insufficient.
func (r *AccountWriteRepository) Debit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE accounts
		SET balance = balance - $2, updated_at = NOW()
		WHERE account_number = $1 AND balance >= $2
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, accountNumber, amount)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountNumber, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

func (r *AccountReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByAccountNumber retrieves an account by its number.
// Returns (nil, nil) when the account does not exist.
func (r *AccountReadRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*models.AccountDB, error) {
	const query = `
		SELECT account_number, owner_name, pin_hash, balance, created_at, updated_at
		FROM accounts
		WHERE account_number = $1
	`

	return r.getOne(ctx, query, accountNumber)
}

// GetByAccountNumberForUpdate retrieves an account and locks its row for the
// duration of the surrounding transaction. Returns (nil, nil) when the
// account does not exist.
func (r *AccountReadRepository) GetByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.AccountDB, error) {
	const query = `
		SELECT account_number, owner_name, pin_hash, balance, created_at, updated_at
		FROM accounts
		WHERE account_number = $1
		FOR UPDATE
	`

	return r.getOne(ctx, query, accountNumber)
}

func (r *AccountReadRepository) getOne(ctx context.Context, query, accountNumber string) (*models.AccountDB, error) {
	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, accountNumber)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountNumber},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAll retrieves all accounts.
func (r *AccountReadRepository) ListAll(ctx context.Context) ([]models.AccountDB, error) {
	const query = `
		SELECT account_number, owner_name, pin_hash, balance, created_at, updated_at
		FROM accounts
	`

	var accounts []models.AccountDB
	err := r.db.SelectContext(ctx, &accounts, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(accounts),
		"error", err,
	)

	return accounts, err
}
