package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	// ErrInvalidAccountData is returned when the owner name is empty or the pin is not exactly 4 characters.
	ErrInvalidAccountData = errors.New("invalid account data")
	// ErrAccountNotFound is returned when the referenced account number does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidPin is returned when the supplied pin does not match the account's pin.
	ErrInvalidPin = errors.New("invalid pin")
	// ErrInsufficientFunds is returned when a debit exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned when an operation amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
)

const pinLength = 4

// AccountReader defines read operations for accounts.
type AccountReader interface {
	GetByAccountNumber(ctx context.Context, accountNumber string) (*models.AccountDB, error)          // Returns an account or nil
	GetByAccountNumberForUpdate(ctx context.Context, accountNumber string) (*models.AccountDB, error) // Same, locking the row
	ListAll(ctx context.Context) ([]models.AccountDB, error)                                          // Returns all accounts
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, accountNumber, ownerName, pinHash string) (*models.AccountDB, error)     // Persists a new account
	Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) // Increases the balance
	Debit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error)  // Decreases the balance, guarded in SQL
}

// TransactionWriter appends transaction records.
type TransactionWriter interface {
	Save(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, operation string) (*models.TransactionDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService enforces account and transaction business rules.
// Each operation runs inside the per-request database transaction, so the
// balance change and the transaction record commit together or not at all.
type LedgerService struct {
	accountReader AccountReader
	accountWriter AccountWriter
	txnWriter     TransactionWriter
	kafkaWriter   KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	accountReader AccountReader,
	accountWriter AccountWriter,
	txnWriter TransactionWriter,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		accountReader: accountReader,
		accountWriter: accountWriter,
		txnWriter:     txnWriter,
		kafkaWriter:   kafkaWriter,
	}
}

// publishTransaction publishes a recorded transaction to Kafka.
// Failures are logged and never fail the ledger operation.
func (s *LedgerService) publishTransaction(ctx context.Context, txn *models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID,
		FromAccount:   txn.FromAccount,
		ToAccount:     txn.ToAccount,
		Amount:        txn.Amount.String(),
		Operation:     txn.Operation,
		Timestamp:     txn.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(txn.TransactionID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction published to Kafka", "transaction_id", txn.TransactionID, "operation", txn.Operation)
	}
}

// CreateAccount validates the owner name and pin, generates a fresh account
// number and persists the new account with a zero balance.
func (s *LedgerService) CreateAccount(ctx context.Context, name, pin string) (*models.AccountDB, error) {
	if name == "" || len(pin) != pinLength {
		logger.Log.Errorw("invalid account data", "name", name)
		return nil, ErrInvalidAccountData
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash pin", "error", err)
		return nil, err
	}

	account, err := s.accountWriter.Save(ctx, uuid.NewString(), name, string(pinHash))
	if err != nil {
		logger.Log.Errorw("failed to save account", "name", name, "error", err)
		return nil, err
	}

	return account, nil
}

// GetAccount returns the account with the given number, or nil when it does
// not exist. Absence is not an error.
func (s *LedgerService) GetAccount(ctx context.Context, accountNumber string) (*models.AccountDB, error) {
	account, err := s.accountReader.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.Log.Errorw("failed to get account", "account_number", accountNumber, "error", err)
		return nil, err
	}
	return account, nil
}

// ListAccounts returns all accounts.
func (s *LedgerService) ListAccounts(ctx context.Context) ([]models.AccountDB, error) {
	accounts, err := s.accountReader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list accounts", "error", err)
		return nil, err
	}
	return accounts, nil
}

// Deposit credits the account balance and records a DEPOSIT transaction
// with the account as both source and destination.
func (s *LedgerService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		logger.Log.Errorw("invalid deposit amount", "account_number", accountNumber, "amount", amount)
		return ErrInvalidAmount
	}

	account, err := s.accountReader.GetByAccountNumberForUpdate(ctx, accountNumber)
	if err != nil {
		logger.Log.Errorw("failed to read account for deposit", "account_number", accountNumber, "error", err)
		return err
	}
	if account == nil {
		logger.Log.Errorw("account not found for deposit", "account_number", accountNumber)
		return ErrAccountNotFound
	}

	if _, err := s.accountWriter.Credit(ctx, accountNumber, amount); err != nil {
		logger.Log.Errorw("failed to credit account", "account_number", accountNumber, "amount", amount, "error", err)
		return err
	}

	txn, err := s.txnWriter.Save(ctx, accountNumber, accountNumber, amount, models.OperationDeposit)
	if err != nil {
		logger.Log.Errorw("failed to record deposit transaction", "account_number", accountNumber, "error", err)
		return err
	}

	s.publishTransaction(ctx, txn)

	return nil
}

// Withdraw debits the account balance and records a WITHDRAW transaction.
// Checks run in a fixed order: account existence, funds sufficiency, pin.
func (s *LedgerService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, pin string) error {
	if !amount.IsPositive() {
		logger.Log.Errorw("invalid withdraw amount", "account_number", accountNumber, "amount", amount)
		return ErrInvalidAmount
	}

	account, err := s.accountReader.GetByAccountNumberForUpdate(ctx, accountNumber)
	if err != nil {
		logger.Log.Errorw("failed to read account for withdrawal", "account_number", accountNumber, "error", err)
		return err
	}
	if account == nil {
		logger.Log.Errorw("account not found for withdrawal", "account_number", accountNumber)
		return ErrAccountNotFound
	}
	if account.Balance.LessThan(amount) {
		logger.Log.Errorw("insufficient funds for withdrawal", "account_number", accountNumber, "amount", amount)
		return ErrInsufficientFunds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PinHash), []byte(pin)); err != nil {
		logger.Log.Errorw("invalid pin for withdrawal", "account_number", accountNumber)
		return ErrInvalidPin
	}

	if _, err := s.accountWriter.Debit(ctx, accountNumber, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit account", "account_number", accountNumber, "amount", amount, "error", err)
		return err
	}

	txn, err := s.txnWriter.Save(ctx, accountNumber, accountNumber, amount, models.OperationWithdraw)
	if err != nil {
		logger.Log.Errorw("failed to record withdrawal transaction", "account_number", accountNumber, "error", err)
		return err
	}

	s.publishTransaction(ctx, txn)

	return nil
}

// Transfer moves funds between two accounts and records one TRANSFER
// transaction. Checks run in a fixed order: existence of both accounts,
// source pin, source funds sufficiency. Rows are locked in ascending
// account-number order so concurrent transfers cannot deadlock.
// A self-transfer is not guarded: it nets to no balance change but still
// records a transaction.
func (s *LedgerService) Transfer(ctx context.Context, fromAccount, toAccount string, amount decimal.Decimal, pin string) error {
	if !amount.IsPositive() {
		logger.Log.Errorw("invalid transfer amount", "from", fromAccount, "to", toAccount, "amount", amount)
		return ErrInvalidAmount
	}

	source, dest, err := s.lockPair(ctx, fromAccount, toAccount)
	if err != nil {
		logger.Log.Errorw("failed to read accounts for transfer", "from", fromAccount, "to", toAccount, "error", err)
		return err
	}
	if source == nil || dest == nil {
		logger.Log.Errorw("account not found for transfer", "from", fromAccount, "to", toAccount)
		return ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(source.PinHash), []byte(pin)); err != nil {
		logger.Log.Errorw("invalid pin for transfer", "from", fromAccount)
		return ErrInvalidPin
	}
	if source.Balance.LessThan(amount) {
		logger.Log.Errorw("insufficient funds for transfer", "from", fromAccount, "amount", amount)
		return ErrInsufficientFunds
	}

	if _, err := s.accountWriter.Debit(ctx, fromAccount, amount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit source account", "from", fromAccount, "amount", amount, "error", err)
		return err
	}
	if _, err := s.accountWriter.Credit(ctx, toAccount, amount); err != nil {
		logger.Log.Errorw("failed to credit destination account", "to", toAccount, "amount", amount, "error", err)
		return err
	}

	txn, err := s.txnWriter.Save(ctx, fromAccount, toAccount, amount, models.OperationTransfer)
	if err != nil {
		logger.Log.Errorw("failed to record transfer transaction", "from", fromAccount, "to", toAccount, "error", err)
		return err
	}

	s.publishTransaction(ctx, txn)

	return nil
}

// lockPair locks both account rows in ascending account-number order and
// returns them as (source, destination).
func (s *LedgerService) lockPair(ctx context.Context, fromAccount, toAccount string) (*models.AccountDB, *models.AccountDB, error) {
	if fromAccount == toAccount {
		account, err := s.accountReader.GetByAccountNumberForUpdate(ctx, fromAccount)
		return account, account, err
	}

	first, second := fromAccount, toAccount
	if second < first {
		first, second = second, first
	}

	firstAcc, err := s.accountReader.GetByAccountNumberForUpdate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondAcc, err := s.accountReader.GetByAccountNumberForUpdate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	if first == fromAccount {
		return firstAcc, secondAcc, nil
	}
	return secondAcc, firstAcc, nil
}
