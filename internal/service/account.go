package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"
	"ledgerapi/internal/storage"
)

var (
	ErrIDRequired        = errors.New("id is required")
	ErrOwnerRequired     = errors.New("owner name is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrNegativeOpening   = errors.New("opening balance cannot be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// statementMaxEntries caps how many ledger entries a rendered statement carries.
const statementMaxEntries = 500

// TransactionListResult is the service-level DTO for paginated ledger entries.
type TransactionListResult struct {
	Items []model.Transaction `json:"data"`
	Total int                 `json:"total"`
}

// StatementExportResult describes a statement stored in object storage and a
// presigned URL to download it.
type StatementExportResult struct {
	Export model.StatementExport `json:"export"`
	URL    string                `json:"url"`
}

// AccountService defines the use cases for balance-holding accounts.
type AccountService interface {
	// Create opens an account with an optional non-negative opening balance.
	Create(ctx context.Context, ownerName string, openingBalance int64) (*model.Account, error)

	// Get returns a single account by its ID.
	Get(ctx context.Context, id string) (*model.Account, error)

	// Deposit credits a positive amount and returns the recorded ledger entry.
	Deposit(ctx context.Context, id string, amount int64) (*model.Transaction, error)

	// Withdraw debits a positive amount not exceeding the balance and returns
	// the recorded ledger entry. Overdrafts fail with ErrInsufficientFunds.
	Withdraw(ctx context.Context, id string, amount int64) (*model.Transaction, error)

	// Transactions returns ledger entries using limit/offset and a total count.
	Transactions(ctx context.Context, id string, limit, offset int) (*TransactionListResult, error)

	// ExportStatement renders a plain-text statement, uploads it to object
	// storage, saves export metadata to DB, and rolls back storage if the DB
	// save fails. Returns the export and a presigned download URL.
	ExportStatement(ctx context.Context, id string) (*StatementExportResult, error)
}

// accountService is a concrete implementation of AccountService.
type accountService struct {
	repo           repository.AccountRepository
	exports        repository.StatementRepository
	store          storage.Storage
	notifications  NotificationService
	receiptChannel string
	presignExpiry  time.Duration
}

// NewAccountService constructs a new AccountService.
// notifications may be nil to disable transaction receipts.
func NewAccountService(
	repo repository.AccountRepository,
	exports repository.StatementRepository,
	store storage.Storage,
	notifications NotificationService,
	receiptChannel string,
	presignExpiry time.Duration,
) AccountService {
	if receiptChannel == "" {
		receiptChannel = model.ChannelPush
	}
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &accountService{
		repo:           repo,
		exports:        exports,
		store:          store,
		notifications:  notifications,
		receiptChannel: receiptChannel,
		presignExpiry:  presignExpiry,
	}
}

func (s *accountService) Create(ctx context.Context, ownerName string, openingBalance int64) (*model.Account, error) {
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return nil, ErrOwnerRequired
	}
	if openingBalance < 0 {
		return nil, ErrNegativeOpening
	}
	acc := &model.Account{
		ID:        uuid.New().String(),
		OwnerName: ownerName,
		Balance:   openingBalance,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, acc)
}

// Get returns an account by ID.
func (s *accountService) Get(ctx context.Context, id string) (*model.Account, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return acc, nil
}

func (s *accountService) Deposit(ctx context.Context, id string, amount int64) (*model.Transaction, error) {
	return s.apply(ctx, id, model.TxnDeposit, amount)
}

func (s *accountService) Withdraw(ctx context.Context, id string, amount int64) (*model.Transaction, error) {
	return s.apply(ctx, id, model.TxnWithdrawal, amount)
}

// apply validates and records one ledger movement, then dispatches a receipt.
func (s *accountService) apply(ctx context.Context, id, kind string, amount int64) (*model.Transaction, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if amount <= 0 {
		return nil, ErrAmountNotPositive
	}

	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	txn := &model.Transaction{
		ID:        uuid.New().String(),
		AccountID: acc.ID,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Apply(ctx, txn)
	if err != nil {
		// The account existed above, so a guarded update matching no row means
		// the balance would have gone negative.
		if errors.Is(err, sql.ErrNoRows) {
			if kind == model.TxnWithdrawal {
				return nil, ErrInsufficientFunds
			}
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	s.sendReceipt(ctx, acc, stored)
	return stored, nil
}

// sendReceipt dispatches a transaction receipt. Receipt failure never fails
// the ledger operation.
func (s *accountService) sendReceipt(ctx context.Context, acc *model.Account, txn *model.Transaction) {
	if s.notifications == nil {
		return
	}
	subject := "Deposit receipt"
	if txn.Kind == model.TxnWithdrawal {
		subject = "Withdrawal receipt"
	}
	body := fmt.Sprintf("%s of %d on account %s, new balance %d", txn.Kind, txn.Amount, acc.ID, txn.BalanceAfter)
	if _, err := s.notifications.Send(ctx, s.receiptChannel, acc.OwnerName, subject, body); err != nil {
		log.Printf("receipt dispatch failed for account %s: %v", acc.ID, err)
	}
}

// Transactions returns paginated ledger entries without exposing repository types.
func (s *accountService) Transactions(ctx context.Context, id string, limit, offset int) (*TransactionListResult, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	res, err := s.repo.ListTransactions(ctx, id, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &TransactionListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *accountService) ExportStatement(ctx context.Context, id string) (*StatementExportResult, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	entries, err := s.repo.ListTransactions(ctx, id, repository.PageQuery{Limit: statementMaxEntries})
	if err != nil {
		return nil, err
	}

	text := RenderStatement(acc, entries.Items, time.Now().UTC())
	key := "statements/" + uuid.New().String() + ".txt"

	// Upload to object storage
	objInfo, err := s.store.Put(ctx, key, strings.NewReader(text), storage.PutObjectOptions{
		Size:        int64(len(text)),
		ContentType: "text/plain; charset=utf-8",
		Metadata: map[string]string{
			"account-id": acc.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	// Save export metadata to database
	exp := &model.StatementExport{
		ID:          uuid.New().String(),
		AccountID:   acc.ID,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.exports.Create(ctx, exp)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign statement: %w", err)
	}
	return &StatementExportResult{Export: *stored, URL: url}, nil
}

// RenderStatement produces the plain-text statement body for an account.
// Entries are listed most recent first, as returned by the repository.
func RenderStatement(acc *model.Account, entries []model.Transaction, generatedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s (%s)\n", acc.OwnerName, acc.ID)
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(time.RFC3339))
	for _, e := range entries {
		sign := "+"
		if e.Kind == model.TxnWithdrawal {
			sign = "-"
		}
		fmt.Fprintf(&b, "%s  %-10s  %s%d  balance %d\n",
			e.CreatedAt.Format(time.RFC3339), e.Kind, sign, e.Amount, e.BalanceAfter)
	}
	fmt.Fprintf(&b, "\nClosing balance: %d\n", acc.Balance)
	return b.String()
}
