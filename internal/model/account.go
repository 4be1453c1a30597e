package model

import "time"

// Transaction kinds recorded in the ledger.
const (
	TxnDeposit    = "deposit"
	TxnWithdrawal = "withdrawal"
)

// Account represents a balance-holding account.
// Balance is kept in minor units (e.g. cents) to avoid float arithmetic.
// This is a pure domain model with no database-specific dependencies or tags.
type Account struct {
	ID        string    `json:"id"`
	OwnerName string    `json:"owner_name"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction is a single ledger entry against an account.
// Amount is always positive; Kind tells the direction.
type Transaction struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	Kind         string    `json:"kind"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}
