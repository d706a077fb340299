package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID                 uuid.UUID
	Date               string
	Description        string
	Amount             decimal.Decimal
	Category           string
	Type               ledger.TransactionType
	Account            string
	SourceAccount      string
	DestinationAccount string
	CreatedAt          time.Time
}

// CreatedTransaction is the outcome of recording a manual entry.
type CreatedTransaction struct {
	ID                uuid.UUID
	Transaction       ledger.Transaction
	UnmatchedAccounts []string
}

// TransactionFilter narrows a transaction listing. Empty fields match all.
type TransactionFilter struct {
	Type   ledger.TransactionType
	Search string
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	tx := row.Ledger()
	return Transaction{
		ID:                 row.ID,
		Date:               tx.Date,
		Description:        tx.Description,
		Amount:             tx.Amount,
		Category:           tx.Category,
		Type:               tx.Type,
		Account:            tx.Account,
		SourceAccount:      tx.SourceAccount,
		DestinationAccount: tx.DestinationAccount,
		CreatedAt:          row.CreatedAt,
	}
}
