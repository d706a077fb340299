package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

const tableName = "transactions"

var ErrNotFound = errors.New("transaction not found")

var columns = []any{
	"id", "date", "description", "amount", "category", "type",
	"account", "source_account", "destination_account", "created_at", "updated_at",
}

// Transaction represents a transaction record. Account is set for income and
// expense rows; SourceAccount and DestinationAccount for transfers.
type Transaction struct {
	ID                 uuid.UUID        `db:"id"`
	Date               string           `db:"date"`
	Description        string           `db:"description"`
	Amount             decimal.Decimal  `db:"amount"`
	Category           string           `db:"category"`
	Type               string           `db:"type"`
	Account            null.Val[string] `db:"account"`
	SourceAccount      null.Val[string] `db:"source_account"`
	DestinationAccount null.Val[string] `db:"destination_account"`
	CreatedAt          time.Time        `db:"created_at"`
	UpdatedAt          time.Time        `db:"updated_at"`
}

// Ledger returns the balance-relevant view of the record.
func (t *Transaction) Ledger() ledger.Transaction {
	return ledger.Transaction{
		Date:               t.Date,
		Description:        t.Description,
		Amount:             t.Amount,
		Category:           t.Category,
		Type:               ledger.TransactionType(t.Type),
		Account:            t.Account.GetOrZero(),
		SourceAccount:      t.SourceAccount.GetOrZero(),
		DestinationAccount: t.DestinationAccount.GetOrZero(),
	}
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Date               string
	Description        string
	Amount             decimal.Decimal
	Category           string
	Type               string
	Account            null.Val[string]
	SourceAccount      null.Val[string]
	DestinationAccount null.Val[string]
}

// NewTransactionCreate maps a validated ledger transaction to a row. Empty
// account names are stored as NULL.
func NewTransactionCreate(tx ledger.Transaction) *TransactionCreate {
	return &TransactionCreate{
		Date:               tx.Date,
		Description:        tx.Description,
		Amount:             tx.Amount,
		Category:           tx.Category,
		Type:               string(tx.Type),
		Account:            nullable(tx.Account),
		SourceAccount:      nullable(tx.SourceAccount),
		DestinationAccount: nullable(tx.DestinationAccount),
	}
}

func nullable(s string) null.Val[string] {
	if s == "" {
		return null.Val[string]{}
	}
	return null.From(s)
}

// TransactionFilter specifies filters for listing transactions. A zero Limit
// returns every matching row. Search matches description, category and date
// case-insensitively.
type TransactionFilter struct {
	Type            *string
	Search          *string
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListResult contains a page of transactions and an optional next cursor.
type TransactionListResult struct {
	Transactions []*Transaction
	NextCursor   *TransactionCursor
}

// IReader is the read side of the transactions table.
//
//go:generate mockery --name IReader --inpackage --testonly=false --filename mock_IReader.go
type IReader interface {
	List(ctx context.Context, filter *TransactionFilter) (*TransactionListResult, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
}

// IWriter is used inside an operator transaction.
//
//go:generate mockery --name IWriter --inpackage --testonly=false --filename mock_IWriter.go
type IWriter interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
