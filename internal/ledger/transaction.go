package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

const (
	DefaultDescription = "Untitled"
	DefaultCategory    = "Uncategorized"
	TransferCategory   = "Transfer"
)

var (
	ErrInvalidType        = errors.New("ledger: transaction type must be income, expense or transfer")
	ErrAccountRequired    = errors.New("ledger: account is required for income and expense")
	ErrTransferAccounts   = errors.New("ledger: transfer requires source and destination accounts")
	ErrAccountShape       = errors.New("ledger: account and source/destination accounts are mutually exclusive")
	ErrSameTransferTarget = errors.New("ledger: transfer source and destination must differ")
	ErrInvalidAmount      = errors.New("ledger: amount must be greater than zero")
)

// AmountPlaces is the number of decimal places amounts are stored with.
const AmountPlaces = 2

// RoundAmount rounds d to AmountPlaces, half away from zero, matching how
// the database rounds NUMERIC input.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// ParseTransactionType returns the TransactionType named by s.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return t, nil
	}
	return "", ErrInvalidType
}

// Transaction is the balance-relevant shape of a recorded transaction.
// Amount sign encodes direction: expenses negative, income positive,
// transfers a positive magnitude.
type Transaction struct {
	Date               string
	Description        string
	Amount             decimal.Decimal
	Category           string
	Type               TransactionType
	Account            string
	SourceAccount      string
	DestinationAccount string
}

// IsTransfer reports whether the transaction moves value between two accounts.
func (t Transaction) IsTransfer() bool {
	return t.Type == TypeTransfer
}

// Validate checks that exactly one of Account or the
// SourceAccount/DestinationAccount pair is populated, matching the type.
func (t Transaction) Validate() error {
	switch t.Type {
	case TypeIncome, TypeExpense:
		if t.SourceAccount != "" || t.DestinationAccount != "" {
			return ErrAccountShape
		}
		if t.Account == "" {
			return ErrAccountRequired
		}
	case TypeTransfer:
		if t.Account != "" {
			return ErrAccountShape
		}
		if t.SourceAccount == "" || t.DestinationAccount == "" {
			return ErrTransferAccounts
		}
		if t.SourceAccount == t.DestinationAccount {
			return ErrSameTransferTarget
		}
	default:
		return ErrInvalidType
	}
	return nil
}

// IsValidation reports whether err is one of the ledger's input errors.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidType, ErrAccountRequired, ErrTransferAccounts,
		ErrAccountShape, ErrSameTransferTarget, ErrInvalidAmount,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
