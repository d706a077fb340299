package ledger

import (
	"github.com/shopspring/decimal"
)

// Draft is a manually entered transaction before sign and default handling.
// Amount is the magnitude the user typed.
type Draft struct {
	Type               TransactionType
	Amount             decimal.Decimal
	Date               string
	Name               string
	Category           string
	Account            string
	SourceAccount      string
	DestinationAccount string
}

// Suggester proposes a category from a transaction name.
type Suggester func(name string, kind TransactionType) (string, bool)

// Build turns the draft into a Transaction. suggest may be nil.
func (d Draft) Build(suggest Suggester) (Transaction, error) {
	if _, err := ParseTransactionType(string(d.Type)); err != nil {
		return Transaction{}, err
	}
	d.Amount = RoundAmount(d.Amount)
	if !d.Amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}

	t := Transaction{
		Date:        d.Date,
		Description: d.Name,
		Amount:      d.Amount,
		Type:        d.Type,
	}
	if t.Description == "" {
		t.Description = DefaultDescription
	}

	switch d.Type {
	case TypeTransfer:
		if d.SourceAccount == "" || d.DestinationAccount == "" {
			return Transaction{}, ErrTransferAccounts
		}
		t.SourceAccount = d.SourceAccount
		t.DestinationAccount = d.DestinationAccount
		t.Category = TransferCategory
	default:
		if d.Account == "" {
			return Transaction{}, ErrAccountRequired
		}
		t.Account = d.Account
		if d.Type == TypeExpense {
			t.Amount = d.Amount.Neg()
		}
		t.Category = d.Category
		if t.Category == "" && suggest != nil && d.Name != "" {
			if suggested, ok := suggest(d.Name, d.Type); ok {
				t.Category = suggested
			}
		}
		if t.Category == "" {
			t.Category = DefaultCategory
		}
	}

	return t, t.Validate()
}
