// Package summary derives report figures from parsed statements, recorded
// transactions and account balances.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
)

var hundred = decimal.NewFromInt(100)

// CategoryShare is one slice of the spending breakdown.
type CategoryShare struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
}

// CategoryBreakdown merges imported category totals with recorded expenses.
// Entries keep first-insertion order, seed categories first. Percentages are
// whole numbers of the grand total.
func CategoryBreakdown(seed *statement.CategoryTotals, recorded []ledger.Transaction) []CategoryShare {
	totals := seed.Clone()
	for _, tx := range recorded {
		if tx.Type != ledger.TypeExpense {
			continue
		}
		category := tx.Category
		if category == "" {
			category = ledger.DefaultCategory
		}
		totals.Add(category, tx.Amount.Abs())
	}

	entries := totals.Entries()
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}

	shares := make([]CategoryShare, len(entries))
	for i, entry := range entries {
		shares[i] = CategoryShare{
			Name:       entry.Category,
			Amount:     entry.Amount,
			Percentage: percentOf(entry.Amount, total).Round(0).IntPart(),
		}
	}
	return shares
}

func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if total.Sign() <= 0 {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}
