// Package classify decides whether a statement row is income or an expense.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

// Income keywords are checked before expense keywords. "payment" is in both
// lists so it always classifies as income.
var incomeKeywords = []string{
	"deposit", "salary", "wage", "payment", "refund", "credit", "transfer in",
	"direct deposit", "payroll", "bonus", "commission", "dividend", "interest",
	"reimbursement", "cashback", "reward", "gift", "inheritance", "settlement",
}

var expenseKeywords = []string{
	"purchase", "payment", "withdrawal", "debit", "transfer out", "fee",
	"subscription", "bill", "charge", "transaction", "atm", "cash withdrawal",
	"online purchase", "pos", "point of sale", "merchant", "store", "shop",
	"gas", "fuel", "restaurant", "food", "grocery", "entertainment", "travel",
}

// Classify returns TypeIncome or TypeExpense. Keywords win over the sign of
// amount; a zero amount with no keyword is income.
func Classify(description string, amount decimal.Decimal) ledger.TransactionType {
	lower := strings.ToLower(description)

	if containsAny(lower, incomeKeywords) {
		return ledger.TypeIncome
	}
	if containsAny(lower, expenseKeywords) {
		return ledger.TypeExpense
	}

	if amount.Sign() >= 0 {
		return ledger.TypeIncome
	}
	return ledger.TypeExpense
}

// Normalize forces the sign of amount to match kind: expenses negative,
// everything else positive.
func Normalize(kind ledger.TransactionType, amount decimal.Decimal) decimal.Decimal {
	if kind == ledger.TypeExpense {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
