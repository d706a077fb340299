package categorize

import (
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

// CategoriesFor lists the categories a user can pick for the given kind.
// Transfers have a fixed category and offer none.
func CategoriesFor(kind ledger.TransactionType) []string {
	switch kind {
	case ledger.TypeExpense:
		return ExpenseCategories()
	case ledger.TypeIncome:
		out := make([]string, len(IncomeCategories))
		copy(out, IncomeCategories)
		return out
	}
	return nil
}

// SuggestionRules is the manual table followed by one rule per category
// available for kind.
func SuggestionRules(kind ledger.TransactionType) *RuleSet {
	return ManualRules().With(DynamicRules(CategoriesFor(kind))...)
}

// Suggest proposes a category for a manually entered transaction name.
// It satisfies ledger.Suggester.
func Suggest(name string, kind ledger.TransactionType) (string, bool) {
	return SuggestionRules(kind).Match(name)
}
