package summary

import (
	"strings"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

// Filter narrows a transaction list by type and free-text query. The zero
// value matches everything.
type Filter struct {
	Type  ledger.TransactionType
	Query string
}

// Matches reports whether tx passes the filter. The query is matched
// case-insensitively against description, category and date.
func (f Filter) Matches(tx ledger.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Description), q) ||
		strings.Contains(strings.ToLower(tx.Category), q) ||
		strings.Contains(strings.ToLower(tx.Date), q)
}

// FilterTransactions returns the items of list whose ledger view matches f,
// preserving order.
func FilterTransactions[T any](list []T, f Filter, view func(T) ledger.Transaction) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if f.Matches(view(item)) {
			out = append(out, item)
		}
	}
	return out
}
