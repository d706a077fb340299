package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSuggester(category string) Suggester {
	return func(name string, kind TransactionType) (string, bool) {
		return category, category != ""
	}
}

func TestDraftBuild_ExpenseIsNegated(t *testing.T) {
	tx, err := Draft{
		Type:    TypeExpense,
		Amount:  dec("250"),
		Date:    "2025-03-01",
		Name:    "Swiggy dinner",
		Account: "Cash",
	}.Build(fixedSuggester("Food"))

	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(dec("-250")))
	assert.Equal(t, "Food", tx.Category)
	assert.Equal(t, "Cash", tx.Account)
	assert.Equal(t, "2025-03-01", tx.Date)
}

func TestDraftBuild_RoundsToCents(t *testing.T) {
	tx, err := Draft{Type: TypeExpense, Amount: dec("10.005"), Account: "Cash"}.Build(nil)

	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(dec("-10.01")), tx.Amount.String())
}

func TestDraftBuild_ExplicitCategoryWins(t *testing.T) {
	tx, err := Draft{
		Type:     TypeIncome,
		Amount:   dec("1000"),
		Name:     "Salary",
		Category: "Bonus",
		Account:  "Savings",
	}.Build(fixedSuggester("Salary"))

	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(dec("1000")))
	assert.Equal(t, "Bonus", tx.Category)
}

func TestDraftBuild_Defaults(t *testing.T) {
	tx, err := Draft{Type: TypeExpense, Amount: dec("1"), Account: "Cash"}.Build(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultDescription, tx.Description)
	assert.Equal(t, DefaultCategory, tx.Category)
}

func TestDraftBuild_NoSuggestionFallsBack(t *testing.T) {
	tx, err := Draft{Type: TypeExpense, Amount: dec("1"), Name: "xyz", Account: "Cash"}.Build(fixedSuggester(""))

	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, tx.Category)
}

func TestDraftBuild_Transfer(t *testing.T) {
	tx, err := Draft{
		Type:               TypeTransfer,
		Amount:             dec("100"),
		Category:           "Food",
		SourceAccount:      "A",
		DestinationAccount: "B",
	}.Build(fixedSuggester("Food"))

	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(dec("100")))
	assert.Equal(t, TransferCategory, tx.Category)
	assert.Empty(t, tx.Account)
}

func TestDraftBuild_Validation(t *testing.T) {
	cases := map[string]struct {
		draft Draft
		err   error
	}{
		"zero amount": {
			draft: Draft{Type: TypeExpense, Amount: decimal.Zero, Account: "A"},
			err:   ErrInvalidAmount,
		},
		"amount below one cent": {
			draft: Draft{Type: TypeExpense, Amount: dec("0.004"), Account: "A"},
			err:   ErrInvalidAmount,
		},
		"negative amount": {
			draft: Draft{Type: TypeIncome, Amount: dec("-3"), Account: "A"},
			err:   ErrInvalidAmount,
		},
		"missing account": {
			draft: Draft{Type: TypeIncome, Amount: dec("3")},
			err:   ErrAccountRequired,
		},
		"missing transfer destination": {
			draft: Draft{Type: TypeTransfer, Amount: dec("3"), SourceAccount: "A"},
			err:   ErrTransferAccounts,
		},
		"transfer to same account": {
			draft: Draft{Type: TypeTransfer, Amount: dec("3"), SourceAccount: "A", DestinationAccount: "A"},
			err:   ErrSameTransferTarget,
		},
		"bad type": {
			draft: Draft{Type: "gift", Amount: dec("3"), Account: "A"},
			err:   ErrInvalidType,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.draft.Build(nil)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
