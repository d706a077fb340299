package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// -- Deltas tests --

func TestDeltas_Income(t *testing.T) {
	deltas, err := Deltas(Transaction{Type: TypeIncome, Amount: dec("5000"), Account: "Savings"})

	require.NoError(t, err)
	require.Len(t, deltas, 1)
	assert.Equal(t, "Savings", deltas[0].AccountName)
	assert.True(t, deltas[0].Amount.Equal(dec("5000")))
}

func TestDeltas_ExpenseDecreasesAccount(t *testing.T) {
	deltas, err := Deltas(Transaction{Type: TypeExpense, Amount: dec("-4.50"), Account: "Cash"})

	require.NoError(t, err)
	require.Len(t, deltas, 1)
	assert.True(t, deltas[0].Amount.Equal(dec("-4.50")))
}

func TestDeltas_TransferIsZeroSum(t *testing.T) {
	deltas, err := Deltas(Transaction{
		Type:               TypeTransfer,
		Amount:             dec("100"),
		SourceAccount:      "A",
		DestinationAccount: "B",
	})

	require.NoError(t, err)
	require.Len(t, deltas, 2)
	assert.Equal(t, "A", deltas[0].AccountName)
	assert.True(t, deltas[0].Amount.Equal(dec("-100")))
	assert.Equal(t, "B", deltas[1].AccountName)
	assert.True(t, deltas[1].Amount.Equal(dec("100")))
	assert.True(t, Net(deltas).IsZero())
}

func TestDeltas_TransferUsesMagnitude(t *testing.T) {
	deltas, err := Deltas(Transaction{
		Type:               TypeTransfer,
		Amount:             dec("-25"),
		SourceAccount:      "A",
		DestinationAccount: "B",
	})

	require.NoError(t, err)
	assert.True(t, deltas[0].Amount.Equal(dec("-25")))
	assert.True(t, deltas[1].Amount.Equal(dec("25")))
}

func TestDeltas_InvalidShape(t *testing.T) {
	cases := map[string]struct {
		tx  Transaction
		err error
	}{
		"income without account": {
			tx:  Transaction{Type: TypeIncome, Amount: dec("1")},
			err: ErrAccountRequired,
		},
		"expense with transfer fields": {
			tx:  Transaction{Type: TypeExpense, Amount: dec("-1"), Account: "A", SourceAccount: "B"},
			err: ErrAccountShape,
		},
		"transfer with account": {
			tx:  Transaction{Type: TypeTransfer, Amount: dec("1"), Account: "A", SourceAccount: "A", DestinationAccount: "B"},
			err: ErrAccountShape,
		},
		"transfer missing destination": {
			tx:  Transaction{Type: TypeTransfer, Amount: dec("1"), SourceAccount: "A"},
			err: ErrTransferAccounts,
		},
		"transfer to itself": {
			tx:  Transaction{Type: TypeTransfer, Amount: dec("1"), SourceAccount: "A", DestinationAccount: "A"},
			err: ErrSameTransferTarget,
		},
		"unknown type": {
			tx:  Transaction{Type: "refund", Amount: dec("1"), Account: "A"},
			err: ErrInvalidType,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			deltas, err := Deltas(tc.tx)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, deltas)
		})
	}
}

// -- Apply / Reverse tests --

func TestApply_TransferThenDeleteRestoresBalances(t *testing.T) {
	balances := map[string]decimal.Decimal{
		"A": dec("500"),
		"B": dec("20"),
	}
	tx := Transaction{Type: TypeTransfer, Amount: dec("100"), SourceAccount: "A", DestinationAccount: "B"}

	created, err := Deltas(tx)
	require.NoError(t, err)
	Apply(balances, created)

	assert.True(t, balances["A"].Equal(dec("400")))
	assert.True(t, balances["B"].Equal(dec("120")))
	assert.True(t, balances["A"].Add(balances["B"]).Equal(dec("520")))

	deleted, err := ReversalDeltas(tx)
	require.NoError(t, err)
	Apply(balances, deleted)

	assert.True(t, balances["A"].Equal(dec("500")))
	assert.True(t, balances["B"].Equal(dec("20")))
}

func TestApply_UnknownAccountIsNoop(t *testing.T) {
	balances := map[string]decimal.Decimal{"A": dec("10")}

	Apply(balances, []Delta{{AccountName: "Missing", Amount: dec("99")}})

	assert.Len(t, balances, 1)
	assert.True(t, balances["A"].Equal(dec("10")))
}

func TestReverse_RoundTripNetsToZero(t *testing.T) {
	txs := []Transaction{
		{Type: TypeIncome, Amount: dec("5000"), Account: "A"},
		{Type: TypeExpense, Amount: dec("-4.50"), Account: "A"},
		{Type: TypeTransfer, Amount: dec("100"), SourceAccount: "A", DestinationAccount: "B"},
	}

	for _, tx := range txs {
		created, err := Deltas(tx)
		require.NoError(t, err)
		deleted := Reverse(created)

		assert.True(t, Net(append(created, deleted...)).IsZero(), string(tx.Type))
	}
}
