package ledger

import (
	"github.com/shopspring/decimal"
)

// Delta is the signed amount by which one account balance changes.
type Delta struct {
	AccountName string
	Amount      decimal.Decimal
}

// Deltas returns the balance changes caused by recording t.
//
// Income and expense add the signed amount to the referenced account.
// Transfers take |amount| from the source and give it to the destination,
// so they never change the sum of balances.
func Deltas(t Transaction) ([]Delta, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	if t.IsTransfer() {
		magnitude := t.Amount.Abs()
		return []Delta{
			{AccountName: t.SourceAccount, Amount: magnitude.Neg()},
			{AccountName: t.DestinationAccount, Amount: magnitude},
		}, nil
	}

	return []Delta{{AccountName: t.Account, Amount: t.Amount}}, nil
}

// ReversalDeltas returns the balance changes that undo recording t.
func ReversalDeltas(t Transaction) ([]Delta, error) {
	deltas, err := Deltas(t)
	if err != nil {
		return nil, err
	}
	return Reverse(deltas), nil
}

// Reverse negates every delta.
func Reverse(deltas []Delta) []Delta {
	reversed := make([]Delta, len(deltas))
	for i, d := range deltas {
		reversed[i] = Delta{AccountName: d.AccountName, Amount: d.Amount.Neg()}
	}
	return reversed
}

// Apply adds deltas to balances keyed by account name. Names with no entry in
// balances are ignored.
func Apply(balances map[string]decimal.Decimal, deltas []Delta) {
	for _, d := range deltas {
		current, ok := balances[d.AccountName]
		if !ok {
			continue
		}
		balances[d.AccountName] = current.Add(d.Amount)
	}
}

// Net sums all deltas.
func Net(deltas []Delta) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deltas {
		total = total.Add(d.Amount)
	}
	return total
}
