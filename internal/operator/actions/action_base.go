package actions

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
)

// IAction is a unit of work run inside one database transaction. Returning an
// error rolls the transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// applyDeltas adds each delta to the balance of the account with that name and
// returns the names that matched no account. Accounts are locked in name order.
func applyDeltas(ctx context.Context, writer *storage.Writer, deltas []ledger.Delta) ([]string, error) {
	sorted := make([]ledger.Delta, len(deltas))
	copy(sorted, deltas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AccountName < sorted[j].AccountName
	})

	var unmatched []string
	for _, delta := range sorted {
		acc, err := writer.Account.FindByNameForUpdate(ctx, delta.AccountName)
		if errors.Is(err, account.ErrNotFound) {
			unmatched = append(unmatched, delta.AccountName)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("locking account %q: %w", delta.AccountName, err)
		}

		if err := writer.Account.UpdateBalance(ctx, acc.ID, acc.Balance.Add(delta.Amount)); err != nil {
			return nil, fmt.Errorf("updating balance of %q: %w", delta.AccountName, err)
		}
	}
	return unmatched, nil
}
