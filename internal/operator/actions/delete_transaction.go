package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
)

// DeleteTransaction removes a transaction and reverses its balance deltas.
type DeleteTransaction struct {
	ID uuid.UUID

	UnmatchedAccounts []string
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.FindByIDForUpdate(ctx, d.ID)
	if err != nil {
		return err
	}

	deltas, err := ledger.ReversalDeltas(row.Ledger())
	if err != nil {
		return err
	}

	unmatched, err := applyDeltas(ctx, writer, deltas)
	if err != nil {
		return err
	}

	if err := writer.Transaction.Delete(ctx, d.ID); err != nil {
		return err
	}

	d.UnmatchedAccounts = unmatched
	return nil
}
