package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

// CreateTransaction records a transaction and applies its balance deltas in
// the same database transaction.
type CreateTransaction struct {
	Transaction ledger.Transaction

	// Set once Perform succeeds.
	ID                uuid.UUID
	UnmatchedAccounts []string
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	t.Transaction.Amount = ledger.RoundAmount(t.Transaction.Amount)
	deltas, err := ledger.Deltas(t.Transaction)
	if err != nil {
		return err
	}

	id, err := writer.Transaction.Insert(ctx, transaction.NewTransactionCreate(t.Transaction))
	if err != nil {
		return err
	}

	unmatched, err := applyDeltas(ctx, writer, deltas)
	if err != nil {
		return err
	}

	t.ID = id
	t.UnmatchedAccounts = unmatched
	return nil
}
