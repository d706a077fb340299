package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

// ImportTransactions books every parsed row against one existing account.
// Either all rows are stored and the balance moves by their net, or nothing
// changes.
type ImportTransactions struct {
	Account      string
	Transactions []statement.ParsedTransaction

	// Set once Perform succeeds.
	IDs []uuid.UUID
	Net decimal.Decimal
}

func (i *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	acc, err := writer.Account.FindByNameForUpdate(ctx, i.Account)
	if err != nil {
		return fmt.Errorf("import target %q: %w", i.Account, err)
	}

	ids := make([]uuid.UUID, 0, len(i.Transactions))
	net := decimal.Zero
	for _, parsed := range i.Transactions {
		tx := parsed.Ledger(i.Account)
		deltas, err := ledger.Deltas(tx)
		if err != nil {
			return fmt.Errorf("row %s: %w", parsed.ID, err)
		}

		id, err := writer.Transaction.Insert(ctx, transaction.NewTransactionCreate(tx))
		if err != nil {
			return err
		}
		ids = append(ids, id)
		net = net.Add(ledger.Net(deltas))
	}

	if len(ids) > 0 {
		if err := writer.Account.UpdateBalance(ctx, acc.ID, acc.Balance.Add(net)); err != nil {
			return err
		}
	}

	i.IDs = ids
	i.Net = net
	return nil
}
