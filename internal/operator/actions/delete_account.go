package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
)

// DeleteAccount removes an account. Transactions that name it are kept.
type DeleteAccount struct {
	ID uuid.UUID
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Account.Delete(ctx, d.ID)
}
