package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
)

// UpdateAccount edits an account directly. A new Balance replaces the current
// one without recording a transaction.
type UpdateAccount struct {
	ID      uuid.UUID
	Name    omit.Val[string]
	Type    omit.Val[string]
	Balance omit.Val[decimal.Decimal]
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Account.FindByIDForUpdate(ctx, u.ID); err != nil {
		return err
	}

	return writer.Account.Update(ctx, u.ID, &account.AccountUpdate{
		Name:    u.Name,
		Type:    u.Type,
		Balance: u.Balance,
	})
}
