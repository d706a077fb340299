package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
)

type CreateAccount struct {
	Name    string
	Type    string
	Balance decimal.Decimal

	// ID is set once Perform succeeds.
	ID uuid.UUID
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Account.Insert(ctx, &account.AccountCreate{
		Name:    c.Name,
		Type:    c.Type,
		Balance: c.Balance,
	})
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
