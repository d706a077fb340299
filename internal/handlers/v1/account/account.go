package account

import (
	"time"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name, referenced by transactions"`
	Type      string `json:"type" doc:"Account type, e.g. bank, cash, investment"`
	Balance   string `json:"balance" doc:"Decimal balance"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func toAccount(acc service.Account) Account {
	return Account{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Type:      acc.Type,
		Balance:   acc.Balance.String(),
		CreatedAt: acc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: acc.UpdatedAt.Format(time.RFC3339),
	}
}

// AccountIDInput is the path input shared by the single-account endpoints.
type AccountIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}
