package transaction

import (
	"time"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                 string `json:"id" doc:"Transaction UUID"`
	Date               string `json:"date" doc:"Transaction date as entered"`
	Description        string `json:"description" doc:"Transaction name"`
	Amount             string `json:"amount" doc:"Signed decimal amount, negative for expenses"`
	Category           string `json:"category" doc:"Category label"`
	Type               string `json:"type" enum:"income,expense,transfer" doc:"Transaction type"`
	Account            string `json:"account,omitempty" doc:"Account name for income and expense"`
	SourceAccount      string `json:"sourceAccount,omitempty" doc:"Source account name for transfers"`
	DestinationAccount string `json:"destinationAccount,omitempty" doc:"Destination account name for transfers"`
	CreatedAt          string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func toTransaction(tx service.Transaction) Transaction {
	out := Transaction{
		ID:                 tx.ID.String(),
		Date:               tx.Date,
		Description:        tx.Description,
		Amount:             tx.Amount.String(),
		Category:           tx.Category,
		Type:               string(tx.Type),
		Account:            tx.Account,
		SourceAccount:      tx.SourceAccount,
		DestinationAccount: tx.DestinationAccount,
	}
	if !tx.CreatedAt.IsZero() {
		out.CreatedAt = tx.CreatedAt.Format(time.RFC3339)
	}
	return out
}
