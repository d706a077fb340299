package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/handlers"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/logging"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Type               string `json:"type" enum:"income,expense,transfer" doc:"Transaction type"`
	Amount             string `json:"amount" doc:"Positive decimal amount; expenses are stored negative"`
	Date               string `json:"date,omitempty" doc:"Transaction date"`
	Name               string `json:"name,omitempty" doc:"Transaction name, defaults to Untitled"`
	Category           string `json:"category,omitempty" doc:"Category, suggested from the name when empty"`
	Account            string `json:"account,omitempty" doc:"Account name, required for income and expense"`
	SourceAccount      string `json:"sourceAccount,omitempty" doc:"Source account name, required for transfers"`
	DestinationAccount string `json:"destinationAccount,omitempty" doc:"Destination account name, required for transfers"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the body returned after recording a transaction.
type CreateTransactionResponse struct {
	Transaction       Transaction `json:"transaction" doc:"The stored transaction"`
	UnmatchedAccounts []string    `json:"unmatchedAccounts,omitempty" doc:"Account names that do not exist and were not adjusted"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, draft ledger.Draft) (*service.CreatedTransaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Records a manual transaction and adjusts the balances of the accounts it names.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (ledger.Draft, error) {
	kind, err := ledger.ParseTransactionType(input.Body.Type)
	if err != nil {
		return ledger.Draft{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return ledger.Draft{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return ledger.Draft{
		Type:               kind,
		Amount:             amount,
		Date:               input.Body.Date,
		Name:               input.Body.Name,
		Category:           input.Body.Category,
		Account:            input.Body.Account,
		SourceAccount:      input.Body.SourceAccount,
		DestinationAccount: input.Body.DestinationAccount,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	draft, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	created, err := h.TransactionService.CreateTransaction(ctx, draft)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, handlers.Error("failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", created.ID.String())
		if len(created.UnmatchedAccounts) > 0 {
			logData.AddData("unmatchedAccounts", created.UnmatchedAccounts)
		}
	}

	tx := created.Transaction
	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body: CreateTransactionResponse{
			Transaction: toTransaction(service.Transaction{
				ID:                 created.ID,
				Date:               tx.Date,
				Description:        tx.Description,
				Amount:             tx.Amount,
				Category:           tx.Category,
				Type:               tx.Type,
				Account:            tx.Account,
				SourceAccount:      tx.SourceAccount,
				DestinationAccount: tx.DestinationAccount,
			}),
			UnmatchedAccounts: created.UnmatchedAccounts,
		},
	}, nil
}
