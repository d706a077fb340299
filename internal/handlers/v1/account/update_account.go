package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/handlers"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/logging"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
)

// UpdateAccountInput is the Huma input for a partial account edit.
type UpdateAccountInput struct {
	ID   string `path:"id" format:"uuid" doc:"Account UUID"`
	Body UpdateAccountBody
}

// UpdateAccountBody holds the fields to change. Omitted fields are kept.
type UpdateAccountBody struct {
	Name    *string `json:"name,omitempty" doc:"New account name"`
	Type    *string `json:"type,omitempty" doc:"New account type"`
	Balance *string `json:"balance,omitempty" doc:"Overwrite the balance with this decimal value"`
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Status int
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id uuid.UUID, update service.AccountUpdate) error
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}",
		Summary:     "Update an account",
		Description: "Changes any of name, type, and balance. Renaming does not rewrite existing transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseUpdateAccountInput(input *UpdateAccountInput) (uuid.UUID, service.AccountUpdate, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, service.AccountUpdate{}, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	var update service.AccountUpdate
	if input.Body.Name != nil {
		update.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Type != nil {
		update.Type = omit.From(*input.Body.Type)
	}
	if input.Body.Balance != nil {
		balance, err := decimal.NewFromString(*input.Body.Balance)
		if err != nil {
			return uuid.Nil, service.AccountUpdate{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
		update.Balance = omit.From(balance)
	}
	return id, update, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	id, update, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", id.String())
	}

	if err := h.AccountService.UpdateAccount(ctx, id, update); err != nil {
		return nil, handlers.Error("failed to update account", err)
	}
	return &UpdateAccountOutput{Status: http.StatusNoContent}, nil
}
