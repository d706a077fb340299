package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, acc service.Account) (uuid.UUID, error) {
	args := m.Called(ctx, acc)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, cursor)
	accounts, _ := args.Get(0).([]service.Account)
	next, _ := args.Get(1).(*service.AccountCursor)
	return accounts, next, args.Error(2)
}

func (m *mockAccountService) GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, id)
	acc, _ := args.Get(0).(*service.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, id uuid.UUID, update service.AccountUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}

// -- parseCreateAccountInput unit tests --

func TestParseCreateAccountInput_DefaultsBalance(t *testing.T) {
	acc, err := parseCreateAccountInput(&CreateAccountInput{
		Body: CreateAccountBody{Name: "Cash", Type: "cash"},
	})

	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())
}

func TestParseCreateAccountInput_InvalidBalance(t *testing.T) {
	_, err := parseCreateAccountInput(&CreateAccountInput{
		Body: CreateAccountBody{Name: "Cash", Type: "cash", Balance: "lots"},
	})

	assert.Error(t, err)
}

// -- parseUpdateAccountInput unit tests --

func TestParseUpdateAccountInput_OnlySetFields(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	balance := "12.50"

	gotID, update, err := parseUpdateAccountInput(&UpdateAccountInput{
		ID:   id.String(),
		Body: UpdateAccountBody{Balance: &balance},
	})

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, update.Name.IsUnset())
	assert.True(t, update.Type.IsUnset())
	got, ok := update.Balance.Get()
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got))
}

// -- HTTP integration tests --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(acc service.Account) bool {
		return acc.Name == "HDFC" && acc.Type == "bank" && acc.Balance.Equal(decimal.NewFromInt(1500))
	})).Return(id, nil)

	api := newTestAPI(t, svc)
	resp := api.Post("/v1/account", map[string]any{
		"name":    "HDFC",
		"type":    "bank",
		"balance": "1500",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_MissingName(t *testing.T) {
	svc := new(mockAccountService)

	api := newTestAPI(t, svc)
	resp := api.Post("/v1/account", map[string]any{"name": "", "type": "bank"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_ServiceError(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	api := newTestAPI(t, svc)
	resp := api.Post("/v1/account", map[string]any{"name": "Cash", "type": "cash"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_ListAccounts_WithNextCursor(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, &service.AccountCursor{Position: 0, Limit: 1}).
		Return([]service.Account{{
			ID:        uuid.Must(uuid.NewV4()),
			Name:      "Cash",
			Type:      "cash",
			Balance:   decimal.RequireFromString("10.50"),
			CreatedAt: now,
			UpdatedAt: now,
		}}, &service.AccountCursor{Position: 1, Limit: 1}, nil)

	api := newTestAPI(t, svc)
	resp := api.Get("/v1/accounts?limit=1")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, "10.5", body.Accounts[0].Balance)
	assert.Equal(t, "2025-06-01T12:00:00Z", body.Accounts[0].CreatedAt)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 1, body.NextCursor.Position)
}

func TestHTTP_ListAccounts_NoCursor(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, (*service.AccountCursor)(nil)).
		Return([]service.Account{}, nil, nil)

	api := newTestAPI(t, svc)
	resp := api.Get("/v1/accounts")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.Accounts)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, id).Return(nil, account.ErrNotFound)

	api := newTestAPI(t, svc)
	resp := api.Get("/v1/account/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetAccount_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, id).Return(&service.Account{
		ID:      id,
		Name:    "Wallet",
		Type:    "cash",
		Balance: decimal.NewFromInt(-20),
	}, nil)

	api := newTestAPI(t, svc)
	resp := api.Get("/v1/account/" + id.String())

	require.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Wallet", body.Name)
	assert.Equal(t, "-20", body.Balance)
}

func TestHTTP_UpdateAccount_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("UpdateAccount", mock.Anything, id, mock.MatchedBy(func(u service.AccountUpdate) bool {
		name, _ := u.Name.Get()
		return name == "Savings" && u.Balance.IsUnset()
	})).Return(nil)

	api := newTestAPI(t, svc)
	resp := api.Patch("/v1/account/"+id.String(), map[string]any{"name": "Savings"})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateAccount_EmptyBody(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("UpdateAccount", mock.Anything, id, service.AccountUpdate{}).Return(service.ErrEmptyUpdate)

	api := newTestAPI(t, svc)
	resp := api.Patch("/v1/account/"+id.String(), map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_DeleteAccount(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("DeleteAccount", mock.Anything, id).Return(nil)

	api := newTestAPI(t, svc)
	resp := api.Delete("/v1/account/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}
