package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator/actions"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
)

const defaultAccountLimit = 20

var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountTypeRequired = errors.New("account type is required")
	ErrEmptyUpdate         = errors.New("update has no fields")
)

// AccountService handles account business logic.
type AccountService struct {
	accounts account.IReader
	operator processor
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts account.IReader, op processor) *AccountService {
	return &AccountService{accounts: accounts, operator: op}
}

// CreateAccount creates a new account and returns its ID.
func (s *AccountService) CreateAccount(ctx context.Context, acc Account) (uuid.UUID, error) {
	name := strings.TrimSpace(acc.Name)
	if name == "" {
		return uuid.Nil, ErrAccountNameRequired
	}
	accountType := strings.TrimSpace(acc.Type)
	if accountType == "" {
		return uuid.Nil, ErrAccountTypeRequired
	}

	action := &actions.CreateAccount{
		Name:    name,
		Type:    accountType,
		Balance: acc.Balance,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	acc := accountFromStorage(row)
	return &acc, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
	}

	result, err := s.accounts.List(ctx, &account.AccountFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	accounts := make([]Account, len(result.Accounts))
	for i, row := range result.Accounts {
		accounts[i] = accountFromStorage(row)
	}

	var nextCursor *AccountCursor
	if result.NextCursor != nil {
		nextCursor = &AccountCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}
	return accounts, nextCursor, nil
}

// UpdateAccount applies a partial edit. Setting Balance overwrites the
// stored balance directly.
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, update AccountUpdate) error {
	if update.Name.IsUnset() && update.Type.IsUnset() && update.Balance.IsUnset() {
		return ErrEmptyUpdate
	}
	if name, ok := update.Name.Get(); ok && strings.TrimSpace(name) == "" {
		return ErrAccountNameRequired
	}
	if accountType, ok := update.Type.Get(); ok && strings.TrimSpace(accountType) == "" {
		return ErrAccountTypeRequired
	}

	return s.operator.Process(ctx, &actions.UpdateAccount{
		ID:      id,
		Name:    update.Name,
		Type:    update.Type,
		Balance: update.Balance,
	})
}

// DeleteAccount removes an account. Transactions naming it are left in place.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteAccount{ID: id})
}
