package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/categorize"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator/actions"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	transactions transaction.IReader
	operator     processor
	suggest      ledger.Suggester
}

// NewTransactionService creates a new TransactionService. suggest fills in
// the category of manual entries that leave it blank.
func NewTransactionService(transactions transaction.IReader, op processor, suggest ledger.Suggester) *TransactionService {
	return &TransactionService{transactions: transactions, operator: op, suggest: suggest}
}

// CreateTransaction records a manual entry and adjusts the balances of the
// accounts it names.
func (s *TransactionService) CreateTransaction(ctx context.Context, draft ledger.Draft) (*CreatedTransaction, error) {
	tx, err := draft.Build(s.suggest)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Transaction: tx}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return &CreatedTransaction{
		ID:                action.ID,
		Transaction:       tx,
		UnmatchedAccounts: action.UnmatchedAccounts,
	}, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect.
// It returns the account names that no longer exist.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) ([]string, error) {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.UnmatchedAccounts, nil
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit > 0 {
			limit = cursor.Limit
		}
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = &cursor.MaxCreationTime
		}
	}

	storageFilter := &transaction.TransactionFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}
	if filter.Type != "" {
		kind := string(filter.Type)
		storageFilter.Type = &kind
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		storageFilter.Search = &search
	}

	result, err := s.transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	converted := make([]Transaction, len(result.Transactions))
	for i, row := range result.Transactions {
		converted[i] = transactionFromStorage(row)
	}

	var nextCursor *TransactionCursor
	if result.NextCursor != nil {
		nextCursor = &TransactionCursor{
			Position:        result.NextCursor.Position,
			Limit:           result.NextCursor.Limit,
			MaxCreationTime: result.NextCursor.MaxCreationTime,
		}
	}
	return converted, nextCursor, nil
}

// SuggestCategory proposes a category for a manual entry name, falling back
// to the default label when nothing matches.
func (s *TransactionService) SuggestCategory(name string, kind ledger.TransactionType) (string, bool) {
	if kind == ledger.TypeTransfer {
		return ledger.TransferCategory, false
	}
	if s.suggest != nil {
		if category, ok := s.suggest(name, kind); ok {
			return category, true
		}
	}
	return ledger.DefaultCategory, false
}

// Categories lists the labels offered for kind.
func (s *TransactionService) Categories(kind ledger.TransactionType) []string {
	return categorize.CategoriesFor(kind)
}
