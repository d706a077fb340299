package service

import (
	"context"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/categorize"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator/actions"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage"
)

// processor runs write actions. *operator.OperatorDelegator satisfies it.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Import      *ImportService
	Summary     *SummaryService
}

// NewService creates a new Service. Reads go straight to reader; writes are
// queued on op.
func NewService(reader *storage.Reader, op processor, maxImportBytes int64) *Service {
	return &Service{
		Transaction: NewTransactionService(reader.Transactions, op, categorize.Suggest),
		Account:     NewAccountService(reader.Accounts, op),
		Import:      NewImportService(op, maxImportBytes),
		Summary:     NewSummaryService(reader.Accounts, reader.Transactions),
	}
}
