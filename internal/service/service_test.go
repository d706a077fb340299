package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator/actions"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

type mockProcessor struct {
	mock.Mock
}

func newMockProcessor(t *testing.T) *mockProcessor {
	m := &mockProcessor{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type testService struct {
	*Service
	accounts     *account.MockIReader
	transactions *transaction.MockIReader
	processor    *mockProcessor
}

func newTestService(t *testing.T) *testService {
	accounts := account.NewMockIReader(t)
	transactions := transaction.NewMockIReader(t)
	processor := newMockProcessor(t)

	return &testService{
		Service: &Service{
			Transaction: NewTransactionService(transactions, processor, nil),
			Account:     NewAccountService(accounts, processor),
			Import:      NewImportService(processor, 1<<20),
			Summary:     NewSummaryService(accounts, transactions),
		},
		accounts:     accounts,
		transactions: transactions,
		processor:    processor,
	}
}
