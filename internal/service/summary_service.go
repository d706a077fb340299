package service

import (
	"context"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/summary"
)

// SummaryService builds report views over stored accounts and transactions.
type SummaryService struct {
	accounts     account.IReader
	transactions transaction.IReader
}

func NewSummaryService(accounts account.IReader, transactions transaction.IReader) *SummaryService {
	return &SummaryService{accounts: accounts, transactions: transactions}
}

// Assets groups every account balance by account type.
func (s *SummaryService) Assets(ctx context.Context) (summary.AssetDistribution, error) {
	result, err := s.accounts.List(ctx, nil)
	if err != nil {
		return summary.AssetDistribution{}, err
	}

	holdings := make([]summary.Holding, len(result.Accounts))
	for i, acc := range result.Accounts {
		holdings[i] = summary.Holding{Name: acc.Name, Type: acc.Type, Balance: acc.Balance}
	}
	return summary.DistributeAssets(holdings), nil
}

// Categories breaks down recorded expenses by category.
func (s *SummaryService) Categories(ctx context.Context) ([]summary.CategoryShare, error) {
	expense := string(ledger.TypeExpense)
	result, err := s.transactions.List(ctx, &transaction.TransactionFilter{Type: &expense})
	if err != nil {
		return nil, err
	}

	recorded := make([]ledger.Transaction, len(result.Transactions))
	for i, row := range result.Transactions {
		recorded[i] = row.Ledger()
	}
	return summary.CategoryBreakdown(nil, recorded), nil
}
