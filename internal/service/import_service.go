package service

import (
	"context"
	"io"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator/actions"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/summary"
)

// ImportPreview is a parsed statement with its derived figures. Nothing is
// stored.
type ImportPreview struct {
	Result     *statement.FileParseResult
	Categories []summary.CategoryShare
	Insights   summary.Insights
}

// ImportCommit is the outcome of storing a parsed statement.
type ImportCommit struct {
	ImportPreview
	Account string
	IDs     []uuid.UUID
	Net     decimal.Decimal
}

// ImportService parses bank statements and books them against an account.
type ImportService struct {
	operator processor
	maxBytes int64
}

func NewImportService(op processor, maxBytes int64) *ImportService {
	return &ImportService{operator: op, maxBytes: maxBytes}
}

// Preview parses the statement in r.
func (s *ImportService) Preview(ctx context.Context, r io.Reader, fileName string) (*ImportPreview, error) {
	result, err := statement.ParseReader(ctx, r, fileName, s.maxBytes)
	if err != nil {
		return nil, err
	}
	return preview(result), nil
}

// Commit parses the statement in r and stores every row against the named
// account in one database transaction.
func (s *ImportService) Commit(ctx context.Context, r io.Reader, fileName, accountName string) (*ImportCommit, error) {
	result, err := statement.ParseReader(ctx, r, fileName, s.maxBytes)
	if err != nil {
		return nil, err
	}

	action := &actions.ImportTransactions{
		Account:      accountName,
		Transactions: result.Transactions,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return &ImportCommit{
		ImportPreview: *preview(result),
		Account:       accountName,
		IDs:           action.IDs,
		Net:           action.Net,
	}, nil
}

func preview(result *statement.FileParseResult) *ImportPreview {
	return &ImportPreview{
		Result:     result,
		Categories: summary.CategoryBreakdown(result.Categories, nil),
		Insights:   summary.ComputeInsights(result),
	}
}
