package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator/actions"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
)

const sampleStatement = "Date,Description,Amount\n" +
	"2024-01-01,Salary,5000\n" +
	"2024-01-02,Grocery Store,-200\n" +
	"2024-01-03,Netflix,-50\n"

// -- Preview tests --

func TestPreview(t *testing.T) {
	s := newTestService(t)

	got, err := s.Import.Preview(context.Background(), strings.NewReader(sampleStatement), "jan.csv")

	require.NoError(t, err)
	assert.Len(t, got.Result.Transactions, 3)
	assert.True(t, decimal.NewFromInt(5000).Equal(got.Result.TotalIncome))
	assert.True(t, decimal.NewFromInt(250).Equal(got.Result.TotalExpenses))
	require.Len(t, got.Categories, 3)
	assert.Equal(t, "Income", got.Categories[0].Name)
	assert.True(t, decimal.NewFromInt(4750).Equal(got.Insights.Net))
}

func TestPreview_UnsupportedFormat(t *testing.T) {
	s := newTestService(t)

	_, err := s.Import.Preview(context.Background(), strings.NewReader(sampleStatement), "jan.pdf")

	var formatErr *statement.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

// -- Commit tests --

func TestCommit(t *testing.T) {
	s := newTestService(t)
	ids := []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}

	s.processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.ImportTransactions")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.ImportTransactions)
			assert.Equal(t, "Bank", action.Account)
			assert.Len(t, action.Transactions, 3)
			action.IDs = ids
			action.Net = decimal.NewFromInt(4750)
		}).
		Return(nil)

	got, err := s.Import.Commit(context.Background(), strings.NewReader(sampleStatement), "jan.csv", "Bank")

	require.NoError(t, err)
	assert.Equal(t, ids, got.IDs)
	assert.Equal(t, "Bank", got.Account)
	assert.True(t, decimal.NewFromInt(4750).Equal(got.Net))
}

func TestCommit_MissingAccount(t *testing.T) {
	s := newTestService(t)
	s.processor.On("Process", mock.Anything, mock.Anything).Return(account.ErrNotFound)

	_, err := s.Import.Commit(context.Background(), strings.NewReader(sampleStatement), "jan.csv", "Nope")

	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestCommit_HeaderErrorSkipsProcessing(t *testing.T) {
	s := newTestService(t)

	_, err := s.Import.Commit(context.Background(), strings.NewReader("only one line"), "jan.csv", "Bank")

	var headerErr *statement.HeaderError
	assert.ErrorAs(t, err, &headerErr)
}
