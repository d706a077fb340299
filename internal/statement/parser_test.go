package statement

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/categorize"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// -- DetectFormat tests --

func TestDetectFormat(t *testing.T) {
	format, err := DetectFormat("March.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	format, err = DetectFormat("export.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatSpreadsheet, format)

	format, err = DetectFormat("old.xls")
	require.NoError(t, err)
	assert.Equal(t, FormatSpreadsheet, format)
}

func TestDetectFormat_Unsupported(t *testing.T) {
	_, err := DetectFormat("statement.txt")

	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "txt", formatErr.Extension)
}

// -- CSV tests --

func TestParse_CSV(t *testing.T) {
	content := "Date,Description,Amount\n2024-01-01,Salary,5000\n2024-01-02,Coffee Shop,-4.50\n"

	result, err := Parse([]byte(content), "bank.csv")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	salary := result.Transactions[0]
	assert.Equal(t, "transaction-1", salary.ID)
	assert.Equal(t, "2024-01-01", salary.Date)
	assert.Equal(t, ledger.TypeIncome, salary.Type)
	assert.Equal(t, "Income", salary.Category)
	assert.True(t, salary.Amount.Equal(dec("5000")))

	coffee := result.Transactions[1]
	assert.Equal(t, "transaction-2", coffee.ID)
	assert.Equal(t, ledger.TypeExpense, coffee.Type)
	assert.Equal(t, "Food", coffee.Category)
	assert.True(t, coffee.Amount.Equal(dec("-4.50")))

	assert.True(t, result.TotalIncome.Equal(dec("5000")))
	assert.True(t, result.TotalExpenses.Equal(dec("4.50")))

	assert.Equal(t, []CategoryTotal{
		{Category: "Income", Amount: dec("5000")},
		{Category: "Food", Amount: dec("4.50")},
	}, result.Categories.Entries())
}

func TestParse_CSVHeaderVariants(t *testing.T) {
	content := "Posting Date,Payee,Debit Amount,Balance\r\n03/01/2024,\"Uber, trip\",\"$1,250.00\",9000\r\n"

	result, err := Parse([]byte(content), "bank.csv")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.Equal(t, "Uber, trip", tx.Description)
	assert.Equal(t, "Transportation", tx.Category)
	assert.True(t, tx.Amount.Equal(dec("1250")), tx.Amount.String())
}

func TestParse_CSVSignIsNormalized(t *testing.T) {
	content := "date,memo,amount\n2024-01-01,Refund,-20\n2024-01-02,Grocery store,35\n"

	result, err := Parse([]byte(content), "bank.csv")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.True(t, result.Transactions[0].Amount.Equal(dec("20")))
	assert.True(t, result.Transactions[1].Amount.Equal(dec("-35")))
	assert.True(t, result.TotalIncome.Equal(dec("20")))
	assert.True(t, result.TotalExpenses.Equal(dec("35")))
}

func TestParse_CSVRoundsToCents(t *testing.T) {
	content := "Date,Description,Amount\n2024-01-01,Salary,0.005\n2024-01-02,Coffee Shop,-4.505\n"

	result, err := Parse([]byte(content), "bank.csv")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.True(t, result.Transactions[0].Amount.Equal(dec("0.01")), result.Transactions[0].Amount.String())
	assert.True(t, result.Transactions[1].Amount.Equal(dec("-4.51")), result.Transactions[1].Amount.String())
	assert.True(t, result.TotalIncome.Equal(dec("0.01")))
	assert.True(t, result.TotalExpenses.Equal(dec("4.51")))
}

func TestParse_CSVSkipsMalformedRows(t *testing.T) {
	content := strings.Join([]string{
		"Date,Description,Amount",
		"2024-01-01,Salary,5000",
		"2024-01-02,Coffee,abc",
		"",
		"2024-01-03,short",
		"2024-01-04,Pizza,-12",
	}, "\n")

	result, err := Parse([]byte(content), "bank.csv")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "transaction-1", result.Transactions[0].ID)
	assert.Equal(t, "transaction-5", result.Transactions[1].ID)
}

func TestParse_CSVMissingAmountColumn(t *testing.T) {
	_, err := Parse([]byte("Date,Description,Category\n2024-01-01,Salary,Income\n"), "bank.csv")

	var headerErr *HeaderError
	assert.True(t, errors.As(err, &headerErr))
}

func TestParse_CSVTooShort(t *testing.T) {
	_, err := Parse([]byte("Date,Description,Amount"), "bank.csv")

	var headerErr *HeaderError
	assert.True(t, errors.As(err, &headerErr))
}

func TestParse_UnsupportedExtension(t *testing.T) {
	result, err := Parse([]byte("Date,Description,Amount\n2024-01-01,Salary,5000\n"), "bank.txt")

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
	assert.Nil(t, result)
}

func TestParse_CategoryOrderFollowsFirstInsertion(t *testing.T) {
	content := "Date,Description,Amount\n1,Rent,-900\n2,Pizza,-10\n3,Rent,-100\n4,Netflix,-5\n"

	result, err := Parse([]byte(content), "bank.csv")

	require.NoError(t, err)
	entries := result.Categories.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Housing", entries[0].Category)
	assert.True(t, entries[0].Amount.Equal(dec("1000")))
	assert.Equal(t, "Food", entries[1].Category)
	assert.Equal(t, "Entertainment", entries[2].Category)

	raw, err := json.Marshal(result.Categories)
	require.NoError(t, err)
	assert.Equal(t, `{"Housing":"1000","Food":"10","Entertainment":"5"}`, string(raw))
}

// -- Spreadsheet tests --

func TestParse_SpreadsheetPositional(t *testing.T) {
	content := "col1\tcol2\tcol3\n\n2024-01-01\tSalary\t5000\n2024-01-02\tCoffee\t-3\nbroken\n"

	result, err := Parse([]byte(content), "export.xlsx")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "transaction-1", result.Transactions[0].ID)
	assert.Equal(t, "transaction-2", result.Transactions[1].ID)
	assert.Equal(t, "Coffee", result.Transactions[1].Description)
	assert.True(t, result.TotalIncome.Equal(dec("5000")))
	assert.True(t, result.TotalExpenses.Equal(dec("3")))
}

func TestParse_SpreadsheetUsesHeaderWhenPresent(t *testing.T) {
	content := "Amount,Date,Description\n-40,2024-02-01,Movie tickets\n"

	result, err := Parse([]byte(content), "export.xls")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	tx := result.Transactions[0]
	assert.Equal(t, "2024-02-01", tx.Date)
	assert.Equal(t, "Movie tickets", tx.Description)
	assert.Equal(t, "Entertainment", tx.Category)
	assert.True(t, tx.Amount.Equal(dec("-40")))
}

func TestParse_SpreadsheetTooShort(t *testing.T) {
	_, err := Parse([]byte("\n\nheader only\n\n"), "export.xlsx")

	var headerErr *HeaderError
	assert.True(t, errors.As(err, &headerErr))
}

// -- Parser tests --

func TestParser_CustomRules(t *testing.T) {
	parser := NewParser(categorize.ManualRules())

	result, err := parser.Parse([]byte("Date,Description,Amount\n1,Swiggy,-200\n"), "bank.csv")

	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Food", result.Transactions[0].Category)
}

// -- ParseReader tests --

func TestParseReader(t *testing.T) {
	result, err := ParseReader(context.Background(), strings.NewReader("Date,Description,Amount\n1,Salary,10\n"), "a.csv", 1024)

	require.NoError(t, err)
	assert.Len(t, result.Transactions, 1)
}

func TestParseReader_TooLarge(t *testing.T) {
	_, err := ParseReader(context.Background(), strings.NewReader("Date,Description,Amount\n1,Salary,10\n"), "a.csv", 10)

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestParseReader_RejectsFormatBeforeReading(t *testing.T) {
	_, err := ParseReader(context.Background(), failingReader{}, "a.pdf", 0)

	var formatErr *FormatError
	assert.True(t, errors.As(err, &formatErr))
}

func TestParseReader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseReader(ctx, failingReader{}, "a.csv", 0)

	assert.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read should not happen")
}
