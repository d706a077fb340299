package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
)

const sampleCSV = "Date,Description,Amount\n" +
	"2024-01-01,Salary,5000\n" +
	"2024-01-02,Coffee Shop,-100\n" +
	"2024-01-03,Monthly rent,-1500\n"

func writeSample(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"statement"}, args...))
	return out.String(), err
}

// -- parse tests --

func TestParse_JSON(t *testing.T) {
	out, err := run(t, "parse", "--json", writeSample(t, "jan.csv"))
	require.NoError(t, err)

	var body struct {
		Transactions []struct {
			Description string `json:"description"`
			Type        string `json:"type"`
		} `json:"transactions"`
		TotalIncome string         `json:"totalIncome"`
		Categories  map[string]any `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Len(t, body.Transactions, 3)
	assert.Equal(t, "5000", body.TotalIncome)
	assert.Contains(t, body.Categories, "Housing")
}

func TestParse_FilterByType(t *testing.T) {
	out, err := run(t, "parse", "--json", "--type", "expense", writeSample(t, "jan.csv"))
	require.NoError(t, err)

	var body struct {
		Transactions []struct {
			Type string `json:"type"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.Len(t, body.Transactions, 2)
	for _, tx := range body.Transactions {
		assert.Equal(t, "expense", tx.Type)
	}
}

func TestParse_Report(t *testing.T) {
	out, err := run(t, "parse", "--search", "coffee", writeSample(t, "jan.csv"))
	require.NoError(t, err)

	assert.Contains(t, out, "Coffee Shop")
	assert.NotContains(t, out, "Monthly rent")
	assert.Contains(t, out, "Total income:")
	assert.Contains(t, out, "Housing")
}

func TestParse_Dump(t *testing.T) {
	out, err := run(t, "parse", "--dump", writeSample(t, "jan.csv"))
	require.NoError(t, err)

	assert.Contains(t, out, "FileParseResult")
}

func TestParse_UnsupportedFile(t *testing.T) {
	_, err := run(t, "parse", writeSample(t, "jan.txt"))

	var formatErr *statement.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "txt", formatErr.Extension)
	assert.ErrorContains(t, err, "unsupported file type: txt")
}

// -- categorize tests --

func TestCategorize(t *testing.T) {
	out, err := run(t, "categorize", "Uber", "ride")
	require.NoError(t, err)
	assert.Equal(t, "Transportation\n", out)

	out, err = run(t, "categorize", "--table", "manual", "Swiggy", "order")
	require.NoError(t, err)
	assert.Equal(t, "Food\n", out)
}

// -- classify tests --

func TestClassify(t *testing.T) {
	out, err := run(t, "classify", "--amount", "-20", "Refund", "for", "order")
	require.NoError(t, err)
	assert.Equal(t, "income\n", out)

	out, err = run(t, "classify", "--amount", "-20", "Dinner")
	require.NoError(t, err)
	assert.Equal(t, "expense\n", out)
}
