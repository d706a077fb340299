// Package statement turns bank statement files into categorized transactions
// with income, expense and per-category totals.
package statement

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/categorize"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/classify"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

var (
	descriptionHeaders = []string{"description", "memo", "note", "payee"}
	amountHeaders      = []string{"amount", "debit", "credit", "balance"}
)

// ParsedTransaction is one statement row after classification. ID is scoped
// to the parse that produced it.
type ParsedTransaction struct {
	ID          string                 `json:"id"`
	Date        string                 `json:"date"`
	Description string                 `json:"description"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    string                 `json:"category"`
	Type        ledger.TransactionType `json:"type"`
}

// Ledger converts the row into a transaction booked against account.
func (p ParsedTransaction) Ledger(account string) ledger.Transaction {
	return ledger.Transaction{
		Date:        p.Date,
		Description: p.Description,
		Amount:      ledger.RoundAmount(p.Amount),
		Category:    p.Category,
		Type:        p.Type,
		Account:     account,
	}
}

// FileParseResult is the outcome of parsing a statement file.
type FileParseResult struct {
	Transactions  []ParsedTransaction `json:"transactions"`
	TotalIncome   decimal.Decimal     `json:"totalIncome"`
	TotalExpenses decimal.Decimal     `json:"totalExpenses"`
	Categories    *CategoryTotals     `json:"categories"`
}

type columns struct {
	date, description, amount int
}

func (c columns) width() int {
	return max(c.date, c.description, c.amount) + 1
}

// Parser parses statements using a categorization rule set.
type Parser struct {
	rules *categorize.RuleSet
}

// NewParser returns a Parser that categorizes with rules, or with the import
// table when rules is nil.
func NewParser(rules *categorize.RuleSet) *Parser {
	if rules == nil {
		rules = categorize.ImportRules()
	}
	return &Parser{rules: rules}
}

var defaultParser = NewParser(nil)

// Parse parses content with the import table. See Parser.Parse.
func Parse(content []byte, fileName string) (*FileParseResult, error) {
	return defaultParser.Parse(content, fileName)
}

// ParseReader reads at most maxBytes from r and parses it. A non-positive
// maxBytes disables the limit. Unsupported extensions fail before r is read.
func ParseReader(ctx context.Context, r io.Reader, fileName string, maxBytes int64) (*FileParseResult, error) {
	if _, err := DetectFormat(fileName); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader := r
	if maxBytes > 0 {
		reader = io.LimitReader(r, maxBytes+1)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading statement %s: %w", fileName, err)
	}
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return nil, ErrTooLarge
	}

	return defaultParser.Parse(content, fileName)
}

// Parse detects the format from fileName and parses content. Rows with too
// few cells or an unparseable amount are skipped without error.
func (p *Parser) Parse(content []byte, fileName string) (*FileParseResult, error) {
	format, err := DetectFormat(fileName)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	switch format {
	case FormatSpreadsheet:
		return p.parseSpreadsheet(lines)
	default:
		return p.parseCSV(lines)
	}
}

func (p *Parser) parseCSV(lines []string) (*FileParseResult, error) {
	if len(lines) < 2 {
		return nil, &HeaderError{Reason: "CSV file must have at least a header and one data row"}
	}

	cols, ok := locateColumns(splitCSV(lines[0]))
	if !ok {
		return nil, &HeaderError{Reason: "CSV must contain date, description, and amount columns"}
	}

	result := newResult()
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		p.addRow(result, i, cleanCells(splitCSV(line)), cols)
	}
	return result, nil
}

func (p *Parser) parseSpreadsheet(lines []string) (*FileParseResult, error) {
	nonBlank := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, line)
		}
	}
	if len(nonBlank) < 2 {
		return nil, &HeaderError{Reason: "spreadsheet must have at least a header and one data row"}
	}

	cols, ok := locateColumns(splitDelimited(strings.TrimSpace(nonBlank[0])))
	if !ok {
		cols = columns{date: 0, description: 1, amount: 2}
	}

	result := newResult()
	for i := 1; i < len(nonBlank); i++ {
		cells := cleanCells(splitDelimited(strings.TrimSpace(nonBlank[i])))
		if len(cells) < 3 {
			continue
		}
		p.addRow(result, i, cells, cols)
	}
	return result, nil
}

func (p *Parser) addRow(result *FileParseResult, index int, cells []string, cols columns) {
	if len(cells) < cols.width() {
		return
	}

	amount, err := parseAmount(cells[cols.amount])
	if err != nil {
		return
	}

	description := cells[cols.description]
	kind := classify.Classify(description, amount)
	amount = classify.Normalize(kind, amount)
	category := p.rules.Categorize(description)

	result.Transactions = append(result.Transactions, ParsedTransaction{
		ID:          fmt.Sprintf("transaction-%d", index),
		Date:        cells[cols.date],
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        kind,
	})
	result.Categories.Add(category, amount.Abs())

	if kind == ledger.TypeExpense {
		result.TotalExpenses = result.TotalExpenses.Add(amount.Abs())
	} else {
		result.TotalIncome = result.TotalIncome.Add(amount)
	}
}

func newResult() *FileParseResult {
	return &FileParseResult{
		Transactions:  []ParsedTransaction{},
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Categories:    NewCategoryTotals(),
	}
}

// locateColumns finds the date, description and amount columns in a header
// row by case-insensitive containment. The first matching cell wins.
func locateColumns(header []string) (columns, bool) {
	cols := columns{date: -1, description: -1, amount: -1}
	for i, cell := range header {
		cell = strings.ToLower(strings.TrimSpace(cell))
		if cols.date < 0 && strings.Contains(cell, "date") {
			cols.date = i
		}
		if cols.description < 0 && containsAny(cell, descriptionHeaders) {
			cols.description = i
		}
		if cols.amount < 0 && containsAny(cell, amountHeaders) {
			cols.amount = i
		}
	}
	return cols, cols.date >= 0 && cols.description >= 0 && cols.amount >= 0
}

// splitCSV splits one line honoring double quotes. Lines the csv reader
// rejects fall back to a plain comma split.
func splitCSV(line string) []string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	record, err := reader.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return record
}

// splitDelimited uses tabs when the line has any, commas otherwise.
func splitDelimited(line string) []string {
	if strings.Contains(line, "\t") {
		return strings.Split(line, "\t")
	}
	return splitCSV(line)
}

func cleanCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = strings.TrimSpace(strings.ReplaceAll(cell, `"`, ""))
	}
	return out
}

func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(raw))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ledger.RoundAmount(amount), nil
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
