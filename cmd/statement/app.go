package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/categorize"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/classify"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/summary"
)

const defaultMaxBytes = 10 << 20

var printer = message.NewPrinter(language.MustParse("en-IN"))

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "statement",
		Usage:     "inspect bank statement exports",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			parseCommand(),
			categorizeCommand(),
			classifyCommand(),
		},
	}
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a .csv, .xls or .xlsx export",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the parse result as JSON"},
			&cli.BoolFlag{Name: "dump", Usage: "print the parse result with go-spew"},
			&cli.StringFlag{Name: "type", Usage: "only show income or expense rows"},
			&cli.StringFlag{Name: "search", Usage: "only show rows whose description, category or date contains this"},
			&cli.Int64Flag{Name: "max-bytes", Value: defaultMaxBytes, Usage: "reject files larger than this"},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return cli.Exit("parse: FILE is required", 2)
			}

			var filter summary.Filter
			if kind := c.String("type"); kind != "" {
				parsed, err := ledger.ParseTransactionType(kind)
				if err != nil {
					return cli.Exit(err.Error(), 2)
				}
				filter.Type = parsed
			}
			filter.Query = c.String("search")

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := statement.ParseReader(c.Context, f, filepath.Base(path), c.Int64("max-bytes"))
			if err != nil {
				return err
			}
			result.Transactions = summary.FilterTransactions(result.Transactions, filter,
				func(p statement.ParsedTransaction) ledger.Transaction { return p.Ledger("") })

			out := c.App.Writer
			switch {
			case c.Bool("json"):
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case c.Bool("dump"):
				spew.Fdump(out, result)
				return nil
			}
			return writeReport(out, result)
		},
	}
}

func writeReport(out io.Writer, result *statement.FileParseResult) error {
	for _, tx := range result.Transactions {
		if _, err := fmt.Fprintf(out, "%-12s %-40s %14s  %-8s %s\n",
			tx.Date, tx.Description, formatINR(tx.Amount), tx.Type, tx.Category); err != nil {
			return err
		}
	}

	insights := summary.ComputeInsights(result)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total income:   %s\n", formatINR(result.TotalIncome))
	fmt.Fprintf(out, "Total expenses: %s\n", formatINR(result.TotalExpenses))
	fmt.Fprintf(out, "Net:            %s (savings rate %s%%)\n", formatINR(insights.Net), insights.SavingsRate.StringFixed(1))

	fmt.Fprintln(out)
	for _, share := range summary.CategoryBreakdown(result.Categories, nil) {
		fmt.Fprintf(out, "%-16s %14s %3d%%\n", share.Name, formatINR(share.Amount), share.Percentage)
	}
	return nil
}

func formatINR(amount decimal.Decimal) string {
	return printer.Sprint(currency.Symbol(currency.INR.Amount(amount.InexactFloat64())))
}

func categorizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "categorize",
		Usage:     "print the category a description falls into",
		ArgsUsage: "TEXT...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "table", Value: "import", Usage: "rule table: import or manual"},
		},
		Action: func(c *cli.Context) error {
			table, ok := categorize.ParseTable(c.String("table"))
			if !ok {
				return cli.Exit(fmt.Sprintf("categorize: unknown table %q", c.String("table")), 2)
			}
			description := strings.Join(c.Args().Slice(), " ")
			_, err := fmt.Fprintln(c.App.Writer, categorize.RulesFor(table).Categorize(description))
			return err
		},
	}
}

func classifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "print whether a row would be income or expense",
		ArgsUsage: "TEXT...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "amount", Value: "0", Usage: "signed row amount"},
		},
		Action: func(c *cli.Context) error {
			amount, err := decimal.NewFromString(c.String("amount"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("classify: invalid amount %q", c.String("amount")), 2)
			}
			description := strings.Join(c.Args().Slice(), " ")
			_, err = fmt.Fprintln(c.App.Writer, classify.Classify(description, amount))
			return err
		},
	}
}
