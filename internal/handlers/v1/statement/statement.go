package statement

import (
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
)

// ParsedTransaction is one statement row in API responses.
type ParsedTransaction struct {
	ID          string `json:"id" doc:"Row identifier, unique within one parse"`
	Date        string `json:"date" doc:"Date as written in the file"`
	Description string `json:"description" doc:"Row description"`
	Amount      string `json:"amount" doc:"Signed decimal amount, negative for expenses"`
	Category    string `json:"category" doc:"Category from the import rule table"`
	Type        string `json:"type" enum:"income,expense" doc:"Classified type"`
}

// CategoryShare is one category slice of the statement's spending.
type CategoryShare struct {
	Name       string `json:"name" doc:"Category label"`
	Amount     string `json:"amount" doc:"Absolute decimal total"`
	Percentage int64  `json:"percentage" doc:"Whole-number share of all category totals"`
}

// Insights are the derived savings figures.
type Insights struct {
	Net                string `json:"net" doc:"Income minus expenses"`
	SavingsRate        string `json:"savingsRate" doc:"Net as a percentage of income"`
	MonthlyInvestable  string `json:"monthlyInvestable" doc:"80% of net"`
	TenYearGrowth      string `json:"tenYearGrowth" doc:"Ten-year projection of monthly investing"`
	FoodShare          int64  `json:"foodShare" doc:"Food spending as a whole-number percentage of expenses"`
	FoodSavingsYearly  string `json:"foodSavingsYearly" doc:"Yearly savings from cutting food spending by 20%"`
	FoodSavingsMonthly string `json:"foodSavingsMonthly" doc:"Monthly savings from cutting food spending by 20%"`
}

// PreviewResponse is the parse result with its derived figures.
type PreviewResponse struct {
	Transactions  []ParsedTransaction `json:"transactions" doc:"Parsed rows in file order"`
	TotalIncome   string              `json:"totalIncome" doc:"Sum of income rows"`
	TotalExpenses string              `json:"totalExpenses" doc:"Sum of absolute expense rows"`
	Categories    []CategoryShare     `json:"categories" doc:"Per-category totals in first-seen order"`
	Insights      Insights            `json:"insights" doc:"Savings and spending figures"`
}

func toPreviewResponse(preview *service.ImportPreview) PreviewResponse {
	result := preview.Result
	resp := PreviewResponse{
		Transactions:  make([]ParsedTransaction, len(result.Transactions)),
		TotalIncome:   result.TotalIncome.String(),
		TotalExpenses: result.TotalExpenses.String(),
		Categories:    make([]CategoryShare, len(preview.Categories)),
		Insights: Insights{
			Net:                preview.Insights.Net.String(),
			SavingsRate:        preview.Insights.SavingsRate.String(),
			MonthlyInvestable:  preview.Insights.MonthlyInvestable.String(),
			TenYearGrowth:      preview.Insights.TenYearGrowth.String(),
			FoodShare:          preview.Insights.FoodShare,
			FoodSavingsYearly:  preview.Insights.FoodSavingsYearly.String(),
			FoodSavingsMonthly: preview.Insights.FoodSavingsMonthly.String(),
		},
	}
	for i, tx := range result.Transactions {
		resp.Transactions[i] = ParsedTransaction{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount.String(),
			Category:    tx.Category,
			Type:        string(tx.Type),
		}
	}
	for i, share := range preview.Categories {
		resp.Categories[i] = CategoryShare{
			Name:       share.Name,
			Amount:     share.Amount.String(),
			Percentage: share.Percentage,
		}
	}
	return resp
}
