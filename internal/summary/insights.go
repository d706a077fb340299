package summary

import (
	"github.com/shopspring/decimal"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
)

const foodCategory = "Food"

var (
	investableShare = decimal.RequireFromString("0.8")
	tenYearFactor   = decimal.RequireFromString("1.07").Mul(decimal.NewFromInt(12 * 10))
	foodCutShare    = decimal.RequireFromString("0.2")
	monthsPerYear   = decimal.NewFromInt(12)
)

// Insights are the savings and spending figures shown after an import.
type Insights struct {
	Net                decimal.Decimal `json:"net"`
	SavingsRate        decimal.Decimal `json:"savingsRate"`
	MonthlyInvestable  decimal.Decimal `json:"monthlyInvestable"`
	TenYearGrowth      decimal.Decimal `json:"tenYearGrowth"`
	FoodShare          int64           `json:"foodShare"`
	FoodSavingsYearly  decimal.Decimal `json:"foodSavingsYearly"`
	FoodSavingsMonthly decimal.Decimal `json:"foodSavingsMonthly"`
}

// ComputeInsights derives Insights from a parse result. The savings rate is
// zero without income and the food figures are zero without food spending.
func ComputeInsights(result *statement.FileParseResult) Insights {
	insights := Insights{
		Net:                decimal.Zero,
		SavingsRate:        decimal.Zero,
		MonthlyInvestable:  decimal.Zero,
		TenYearGrowth:      decimal.Zero,
		FoodSavingsYearly:  decimal.Zero,
		FoodSavingsMonthly: decimal.Zero,
	}
	if result == nil {
		return insights
	}

	net := result.TotalIncome.Sub(result.TotalExpenses)
	insights.Net = net
	if result.TotalIncome.Sign() > 0 {
		insights.SavingsRate = net.Div(result.TotalIncome).Mul(hundred).Round(1)
	}
	investable := net.Mul(investableShare)
	insights.MonthlyInvestable = investable.Round(0)
	insights.TenYearGrowth = investable.Mul(tenYearFactor).Round(0)

	food, ok := result.Categories.Get(foodCategory)
	if !ok || food.Sign() == 0 {
		return insights
	}
	if result.TotalExpenses.Sign() > 0 {
		insights.FoodShare = percentOf(food, result.TotalExpenses).Round(0).IntPart()
	}
	yearly := food.Mul(foodCutShare)
	insights.FoodSavingsYearly = yearly.Round(0)
	insights.FoodSavingsMonthly = yearly.Div(monthsPerYear).Round(0)
	return insights
}
