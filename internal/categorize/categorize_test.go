package categorize

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
)

// -- RuleSet tests --

func TestRuleSet_FirstMatchWins(t *testing.T) {
	rules := NewRuleSet("Others",
		Rule{Keyword: "coffee", Category: "Food"},
		Rule{Keyword: "shop", Category: "Shopping"},
	)

	assert.Equal(t, "Food", rules.Categorize("Coffee Shop"))
}

func TestRuleSet_FallbackWhenNothingMatches(t *testing.T) {
	rules := NewRuleSet("Others", Rule{Keyword: "coffee", Category: "Food"})

	category, ok := rules.Match("Rent")
	assert.False(t, ok)
	assert.Empty(t, category)
	assert.Equal(t, "Others", rules.Categorize("Rent"))
}

func TestRuleSet_ContainmentIsNotWordAware(t *testing.T) {
	rules := NewRuleSet("Others", Rule{Keyword: "auto", Category: "Transport"})

	assert.Equal(t, "Transport", rules.Categorize("AUTOMATIC renewal"))
}

func TestRuleSet_WithAppendsAfterExisting(t *testing.T) {
	base := NewRuleSet("Others", Rule{Keyword: "gold", Category: "Gold"})
	extended := base.With(Rule{Keyword: "gold", Category: "Investments"})

	assert.Equal(t, "Gold", extended.Categorize("gold coin"))
	assert.Len(t, base.Rules(), 1, "original set is unchanged")
	assert.Len(t, extended.Rules(), 2)
}

func TestDynamicRules_LowercasesKeyword(t *testing.T) {
	rules := DynamicRules([]string{"Part-Time", "Salary"})

	assert.Equal(t, []Rule{
		{Keyword: "part-time", Category: "Part-Time"},
		{Keyword: "salary", Category: "Salary"},
	}, rules)
}

// -- Import table tests --

func TestImportRules(t *testing.T) {
	rules := ImportRules()

	cases := map[string]string{
		"Salary":              "Income",
		"Coffee Shop":         "Food",
		"Uber to restaurant":  "Food",
		"Shell gas station":   "Transportation",
		"Netflix monthly":     "Entertainment",
		"Walmart supercenter": "Shopping",
		"City water board":    "Utilities",
		"Apollo pharmacy":     "Healthcare",
		"Monthly rent":        "Housing",
		"Something unknown":   ImportFallback,
	}

	for description, expected := range cases {
		assert.Equal(t, expected, rules.Categorize(description), description)
	}
}

func TestRulesFor_SelectsDistinctTables(t *testing.T) {
	assert.Equal(t, ImportFallback, RulesFor(TableImport).Fallback())
	assert.Equal(t, ManualFallback, RulesFor(TableManual).Fallback())

	assert.Equal(t, "Food", RulesFor(TableImport).Categorize("Grocery run"))
	assert.Equal(t, "Grocery", RulesFor(TableManual).Categorize("Grocery run"))
}

func TestParseTable(t *testing.T) {
	table, ok := ParseTable("Manual")
	assert.True(t, ok)
	assert.Equal(t, TableManual, table)

	_, ok = ParseTable("bank")
	assert.False(t, ok)
}

// -- Manual table tests --

func TestManualRules(t *testing.T) {
	rules := ManualRules()

	cases := map[string]string{
		"ATM cash":          "Cash Withdrawal",
		"Swiggy order":      "Food",
		"Gas cylinder":      "Utility Bills",
		"Electricity":       "Utility Bills",
		"Auto rickshaw":     "Transport",
		"Automobile repair": "Gadgets",
		"Zerodha SIP":       "Investments",
		"Jio recharge":      "Mobile & Internet",
		"qwerty":            ManualFallback,
	}

	for description, expected := range cases {
		assert.Equal(t, expected, rules.Categorize(description), description)
	}
}

func TestExpenseCategories_SortedAndUnique(t *testing.T) {
	categories := ExpenseCategories()

	assert.True(t, sort.StringsAreSorted(categories))
	assert.Contains(t, categories, "Utility Bills")
	assert.Contains(t, categories, "Split Settlements")

	seen := map[string]bool{}
	for _, c := range categories {
		assert.False(t, seen[c], c)
		seen[c] = true
	}
}

// -- Suggest tests --

func TestSuggest_UsesDynamicIncomeCategories(t *testing.T) {
	category, ok := Suggest("Part-Time gig", ledger.TypeIncome)

	assert.True(t, ok)
	assert.Equal(t, "Part-Time", category)
}

func TestSuggest_StaticRulesComeFirst(t *testing.T) {
	category, ok := Suggest("Gift from parents", ledger.TypeIncome)

	assert.True(t, ok)
	assert.Equal(t, "Gift", category)
}

func TestSuggest_ExpenseCategoryLabelMatches(t *testing.T) {
	category, ok := Suggest("donation box", ledger.TypeExpense)

	assert.True(t, ok)
	assert.Equal(t, "Donation", category)
}

func TestSuggest_NoMatch(t *testing.T) {
	_, ok := Suggest("xyz", ledger.TypeTransfer)

	assert.False(t, ok)
}

func TestCategoriesFor(t *testing.T) {
	assert.Equal(t, IncomeCategories, CategoriesFor(ledger.TypeIncome))
	assert.Equal(t, ExpenseCategories(), CategoriesFor(ledger.TypeExpense))
	assert.Nil(t, CategoriesFor(ledger.TypeTransfer))
}
