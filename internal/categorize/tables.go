package categorize

import (
	"strings"
)

// Table selects one of the built-in rule tables.
type Table int

const (
	// TableImport is the coarse bucket table used for bank statement imports.
	TableImport Table = iota
	// TableManual is the granular table used to suggest categories during
	// manual entry.
	TableManual
)

const (
	ImportFallback = "Others"
	ManualFallback = "Uncategorized"
)

// ParseTable maps "import" or "manual" to a Table.
func ParseTable(name string) (Table, bool) {
	switch strings.ToLower(name) {
	case "import":
		return TableImport, true
	case "manual":
		return TableManual, true
	}
	return 0, false
}

type bucket struct {
	category string
	keywords []string
}

// Buckets are scanned in this order; "gas" appears under both
// Transportation and Utilities and Transportation wins.
var importBuckets = []bucket{
	{"Food", []string{"restaurant", "food", "grocery", "coffee", "lunch", "dinner", "breakfast", "cafe", "pizza", "burger", "mcdonalds", "starbucks"}},
	{"Transportation", []string{"gas", "fuel", "uber", "lyft", "taxi", "parking", "toll", "bus", "train", "subway", "metro"}},
	{"Entertainment", []string{"netflix", "spotify", "amazon prime", "hulu", "disney", "movie", "theater", "concert", "game", "gaming"}},
	{"Shopping", []string{"amazon", "walmart", "target", "costco", "best buy", "clothing", "shoes", "electronics"}},
	{"Utilities", []string{"electric", "water", "gas", "internet", "phone", "cable", "utility", "bill"}},
	{"Healthcare", []string{"pharmacy", "doctor", "hospital", "medical", "dental", "vision", "insurance"}},
	{"Housing", []string{"rent", "mortgage", "home", "apartment", "property", "maintenance"}},
	{"Income", []string{"salary", "wage", "deposit", "payment", "refund", "bonus", "commission"}},
}

var manualRules = []Rule{
	{"atm", "Cash Withdrawal"},
	{"bank charge", "Bank Charges"},
	{"cloth", "Clothing"},
	{"footwear", "Clothing"},
	{"shoe", "Clothing"},
	{"cinema", "Entertainment"},
	{"activity", "Entertainment"},
	{"outing", "Entertainment"},
	{"grocery", "Grocery"},
	{"super bazaar", "Grocery"},
	{"swiggy", "Food"},
	{"zomato", "Food"},
	{"restaurant", "Food"},
	{"hotel", "Food"},
	{"eat", "Food"},
	{"tea", "Food"},
	{"icecream", "Food"},
	{"pizza", "Food"},
	{"snack", "Food"},
	{"fruit", "Food"},
	{"coffee", "Food"},
	{"furnishing", "Furnishing"},
	{"electrical", "Furnishing"},
	{"home good", "Home Goods"},
	{"mobile", "Gadgets"},
	{"headset", "Gadgets"},
	{"gift", "Gift"},
	{"sgb", "Gold"},
	{"goldbees", "Gold"},
	{"gold", "Gold"},
	{"hair cut", "Grooming"},
	{"rent", "House Rent"},
	{"rental advance", "House Rent"},
	{"stock", "Investments"},
	{"mutual", "Investments"},
	{"zerodha", "Investments"},
	{"kite", "Investments"},
	{"coin", "Investments"},
	{"upstox", "Investments"},
	{"angel", "Investments"},
	{"groww", "Investments"},
	{"ppf", "Investments"},
	{"medical", "Medical"},
	{"moving", "Misc"},
	{"umbrella", "Misc"},
	{"misc", "Misc"},
	{"internet", "Mobile & Internet"},
	{"sim", "Mobile & Internet"},
	{"airtel", "Mobile & Internet"},
	{"vodafone", "Mobile & Internet"},
	{"jio", "Mobile & Internet"},
	{"toilteries", "Toilteries and Household"},
	{"toilet cleaning", "Cleaning charges"},
	{"house cleaning", "Cleaning charges"},
	{"trip", "Travel"},
	{"tour", "Travel"},
	{"emergency", "Unexpected"},
	{"unexpected", "Unexpected"},
	{"waste tax", "Utility Bills"},
	{"fuel", "Utility Bills"},
	{"power", "Utility Bills"},
	{"gas", "Utility Bills"},
	{"water bill", "Utility Bills"},
	{"water tax", "Utility Bills"},
	{"electricity", "Utility Bills"},
	{"eb", "Utility Bills"},
	{"share auto", "Transport"},
	{"bus", "Transport"},
	{"metro", "Transport"},
	{"auto", "Transport"},
	{"mobile recharge", "Internet Recharge"},
	{"wifi recharge", "Internet Recharge"},
	{"donation", "Donation"},
	{"split", "Split Settlements"},
}

// IncomeCategories are the labels offered for income entries.
var IncomeCategories = []string{
	"Salary",
	"Investments",
	"Part-Time",
	"Bonus",
	"Others",
}

// ImportRules returns the statement import table.
func ImportRules() *RuleSet {
	var rules []Rule
	for _, b := range importBuckets {
		for _, keyword := range b.keywords {
			rules = append(rules, Rule{Keyword: keyword, Category: b.category})
		}
	}
	return NewRuleSet(ImportFallback, rules...)
}

// ManualRules returns the static manual-entry table without dynamic rules.
func ManualRules() *RuleSet {
	return NewRuleSet(ManualFallback, manualRules...)
}

// RulesFor returns the table selected by t.
func RulesFor(t Table) *RuleSet {
	if t == TableManual {
		return ManualRules()
	}
	return ImportRules()
}

// ExpenseCategories are the distinct manual-table labels, sorted.
func ExpenseCategories() []string {
	return ManualRules().Categories()
}
