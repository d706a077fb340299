package summary

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Holding is the part of an account that asset distribution needs.
type Holding struct {
	Name    string
	Type    string
	Balance decimal.Decimal
}

// AccountShare is one account within an asset group.
type AccountShare struct {
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	Percentage decimal.Decimal `json:"percentage"`
}

// AssetGroup aggregates the accounts of one type.
type AssetGroup struct {
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
	Accounts   []AccountShare  `json:"accounts"`
}

// AssetDistribution is the grouped view of every account balance.
type AssetDistribution struct {
	Total  decimal.Decimal `json:"total"`
	Groups []AssetGroup    `json:"groups"`
}

// DistributeAssets groups holdings by account type. Groups are ordered by
// amount, largest first; ties keep first-seen order. Percentages are of the
// total of all balances, rounded to two places, and zero when that total is
// not positive.
func DistributeAssets(holdings []Holding) AssetDistribution {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.Balance)
	}

	var groups []AssetGroup
	index := map[string]int{}
	for _, h := range holdings {
		share := AccountShare{
			Name:       h.Name,
			Balance:    h.Balance,
			Percentage: percentOf(h.Balance, total).Round(2),
		}

		i, ok := index[h.Type]
		if !ok {
			i = len(groups)
			index[h.Type] = i
			groups = append(groups, AssetGroup{Type: h.Type, Amount: decimal.Zero})
		}
		groups[i].Amount = groups[i].Amount.Add(h.Balance)
		groups[i].Count++
		groups[i].Accounts = append(groups[i].Accounts, share)
	}

	for i := range groups {
		groups[i].Percentage = percentOf(groups[i].Amount, total).Round(2)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Amount.GreaterThan(groups[b].Amount)
	})

	if groups == nil {
		groups = []AssetGroup{}
	}
	return AssetDistribution{Total: total, Groups: groups}
}
