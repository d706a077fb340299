package statement

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one entry of CategoryTotals.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryTotals maps a category label to an accumulated amount. Iteration
// follows first-insertion order.
type CategoryTotals struct {
	order []string
	sums  map[string]decimal.Decimal
}

func NewCategoryTotals() *CategoryTotals {
	return &CategoryTotals{sums: map[string]decimal.Decimal{}}
}

// Add accumulates amount under category.
func (c *CategoryTotals) Add(category string, amount decimal.Decimal) {
	current, ok := c.sums[category]
	if !ok {
		c.order = append(c.order, category)
	}
	c.sums[category] = current.Add(amount)
}

// Get returns the total for category.
func (c *CategoryTotals) Get(category string) (decimal.Decimal, bool) {
	if c == nil {
		return decimal.Zero, false
	}
	v, ok := c.sums[category]
	return v, ok
}

func (c *CategoryTotals) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Entries returns the totals in insertion order.
func (c *CategoryTotals) Entries() []CategoryTotal {
	if c == nil {
		return nil
	}
	entries := make([]CategoryTotal, len(c.order))
	for i, category := range c.order {
		entries[i] = CategoryTotal{Category: category, Amount: c.sums[category]}
	}
	return entries
}

// Clone returns an independent copy.
func (c *CategoryTotals) Clone() *CategoryTotals {
	out := NewCategoryTotals()
	for _, entry := range c.Entries() {
		out.Add(entry.Category, entry.Amount)
	}
	return out
}

// MarshalJSON writes a JSON object whose keys keep insertion order.
func (c *CategoryTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := entry.Amount.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
