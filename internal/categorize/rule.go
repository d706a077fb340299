// Package categorize maps free-text transaction descriptions to category
// labels with ordered keyword rules.
package categorize

import (
	"sort"
	"strings"
)

// Rule assigns Category to any description containing Keyword.
// Keywords are lower case.
type Rule struct {
	Keyword  string
	Category string
}

// RuleSet is an ordered rule list. The first matching rule wins.
type RuleSet struct {
	rules    []Rule
	fallback string
}

// NewRuleSet returns a RuleSet that yields fallback when no rule matches.
func NewRuleSet(fallback string, rules ...Rule) *RuleSet {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &RuleSet{rules: copied, fallback: fallback}
}

// Match returns the category of the first rule whose keyword is contained in
// the lower-cased description.
func (r *RuleSet) Match(description string) (string, bool) {
	lower := strings.ToLower(description)
	for _, rule := range r.rules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Category, true
		}
	}
	return "", false
}

// Categorize returns the matched category or the fallback label.
func (r *RuleSet) Categorize(description string) string {
	if category, ok := r.Match(description); ok {
		return category
	}
	return r.fallback
}

// Fallback is the label returned when nothing matches.
func (r *RuleSet) Fallback() string {
	return r.fallback
}

// Rules returns a copy of the rules in match order.
func (r *RuleSet) Rules() []Rule {
	copied := make([]Rule, len(r.rules))
	copy(copied, r.rules)
	return copied
}

// With returns a new RuleSet with extra rules appended after the existing ones.
func (r *RuleSet) With(extra ...Rule) *RuleSet {
	rules := make([]Rule, 0, len(r.rules)+len(extra))
	rules = append(rules, r.rules...)
	rules = append(rules, extra...)
	return &RuleSet{rules: rules, fallback: r.fallback}
}

// Categories returns the distinct category labels, sorted.
func (r *RuleSet) Categories() []string {
	seen := make(map[string]struct{}, len(r.rules))
	categories := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		seen[rule.Category] = struct{}{}
		categories = append(categories, rule.Category)
	}
	sort.Strings(categories)
	return categories
}

// DynamicRules makes every category label usable as its own keyword.
func DynamicRules(categories []string) []Rule {
	rules := make([]Rule, len(categories))
	for i, category := range categories {
		rules[i] = Rule{Keyword: strings.ToLower(category), Category: category}
	}
	return rules
}
