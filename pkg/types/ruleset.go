package types

// RuleSet is an ordered, immutable sequence of validated rules. The order
// is the execution order.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a RuleSet holding a copy of rules
func NewRuleSet(rules ...Rule) RuleSet {
	rs := RuleSet{rules: make([]Rule, len(rules))}
	copy(rs.rules, rules)
	return rs
}

// Rules returns the rules in execution order
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Len returns the number of rules
func (rs RuleSet) Len() int { return len(rs.rules) }

// At returns the i-th rule
func (rs RuleSet) At(i int) Rule { return rs.rules[i] }
