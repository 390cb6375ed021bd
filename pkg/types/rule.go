package types

// Rule is one cleanup instruction: remove everything under Destination
// whose name (folders) or extension (files) equals one of Patterns.
//
// A Rule is immutable once built. Build one through the ruleset package,
// which validates it; NewRule itself only copies its inputs.
type Rule struct {
	destination string
	kind        Kind
	patterns    []string
	dryRun      bool
	exclude     []string
}

// NewRule creates a Rule. Slices are copied so later changes by the caller
// do not leak into the rule.
func NewRule(destination string, kind Kind, patterns []string, dryRun bool, exclude []string) Rule {
	return Rule{
		destination: destination,
		kind:        kind,
		patterns:    cloneStrings(patterns),
		dryRun:      dryRun,
		exclude:     cloneStrings(exclude),
	}
}

// Destination returns the absolute root the rule is applied to
func (r Rule) Destination() string { return r.destination }

// Kind returns what the patterns are compared against
func (r Rule) Kind() Kind { return r.kind }

// Patterns returns a copy of the rule's patterns
func (r Rule) Patterns() []string { return cloneStrings(r.patterns) }

// DryRun reports whether matches are only reported
func (r Rule) DryRun() bool { return r.dryRun }

// Exclude returns a copy of the reserved exclude list. Matching ignores it.
func (r Rule) Exclude() []string { return cloneStrings(r.exclude) }

// HasPattern reports whether s equals one of the patterns. Comparison is
// ordinal and case-sensitive.
func (r Rule) HasPattern(s string) bool {
	for _, p := range r.patterns {
		if p == s {
			return true
		}
	}
	return false
}

// WithDryRun returns a copy of r with the dry-run flag set to dryRun
func (r Rule) WithDryRun(dryRun bool) Rule {
	return NewRule(r.destination, r.kind, r.patterns, dryRun, r.exclude)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
