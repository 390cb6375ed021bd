// Package executor runs a validated RuleSet.
//
// Rules are applied one after the other, in RuleSet order, each against its
// own destination and dry-run flag. The executor keeps no state between
// rules: a failure inside one rule's tree is reported as an event and the
// next rule still runs.
package executor
