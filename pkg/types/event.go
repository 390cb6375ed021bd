package types

// EventType identifies a walker decision
type EventType string

const (
	// EventWouldRemove is a match found during a dry run
	EventWouldRemove EventType = "would-remove"
	// EventRemoving is emitted right before a real deletion
	EventRemoving EventType = "removing"
	// EventRemoved follows a successful deletion
	EventRemoved EventType = "removed"
	// EventFailed is a listing or deletion error
	EventFailed EventType = "failed"
)

// Event is one line of observable output
type Event struct {
	Type EventType
	// Path is the absolute path of the target entry
	Path string
	// IsDir tells whether the target is a directory
	IsDir bool
	// Err is set for EventFailed
	Err error
}

// Stats counts what happened while walking one rule
type Stats struct {
	Visited int // directories listed
	Matched int
	Removed int
	Failed  int
}

// Add accumulates other into s
func (s *Stats) Add(other Stats) {
	s.Visited += other.Visited
	s.Matched += other.Matched
	s.Removed += other.Removed
	s.Failed += other.Failed
}

// RuleResult pairs a rule with the stats of its walk
type RuleResult struct {
	Rule  Rule
	Stats Stats
}

// Summary is the outcome of executing a RuleSet
type Summary struct {
	Results []RuleResult
	Total   Stats
	DryRun  bool // true when every rule was a dry run
}
