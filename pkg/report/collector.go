package report

import (
	"sync"

	"github.com/arthur-debert/neaten/pkg/types"
)

// Collector keeps events and the summary in memory
type Collector struct {
	mu      sync.Mutex
	events  []types.Event
	summary *types.Summary
}

// NewCollector creates an empty Collector
func NewCollector() *Collector {
	return &Collector{}
}

// Report records event
func (c *Collector) Report(event types.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// Finish records summary
func (c *Collector) Finish(summary types.Summary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = &summary
	return nil
}

// Events returns the recorded events in order
func (c *Collector) Events() []types.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Summary returns the recorded summary and whether Finish was called
func (c *Collector) Summary() (types.Summary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.summary == nil {
		return types.Summary{}, false
	}
	return *c.summary, true
}

// Failures returns the failed events
func (c *Collector) Failures() []types.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []types.Event
	for _, e := range c.events {
		if e.Type == types.EventFailed {
			out = append(out, e)
		}
	}
	return out
}
