package testutil

import (
	"github.com/arthur-debert/neaten/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockReporter is a testify mock of types.Reporter
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Report(event types.Event) {
	m.Called(event)
}

// EventOf matches an event by type and path, ignoring the error value
func EventOf(eventType types.EventType, path string) interface{} {
	return mock.MatchedBy(func(e types.Event) bool {
		return e.Type == eventType && e.Path == path
	})
}

// Recorder collects events in order
type Recorder struct {
	Events []types.Event
}

func (r *Recorder) Report(event types.Event) {
	r.Events = append(r.Events, event)
}

// Paths returns the paths of events of the given type, in order
func (r *Recorder) Paths(eventType types.EventType) []string {
	var out []string
	for _, e := range r.Events {
		if e.Type == eventType {
			out = append(out, e.Path)
		}
	}
	return out
}
