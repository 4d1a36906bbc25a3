package orchestration

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal logging interface scenarios write through.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer receives structured events as a run progresses.
type Observer interface {
	Logger

	// Event emits a structured event
	Event(event Event)
}

// Event represents a structured orchestration event.
type Event struct {
	Type      EventType         // Type of event
	Scenario  string            // Scenario name (e.g., "complete-scenario")
	Message   string            // Human-readable message
	Resource  string            // Resource name/ID if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of orchestration event.
type EventType string

const (
	// EventScenarioStarted indicates a scenario has started.
	EventScenarioStarted EventType = "scenario.started"
	// EventScenarioCompleted indicates a scenario completed successfully.
	EventScenarioCompleted EventType = "scenario.completed"
	// EventScenarioFailed indicates a scenario failed.
	EventScenarioFailed EventType = "scenario.failed"

	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceFailed indicates resource creation failed.
	EventResourceFailed EventType = "resource.failed"
	// EventResourceDeleting indicates a resource is being deleted.
	EventResourceDeleting EventType = "resource.deleting"
	// EventResourceDeleted indicates a resource was deleted successfully.
	EventResourceDeleted EventType = "resource.deleted"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct{}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	log.Print(formatEvent(event))
}

// formatEvent formats an event for console output.
func formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Scenario != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Scenario))
	}
	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// Helper functions for common events

// LogResourceCreating logs a resource creation start event.
func LogResourceCreating(observer Observer, scenario string, kind ResourceKind, name string) {
	observer.Event(Event{
		Type:     EventResourceCreating,
		Scenario: scenario,
		Resource: name,
		Message:  fmt.Sprintf("creating %s", kind),
		Fields:   map[string]string{"kind": string(kind)},
	})
}

// LogResourceCreated logs a successful resource creation event.
func LogResourceCreated(observer Observer, scenario string, kind ResourceKind, name string) {
	observer.Event(Event{
		Type:     EventResourceCreated,
		Scenario: scenario,
		Resource: name,
		Message:  fmt.Sprintf("%s created", kind),
		Fields:   map[string]string{"kind": string(kind)},
	})
}

// LogResourceFailed logs a failed resource creation event.
func LogResourceFailed(observer Observer, scenario string, kind ResourceKind, name string, err error) {
	observer.Event(Event{
		Type:     EventResourceFailed,
		Scenario: scenario,
		Resource: name,
		Message:  fmt.Sprintf("%s creation failed: %v", kind, err),
		Fields:   map[string]string{"kind": string(kind)},
	})
}

// LogResourceDeleting logs a resource deletion start event.
func LogResourceDeleting(observer Observer, scenario string, kind ResourceKind, name string) {
	observer.Event(Event{
		Type:     EventResourceDeleting,
		Scenario: scenario,
		Resource: name,
		Message:  fmt.Sprintf("deleting %s", kind),
		Fields:   map[string]string{"kind": string(kind)},
	})
}

// LogResourceDeleted logs a successful resource deletion event.
func LogResourceDeleted(observer Observer, scenario string, kind ResourceKind, name string) {
	observer.Event(Event{
		Type:     EventResourceDeleted,
		Scenario: scenario,
		Resource: name,
		Message:  fmt.Sprintf("%s deleted", kind),
		Fields:   map[string]string{"kind": string(kind)},
	})
}
