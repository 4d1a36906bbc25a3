// Package orchestration sequences Spot API calls into named scenarios
// and guarantees that whatever a run created is torn down in reverse
// dependency order, even on partial failure.
package orchestration

import (
	"fmt"
	"time"
)

// Scenario is a named sequence of remote operations driven to completion.
type Scenario interface {
	// Name returns the human-readable name of this scenario.
	Name() string

	// Run executes the scenario.
	Run(ctx *Context) error
}

// RunScenarios executes the selected scenarios sequentially. The first
// scenario failure stops the run; its own cleanup has already happened
// by the time the error propagates here.
func RunScenarios(ctx *Context, scenarios []Scenario) error {
	start := time.Now()
	ctx.Observer.Printf("Running %d scenario(s)...", len(scenarios))

	for i, scenario := range scenarios {
		scenarioStart := time.Now()

		ctx.Observer.Event(Event{
			Type:     EventScenarioStarted,
			Scenario: scenario.Name(),
			Message:  fmt.Sprintf("starting (%d/%d)", i+1, len(scenarios)),
		})

		if err := scenario.Run(ctx); err != nil {
			ctx.Observer.Event(Event{Type: EventScenarioFailed, Scenario: scenario.Name(), Message: fmt.Sprintf("failed: %v", err)})
			return fmt.Errorf("%s scenario failed: %w", scenario.Name(), err)
		}

		ctx.Observer.Event(Event{
			Type:     EventScenarioCompleted,
			Scenario: scenario.Name(),
			Message:  fmt.Sprintf("completed in %v", time.Since(scenarioStart).Round(time.Millisecond)),
		})
	}

	ctx.Observer.Printf("All scenarios completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
