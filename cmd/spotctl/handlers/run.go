// Package handlers contains the execution logic behind the CLI
// commands. Commands parse flags and delegate here; the factory
// variables are seams for tests.
package handlers

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/imamik/spotctl/internal/config"
	"github.com/imamik/spotctl/internal/orchestration"
	"github.com/imamik/spotctl/internal/orchestration/scenarios"
	"github.com/imamik/spotctl/internal/spot"
)

// ErrNoScenario is returned when neither scenario flag is supplied. The
// text is operator-facing and printed verbatim.
//
//nolint:stylecheck
var ErrNoScenario = errors.New("Please provide the --complete-scenario or --full-deployment argument to run the examples.")

// RunOptions carries the run command's flag values.
type RunOptions struct {
	RefreshToken     string
	CompleteScenario bool
	FullDeployment   bool
	PlanPath         string
}

// Factory function variables — can be replaced in tests.
var (
	// newSpotClient builds the API client; authentication happens here.
	newSpotClient = func(ctx context.Context, refreshToken string) (spot.Client, error) {
		return spot.NewClient(ctx, refreshToken)
	}

	// loadPlanFile loads a deployment plan from disk.
	loadPlanFile = config.LoadFile

	// newRunContext creates a new orchestration context.
	newRunContext = orchestration.NewContext

	// reportWriter receives the run report.
	reportWriter io.Writer = os.Stdout
)

// Run handles the run command.
//
// The selected scenario flags are resolved once into an ordered list of
// scenarios, which are then executed sequentially against one client
// and one plan. The run report is printed on every exit path after the
// plan was accepted, so the operator always sees which resources were
// created and which were cleaned up.
func Run(ctx context.Context, opts RunOptions) error {
	selected := selectScenarios(opts)
	if len(selected) == 0 {
		return ErrNoScenario
	}

	plan := config.Default()
	if opts.PlanPath != "" {
		var err error
		if plan, err = loadPlanFile(opts.PlanPath); err != nil {
			return err
		}
	}

	client, err := newSpotClient(ctx, opts.RefreshToken)
	if err != nil {
		return err
	}

	orgs, err := client.ListOrganizations(ctx)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		return errors.New("no organizations are visible to this token")
	}
	namespace := orgs[0].Namespace

	octx := newRunContext(ctx, client, plan, namespace)
	octx.Observer.Printf("Using namespace: %s", namespace)

	runErr := orchestration.RunScenarios(octx, selected)
	octx.Report.Write(reportWriter)

	if runErr != nil {
		return runErr
	}
	if octx.Report.Failed() {
		return errors.New("run completed with failures, see report above")
	}
	return nil
}

// selectScenarios resolves the scenario flags into the ordered list of
// scenarios to execute.
func selectScenarios(opts RunOptions) []orchestration.Scenario {
	var selected []orchestration.Scenario
	if opts.CompleteScenario {
		selected = append(selected, scenarios.Complete{})
	}
	if opts.FullDeployment {
		selected = append(selected, scenarios.FullDeployment{})
	}
	return selected
}
