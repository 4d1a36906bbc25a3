package scenarios

import (
	"fmt"

	"github.com/imamik/spotctl/internal/orchestration"
	"github.com/imamik/spotctl/internal/spot"
)

// FullDeployment runs three barrier stages against the plan: create the
// cloudspace and every configured node pool, report the status of
// everything under the namespace, then tear it all down in reverse
// creation order. A create failure aborts the remaining creates but
// cleanup still runs for whatever was already created.
type FullDeployment struct{}

// Name implements Scenario.
func (FullDeployment) Name() string { return "full-deployment" }

// Run implements Scenario.
func (FullDeployment) Run(ctx *orchestration.Context) error {
	ctx.Observer.Printf("Starting full deployment: %d spot pool(s), %d on-demand pool(s)",
		len(ctx.Plan.SpotPools), len(ctx.Plan.OnDemandPools))

	createErr := createStage(ctx)

	if createErr == nil {
		ctx.Observer.Printf("Environment created: cloudspace %s with %d pool(s)",
			ctx.Plan.Cloudspace.Name, ctx.Plan.PoolCount())
		statusStage(ctx)
	}

	ctx.Report.Created = ctx.Tracker.Created()

	ctx.Observer.Printf("Cleaning up environment...")
	orchestration.CleanupTracked(ctx)

	if createErr != nil {
		return fmt.Errorf("create stage failed: %w", createErr)
	}
	return nil
}

// createStage brings up the environment: the cloudspace, then every
// pool from the plan. The first failure aborts the rest of the stage.
func createStage(ctx *orchestration.Context) error {
	created, err := ensureCloudspace(ctx)
	if err != nil {
		return err
	}

	for _, pool := range ctx.Plan.SpotPools {
		if _, err := createSpotPool(ctx, "full-deployment", created.Name, pool); err != nil {
			return err
		}
	}
	for _, pool := range ctx.Plan.OnDemandPools {
		if _, err := createOnDemandPool(ctx, "full-deployment", created.Name, pool); err != nil {
			return err
		}
	}
	return nil
}

// ensureCloudspace reuses the plan's cloudspace when it already exists
// in the namespace and creates it otherwise. A reused cloudspace is
// tracked too: the cleanup stage tears the whole environment down.
func ensureCloudspace(ctx *orchestration.Context) (*spot.Cloudspace, error) {
	name := ctx.Plan.Cloudspace.Name

	existing, err := ctx.Client.GetCloudspace(ctx, ctx.Namespace, name)
	switch {
	case err == nil:
		ctx.Observer.Printf("Cloudspace %s already exists, leveraging it for the node pools", existing.Name)
		ctx.Tracker.Record(orchestration.KindCloudspace, existing.Namespace, existing.Name)
		_ = ctx.Report.AddStep(fmt.Sprintf("use existing cloudspace %s", existing.Name), nil)
		return existing, nil
	case !spot.IsNotFound(err):
		return nil, ctx.Report.AddStep(fmt.Sprintf("get cloudspace %s", name), err)
	}

	return createCloudspace(ctx, "full-deployment", ctx.Plan.Cloudspace)
}

// statusStage reports the state of everything in the namespace:
// per-kind counts plus the desired, won, and reserved node totals the
// pools have reached. Each listing is one recorded step; a failure is
// reported without aborting the scenario.
func statusStage(ctx *orchestration.Context) {
	if spaces, err := ctx.Client.ListCloudspaces(ctx, ctx.Namespace); err != nil {
		_ = ctx.Report.AddStep("list cloudspaces", err)
	} else {
		_ = ctx.Report.AddStep("list cloudspaces", nil)
		ready := 0
		for _, cs := range spaces {
			if cs.Phase == spot.PhaseReady {
				ready++
			}
		}
		ctx.Observer.Printf("Cloudspaces: %d total, %d ready", len(spaces), ready)
	}

	if pools, err := ctx.Client.ListSpotNodePools(ctx, ctx.Namespace); err != nil {
		_ = ctx.Report.AddStep("list spot node pools", err)
	} else {
		_ = ctx.Report.AddStep("list spot node pools", nil)
		var desired, won int
		for _, p := range pools {
			desired += p.Desired
			won += p.WonCount
		}
		ctx.Observer.Printf("Spot node pools: %d total, %d desired, %d won", len(pools), desired, won)
	}

	if pools, err := ctx.Client.ListOnDemandNodePools(ctx, ctx.Namespace); err != nil {
		_ = ctx.Report.AddStep("list on-demand node pools", err)
	} else {
		_ = ctx.Report.AddStep("list on-demand node pools", nil)
		var desired, reserved int
		for _, p := range pools {
			desired += p.Desired
			reserved += p.ReservedCount
		}
		ctx.Observer.Printf("On-demand node pools: %d total, %d desired, %d reserved", len(pools), desired, reserved)
	}
}
