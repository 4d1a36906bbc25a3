package scenarios

import (
	"fmt"

	"github.com/imamik/spotctl/internal/config"
	"github.com/imamik/spotctl/internal/orchestration"
	"github.com/imamik/spotctl/internal/spot"
)

// Complete scenario resources, matching the SDK walkthrough: one small
// spot pool and one small on-demand pool on a fresh cloudspace.
const (
	completeCloudspaceName = "complete-scenario-cloudspace"
	completeServerClass    = "gp.vs1.medium-iad"
	completeDesiredNodes   = 2
	completeBidPrice       = "0.5"
)

// Complete walks the whole API surface once: catalog reads, a
// cloudspace with one spot and one on-demand pool, listings, and
// teardown in reverse creation order.
type Complete struct{}

// Name implements Scenario.
func (Complete) Name() string { return "complete-scenario" }

// Run implements Scenario.
func (Complete) Run(ctx *orchestration.Context) error {
	ctx.Observer.Printf("Starting complete scenario in namespace %s", ctx.Namespace)

	if err := catalogReads(ctx); err != nil {
		// Nothing has been created yet, so there is nothing to clean up.
		return err
	}

	createErr := completeCreates(ctx)
	if createErr == nil {
		listResources(ctx)
	}

	ctx.Report.Created = ctx.Tracker.Created()

	ctx.Observer.Printf("Deleting resources...")
	orchestration.CleanupTracked(ctx)

	if createErr != nil {
		return fmt.Errorf("create failed: %w", createErr)
	}
	return nil
}

// catalogReads lists regions and server classes and fetches price
// history. The price history endpoint is best-effort: it is public
// infrastructure separate from the API and its failure is reported
// without aborting the scenario.
func catalogReads(ctx *orchestration.Context) error {
	regions, err := ctx.Client.ListRegions(ctx)
	if err := ctx.Report.AddStep("list regions", err); err != nil {
		return err
	}
	ctx.Observer.Printf("Available regions: %v", names(regions, func(r spot.Region) string { return r.Name }))

	classes, err := ctx.Client.ListServerClasses(ctx)
	if err := ctx.Report.AddStep("list server classes", err); err != nil {
		return err
	}
	ctx.Observer.Printf("Available server classes: %d", len(classes))

	if history, err := ctx.Client.GetPriceHistory(ctx, completeServerClass); err != nil {
		ctx.Observer.Printf("Could not get price history: %v", err)
	} else {
		ctx.Observer.Printf("Price history entries for %s: %d", history.ServerClass, len(history.History))
	}

	return nil
}

// completeCreates creates the cloudspace, waits until it is ready, then
// attaches one spot pool and one on-demand pool.
func completeCreates(ctx *orchestration.Context) error {
	created, err := createCloudspace(ctx, "complete-scenario", config.CloudspaceConfig{
		Name:   completeCloudspaceName,
		Region: ctx.Plan.Cloudspace.Region,
	})
	if err != nil {
		return err
	}

	ctx.Observer.Printf("Waiting for cloudspace %s to become ready...", created.Name)
	_, waitErr := spot.WaitForCloudspaceReady(ctx, ctx.Client, created.Namespace, created.Name, spot.WaitConfig{
		Timeout:      ctx.Plan.Wait.Timeout,
		PollInterval: ctx.Plan.Wait.PollInterval,
	})
	if err := ctx.Report.AddStep(fmt.Sprintf("wait for cloudspace %s", created.Name), waitErr); err != nil {
		return err
	}
	ctx.Observer.Printf("Cloudspace %s is ready", created.Name)

	if _, err := createSpotPool(ctx, "complete-scenario", created.Name, config.SpotPoolConfig{
		ServerClass: completeServerClass,
		Desired:     completeDesiredNodes,
		BidPrice:    completeBidPrice,
	}); err != nil {
		return err
	}

	if _, err := createOnDemandPool(ctx, "complete-scenario", created.Name, config.OnDemandPool{
		ServerClass: completeServerClass,
		Desired:     completeDesiredNodes,
	}); err != nil {
		return err
	}

	return nil
}
