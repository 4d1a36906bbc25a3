package orchestration

import (
	"fmt"

	"github.com/imamik/spotctl/internal/spot"
	"github.com/imamik/spotctl/internal/util/retry"
)

// CleanupTracked deletes every tracked resource in reverse creation
// order: node pools first, then the cloudspace that owns them. Failures
// are recorded per resource and never abort the remaining deletions.
// Each failed call is retried according to the plan's cleanup policy
// (no retries by default). Results land in the run report.
func CleanupTracked(ctx *Context) []CleanupResult {
	policy := ctx.Plan.Cleanup
	results := make([]CleanupResult, 0, ctx.Tracker.Len())

	for _, res := range ctx.Tracker.CleanupOrder() {
		LogResourceDeleting(ctx.Observer, "cleanup", res.Kind, res.Name)

		err := retry.Do(ctx, func() error {
			return deleteResource(ctx, res)
		},
			retry.WithMaxRetries(policy.MaxRetries),
			retry.WithInitialDelay(policy.RetryDelay),
		)

		if err != nil {
			ctx.Observer.Printf("cleanup of %s failed: %v", res, err)
		} else {
			LogResourceDeleted(ctx.Observer, "cleanup", res.Kind, res.Name)
		}
		results = append(results, CleanupResult{Resource: res, Err: err})
	}

	ctx.Report.Cleanup = append(ctx.Report.Cleanup, results...)
	return results
}

// deleteResource dispatches a deletion by resource kind. A 404 means
// the resource is already gone and counts as success.
func deleteResource(ctx *Context, res Resource) error {
	var err error
	switch res.Kind {
	case KindCloudspace:
		err = ctx.Client.DeleteCloudspace(ctx, res.Namespace, res.Name)
	case KindSpotNodePool:
		err = ctx.Client.DeleteSpotNodePool(ctx, res.Namespace, res.Name)
	case KindOnDemandNodePool:
		err = ctx.Client.DeleteOnDemandNodePool(ctx, res.Namespace, res.Name)
	default:
		return retry.Fatal(fmt.Errorf("unknown resource kind %q", res.Kind))
	}

	if err != nil && spot.IsNotFound(err) {
		return nil
	}
	return err
}
