// Package scenarios contains the named scenarios the CLI can run.
package scenarios

import (
	"fmt"

	"github.com/imamik/spotctl/internal/config"
	"github.com/imamik/spotctl/internal/orchestration"
	"github.com/imamik/spotctl/internal/spot"
)

// createCloudspace creates the cloudspace described by cfg and tracks it
// on success. The step outcome is recorded either way.
func createCloudspace(ctx *orchestration.Context, scenario string, cfg config.CloudspaceConfig) (*spot.Cloudspace, error) {
	orchestration.LogResourceCreating(ctx.Observer, scenario, orchestration.KindCloudspace, cfg.Name)

	created, err := ctx.Client.CreateCloudspace(ctx, &spot.Cloudspace{
		Name:              cfg.Name,
		Namespace:         ctx.Namespace,
		Region:            cfg.Region,
		KubernetesVersion: cfg.KubernetesVersion,
		CNI:               cfg.CNI,
		HAControlPlane:    cfg.HAControlPlane,
	})
	if err != nil {
		orchestration.LogResourceFailed(ctx.Observer, scenario, orchestration.KindCloudspace, cfg.Name, err)
		return nil, ctx.Report.AddStep(fmt.Sprintf("create cloudspace %s", cfg.Name), err)
	}

	ctx.Tracker.Record(orchestration.KindCloudspace, created.Namespace, created.Name)
	orchestration.LogResourceCreated(ctx.Observer, scenario, orchestration.KindCloudspace, created.Name)
	_ = ctx.Report.AddStep(fmt.Sprintf("create cloudspace %s", created.Name), nil)
	return created, nil
}

// createSpotPool creates one spot node pool against the cloudspace and
// tracks it on success.
func createSpotPool(ctx *orchestration.Context, scenario, cloudspace string, cfg config.SpotPoolConfig) (*spot.SpotNodePool, error) {
	orchestration.LogResourceCreating(ctx.Observer, scenario, orchestration.KindSpotNodePool, cfg.Name)

	created, err := ctx.Client.CreateSpotNodePool(ctx, &spot.SpotNodePool{
		Name:        cfg.Name,
		Namespace:   ctx.Namespace,
		Cloudspace:  cloudspace,
		ServerClass: cfg.ServerClass,
		Desired:     cfg.Desired,
		BidPrice:    cfg.BidPrice,
		Autoscaling: spot.Autoscaling{
			Enabled:  cfg.Autoscaling.Enabled,
			MinNodes: cfg.Autoscaling.MinNodes,
			MaxNodes: cfg.Autoscaling.MaxNodes,
		},
	})
	if err != nil {
		orchestration.LogResourceFailed(ctx.Observer, scenario, orchestration.KindSpotNodePool, cfg.Name, err)
		return nil, ctx.Report.AddStep(fmt.Sprintf("create spot node pool (%s)", cfg.ServerClass), err)
	}

	ctx.Tracker.Record(orchestration.KindSpotNodePool, created.Namespace, created.Name)
	orchestration.LogResourceCreated(ctx.Observer, scenario, orchestration.KindSpotNodePool, created.Name)
	_ = ctx.Report.AddStep(fmt.Sprintf("create spot node pool %s", created.Name), nil)
	return created, nil
}

// createOnDemandPool creates one on-demand node pool against the
// cloudspace and tracks it on success.
func createOnDemandPool(ctx *orchestration.Context, scenario, cloudspace string, cfg config.OnDemandPool) (*spot.OnDemandNodePool, error) {
	orchestration.LogResourceCreating(ctx.Observer, scenario, orchestration.KindOnDemandNodePool, cfg.Name)

	created, err := ctx.Client.CreateOnDemandNodePool(ctx, &spot.OnDemandNodePool{
		Name:        cfg.Name,
		Namespace:   ctx.Namespace,
		Cloudspace:  cloudspace,
		ServerClass: cfg.ServerClass,
		Desired:     cfg.Desired,
	})
	if err != nil {
		orchestration.LogResourceFailed(ctx.Observer, scenario, orchestration.KindOnDemandNodePool, cfg.Name, err)
		return nil, ctx.Report.AddStep(fmt.Sprintf("create on-demand node pool (%s)", cfg.ServerClass), err)
	}

	ctx.Tracker.Record(orchestration.KindOnDemandNodePool, created.Namespace, created.Name)
	orchestration.LogResourceCreated(ctx.Observer, scenario, orchestration.KindOnDemandNodePool, created.Name)
	_ = ctx.Report.AddStep(fmt.Sprintf("create on-demand node pool %s", created.Name), nil)
	return created, nil
}

// listResources lists the cloudspaces and node pools in the namespace,
// recording one step per listing call.
func listResources(ctx *orchestration.Context) {
	if spaces, err := ctx.Client.ListCloudspaces(ctx, ctx.Namespace); err != nil {
		_ = ctx.Report.AddStep("list cloudspaces", err)
	} else {
		_ = ctx.Report.AddStep("list cloudspaces", nil)
		ctx.Observer.Printf("Cloudspaces in namespace: %v", names(spaces, func(cs spot.Cloudspace) string { return cs.Name }))
	}

	if pools, err := ctx.Client.ListSpotNodePools(ctx, ctx.Namespace); err != nil {
		_ = ctx.Report.AddStep("list spot node pools", err)
	} else {
		_ = ctx.Report.AddStep("list spot node pools", nil)
		ctx.Observer.Printf("Spot node pools in namespace: %v", names(pools, func(p spot.SpotNodePool) string { return p.Name }))
	}

	if pools, err := ctx.Client.ListOnDemandNodePools(ctx, ctx.Namespace); err != nil {
		_ = ctx.Report.AddStep("list on-demand node pools", err)
	} else {
		_ = ctx.Report.AddStep("list on-demand node pools", nil)
		ctx.Observer.Printf("On-demand node pools in namespace: %v", names(pools, func(p spot.OnDemandNodePool) string { return p.Name }))
	}
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}
	return out
}
