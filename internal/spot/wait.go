package spot

import (
	"context"
	"fmt"
	"time"
)

// WaitConfig controls the readiness poll loop.
type WaitConfig struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// DefaultWaitConfig matches the control plane's typical cloudspace
// provisioning time.
func DefaultWaitConfig() WaitConfig {
	return WaitConfig{
		Timeout:      20 * time.Minute,
		PollInterval: 60 * time.Second,
	}
}

// WaitForCloudspaceReady polls until the cloudspace reports phase Ready
// and health Healthy. A Failed phase aborts immediately. A 404 means the
// control plane has not materialized the object yet and polling continues.
func WaitForCloudspaceReady(ctx context.Context, client CloudspaceManager, namespace, name string, cfg WaitConfig) (*Cloudspace, error) {
	deadline := time.Now().Add(cfg.Timeout)

	for {
		cs, err := client.GetCloudspace(ctx, namespace, name)
		switch {
		case err != nil && !IsNotFound(err):
			return nil, err
		case err == nil && cs.Phase == PhaseFailed:
			return nil, fmt.Errorf("cloudspace %s failed to deploy", name)
		case err == nil && cs.Phase == PhaseReady && cs.Health == HealthHealthy:
			return cs, nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("cloudspace %s did not become ready within %v", name, cfg.Timeout)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.PollInterval):
		}
	}
}
