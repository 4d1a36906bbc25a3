// Package config defines the deployment plan: a declarative description
// of the cloudspace and node pools one orchestration run creates.
package config

import (
	"time"

	"github.com/imamik/spotctl/internal/spot"
)

// Plan describes the desired pool topology for one run. It is read once
// at startup, validated before any network call, and never mutated.
type Plan struct {
	Cloudspace    CloudspaceConfig `yaml:"cloudspace"`
	SpotPools     []SpotPoolConfig `yaml:"spot_pools"`
	OnDemandPools []OnDemandPool   `yaml:"on_demand_pools"`
	Cleanup       CleanupPolicy    `yaml:"cleanup"`
	Wait          WaitConfig       `yaml:"wait"`
}

// CloudspaceConfig describes the cloudspace a run creates.
type CloudspaceConfig struct {
	Name              string `yaml:"name"`
	Region            string `yaml:"region"`
	KubernetesVersion string `yaml:"kubernetes_version"`
	CNI               string `yaml:"cni"`
	HAControlPlane    bool   `yaml:"ha_control_plane"`
}

// SpotPoolConfig describes one spot node pool.
type SpotPoolConfig struct {
	Name        string            `yaml:"name"`
	ServerClass string            `yaml:"server_class"`
	Desired     int               `yaml:"desired"`
	BidPrice    string            `yaml:"bid_price"`
	Autoscaling AutoscalingConfig `yaml:"autoscaling"`
}

// AutoscalingConfig configures optional autoscaling on a spot pool.
type AutoscalingConfig struct {
	Enabled  bool `yaml:"enabled"`
	MinNodes int  `yaml:"min_nodes"`
	MaxNodes int  `yaml:"max_nodes"`
}

// OnDemandPool describes one on-demand node pool.
type OnDemandPool struct {
	Name        string `yaml:"name"`
	ServerClass string `yaml:"server_class"`
	Desired     int    `yaml:"desired"`
}

// CleanupPolicy controls how teardown failures are retried. The default
// is best-effort with no retries; operators who want bounded retries of
// failed cleanup calls opt in here.
type CleanupPolicy struct {
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// WaitConfig bounds the cloudspace readiness poll.
type WaitConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Defaults used when the plan does not specify them.
const (
	DefaultRegion      = "us-east-iad-1"
	DefaultServerClass = "gp.vs1.medium-iad"

	defaultCloudspaceName = "full-deployment-cloudspace"
)

// Default returns the built-in plan: one spot pool and one on-demand
// pool of the default server class, mirroring the sample plan file.
func Default() *Plan {
	p := &Plan{
		Cloudspace: CloudspaceConfig{
			Name:   defaultCloudspaceName,
			Region: DefaultRegion,
		},
		SpotPools: []SpotPoolConfig{
			{ServerClass: DefaultServerClass, Desired: 2, BidPrice: "0.55"},
		},
		OnDemandPools: []OnDemandPool{
			{ServerClass: DefaultServerClass, Desired: 1},
		},
	}
	p.applyDefaults()
	return p
}

// applyDefaults fills zero values with usable defaults.
func (p *Plan) applyDefaults() {
	if p.Cloudspace.Name == "" {
		p.Cloudspace.Name = defaultCloudspaceName
	}
	if p.Cloudspace.Region == "" {
		p.Cloudspace.Region = DefaultRegion
	}
	wait := spot.DefaultWaitConfig()
	if p.Wait.Timeout == 0 {
		p.Wait.Timeout = wait.Timeout
	}
	if p.Wait.PollInterval == 0 {
		p.Wait.PollInterval = wait.PollInterval
	}
	if p.Cleanup.RetryDelay == 0 {
		p.Cleanup.RetryDelay = 10 * time.Second
	}
}

// PoolCount returns the total number of node pools the plan creates.
func (p *Plan) PoolCount() int {
	return len(p.SpotPools) + len(p.OnDemandPools)
}
