package config

import "fmt"

// Validate checks the plan for errors and returns a detailed error if
// validation fails.
func (p *Plan) Validate() error {
	if p.Cloudspace.Name == "" {
		return fmt.Errorf("cloudspace.name is required")
	}
	if p.Cloudspace.Region == "" {
		return fmt.Errorf("cloudspace.region is required")
	}

	for i, pool := range p.SpotPools {
		if err := pool.validate(); err != nil {
			return fmt.Errorf("spot pool %d: %w", i, err)
		}
	}
	for i, pool := range p.OnDemandPools {
		if err := pool.validate(); err != nil {
			return fmt.Errorf("on-demand pool %d: %w", i, err)
		}
	}

	if p.Cleanup.MaxRetries < 0 {
		return fmt.Errorf("cleanup.max_retries must not be negative, got %d", p.Cleanup.MaxRetries)
	}
	if p.Cleanup.RetryDelay < 0 {
		return fmt.Errorf("cleanup.retry_delay must not be negative, got %v", p.Cleanup.RetryDelay)
	}
	if p.Wait.Timeout <= 0 {
		return fmt.Errorf("wait.timeout must be positive, got %v", p.Wait.Timeout)
	}
	if p.Wait.PollInterval <= 0 {
		return fmt.Errorf("wait.poll_interval must be positive, got %v", p.Wait.PollInterval)
	}

	return nil
}

func (p SpotPoolConfig) validate() error {
	if p.ServerClass == "" {
		return fmt.Errorf("server_class is required")
	}
	if p.Desired < 0 {
		return fmt.Errorf("desired must not be negative, got %d", p.Desired)
	}
	if p.BidPrice == "" {
		return fmt.Errorf("bid_price is required")
	}
	if p.Autoscaling.Enabled {
		if p.Autoscaling.MinNodes < 0 {
			return fmt.Errorf("autoscaling.min_nodes must not be negative, got %d", p.Autoscaling.MinNodes)
		}
		if p.Autoscaling.MaxNodes < p.Autoscaling.MinNodes {
			return fmt.Errorf("autoscaling.max_nodes (%d) must not be below min_nodes (%d)",
				p.Autoscaling.MaxNodes, p.Autoscaling.MinNodes)
		}
	}
	return nil
}

func (p OnDemandPool) validate() error {
	if p.ServerClass == "" {
		return fmt.Errorf("server_class is required")
	}
	if p.Desired < 0 {
		return fmt.Errorf("desired must not be negative, got %d", p.Desired)
	}
	return nil
}
