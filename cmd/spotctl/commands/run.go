package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/spotctl/cmd/spotctl/handlers"
)

// Run returns the run command.
//
// The run command authenticates against the Rackspace Spot API with a
// refresh token and executes the requested scenarios. Each scenario
// creates real billable resources, lists them, and tears everything
// down again before the command exits.
func Run() *cobra.Command {
	var opts handlers.RunOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run provisioning scenarios against Rackspace Spot",
		Long: `Run executes one or more provisioning scenarios against the
Rackspace Spot API.

Scenarios:
  --complete-scenario   Walk the whole API surface once: catalog reads,
                        a cloudspace with one spot and one on-demand
                        node pool, resource listings, and teardown.
  --full-deployment     Create the cloudspace and every node pool from
                        the deployment plan, list them, and tear the
                        environment down again.

Both flags may be combined; scenarios then run in the order above.
Every resource a scenario creates is deleted before the command exits,
in reverse creation order.

Example:
  spotctl run --refresh-token $SPOT_REFRESH_TOKEN --full-deployment -p plan.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.RefreshToken, "refresh-token", "", "Rackspace Spot refresh token (required)")
	cmd.Flags().BoolVar(&opts.CompleteScenario, "complete-scenario", false, "Run the complete API walkthrough scenario")
	cmd.Flags().BoolVar(&opts.FullDeployment, "full-deployment", false, "Run the full deployment scenario")
	cmd.Flags().StringVarP(&opts.PlanPath, "plan", "p", "", "Path to a deployment plan file (defaults apply when omitted)")
	_ = cmd.MarkFlagRequired("refresh-token")

	return cmd
}
