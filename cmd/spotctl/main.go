// Package main is the entry point for the spotctl CLI.
//
// spotctl is a command-line tool for provisioning Kubernetes
// cloudspaces on Rackspace Spot. It drives the Spot API end to end:
// cloudspaces, spot node pools with market bids, and on-demand node
// pools, with every created resource torn down again before exit.
//
// For detailed usage information, run:
//
//	spotctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/spotctl/cmd/spotctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
