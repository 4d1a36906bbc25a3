package orchestration

import (
	"context"

	"github.com/imamik/spotctl/internal/config"
	"github.com/imamik/spotctl/internal/spot"
)

// Context wraps all dependencies and state needed by a scenario.
type Context struct {
	context.Context
	Client    spot.Client
	Plan      *config.Plan
	Namespace string
	Observer  Observer
	Tracker   *Tracker
	Report    *Report
}

// NewContext creates a new orchestration context with a fresh tracker
// and report.
func NewContext(ctx context.Context, client spot.Client, plan *config.Plan, namespace string) *Context {
	return &Context{
		Context:   ctx,
		Client:    client,
		Plan:      plan,
		Namespace: namespace,
		Observer:  NewConsoleObserver(),
		Tracker:   NewTracker(),
		Report:    NewReport(),
	}
}
