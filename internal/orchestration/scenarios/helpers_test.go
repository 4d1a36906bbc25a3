package scenarios

import (
	"context"
	"fmt"

	"github.com/imamik/spotctl/internal/config"
	"github.com/imamik/spotctl/internal/orchestration"
	"github.com/imamik/spotctl/internal/spot"
)

// testObserver swallows output so scenario tests stay quiet.
type testObserver struct {
	events []orchestration.Event
	lines  []string
}

func (o *testObserver) Printf(format string, v ...interface{}) {
	o.lines = append(o.lines, fmt.Sprintf(format, v...))
}

func (o *testObserver) Event(event orchestration.Event) {
	o.events = append(o.events, event)
}

// newScenarioContext builds an orchestration context around a mock
// client, the way the run handler does for the real one.
func newScenarioContext(client spot.Client, plan *config.Plan) (*orchestration.Context, *testObserver) {
	obs := &testObserver{}
	return &orchestration.Context{
		Context:   context.Background(),
		Client:    client,
		Plan:      plan,
		Namespace: "org-x",
		Observer:  obs,
		Tracker:   orchestration.NewTracker(),
		Report:    orchestration.NewReport(),
	}, obs
}

// recordingClient tracks create and delete calls in order.
type recordingClient struct {
	spot.MockClient
	calls []string
}

func newRecordingClient() *recordingClient {
	rc := &recordingClient{}
	rc.CreateCloudspaceFunc = func(_ context.Context, cs *spot.Cloudspace) (*spot.Cloudspace, error) {
		rc.calls = append(rc.calls, "create cloudspace "+cs.Name)
		created := *cs
		return &created, nil
	}
	rc.CreateSpotNodePoolFunc = func(_ context.Context, pool *spot.SpotNodePool) (*spot.SpotNodePool, error) {
		rc.calls = append(rc.calls, "create spot "+pool.Name)
		created := *pool
		return &created, nil
	}
	rc.CreateOnDemandNodePoolFunc = func(_ context.Context, pool *spot.OnDemandNodePool) (*spot.OnDemandNodePool, error) {
		rc.calls = append(rc.calls, "create ondemand "+pool.Name)
		created := *pool
		return &created, nil
	}
	rc.DeleteCloudspaceFunc = func(_ context.Context, _, name string) error {
		rc.calls = append(rc.calls, "delete cloudspace "+name)
		return nil
	}
	rc.DeleteSpotNodePoolFunc = func(_ context.Context, _, name string) error {
		rc.calls = append(rc.calls, "delete spot "+name)
		return nil
	}
	rc.DeleteOnDemandNodePoolFunc = func(_ context.Context, _, name string) error {
		rc.calls = append(rc.calls, "delete ondemand "+name)
		return nil
	}
	return rc
}
