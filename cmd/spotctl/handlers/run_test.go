package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/spotctl/internal/config"
	"github.com/imamik/spotctl/internal/spot"
)

// cloudspaceNotFound makes the full-deployment existence check miss so
// the scenario takes the create path. The complete scenario never gets
// this name, so its readiness wait still sees a ready cloudspace.
func cloudspaceNotFound(_ context.Context, namespace, name string) (*spot.Cloudspace, error) {
	if name == "complete-scenario-cloudspace" {
		return &spot.Cloudspace{Name: name, Namespace: namespace, Phase: spot.PhaseReady, Health: spot.HealthHealthy}, nil
	}
	return nil, &spot.APIError{StatusCode: http.StatusNotFound, Message: "not found"}
}

// swapSeams replaces the factory variables for one test and restores
// them afterwards. Returns the buffer the run report is written to.
func swapSeams(t *testing.T, client spot.Client, clientErr error) *strings.Builder {
	t.Helper()

	origClient := newSpotClient
	origLoad := loadPlanFile
	origWriter := reportWriter
	t.Cleanup(func() {
		newSpotClient = origClient
		loadPlanFile = origLoad
		reportWriter = origWriter
	})

	newSpotClient = func(_ context.Context, _ string) (spot.Client, error) {
		return client, clientErr
	}

	var buf strings.Builder
	reportWriter = &buf
	return &buf
}

func TestRun_NeitherScenarioFlag(t *testing.T) {
	err := Run(context.Background(), RunOptions{RefreshToken: "tok"})

	require.Error(t, err)
	assert.EqualError(t, err, "Please provide the --complete-scenario or --full-deployment argument to run the examples.")
	assert.ErrorIs(t, err, ErrNoScenario)
}

func TestRun_CompleteScenario(t *testing.T) {
	buf := swapSeams(t, &spot.MockClient{}, nil)

	err := Run(context.Background(), RunOptions{
		RefreshToken:     "tok",
		CompleteScenario: true,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Run report:")
	assert.Contains(t, buf.String(), "create cloudspace complete-scenario-cloudspace")
}

func TestRun_FullDeployment(t *testing.T) {
	var createdCloudspaces []string
	client := &spot.MockClient{
		GetCloudspaceFunc: cloudspaceNotFound,
		CreateCloudspaceFunc: func(_ context.Context, cs *spot.Cloudspace) (*spot.Cloudspace, error) {
			createdCloudspaces = append(createdCloudspaces, cs.Namespace+"/"+cs.Name)
			created := *cs
			return &created, nil
		},
	}
	buf := swapSeams(t, client, nil)

	err := Run(context.Background(), RunOptions{
		RefreshToken:   "tok",
		FullDeployment: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"org-mock/full-deployment-cloudspace"}, createdCloudspaces,
		"the namespace comes from the first organization")
	assert.Contains(t, buf.String(), "cleaned up")
}

func TestRun_BothScenariosInOrder(t *testing.T) {
	var cloudspaces []string
	client := &spot.MockClient{
		GetCloudspaceFunc: cloudspaceNotFound,
		CreateCloudspaceFunc: func(_ context.Context, cs *spot.Cloudspace) (*spot.Cloudspace, error) {
			cloudspaces = append(cloudspaces, cs.Name)
			created := *cs
			return &created, nil
		},
	}
	swapSeams(t, client, nil)

	err := Run(context.Background(), RunOptions{
		RefreshToken:     "tok",
		CompleteScenario: true,
		FullDeployment:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"complete-scenario-cloudspace", "full-deployment-cloudspace"}, cloudspaces,
		"the complete scenario runs before the full deployment")
}

func TestRun_AuthFailure(t *testing.T) {
	authErr := &spot.APIError{StatusCode: 403, Message: "authentication failed"}
	swapSeams(t, nil, authErr)

	err := Run(context.Background(), RunOptions{RefreshToken: "bad", CompleteScenario: true})

	require.Error(t, err)
	var apiErr *spot.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestRun_NoOrganizations(t *testing.T) {
	client := &spot.MockClient{
		ListOrganizationsFunc: func(_ context.Context) ([]spot.Organization, error) {
			return nil, nil
		},
	}
	swapSeams(t, client, nil)

	err := Run(context.Background(), RunOptions{RefreshToken: "tok", CompleteScenario: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no organizations are visible to this token")
}

func TestRun_PlanLoadFailure(t *testing.T) {
	swapSeams(t, &spot.MockClient{}, nil)
	loadErr := errors.New("plan validation failed: bid_price is required")
	loadPlanFile = func(path string) (*config.Plan, error) {
		assert.Equal(t, "bad-plan.yaml", path)
		return nil, loadErr
	}

	err := Run(context.Background(), RunOptions{
		RefreshToken:   "tok",
		FullDeployment: true,
		PlanPath:       "bad-plan.yaml",
	})

	require.ErrorIs(t, err, loadErr)
}

func TestRun_PlanFileUsed(t *testing.T) {
	plan := config.Default()
	plan.Cloudspace.Name = "plan-file-cloudspace"

	var cloudspaces []string
	client := &spot.MockClient{
		GetCloudspaceFunc: cloudspaceNotFound,
		CreateCloudspaceFunc: func(_ context.Context, cs *spot.Cloudspace) (*spot.Cloudspace, error) {
			cloudspaces = append(cloudspaces, cs.Name)
			created := *cs
			return &created, nil
		},
	}
	swapSeams(t, client, nil)
	loadPlanFile = func(_ string) (*config.Plan, error) { return plan, nil }

	err := Run(context.Background(), RunOptions{
		RefreshToken:   "tok",
		FullDeployment: true,
		PlanPath:       "plan.yaml",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"plan-file-cloudspace"}, cloudspaces)
}

func TestRun_ScenarioFailureStillWritesReport(t *testing.T) {
	createErr := errors.New("quota exceeded")
	client := &spot.MockClient{
		GetCloudspaceFunc: cloudspaceNotFound,
		CreateCloudspaceFunc: func(_ context.Context, _ *spot.Cloudspace) (*spot.Cloudspace, error) {
			return nil, createErr
		},
	}
	buf := swapSeams(t, client, nil)

	err := Run(context.Background(), RunOptions{RefreshToken: "tok", FullDeployment: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, createErr)
	assert.Contains(t, err.Error(), "full-deployment scenario failed")
	assert.Contains(t, buf.String(), "Run report:", "the report is written even when the run fails")
}

func TestRun_StepFailureFailsTheRun(t *testing.T) {
	client := &spot.MockClient{
		ListCloudspacesFunc: func(_ context.Context, _ string) ([]spot.Cloudspace, error) {
			return nil, errors.New("listing broke")
		},
	}
	swapSeams(t, client, nil)

	err := Run(context.Background(), RunOptions{RefreshToken: "tok", FullDeployment: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run completed with failures")
}

func TestSelectScenarios(t *testing.T) {
	assert.Empty(t, selectScenarios(RunOptions{}))

	only := selectScenarios(RunOptions{CompleteScenario: true})
	require.Len(t, only, 1)
	assert.Equal(t, "complete-scenario", only[0].Name())

	both := selectScenarios(RunOptions{CompleteScenario: true, FullDeployment: true})
	require.Len(t, both, 2)
	assert.Equal(t, "complete-scenario", both[0].Name())
	assert.Equal(t, "full-deployment", both[1].Name())
}
