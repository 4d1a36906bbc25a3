package orchestration

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/spotctl/internal/config"
	"github.com/imamik/spotctl/internal/spot"
)

func newTestContext(client spot.Client, plan *config.Plan) (*Context, *recordingObserver) {
	obs := &recordingObserver{}
	return &Context{
		Context:   context.Background(),
		Client:    client,
		Plan:      plan,
		Namespace: "org-x",
		Observer:  obs,
		Tracker:   NewTracker(),
		Report:    NewReport(),
	}, obs
}

func TestCleanupTracked_ReverseCreationOrder(t *testing.T) {
	t.Parallel()
	var deleted []string
	client := &spot.MockClient{
		DeleteCloudspaceFunc: func(_ context.Context, _, name string) error {
			deleted = append(deleted, "cloudspace:"+name)
			return nil
		},
		DeleteSpotNodePoolFunc: func(_ context.Context, _, name string) error {
			deleted = append(deleted, "spot:"+name)
			return nil
		},
		DeleteOnDemandNodePoolFunc: func(_ context.Context, _, name string) error {
			deleted = append(deleted, "ondemand:"+name)
			return nil
		},
	}

	ctx, _ := newTestContext(client, config.Default())
	ctx.Tracker.Record(KindCloudspace, "org-x", "cs-1")
	ctx.Tracker.Record(KindSpotNodePool, "org-x", "pool-1")
	ctx.Tracker.Record(KindOnDemandNodePool, "org-x", "pool-2")

	results := CleanupTracked(ctx)

	assert.Equal(t, []string{"ondemand:pool-2", "spot:pool-1", "cloudspace:cs-1"}, deleted)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.NoError(t, res.Err)
	}
	assert.Len(t, ctx.Report.Cleanup, 3)
	assert.False(t, ctx.Report.Failed())
}

func TestCleanupTracked_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()
	deleteErr := errors.New("control plane unavailable")
	var cloudspaceDeleted bool
	client := &spot.MockClient{
		DeleteSpotNodePoolFunc: func(_ context.Context, _, _ string) error {
			return deleteErr
		},
		DeleteCloudspaceFunc: func(_ context.Context, _, _ string) error {
			cloudspaceDeleted = true
			return nil
		},
	}

	ctx, _ := newTestContext(client, config.Default())
	ctx.Tracker.Record(KindCloudspace, "org-x", "cs-1")
	ctx.Tracker.Record(KindSpotNodePool, "org-x", "pool-1")

	results := CleanupTracked(ctx)

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, deleteErr)
	assert.NoError(t, results[1].Err)
	assert.True(t, cloudspaceDeleted, "a pool failure must not stop cloudspace deletion")
	assert.True(t, ctx.Report.Failed(), "a leftover resource fails the run")
}

func TestCleanupTracked_NotFoundCountsAsSuccess(t *testing.T) {
	t.Parallel()
	client := &spot.MockClient{
		DeleteSpotNodePoolFunc: func(_ context.Context, _, _ string) error {
			return &spot.APIError{StatusCode: http.StatusNotFound, Message: "already gone"}
		},
	}

	ctx, _ := newTestContext(client, config.Default())
	ctx.Tracker.Record(KindSpotNodePool, "org-x", "pool-1")

	results := CleanupTracked(ctx)

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.False(t, ctx.Report.Failed())
}

func TestCleanupTracked_NoRetriesByDefault(t *testing.T) {
	t.Parallel()
	attempts := 0
	client := &spot.MockClient{
		DeleteCloudspaceFunc: func(_ context.Context, _, _ string) error {
			attempts++
			return errors.New("boom")
		},
	}

	ctx, _ := newTestContext(client, config.Default())
	ctx.Tracker.Record(KindCloudspace, "org-x", "cs-1")

	results := CleanupTracked(ctx)

	assert.Equal(t, 1, attempts, "default policy is best-effort, no retries")
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestCleanupTracked_RetriesPerPolicy(t *testing.T) {
	t.Parallel()
	attempts := 0
	client := &spot.MockClient{
		DeleteCloudspaceFunc: func(_ context.Context, _, _ string) error {
			attempts++
			if attempts < 3 {
				return errors.New("transient")
			}
			return nil
		},
	}

	plan := config.Default()
	plan.Cleanup = config.CleanupPolicy{MaxRetries: 3, RetryDelay: time.Millisecond}

	ctx, _ := newTestContext(client, plan)
	ctx.Tracker.Record(KindCloudspace, "org-x", "cs-1")

	results := CleanupTracked(ctx)

	assert.Equal(t, 3, attempts)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}

func TestCleanupTracked_EmitsEvents(t *testing.T) {
	t.Parallel()
	ctx, obs := newTestContext(&spot.MockClient{}, config.Default())
	ctx.Tracker.Record(KindCloudspace, "org-x", "cs-1")

	CleanupTracked(ctx)

	assert.Equal(t, []EventType{EventResourceDeleting, EventResourceDeleted}, obs.eventTypes())
}

func TestDeleteResource_UnknownKindIsFatal(t *testing.T) {
	t.Parallel()
	attempts := 0
	client := &spot.MockClient{
		DeleteCloudspaceFunc: func(_ context.Context, _, _ string) error {
			attempts++
			return nil
		},
	}

	plan := config.Default()
	plan.Cleanup = config.CleanupPolicy{MaxRetries: 5, RetryDelay: time.Millisecond}

	ctx, _ := newTestContext(client, plan)
	ctx.Tracker.Record(ResourceKind("mystery"), "org-x", "thing")

	results := CleanupTracked(ctx)

	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), `unknown resource kind "mystery"`)
	assert.Equal(t, 0, attempts, "an unknown kind is never retried or dispatched")
}
