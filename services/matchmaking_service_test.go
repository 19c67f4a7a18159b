package services

import (
	"context"
	"errors"
	"testing"

	"mysterydinner_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatchmaking(store *fakeStore) *MatchmakingService {
	return &MatchmakingService{
		Store:        store,
		Materializer: &EventMaterializer{Store: store},
		Groups:       DefaultGroupConfig(),
	}
}

func TestRunPoolReadFailure(t *testing.T) {
	store := newFakeStore()
	store.scanErr = errors.New("connection refused")

	report, err := newTestMatchmaking(store).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)

	// A failed pool read writes nothing.
	assert.Empty(t, store.puts)
	assert.Empty(t, store.batches)
}

func TestRunInsufficientPool(t *testing.T) {
	store := newFakeStore()
	store.scanPool = []models.UserProfile{
		located("only", 40.0, -73.0, strPtr(models.DiningStyleCasual), nil),
	}

	report, err := newTestMatchmaking(store).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Skipped)
	assert.Contains(t, report.Message, "insufficient pool")
	assert.Zero(t, report.GroupsAttempted)
	assert.Empty(t, report.EventsCreated)
	assert.Empty(t, store.puts)
}

func TestRunIgnoresIneligibleUsers(t *testing.T) {
	notOnboarded := located("draft", 40.0, -73.0, strPtr(models.DiningStyleCasual), nil)
	notOnboarded.OnboardingCompleted = false
	noCoords := models.UserProfile{UserID: "nowhere", OnboardingCompleted: true}

	store := newFakeStore()
	store.scanPool = []models.UserProfile{
		located("u1", 40.0, -73.0, strPtr(models.DiningStyleCasual), nil),
		notOnboarded,
		noCoords,
	}

	// Only u1 survives the eligibility filter, so the run skips.
	report, err := newTestMatchmaking(store).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Skipped)
}

func TestRunEndToEndScenario(t *testing.T) {
	store := newFakeStore()
	store.scanPool = []models.UserProfile{
		located("U1", 40.0, -73.0, strPtr(models.DiningStyleAdventurous), []string{"vegan"}),
		located("U2", 40.01, -73.01, strPtr(models.DiningStyleAdventurous), []string{"vegan"}),
		located("U3", 10.0, 10.0, strPtr(models.DiningStyleComfortFood), nil),
	}

	report, err := newTestMatchmaking(store).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Skipped)
	assert.Equal(t, 1, report.GroupsAttempted)
	assert.Empty(t, report.Failures)
	require.Len(t, report.EventsCreated, 1)
	assert.Equal(t, 2, report.EventsCreated[0].ParticipantCount)

	require.Len(t, store.puts[models.MysteryEvent{}.TableName()], 1)
	assert.Equal(t, 2, store.batchItemCount(models.EventRSVP{}.TableName()))
	assert.Equal(t, 2, store.batchItemCount(models.Notification{}.TableName()))
	assert.Equal(t, 1, store.batchItemCount(models.Connection{}.TableName()))
}

func TestRunIsolatesGroupFailures(t *testing.T) {
	store := newFakeStore()
	// Two far-apart clusters of two; the first group's event insert fails.
	store.scanPool = []models.UserProfile{
		located("a1", 40.0, -73.0, strPtr(models.DiningStyleCasual), []string{"vegan"}),
		located("a2", 40.0, -73.0, strPtr(models.DiningStyleCasual), []string{"vegan"}),
		located("b1", 48.8, 2.3, strPtr(models.DiningStyleFineDining), []string{"kosher"}),
		located("b2", 48.8, 2.3, strPtr(models.DiningStyleFineDining), []string{"kosher"}),
	}
	store.putErr = errors.New("dynamo unavailable")
	store.putFailuresLeft = 1

	report, err := newTestMatchmaking(store).Run(context.Background())
	require.NoError(t, err, "a group failure must never abort the run")

	assert.Equal(t, 2, report.GroupsAttempted)
	require.Len(t, report.EventsCreated, 1)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, StageEvent, report.Failures[0].Stage)
	assert.Equal(t, []string{"a1", "a2"}, report.Failures[0].Members)
	assert.NotEmpty(t, report.Failures[0].Reason)
}

func TestRunReportsRSVPStageFailures(t *testing.T) {
	store := newFakeStore()
	store.scanPool = []models.UserProfile{
		located("u1", 40.0, -73.0, strPtr(models.DiningStyleCasual), []string{"vegan"}),
		located("u2", 40.0, -73.0, strPtr(models.DiningStyleCasual), []string{"vegan"}),
	}
	store.failBatches[models.EventRSVP{}.TableName()] = errors.New("throttled")

	report, err := newTestMatchmaking(store).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.EventsCreated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, StageRSVPs, report.Failures[0].Stage)

	// The orphaned event row is still there.
	assert.Len(t, store.puts[models.MysteryEvent{}.TableName()], 1)
}
