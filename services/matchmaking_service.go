package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"mysterydinner_server/models"
	"mysterydinner_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Deadlines added around the external writes so a stuck group cannot hang
// the whole batch.
const (
	runTimeout   = 5 * time.Minute
	groupTimeout = 30 * time.Second
)

// GroupFailure records one group that could not be fully materialized.
type GroupFailure struct {
	Stage   string   `json:"stage"`
	Members []string `json:"members"`
	Reason  string   `json:"reason"`
}

// RunReport is the aggregate outcome of one matchmaking run.
type RunReport struct {
	Skipped         bool
	Message         string
	GroupsAttempted int
	EventsCreated   []MaterializedEvent
	Failures        []GroupFailure
}

// MatchmakingService runs the periodic mystery-dinner matchmaking job.
type MatchmakingService struct {
	Store        DinnerStore
	Materializer *EventMaterializer
	Groups       GroupConfig
}

// Run executes one matchmaking pass: snapshot the eligible pool, build
// dining groups, and materialize each group independently. Only a failed
// pool read is returned as an error; per-group failures are collected in
// the report and never abort the run.
//
// Run is stateless and re-entrant. There is no idempotency guard:
// overlapping invocations can create duplicate events for the same users.
func (ms *MatchmakingService) Run(ctx context.Context) (*RunReport, error) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	runTime := time.Now().UTC()

	pool, err := ms.eligiblePool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load eligible users: %w", err)
	}
	log.Printf("Matchmaking pool loaded: %d eligible users", len(pool))

	if len(pool) < 2 {
		return &RunReport{
			Skipped: true,
			Message: fmt.Sprintf("skipped: insufficient pool (%d eligible users)", len(pool)),
		}, nil
	}

	groups, leftovers := BuildGroups(pool, ms.Groups)
	log.Printf("Built %d dining groups (%d users left unplaced)", len(groups), len(leftovers))

	report := &RunReport{
		GroupsAttempted: len(groups),
		Message:         fmt.Sprintf("matchmaking complete: %d groups attempted", len(groups)),
	}

	for _, group := range groups {
		event, err := ms.materializeGroup(ctx, group, runTime)
		if err != nil {
			stage := StageEvent
			if stageErr, ok := err.(*StageError); ok {
				stage = stageErr.Stage
			}
			log.Printf("Group %v failed at stage %q: %v", memberIDs(group), stage, err)
			report.Failures = append(report.Failures, GroupFailure{
				Stage:   stage,
				Members: memberIDs(group),
				Reason:  err.Error(),
			})
			continue
		}
		report.EventsCreated = append(report.EventsCreated, *event)
	}

	log.Printf("Matchmaking run finished: %d events created, %d groups failed",
		len(report.EventsCreated), len(report.Failures))
	return report, nil
}

func (ms *MatchmakingService) materializeGroup(ctx context.Context, group []models.UserProfile, runTime time.Time) (*MaterializedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, groupTimeout)
	defer cancel()
	return ms.Materializer.Materialize(ctx, group, runTime)
}

// eligiblePool snapshots every onboarded user with a saved location. The
// onboarding flag is filtered server-side; coordinate presence cannot be
// expressed in the same filter, so the callback checks the raw items.
func (ms *MatchmakingService) eligiblePool(ctx context.Context) ([]models.UserProfile, error) {
	matchFields := map[string]types.AttributeValue{
		"onboardingCompleted": &types.AttributeValueMemberBOOL{Value: true},
	}

	var pool []models.UserProfile
	err := ms.Store.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractBool(item, "onboardingCompleted") &&
			utils.HasNumber(item, "latitude") &&
			utils.HasNumber(item, "longitude")
	}, matchFields, &pool)
	if err != nil {
		return nil, err
	}

	return pool, nil
}
