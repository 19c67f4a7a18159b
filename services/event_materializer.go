package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"mysterydinner_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// Materialization stages, in write order.
const (
	StageEvent         = "event"
	StageRSVPs         = "rsvps"
	StageNotifications = "notifications"
	StageConnections   = "connections"
)

// Fixed event copy for matchmade dinners.
const (
	mysteryEventName        = "Mystery Dinner"
	mysteryEventDescription = "You've been matched! Join your mystery dining companions for a surprise evening of good food and new connections."
	eventLeadTime           = 7 * 24 * time.Hour
)

var mysteryEventTags = []string{"mystery-dinner", "social-dining"}

// StageError reports which pipeline stage a group materialization failed in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("materialization stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// MaterializedEvent describes one successfully created event.
type MaterializedEvent struct {
	EventID          string `json:"eventId"`
	ParticipantCount int    `json:"participantCount"`
	Location         string `json:"location"`
}

// EventMaterializer turns one dining group into persisted event, RSVP,
// notification and connection rows.
type EventMaterializer struct {
	Store DinnerStore
}

// Materialize runs the per-group write sequence:
//
//  1. event insert: failure abandons the group, nothing else is written;
//  2. RSVP batch insert: failure leaves the event row behind (the rest of
//     the app tolerates events with zero confirmed RSVPs) and the group is
//     reported failed;
//  3. notification batch: best effort, logged only;
//  4. connection batch: best effort, logged only.
//
// There is no transaction across the four writes; each insert is visible
// as soon as it commits.
func (em *EventMaterializer) Materialize(ctx context.Context, group []models.UserProfile, runTime time.Time) (*MaterializedEvent, error) {
	if len(group) == 0 {
		return nil, &StageError{Stage: StageEvent, Err: fmt.Errorf("empty group")}
	}

	event := buildEvent(group, runTime)

	if err := em.Store.PutItem(ctx, event.TableName(), event); err != nil {
		return nil, &StageError{Stage: StageEvent, Err: err}
	}

	if err := em.writeRSVPs(ctx, event, group, runTime); err != nil {
		// The event row already exists; it stays behind as an accepted
		// inconsistency.
		return nil, &StageError{Stage: StageRSVPs, Err: err}
	}

	if err := em.writeNotifications(ctx, event, group, runTime); err != nil {
		log.Printf("notifications failed for event %s (members %v): %v", event.EventID, memberIDs(group), err)
	}

	if err := em.writeConnections(ctx, event, group, runTime); err != nil {
		log.Printf("connections failed for event %s (members %v): %v", event.EventID, memberIDs(group), err)
	}

	return &MaterializedEvent{
		EventID:          event.EventID,
		ParticipantCount: len(group),
		Location:         event.Venue,
	}, nil
}

func buildEvent(group []models.UserProfile, runTime time.Time) models.MysteryEvent {
	return models.MysteryEvent{
		EventID:         uuid.NewString(),
		Name:            mysteryEventName,
		Description:     mysteryEventDescription,
		StartTime:       runTime.Add(eventLeadTime).UTC().Format(time.RFC3339),
		Venue:           dominantCity(group),
		Capacity:        len(group),
		DietaryTheme:    dominantDietaryTheme(group),
		DiningStyle:     dominantDiningStyle(group),
		Tags:            mysteryEventTags,
		IsMysteryDinner: true,
		CreatedBy:       group[0].UserID, // first member, arbitrary tie-break
		Source:          models.RecordSourceMatchmaking,
		CreatedAt:       runTime.UTC().Format(time.RFC3339),
	}
}

func (em *EventMaterializer) writeRSVPs(ctx context.Context, event models.MysteryEvent, group []models.UserProfile, runTime time.Time) error {
	createdAt := runTime.UTC().Format(time.RFC3339)

	requests := make([]types.WriteRequest, 0, len(group))
	for _, member := range group {
		rsvp := models.EventRSVP{
			EventID:   event.EventID,
			UserID:    member.UserID,
			Status:    models.RSVPStatusConfirmed,
			Source:    models.RecordSourceMatchmaking,
			CreatedAt: createdAt,
		}
		request, err := putRequest(rsvp)
		if err != nil {
			return err
		}
		requests = append(requests, request)
	}

	return em.Store.BatchWriteItems(ctx, models.EventRSVP{}.TableName(), requests)
}

func (em *EventMaterializer) writeNotifications(ctx context.Context, event models.MysteryEvent, group []models.UserProfile, runTime time.Time) error {
	createdAt := runTime.UTC().Format(time.RFC3339)
	message := fmt.Sprintf("You're in! A mystery dinner awaits you in %s on %s. Your companions stay secret until you arrive.",
		event.Venue, runTime.Add(eventLeadTime).UTC().Format("Monday, Jan 2"))

	requests := make([]types.WriteRequest, 0, len(group))
	for _, member := range group {
		notification := models.Notification{
			NotificationID: uuid.NewString(),
			UserID:         member.UserID,
			EventID:        event.EventID,
			Message:        message,
			Read:           false,
			CreatedAt:      createdAt,
		}
		request, err := putRequest(notification)
		if err != nil {
			return err
		}
		requests = append(requests, request)
	}

	return em.Store.BatchWriteItems(ctx, models.Notification{}.TableName(), requests)
}

func (em *EventMaterializer) writeConnections(ctx context.Context, event models.MysteryEvent, group []models.UserProfile, runTime time.Time) error {
	matchedAt := runTime.UTC().Format(time.RFC3339)

	// One record per unordered member pair.
	var requests []types.WriteRequest
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			connection := models.Connection{
				ConnectionID: uuid.NewString(),
				UserAID:      group[i].UserID,
				UserBID:      group[j].UserID,
				EventID:      event.EventID,
				Venue:        event.Venue,
				MatchedAt:    matchedAt,
				Source:       models.RecordSourceMatchmaking,
			}
			request, err := putRequest(connection)
			if err != nil {
				return err
			}
			requests = append(requests, request)
		}
	}

	return em.Store.BatchWriteItems(ctx, models.Connection{}.TableName(), requests)
}

func putRequest(item interface{}) (types.WriteRequest, error) {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.WriteRequest{}, fmt.Errorf("failed to marshal item: %w", err)
	}
	return types.WriteRequest{PutRequest: &types.PutRequest{Item: marshaled}}, nil
}

func memberIDs(group []models.UserProfile) []string {
	ids := make([]string, len(group))
	for i, member := range group {
		ids[i] = member.UserID
	}
	return ids
}

// dominantCity picks the most common non-empty city label, first occurrence
// winning ties.
func dominantCity(group []models.UserProfile) string {
	city := dominantValue(group, func(p models.UserProfile) string { return p.City })
	if city == "" {
		return "Location to be revealed"
	}
	return city
}

func dominantDietaryTheme(group []models.UserProfile) string {
	counts := map[string]int{}
	var order []string
	for _, member := range group {
		for _, tag := range member.DietaryPreferences {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	best := ""
	bestCount := 0
	for _, tag := range order {
		if counts[tag] > bestCount {
			best = tag
			bestCount = counts[tag]
		}
	}
	if best == "" {
		return "varied"
	}
	return best
}

func dominantDiningStyle(group []models.UserProfile) string {
	style := dominantValue(group, func(p models.UserProfile) string {
		if p.DiningStyle == nil {
			return ""
		}
		return *p.DiningStyle
	})
	if style == "" {
		return "mixed"
	}
	return style
}

func dominantValue(group []models.UserProfile, pick func(models.UserProfile) string) string {
	counts := map[string]int{}
	var order []string
	for _, member := range group {
		value := pick(member)
		if value == "" {
			continue
		}
		if counts[value] == 0 {
			order = append(order, value)
		}
		counts[value]++
	}

	best := ""
	bestCount := 0
	for _, value := range order {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}
