package models

// EventRSVP records one user's attendance on a materialized event. The
// matchmaking job writes these pre-confirmed, one per group member.
type EventRSVP struct {
	EventID   string `dynamodbav:"eventId" json:"eventId"`     // Partition Key (PK)
	UserID    string `dynamodbav:"userId" json:"userId"`       // Sort Key (SK)
	Status    string `dynamodbav:"status" json:"status"`       // "confirmed" for matchmade groups
	Source    string `dynamodbav:"source" json:"source"`       // RecordSourceMatchmaking
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"` // Timestamp of creation
}

// TableName returns the DynamoDB table name for the EventRSVP model
func (EventRSVP) TableName() string {
	return "EventRSVPs"
}
