package models

// MysteryEvent is a dinner event materialized from one dining group.
// Written once by the matchmaking job and never updated by it afterwards.
type MysteryEvent struct {
	EventID         string   `dynamodbav:"eventId" json:"eventId"`                 // Partition Key (PK) - Unique event ID
	Name            string   `dynamodbav:"name" json:"name"`                       // Fixed mystery-dinner copy
	Description     string   `dynamodbav:"description" json:"description"`         // Fixed mystery-dinner copy
	StartTime       string   `dynamodbav:"startTime" json:"startTime"`             // RFC3339, run timestamp + 7 days
	Venue           string   `dynamodbav:"venue" json:"venue"`                     // Dominant city of the group
	Capacity        int      `dynamodbav:"capacity" json:"capacity"`               // Group size
	DietaryTheme    string   `dynamodbav:"dietaryTheme" json:"dietaryTheme"`       // Dominant dietary tag
	DiningStyle     string   `dynamodbav:"diningStyle" json:"diningStyle"`         // Dominant dining style
	Tags            []string `dynamodbav:"tags" json:"tags"`                       // Fixed tag set
	IsMysteryDinner bool     `dynamodbav:"isMysteryDinner" json:"isMysteryDinner"` // Marks machine-scheduled dinners
	CreatedBy       string   `dynamodbav:"createdBy" json:"createdBy"`             // First group member (arbitrary tie-break)
	Source          string   `dynamodbav:"source" json:"source"`                   // RecordSourceMatchmaking
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`             // Timestamp of creation
}

// TableName returns the DynamoDB table name for the MysteryEvent model
func (MysteryEvent) TableName() string {
	return "MysteryEvents"
}
