package models

// Connection is a "crossed paths" record linking two users who were placed
// in the same dining group. One row per unordered member pair, so a group
// of n produces n*(n-1)/2 connections.
type Connection struct {
	ConnectionID string `dynamodbav:"connectionId" json:"connectionId"` // Partition Key (PK)
	UserAID      string `dynamodbav:"userAId" json:"userAId"`
	UserBID      string `dynamodbav:"userBId" json:"userBId"`
	EventID      string `dynamodbav:"eventId" json:"eventId"`
	Venue        string `dynamodbav:"venue" json:"venue"`
	MatchedAt    string `dynamodbav:"matchedAt" json:"matchedAt"` // Run timestamp
	Source       string `dynamodbav:"source" json:"source"`       // RecordSourceMatchmaking
}

// TableName returns the DynamoDB table name for the Connection model
func (Connection) TableName() string {
	return "Connections"
}
