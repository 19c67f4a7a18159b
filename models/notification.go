package models

// Notification is a participant-facing message about a materialized event.
type Notification struct {
	NotificationID string `dynamodbav:"notificationId" json:"notificationId"` // Partition Key (PK)
	UserID         string `dynamodbav:"userId" json:"userId"`                 // Recipient
	EventID        string `dynamodbav:"eventId" json:"eventId"`               // Event the message is about
	Message        string `dynamodbav:"message" json:"message"`
	Read           bool   `dynamodbav:"read" json:"read"`
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// TableName returns the DynamoDB table name for the Notification model
func (Notification) TableName() string {
	return "Notifications"
}
