package models

// UserProfile defines the structure for user profiles as the matchmaking
// job sees them. The job only ever reads these rows.
//
// Latitude/Longitude are pointers so a profile without a saved location can
// be told apart from one at (0, 0); users missing either coordinate are not
// eligible for matching.
type UserProfile struct {
	UserID              string   `dynamodbav:"userId" json:"userId"`
	FullName            string   `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	EmailID             string   `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	City                string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Latitude            *float64 `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude           *float64 `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	DiningStyle         *string  `dynamodbav:"diningStyle,omitempty" json:"diningStyle,omitempty"`
	DietaryPreferences  []string `dynamodbav:"dietaryPreferences,omitempty" json:"dietaryPreferences,omitempty"`
	OnboardingCompleted bool     `dynamodbav:"onboardingCompleted" json:"onboardingCompleted"`
}

// HasLocation reports whether both coordinates are present.
func (p UserProfile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
