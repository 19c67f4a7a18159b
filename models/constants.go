package models

// Dining style categories users can pick during onboarding
const (
	DiningStyleAdventurous   = "adventurous"
	DiningStyleComfortFood   = "comfort_food"
	DiningStyleFineDining    = "fine_dining"
	DiningStyleCasual        = "casual"
	DiningStyleHealthFocused = "health_focused"
)

// RSVP statuses
const (
	RSVPStatusConfirmed = "confirmed"
	RSVPStatusPending   = "pending"
	RSVPStatusDeclined  = "declined"
)

// RecordSourceMatchmaking tags rows written by the matchmaking job so the
// rest of the application can tell machine-generated records from
// user-created ones.
const RecordSourceMatchmaking = "matchmaking"
