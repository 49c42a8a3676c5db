package model

// ActivityCategory classifies a catalog activity.
type ActivityCategory string

const (
	CategoryFood          ActivityCategory = "food"
	CategoryOutdoor       ActivityCategory = "outdoor"
	CategoryEntertainment ActivityCategory = "entertainment"
	CategoryRelax         ActivityCategory = "relax"
	CategoryLearning      ActivityCategory = "learning"
	CategorySocial        ActivityCategory = "social"
	CategoryAdventure     ActivityCategory = "adventure"
)

// Mood is an optional feeling attached to a scheduled activity.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodRelaxed   Mood = "relaxed"
	MoodEnergetic Mood = "energetic"
)

// Activity is a catalog entry. ID is unique within a thread's catalog.
type Activity struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Icon        string           `json:"icon"`
	Category    ActivityCategory `json:"category"`
	Description string           `json:"description"`
}

// ScheduledActivity is a placement of a catalog activity onto a day.
// ScheduledID identifies the placement itself; ID still refers to the
// catalog entry it was created from.
type ScheduledActivity struct {
	Activity
	ScheduledID string `json:"scheduledId"`
	Mood        Mood   `json:"mood,omitempty"`
}
