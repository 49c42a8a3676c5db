package model

import "time"

// Theme selects the planner's visual theme.
type Theme string

const (
	ThemeDefault     Theme = "default"
	ThemeLazy        Theme = "lazy"
	ThemeAdventurous Theme = "adventurous"
	ThemeFamily      Theme = "family"
)

// ThreadSnapshot is one isolated planning namespace: a user's own catalog,
// schedule, and settings. The active view embeds the same shape, so a thread
// switch is a snapshot copy in either direction.
type ThreadSnapshot struct {
	Activities           []Activity    `json:"activities"`
	Schedule             Schedule      `json:"schedule"`
	CurrentTheme         Theme         `json:"currentTheme"`
	WeekendLength        WeekendLength `json:"weekendLength"`
	AvailableDays        []DayKey      `json:"availableDays"`
	SelectedWeekendDates []time.Time   `json:"selectedWeekendDates"`
	OwnerUsername        string        `json:"ownerUsername,omitempty"`
	PasswordHash         string        `json:"passwordHash,omitempty"`
}

// Clone deep-copies the snapshot.
func (t ThreadSnapshot) Clone() ThreadSnapshot {
	out := t
	if t.Activities != nil {
		out.Activities = make([]Activity, len(t.Activities))
		copy(out.Activities, t.Activities)
	}
	out.Schedule = t.Schedule.Clone()
	if t.AvailableDays != nil {
		out.AvailableDays = make([]DayKey, len(t.AvailableDays))
		copy(out.AvailableDays, t.AvailableDays)
	}
	if t.SelectedWeekendDates != nil {
		out.SelectedWeekendDates = make([]time.Time, len(t.SelectedWeekendDates))
		copy(out.SelectedWeekendDates, t.SelectedWeekendDates)
	}
	return out
}
