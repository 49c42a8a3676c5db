package model

import "time"

// SharedPlan is an immutable point-in-time export of the active view,
// addressable by its share token. Later schedule edits never touch it.
type SharedPlan struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	UserName             string        `json:"userName"`
	CreatedAt            time.Time     `json:"createdAt"`
	Activities           []Activity    `json:"activities"`
	Schedule             Schedule      `json:"schedule"`
	CurrentTheme         Theme         `json:"currentTheme"`
	WeekendLength        WeekendLength `json:"weekendLength"`
	AvailableDays        []DayKey      `json:"availableDays"`
	SelectedWeekendDates []time.Time   `json:"selectedWeekendDates"`
	TotalActivities      int           `json:"totalActivities"`
}

// Clone deep-copies the plan.
func (p SharedPlan) Clone() SharedPlan {
	out := p
	if p.Activities != nil {
		out.Activities = make([]Activity, len(p.Activities))
		copy(out.Activities, p.Activities)
	}
	out.Schedule = p.Schedule.Clone()
	if p.AvailableDays != nil {
		out.AvailableDays = make([]DayKey, len(p.AvailableDays))
		copy(out.AvailableDays, p.AvailableDays)
	}
	if p.SelectedWeekendDates != nil {
		out.SelectedWeekendDates = make([]time.Time, len(p.SelectedWeekendDates))
		copy(out.SelectedWeekendDates, p.SelectedWeekendDates)
	}
	return out
}
