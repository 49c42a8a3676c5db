package planner

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/dvrst/weekender/internal/model"
)

// newShareToken returns an opaque token for share links.
func newShareToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// CreateShareableLink freezes the active view into an immutable shared plan
// and returns its public URL. An empty schedule produces a warning event but
// the share still proceeds.
func (p *Planner) CreateShareableLink() string {
	p.mu.Lock()

	empty := true
	total := 0
	for _, day := range p.state.AvailableDays {
		n := len(p.state.Schedule.Day(day))
		total += n
		if n > 0 {
			empty = false
		}
	}

	userName := p.state.Threads[p.state.CurrentThreadID].OwnerUsername
	if userName == "" {
		userName = "Weekend Planner User"
	}

	shareID := p.newShareID()
	snap := p.state.ThreadSnapshot.Clone()
	plan := model.SharedPlan{
		ID:                   shareID,
		Title:                fmt.Sprintf("%s's Weekend Plan - %d Activities", userName, total),
		UserName:             userName,
		CreatedAt:            p.now(),
		Activities:           snap.Activities,
		Schedule:             snap.Schedule,
		CurrentTheme:         snap.CurrentTheme,
		WeekendLength:        snap.WeekendLength,
		AvailableDays:        snap.AvailableDays,
		SelectedWeekendDates: snap.SelectedWeekendDates,
		TotalActivities:      total,
	}
	p.state.SharedPlans[shareID] = plan
	p.persist()
	p.mu.Unlock()

	if empty {
		p.emit(Event{
			Entity: "share", Action: "empty",
			Title:       "Your schedule is empty",
			Description: "No activities are left. Add some to plan your weekend!",
			Severity:    SeverityWarning,
		})
	}
	return fmt.Sprintf("%s/shared/%s", p.baseURL, shareID)
}

// GetSharedPlan returns a copy of the stored plan, or nil when unknown.
func (p *Planner) GetSharedPlan(shareID string) *model.SharedPlan {
	p.mu.Lock()
	defer p.mu.Unlock()
	plan, ok := p.state.SharedPlans[shareID]
	if !ok {
		return nil
	}
	out := plan.Clone()
	return &out
}
