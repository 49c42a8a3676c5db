package planner

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dvrst/weekender/internal/model"
)

// Saver is the persistence port. The planner fires it after every state
// transition and only logs failures; a lost write never rolls back the
// in-memory state.
type Saver interface {
	Save(model.State) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(model.State) error

func (f SaverFunc) Save(s model.State) error { return f(s) }

// Planner is the application's state container: the active planning view,
// the thread table it mirrors into, session authentication flags, and
// retained shared plans. All methods are safe for concurrent use, though the
// intended model is a single writer (one browser tab's event handlers).
type Planner struct {
	mu     sync.Mutex
	state  model.State
	saver  Saver
	logger *slog.Logger

	subMu sync.RWMutex
	subs  []Subscriber

	baseURL string

	// Overridable for tests.
	now        func() time.Time
	newID      func() string
	newShareID func() string
}

// New builds a planner around a loaded (or default) state. baseURL is the
// externally reachable origin used when minting share links.
func New(state model.State, saver Saver, baseURL string, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	normalize(&state)
	return &Planner{
		state:      state,
		saver:      saver,
		logger:     logger,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		now:        time.Now,
		newID:      uuid.NewString,
		newShareID: newShareToken,
	}
}

// normalize repairs a rehydrated blob: nil maps, missing version, an
// availableDays slice that drifted from the weekend length.
func normalize(s *model.State) {
	if s.Version == 0 {
		s.Version = model.StateVersion
	}
	if s.Threads == nil {
		s.Threads = make(map[string]model.ThreadSnapshot)
	}
	if s.AuthenticatedThreads == nil {
		s.AuthenticatedThreads = make(map[string]bool)
	}
	if s.SharedPlans == nil {
		s.SharedPlans = make(map[string]model.SharedPlan)
	}
	if s.WeekendLength == "" {
		s.WeekendLength = model.LengthShort
	}
	if s.CurrentTheme == "" {
		s.CurrentTheme = model.ThemeDefault
	}
	s.AvailableDays = model.DaysFor(s.WeekendLength)
	if s.Activities == nil {
		s.Activities = model.SeedActivities()
	}
}

// Subscribe registers an event subscriber.
func (p *Planner) Subscribe(fn Subscriber) {
	p.subMu.Lock()
	p.subs = append(p.subs, fn)
	p.subMu.Unlock()
}

func (p *Planner) emit(e Event) {
	p.subMu.RLock()
	subs := p.subs
	p.subMu.RUnlock()
	for _, fn := range subs {
		fn(e)
	}
}

// writeThrough overwrites the current thread's entry with the active
// snapshot. Credentials live only on the thread entry, so they are carried
// over from the previous value. Must be called with the mutex held after
// every active-view mutation; this single funnel is what keeps the mirror
// from diverging.
func (p *Planner) writeThrough() {
	id := p.state.CurrentThreadID
	if id == "" {
		return
	}
	snap := p.state.ThreadSnapshot.Clone()
	if prev, ok := p.state.Threads[id]; ok {
		snap.OwnerUsername = prev.OwnerUsername
		snap.PasswordHash = prev.PasswordHash
	}
	p.state.Threads[id] = snap
}

// persist pushes the full state through the save port. Fire-and-forget:
// failures are logged and the mutation stands.
func (p *Planner) persist() {
	if p.saver == nil {
		return
	}
	if err := p.saver.Save(p.state.Clone()); err != nil {
		p.logger.Error("persist planner state", "error", err)
	}
}

// Snapshot returns a deep copy of the active view, without credentials.
func (p *Planner) Snapshot() model.ThreadSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := p.state.ThreadSnapshot.Clone()
	snap.OwnerUsername = ""
	snap.PasswordHash = ""
	return snap
}

// CurrentThreadID returns the id of the active thread, or "" when none.
func (p *Planner) CurrentThreadID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.CurrentThreadID
}

// ExportState returns a deep copy of the whole aggregate (backup snapshots).
func (p *Planner) ExportState() model.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Clone()
}

// ReplaceState swaps the whole aggregate for a restored snapshot and
// persists it. Everything in memory, including the active view, is
// overwritten.
func (p *Planner) ReplaceState(state model.State) {
	normalize(&state)
	p.mu.Lock()
	p.state = state
	p.persist()
	p.mu.Unlock()

	p.emit(Event{
		Entity:      "backup",
		Action:      "restored",
		Title:       "Backup restored",
		Description: "A snapshot was restored over the current plans.",
		Severity:    SeverityWarning,
	})
}

// AddActivity places a catalog activity on a day. The same catalog entry may
// appear on a day only once; a duplicate add is declined with a warning
// event and returns nil.
func (p *Planner) AddActivity(day model.DayKey, activity model.Activity) *model.ScheduledActivity {
	if !model.ValidDay(day) {
		return nil
	}

	p.mu.Lock()
	list := p.state.Schedule.Day(day)
	for _, a := range list {
		if a.ID == activity.ID {
			p.mu.Unlock()
			p.emit(Event{
				Entity: "schedule", Action: "duplicate",
				Title:       "Already added",
				Description: fmt.Sprintf("%s %s is already in %s.", activity.Icon, activity.Name, capitalize(string(day))),
				Severity:    SeverityWarning,
			})
			return nil
		}
	}

	sa := model.ScheduledActivity{Activity: activity, ScheduledID: p.newID()}
	p.state.Schedule.SetDay(day, append(list, sa))
	p.writeThrough()
	p.persist()
	p.mu.Unlock()

	p.emit(Event{
		Entity: "schedule", Action: "added",
		Title:       "Activity added",
		Description: fmt.Sprintf("%s %s added to %s.", activity.Icon, activity.Name, capitalize(string(day))),
		Severity:    SeverityInfo,
	})
	return &sa
}

// RemoveActivity removes the placement with the given scheduled id from one
// day. Removing an unknown id is a no-op.
func (p *Planner) RemoveActivity(day model.DayKey, scheduledID string) bool {
	if !model.ValidDay(day) {
		return false
	}

	p.mu.Lock()
	list := p.state.Schedule.Day(day)
	idx := -1
	for i, a := range list {
		if a.ScheduledID == scheduledID {
			idx = i
			break
		}
	}
	if idx < 0 {
		p.mu.Unlock()
		return false
	}
	removed := list[idx]
	next := make([]model.ScheduledActivity, 0, len(list)-1)
	next = append(next, list[:idx]...)
	next = append(next, list[idx+1:]...)
	p.state.Schedule.SetDay(day, next)
	p.writeThrough()
	p.persist()
	p.mu.Unlock()

	p.emit(Event{
		Entity: "schedule", Action: "removed",
		Title:       "Activity removed",
		Description: fmt.Sprintf("%s %s removed from %s.", removed.Icon, removed.Name, capitalize(string(day))),
		Severity:    SeverityInfo,
	})
	return true
}

// UpdateMood sets the mood on a placement. Other entries and their order are
// untouched.
func (p *Planner) UpdateMood(day model.DayKey, scheduledID string, mood model.Mood) bool {
	if !model.ValidDay(day) {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	list := p.state.Schedule.Day(day)
	for i := range list {
		if list[i].ScheduledID == scheduledID {
			list[i].Mood = mood
			p.state.Schedule.SetDay(day, list)
			p.writeThrough()
			p.persist()
			return true
		}
	}
	return false
}

// ReorderActivities replaces a day's list with the supplied ordering. The
// new list must be a permutation (by scheduled id) of the current one;
// anything else is declined with a warning event.
func (p *Planner) ReorderActivities(day model.DayKey, ordered []model.ScheduledActivity) bool {
	if !model.ValidDay(day) {
		return false
	}

	p.mu.Lock()
	current := p.state.Schedule.Day(day)
	if !samePlacements(current, ordered) {
		p.mu.Unlock()
		p.emit(Event{
			Entity: "schedule", Action: "reorder_rejected",
			Title:       "Reorder ignored",
			Description: fmt.Sprintf("New order for %s does not match its current activities.", capitalize(string(day))),
			Severity:    SeverityWarning,
		})
		return false
	}
	next := make([]model.ScheduledActivity, len(ordered))
	copy(next, ordered)
	p.state.Schedule.SetDay(day, next)
	p.writeThrough()
	p.persist()
	p.mu.Unlock()
	return true
}

// samePlacements reports whether two lists contain exactly the same
// scheduled ids, in any order.
func samePlacements(a, b []model.ScheduledActivity) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]int, len(a))
	for _, sa := range a {
		ids[sa.ScheduledID]++
	}
	for _, sb := range b {
		ids[sb.ScheduledID]--
		if ids[sb.ScheduledID] < 0 {
			return false
		}
	}
	return true
}

// SetTheme updates the active theme.
func (p *Planner) SetTheme(theme model.Theme) {
	p.mu.Lock()
	p.state.CurrentTheme = theme
	p.writeThrough()
	p.persist()
	p.mu.Unlock()

	p.emit(Event{
		Entity: "settings", Action: "theme",
		Title:       "Theme updated",
		Description: fmt.Sprintf("Theme set to %s.", theme),
		Severity:    SeverityInfo,
	})
}

// SetWeekendLength updates the weekend length and recomputes the available
// days. Schedule entries on days that become unavailable stay put; they come
// back if the length reverts.
func (p *Planner) SetWeekendLength(length model.WeekendLength) {
	p.mu.Lock()
	p.state.WeekendLength = length
	p.state.AvailableDays = model.DaysFor(length)
	p.writeThrough()
	p.persist()
	p.mu.Unlock()

	p.emit(Event{
		Entity: "settings", Action: "length",
		Title:       "Weekend length updated",
		Description: fmt.Sprintf("Length set to %s.", length),
		Severity:    SeverityInfo,
	})
}

// ClearSchedule empties all four day lists, regardless of weekend length.
func (p *Planner) ClearSchedule() {
	p.mu.Lock()
	p.state.Schedule = model.Schedule{}
	p.writeThrough()
	p.persist()
	p.mu.Unlock()

	p.emit(Event{
		Entity: "schedule", Action: "cleared",
		Title:       "Schedule cleared",
		Description: "All activities removed from schedule.",
		Severity:    SeverityInfo,
	})
}

// SetSelectedWeekendDates stores the concrete calendar dates for the current
// weekend window. The dates come from the date-picker layer and are trusted
// as supplied.
func (p *Planner) SetSelectedWeekendDates(dates []time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := make([]time.Time, len(dates))
	copy(next, dates)
	p.state.SelectedWeekendDates = next
	p.writeThrough()
	p.persist()
}

// AddCatalogActivity appends a user-authored activity to the catalog. An id
// is generated when absent; a clashing id is declined.
func (p *Planner) AddCatalogActivity(activity model.Activity) *model.Activity {
	p.mu.Lock()
	if activity.ID == "" {
		activity.ID = p.newID()
	}
	for _, a := range p.state.Activities {
		if a.ID == activity.ID {
			p.mu.Unlock()
			return nil
		}
	}
	p.state.Activities = append(p.state.Activities, activity)
	p.writeThrough()
	p.persist()
	p.mu.Unlock()

	p.emit(Event{
		Entity: "catalog", Action: "created",
		Title:       "Activity created",
		Description: fmt.Sprintf("%s %s added to your catalog.", activity.Icon, activity.Name),
		Severity:    SeverityInfo,
	})
	return &activity
}

// RemoveCatalogActivity deletes a catalog entry and cascades over every day,
// removing all placements that reference it. Returns the number of
// placements removed and whether the catalog entry existed.
func (p *Planner) RemoveCatalogActivity(activityID string) (int, bool) {
	p.mu.Lock()
	var found *model.Activity
	nextCatalog := make([]model.Activity, 0, len(p.state.Activities))
	for _, a := range p.state.Activities {
		if a.ID == activityID {
			a := a
			found = &a
			continue
		}
		nextCatalog = append(nextCatalog, a)
	}

	removed := 0
	for _, day := range model.AllDays {
		list := p.state.Schedule.Day(day)
		next := list[:0:0]
		for _, sa := range list {
			if sa.ID == activityID {
				removed++
				continue
			}
			next = append(next, sa)
		}
		p.state.Schedule.SetDay(day, next)
	}

	p.state.Activities = nextCatalog
	p.writeThrough()
	p.persist()
	p.mu.Unlock()

	if found == nil {
		return removed, false
	}

	desc := fmt.Sprintf("%s %s deleted from catalog", found.Icon, found.Name)
	switch removed {
	case 0:
	case 1:
		desc += " and 1 scheduled entry removed"
	default:
		desc += fmt.Sprintf(" and %d scheduled entries removed", removed)
	}
	p.emit(Event{
		Entity: "catalog", Action: "removed",
		Title:       "Activity removed",
		Description: desc + ".",
		Severity:    SeverityWarning,
	})
	return removed, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
