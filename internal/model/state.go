package model

// StateVersion gates the persisted blob schema. Bump on incompatible shape
// changes together with a migration in the state store.
const StateVersion = 1

// State is the whole persisted aggregate: the active view (embedded), the
// thread table, the session authentication set, and retained shared plans.
// It serializes as a single JSON blob under a fixed storage key.
type State struct {
	Version int `json:"version"`

	ThreadSnapshot

	CurrentThreadID      string                    `json:"currentThreadId"`
	Threads              map[string]ThreadSnapshot `json:"threads"`
	AuthenticatedThreads map[string]bool           `json:"authenticatedThreads"`
	SharedPlans          map[string]SharedPlan     `json:"sharedPlans"`
}

// Clone deep-copies the whole aggregate.
func (s State) Clone() State {
	out := s
	out.ThreadSnapshot = s.ThreadSnapshot.Clone()
	out.Threads = make(map[string]ThreadSnapshot, len(s.Threads))
	for id, t := range s.Threads {
		out.Threads[id] = t.Clone()
	}
	out.AuthenticatedThreads = make(map[string]bool, len(s.AuthenticatedThreads))
	for id, v := range s.AuthenticatedThreads {
		out.AuthenticatedThreads[id] = v
	}
	out.SharedPlans = make(map[string]SharedPlan, len(s.SharedPlans))
	for id, p := range s.SharedPlans {
		out.SharedPlans[id] = p.Clone()
	}
	return out
}

// DefaultState returns a fresh store: seed catalog, empty schedule, default
// theme, short weekend, no threads.
func DefaultState() State {
	return State{
		Version: StateVersion,
		ThreadSnapshot: ThreadSnapshot{
			Activities:    SeedActivities(),
			CurrentTheme:  ThemeDefault,
			WeekendLength: LengthShort,
			AvailableDays: DaysFor(LengthShort),
		},
		Threads:              make(map[string]ThreadSnapshot),
		AuthenticatedThreads: make(map[string]bool),
		SharedPlans:          make(map[string]SharedPlan),
	}
}
