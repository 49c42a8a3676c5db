package model

// DayKey names a plannable weekend day.
type DayKey string

const (
	Thursday DayKey = "thursday"
	Friday   DayKey = "friday"
	Saturday DayKey = "saturday"
	Sunday   DayKey = "sunday"
)

// AllDays lists every day the schedule can hold, in calendar order.
var AllDays = []DayKey{Thursday, Friday, Saturday, Sunday}

// ValidDay reports whether day names a known schedule day.
func ValidDay(day DayKey) bool {
	switch day {
	case Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// WeekendLength controls which days are available for planning.
type WeekendLength string

const (
	LengthShort    WeekendLength = "short"
	LengthLong     WeekendLength = "long"
	LengthExtended WeekendLength = "extended"
)

// DaysFor returns the available days for a weekend length. Unrecognized
// lengths fall back to a short weekend.
func DaysFor(length WeekendLength) []DayKey {
	switch length {
	case LengthLong:
		return []DayKey{Friday, Saturday, Sunday}
	case LengthExtended:
		return []DayKey{Thursday, Friday, Saturday, Sunday}
	default:
		return []DayKey{Saturday, Sunday}
	}
}

// Schedule maps each weekend day to its ordered activity list. Days outside
// the current weekend length keep their entries; they are dormant, not gone.
type Schedule struct {
	Thursday []ScheduledActivity `json:"thursday"`
	Friday   []ScheduledActivity `json:"friday"`
	Saturday []ScheduledActivity `json:"saturday"`
	Sunday   []ScheduledActivity `json:"sunday"`
}

// Day returns the list for the given day. Unknown keys return nil.
func (s *Schedule) Day(day DayKey) []ScheduledActivity {
	switch day {
	case Thursday:
		return s.Thursday
	case Friday:
		return s.Friday
	case Saturday:
		return s.Saturday
	case Sunday:
		return s.Sunday
	}
	return nil
}

// SetDay replaces the list for the given day. Unknown keys are ignored.
func (s *Schedule) SetDay(day DayKey, list []ScheduledActivity) {
	switch day {
	case Thursday:
		s.Thursday = list
	case Friday:
		s.Friday = list
	case Saturday:
		s.Saturday = list
	case Sunday:
		s.Sunday = list
	}
}

// Clone deep-copies the schedule.
func (s Schedule) Clone() Schedule {
	return Schedule{
		Thursday: cloneDay(s.Thursday),
		Friday:   cloneDay(s.Friday),
		Saturday: cloneDay(s.Saturday),
		Sunday:   cloneDay(s.Sunday),
	}
}

func cloneDay(list []ScheduledActivity) []ScheduledActivity {
	if list == nil {
		return nil
	}
	out := make([]ScheduledActivity, len(list))
	copy(out, list)
	return out
}
