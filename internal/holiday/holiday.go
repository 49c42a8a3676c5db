package holiday

import (
	"sort"
	"time"

	"github.com/dvrst/weekender/internal/model"
)

// Type distinguishes gazetted public holidays from restricted (optional)
// ones.
type Type string

const (
	TypeGovernment Type = "government"
	TypeRestricted Type = "restricted"
)

// Holiday is a dated public holiday with an optional weekend-length
// suggestion: a holiday adjacent to the weekend makes a longer one worth
// planning.
type Holiday struct {
	Name     string              `json:"name"`
	Date     time.Time           `json:"date"`
	Type     Type                `json:"type"`
	Religion string              `json:"religion,omitempty"`
	Weekend  model.WeekendLength `json:"weekend,omitempty"`
}

// calendar lists the known public holidays (2025, India).
var calendar = []Holiday{
	{Name: "Republic Day", Date: date(2025, time.January, 26), Type: TypeGovernment},
	{Name: "Maha Shivaratri", Date: date(2025, time.February, 26), Type: TypeGovernment, Religion: "Hindu"},
	{Name: "Holi (Rangwali Holi)", Date: date(2025, time.March, 14), Type: TypeGovernment, Religion: "Hindu"},
	{Name: "Id-ul-Fitr (Ramzan Id) — (as declared)", Date: date(2025, time.March, 31), Type: TypeGovernment, Religion: "Muslim"},
	{Name: "Mahavir Jayanti", Date: date(2025, time.April, 10), Type: TypeGovernment, Religion: "Jain"},
	{Name: "Good Friday", Date: date(2025, time.April, 18), Type: TypeGovernment, Religion: "Christian"},
	{Name: "Buddha Purnima", Date: date(2025, time.May, 12), Type: TypeGovernment, Religion: "Buddhist"},
	{Name: "Id-ul-Zuha (Bakrid) — (as declared)", Date: date(2025, time.June, 7), Type: TypeGovernment, Religion: "Muslim"},
	{Name: "Muharram", Date: date(2025, time.July, 6), Type: TypeGovernment, Religion: "Muslim"},
	{Name: "Independence Day", Date: date(2025, time.August, 15), Type: TypeGovernment},
	{Name: "Janmashtami", Date: date(2025, time.August, 16), Type: TypeGovernment, Religion: "Hindu"},
	{Name: "Milad-un-Nabi / Id-e-Milad (Birthday of Prophet Mohammad)", Date: date(2025, time.September, 5), Type: TypeGovernment, Religion: "Muslim"},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// SuggestLength infers a weekend length from the holiday's weekday: a Friday
// or Monday holiday bridges into a long weekend, Thursday or Tuesday into an
// extended one. Mid-week and already-weekend holidays suggest nothing.
func SuggestLength(d time.Time) model.WeekendLength {
	switch d.Weekday() {
	case time.Friday, time.Monday:
		return model.LengthLong
	case time.Thursday, time.Tuesday:
		return model.LengthExtended
	}
	return ""
}

// Upcoming returns up to limit future holidays after now, soonest first,
// each annotated with a suggested weekend length.
func Upcoming(now time.Time, limit int) []Holiday {
	out := make([]Holiday, 0, limit)
	for _, h := range calendar {
		if !h.Date.After(now) {
			continue
		}
		if h.Weekend == "" {
			h.Weekend = SuggestLength(h.Date)
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
