package views

// Filter is the transient mood/date selector gating the timeline and chart.
// Both fields are optional; empty means "pass everything". Filters are never
// persisted and reset only by explicit toggle.
type Filter struct {
	Mood string // exact mood name
	Date string // calendar-day key, "2006-01-02"
}

// ToggleMood selects mood, or clears the selection when mood is already
// selected.
func (f *Filter) ToggleMood(mood string) {
	if f.Mood == mood {
		f.Mood = ""
		return
	}
	f.Mood = mood
}

// ToggleDate selects day, or clears the selection when day is already
// selected.
func (f *Filter) ToggleDate(day string) {
	if f.Date == day {
		f.Date = ""
		return
	}
	f.Date = day
}

// Active reports whether any selector is set.
func (f Filter) Active() bool {
	return f.Mood != "" || f.Date != ""
}
