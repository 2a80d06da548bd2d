package schedule

import (
	"testing"
	"time"

	"github.com/ramanasai/moodlog/internal/config"
)

func reminderConfig(workdays, holidays []string) config.Config {
	cfg := config.Default()
	cfg.Reminder.Enabled = true
	cfg.Reminder.Time = "20:00"
	cfg.Reminder.Timezone = "UTC"
	if workdays != nil {
		cfg.Reminder.Workdays = workdays
	}
	cfg.Reminder.Holidays = holidays
	return cfg
}

func TestNextAtSameDay(t *testing.T) {
	cfg := reminderConfig(nil, nil)
	// Wednesday morning; the 20:00 slot is still ahead
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	got := NextAt(now, cfg)
	want := time.Date(2026, 1, 7, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextAt() = %v, want %v", got, want)
	}
}

func TestNextAtRollsToTomorrow(t *testing.T) {
	cfg := reminderConfig(nil, nil)
	now := time.Date(2026, 1, 7, 21, 30, 0, 0, time.UTC)

	got := NextAt(now, cfg)
	want := time.Date(2026, 1, 8, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextAt() = %v, want %v", got, want)
	}
}

func TestNextAtExactlyAtReminderTime(t *testing.T) {
	cfg := reminderConfig(nil, nil)
	now := time.Date(2026, 1, 7, 20, 0, 0, 0, time.UTC)

	got := NextAt(now, cfg)
	want := time.Date(2026, 1, 8, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextAt() = %v, want %v", got, want)
	}
}

func TestNextAtSkipsNonWorkdays(t *testing.T) {
	cfg := reminderConfig([]string{"Mon"}, nil)
	// Wednesday 2026-01-07; the next Monday is the 12th
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	got := NextAt(now, cfg)
	want := time.Date(2026, 1, 12, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextAt() = %v, want %v", got, want)
	}
}

func TestNextAtSkipsHolidays(t *testing.T) {
	cfg := reminderConfig([]string{"Mon"}, []string{"2026-01-12"})
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	got := NextAt(now, cfg)
	want := time.Date(2026, 1, 19, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextAt() = %v, want %v", got, want)
	}
}

func TestNextAtEmptyWorkdaySetMeansEveryDay(t *testing.T) {
	// entries shorter than three characters are dropped during
	// normalization, leaving an empty set
	cfg := reminderConfig([]string{"no"}, nil)
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	got := NextAt(now, cfg)
	want := time.Date(2026, 1, 7, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextAt() = %v, want %v", got, want)
	}
}

func TestNextAtNormalizesWorkdayCase(t *testing.T) {
	cfg := reminderConfig([]string{"monday", "TUESDAY"}, nil)
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

	got := NextAt(now, cfg)
	want := time.Date(2026, 1, 12, 20, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextAt() = %v, want %v", got, want)
	}
}
