package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time as minutes since local midnight. Rules store
// "HH:MM" strings; they are parsed once at the boundary so evaluation is
// integer comparison only.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeOfDayOf truncates an instant to its local wall-clock minute.
func TimeOfDayOf(now time.Time) TimeOfDay {
	return TimeOfDay(now.Hour()*60 + now.Minute())
}

// DaySet is a bitset of weekdays, indexed by time.Weekday (Sunday = bit 0).
type DaySet uint8

func (d DaySet) Has(w time.Weekday) bool {
	return d&(1<<uint(w)) != 0
}

func (d *DaySet) Add(w time.Weekday) {
	*d |= 1 << uint(w)
}

var dayTokens = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// ParseDays converts weekday tokens ("Monday" or "Mon", case-insensitive)
// into a DaySet. An empty slice parses to the empty set, which makes a rule
// permanently inactive rather than being an error.
func ParseDays(tokens []string) (DaySet, error) {
	var d DaySet
	for _, tok := range tokens {
		w, ok := dayTokens[strings.ToLower(strings.TrimSpace(tok))]
		if !ok {
			return 0, fmt.Errorf("invalid weekday %q", tok)
		}
		d.Add(w)
	}
	return d, nil
}

// Names returns the canonical full weekday names in Monday-first order.
func (d DaySet) Names() []string {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	var out []string
	for _, w := range order {
		if d.Has(w) {
			out = append(out, w.String())
		}
	}
	return out
}

// previousDay steps one weekday back, wrapping Sunday to Saturday. Used for
// windows that started yesterday evening and are still running after
// midnight.
func previousDay(w time.Weekday) time.Weekday {
	return (w + 6) % 7
}
