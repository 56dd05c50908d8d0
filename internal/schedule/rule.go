package schedule

import (
	"fmt"
	"time"

	"github.com/marquee-labs/marquee/internal/model"
)

// Rule is the compiled, evaluation-ready form of a stored rule: days as a
// bitset, times as minutes since midnight. Compiled once per snapshot so the
// per-poll work is pure integer comparison.
type Rule struct {
	ID        int
	Name      string
	Days      DaySet
	Start     TimeOfDay
	End       TimeOfDay
	Menu      string
	Slideshow string
	Enabled   bool
}

// CompileRule parses a stored rule's string fields. Callers treat an error as
// "this rule can never win", not as a failure of the whole configuration.
func CompileRule(r model.Rule) (Rule, error) {
	days, err := ParseDays(r.Days)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %d: %w", r.ID, err)
	}
	start, err := ParseTimeOfDay(r.StartTime)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %d: %w", r.ID, err)
	}
	end, err := ParseTimeOfDay(r.EndTime)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %d: %w", r.ID, err)
	}
	out := Rule{
		ID:      r.ID,
		Name:    r.Name,
		Days:    days,
		Start:   start,
		End:     end,
		Enabled: r.Enabled,
	}
	if r.Menu != nil {
		out.Menu = *r.Menu
	}
	if r.Slideshow != nil {
		out.Slideshow = *r.Slideshow
	}
	return out, nil
}

// IsActive reports whether the rule is live at the given local weekday and
// wall-clock minute.
//
// Windows with Start < End are half-open: a 07:00-09:00 rule covers 07:00 but
// not 09:00, so adjacent rules never overlap and never leave a gap. Equal
// Start and End means the whole day on each listed day. Start > End spans
// midnight: the window runs from Start on a listed day and keeps running
// until End on the following day, whether or not that following day is
// itself listed.
func (r Rule) IsActive(day time.Weekday, at TimeOfDay) bool {
	if !r.Enabled {
		return false
	}
	switch {
	case r.Start == r.End:
		return r.Days.Has(day)
	case r.Start < r.End:
		return r.Days.Has(day) && at >= r.Start && at < r.End
	default:
		if r.Days.Has(day) && at >= r.Start {
			return true
		}
		return r.Days.Has(previousDay(day)) && at < r.End
	}
}

// contentRef returns the rule's content reference tagged with its kind. A
// rule with neither reference returns KindNone and cannot win resolution.
func (r Rule) contentRef() (ContentKind, string) {
	if r.Menu != "" {
		return KindMenu, r.Menu
	}
	if r.Slideshow != "" {
		return KindSlideshow, r.Slideshow
	}
	return KindNone, ""
}
