package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marquee-labs/marquee/internal/model"
)

func strPtr(s string) *string { return &s }

// localDate returns a local instant on a known weekday: 2024-01-01 was a
// Monday, so dayOffset 0 = Monday, 2 = Wednesday, and so on.
func localDate(dayOffset, hour, minute int) time.Time {
	return time.Date(2024, 1, 1+dayOffset, hour, minute, 0, 0, time.Local)
}

func weekdayRules(t *testing.T) []Rule {
	t.Helper()
	return []Rule{
		{ID: 1, Name: "breakfast", Days: mustDays(t, "Mon", "Tue", "Wed", "Thu", "Fri"),
			Start: mustTime(t, "07:00"), End: mustTime(t, "11:00"), Menu: "breakfast", Enabled: true},
		{ID: 2, Name: "lunch", Days: mustDays(t, "Mon", "Tue", "Wed", "Thu", "Fri"),
			Start: mustTime(t, "11:00"), End: mustTime(t, "15:00"), Menu: "lunch", Enabled: true},
	}
}

func TestResolveMatchingRuleWins(t *testing.T) {
	cfg := Config{
		Enabled:  true,
		Rules:    weekdayRules(t),
		Defaults: Defaults{Menu: "dinner"},
	}

	// Wednesday 09:30 -> breakfast
	got := Resolve(cfg, localDate(2, 9, 30))
	assert.Equal(t, ActiveContent{Kind: KindMenu, Ref: "breakfast", RuleID: 1, RuleName: "breakfast"}, got)

	// Wednesday 16:00 -> nothing matches, defaults
	got = Resolve(cfg, localDate(2, 16, 0))
	assert.Equal(t, ActiveContent{Kind: KindDefault, Subkind: KindMenu, Ref: "dinner"}, got)

	// Saturday 09:30 -> no day match, defaults
	got = Resolve(cfg, localDate(5, 9, 30))
	assert.Equal(t, ActiveContent{Kind: KindDefault, Subkind: KindMenu, Ref: "dinner"}, got)
}

func TestResolveFirstInStoredOrderBreaksTies(t *testing.T) {
	overlapA := Rule{ID: 10, Name: "a", Days: mustDays(t, "Monday"),
		Start: mustTime(t, "08:00"), End: mustTime(t, "12:00"), Menu: "menu-a", Enabled: true}
	overlapB := Rule{ID: 11, Name: "b", Days: mustDays(t, "Monday"),
		Start: mustTime(t, "09:00"), End: mustTime(t, "11:00"), Menu: "menu-b", Enabled: true}

	cfg := Config{Enabled: true, Rules: []Rule{overlapA, overlapB}}
	got := Resolve(cfg, localDate(0, 10, 0))
	assert.Equal(t, 10, got.RuleID)
	assert.Equal(t, "menu-a", got.Ref)

	// swapping the stored order swaps the winner
	cfg.Rules = []Rule{overlapB, overlapA}
	got = Resolve(cfg, localDate(0, 10, 0))
	assert.Equal(t, 11, got.RuleID)
	assert.Equal(t, "menu-b", got.Ref)
}

func TestResolveDisabledRuleNeverWins(t *testing.T) {
	r := Rule{ID: 1, Name: "off", Days: mustDays(t, "Monday"),
		Start: mustTime(t, "00:00"), End: mustTime(t, "00:00"), Menu: "hidden", Enabled: false}
	cfg := Config{Enabled: true, Rules: []Rule{r}, Defaults: Defaults{Slideshow: "idle"}}

	got := Resolve(cfg, localDate(0, 12, 0))
	assert.Equal(t, ActiveContent{Kind: KindDefault, Subkind: KindSlideshow, Ref: "idle"}, got)
}

func TestResolveMasterSwitchOff(t *testing.T) {
	cfg := Config{
		Enabled:  false,
		Rules:    weekdayRules(t),
		Defaults: Defaults{Menu: "dinner"},
	}
	// Wednesday 09:30 would match breakfast, but scheduling is off
	got := Resolve(cfg, localDate(2, 9, 30))
	assert.Equal(t, ActiveContent{Kind: KindDefault, Subkind: KindMenu, Ref: "dinner"}, got)
}

func TestResolveInertRuleFallsThrough(t *testing.T) {
	inert := Rule{ID: 1, Name: "empty", Days: mustDays(t, "Monday"),
		Start: mustTime(t, "08:00"), End: mustTime(t, "12:00"), Enabled: true}
	backup := Rule{ID: 2, Name: "backup", Days: mustDays(t, "Monday"),
		Start: mustTime(t, "08:00"), End: mustTime(t, "12:00"), Slideshow: "specials", Enabled: true}

	cfg := Config{Enabled: true, Rules: []Rule{inert, backup}}
	got := Resolve(cfg, localDate(0, 10, 0))
	assert.Equal(t, ActiveContent{Kind: KindSlideshow, Ref: "specials", RuleID: 2, RuleName: "backup"}, got)

	// inert rule alone falls through to defaults, then to "none"
	cfg.Rules = []Rule{inert}
	got = Resolve(cfg, localDate(0, 10, 0))
	assert.Equal(t, ActiveContent{Kind: KindNone}, got)
}

func TestResolveDefaultsPrecedence(t *testing.T) {
	now := localDate(0, 12, 0)

	cfg := Config{Defaults: Defaults{
		Menu: "m", Slideshow: "s", Background: "b", Theme: "t",
	}}
	assert.Equal(t, KindMenu, Resolve(cfg, now).Subkind)

	cfg.Defaults.Menu = ""
	assert.Equal(t, KindSlideshow, Resolve(cfg, now).Subkind)

	cfg.Defaults.Slideshow = ""
	got := Resolve(cfg, now)
	assert.Equal(t, KindBackground, got.Subkind)
	assert.Equal(t, "b", got.Ref)

	cfg.Defaults.Background = ""
	assert.Equal(t, KindTheme, Resolve(cfg, now).Subkind)

	cfg.Defaults.Theme = ""
	assert.Equal(t, ActiveContent{Kind: KindNone}, Resolve(cfg, now))
}

func TestResolveSpanningRuleScenario(t *testing.T) {
	closed := Rule{ID: 7, Name: "closed", Days: mustDays(t, "Sunday"),
		Start: mustTime(t, "22:00"), End: mustTime(t, "07:00"), Slideshow: "closed-ads", Enabled: true}
	cfg := Config{Enabled: true, Rules: []Rule{closed}, Defaults: Defaults{Menu: "dinner"}}

	// Monday 02:00: Sunday is listed, window spans into Monday
	got := Resolve(cfg, localDate(0, 2, 0))
	assert.Equal(t, ActiveContent{Kind: KindSlideshow, Ref: "closed-ads", RuleID: 7, RuleName: "closed"}, got)

	// Monday 08:00: window over, defaults
	got = Resolve(cfg, localDate(0, 8, 0))
	assert.Equal(t, ActiveContent{Kind: KindDefault, Subkind: KindMenu, Ref: "dinner"}, got)
}

func TestResolveIsIdempotent(t *testing.T) {
	cfg := Config{Enabled: true, Rules: weekdayRules(t), Defaults: Defaults{Menu: "dinner"}}
	now := localDate(2, 9, 30)

	first := Resolve(cfg, now)
	second := Resolve(cfg, now)
	assert.Equal(t, first, second)
}

func TestCompileConfigDropsMalformedRules(t *testing.T) {
	cfg := CompileConfig(model.ScheduleConfig{
		Enabled: true,
		Rules: []model.Rule{
			{ID: 1, Name: "broken", Days: []string{"Monday"}, StartTime: "25:00", EndTime: "09:00", Menu: strPtr("x"), Enabled: true},
			{ID: 2, Name: "bad-day", Days: []string{"Blursday"}, StartTime: "07:00", EndTime: "09:00", Menu: strPtr("y"), Enabled: true},
			{ID: 3, Name: "ok", Days: []string{"Monday"}, StartTime: "07:00", EndTime: "09:00", Menu: strPtr("breakfast"), Enabled: true},
		},
		Defaults: model.Defaults{Menu: strPtr("dinner")},
	})

	assert.Len(t, cfg.Rules, 1)
	assert.Equal(t, 3, cfg.Rules[0].ID)

	// malformed rules never win and never abort resolution
	got := Resolve(cfg, localDate(0, 8, 0))
	assert.Equal(t, "breakfast", got.Ref)
	assert.Equal(t, 3, got.RuleID)
}

func TestCompileConfigDefaults(t *testing.T) {
	cfg := CompileConfig(model.ScheduleConfig{
		Defaults: model.Defaults{Slideshow: strPtr("idle"), Theme: strPtr("dark")},
	})
	assert.Equal(t, Defaults{Slideshow: "idle", Theme: "dark"}, cfg.Defaults)
	assert.False(t, cfg.Enabled)
}
