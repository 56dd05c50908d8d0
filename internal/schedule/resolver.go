package schedule

import (
	"time"

	"github.com/marquee-labs/marquee/internal/model"
)

// ContentKind tags a resolved content reference.
type ContentKind string

const (
	KindMenu       ContentKind = "menu"
	KindSlideshow  ContentKind = "slideshow"
	KindBackground ContentKind = "background"
	KindTheme      ContentKind = "theme"
	KindDefault    ContentKind = "default"
	KindNone       ContentKind = "none"
)

// ActiveContent is the result of resolving the schedule at one instant.
// RuleID and RuleName are set when an explicit rule won, so the admin UI can
// show staff why a particular menu is on screen. Subkind is set when Kind is
// KindDefault and names which fallback field was used.
type ActiveContent struct {
	Kind     ContentKind `json:"kind"`
	Ref      string      `json:"ref,omitempty"`
	Subkind  ContentKind `json:"subkind,omitempty"`
	RuleID   int         `json:"ruleId,omitempty"`
	RuleName string      `json:"ruleName,omitempty"`
}

// Defaults is the compiled fallback record; empty strings mean absent.
type Defaults struct {
	Menu       string
	Slideshow  string
	Background string
	Theme      string
}

// Config is an immutable snapshot of the schedule configuration, compiled
// for evaluation. Resolution never mutates it, so concurrent polls may share
// one snapshot freely.
type Config struct {
	Enabled  bool
	Rules    []Rule
	Defaults Defaults
}

// CompileConfig turns a persisted configuration into an evaluation snapshot.
// Rules that fail to parse are dropped from the snapshot; a malformed rule
// never wins and never aborts resolution for the rest of the configuration.
func CompileConfig(cfg model.ScheduleConfig) Config {
	out := Config{
		Enabled:  cfg.Enabled,
		Defaults: compileDefaults(cfg.Defaults),
	}
	for _, r := range cfg.Rules {
		cr, err := CompileRule(r)
		if err != nil {
			continue
		}
		out.Rules = append(out.Rules, cr)
	}
	return out
}

func compileDefaults(d model.Defaults) Defaults {
	var out Defaults
	if d.Menu != nil {
		out.Menu = *d.Menu
	}
	if d.Slideshow != nil {
		out.Slideshow = *d.Slideshow
	}
	if d.Background != nil {
		out.Background = *d.Background
	}
	if d.Theme != nil {
		out.Theme = *d.Theme
	}
	return out
}

// Resolve picks the single active content reference for the given instant.
//
// When the master switch is on, enabled rules are checked in stored order and
// the first live rule with a content reference wins. Rules without a
// reference fall through to the next match. When nothing matches, or the
// master switch is off, resolution falls back to the Defaults record:
// default menu, then default slideshow, then background, then theme, then an
// explicit "no content configured" result.
//
// Resolve is total and pure: it always returns a result, never panics on
// malformed data, and identical (cfg, now) inputs yield identical outputs.
func Resolve(cfg Config, now time.Time) ActiveContent {
	if cfg.Enabled {
		day := now.Weekday()
		at := TimeOfDayOf(now)
		for _, r := range cfg.Rules {
			if !r.IsActive(day, at) {
				continue
			}
			kind, ref := r.contentRef()
			if ref == "" {
				continue
			}
			return ActiveContent{Kind: kind, Ref: ref, RuleID: r.ID, RuleName: r.Name}
		}
	}
	return resolveDefaults(cfg.Defaults)
}

func resolveDefaults(d Defaults) ActiveContent {
	switch {
	case d.Menu != "":
		return ActiveContent{Kind: KindDefault, Subkind: KindMenu, Ref: d.Menu}
	case d.Slideshow != "":
		return ActiveContent{Kind: KindDefault, Subkind: KindSlideshow, Ref: d.Slideshow}
	case d.Background != "":
		return ActiveContent{Kind: KindDefault, Subkind: KindBackground, Ref: d.Background}
	case d.Theme != "":
		return ActiveContent{Kind: KindDefault, Subkind: KindTheme, Ref: d.Theme}
	}
	return ActiveContent{Kind: KindNone}
}
