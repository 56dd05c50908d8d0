package model

import (
	"time"

	"github.com/lib/pq"
)

// Rule is one scheduling instruction: show the referenced menu or slideshow
// during the given time window on the given days. Exactly one of Menu and
// Slideshow should be set; a rule with neither is kept but can never win.
// StartTime and EndTime are local wall-clock "HH:MM" strings; an end earlier
// than the start means the window runs past midnight into the next day.
type Rule struct {
	ID        int            `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Days      pq.StringArray `db:"days" json:"days"`
	StartTime string         `db:"start_time" json:"startTime"`
	EndTime   string         `db:"end_time" json:"endTime"`
	Menu      *string        `db:"menu" json:"menu,omitempty"`
	Slideshow *string        `db:"slideshow" json:"slideshow,omitempty"`
	Enabled   bool           `db:"enabled" json:"enabled"`
	Position  int            `db:"position" json:"-"`
	CreatedAt time.Time      `db:"created_at" json:"-"`
	UpdatedAt time.Time      `db:"updated_at" json:"-"`
}

// Defaults holds the fallback content shown when no rule matches. Any field
// may be absent.
type Defaults struct {
	Menu       *string `db:"default_menu" json:"defaultMenu,omitempty"`
	Slideshow  *string `db:"default_slideshow" json:"defaultSlideshow,omitempty"`
	Background *string `db:"default_background" json:"defaultBackground,omitempty"`
	Theme      *string `db:"default_theme" json:"defaultTheme,omitempty"`
}

// ScheduleSettings is the single persisted settings row: the master switch
// for rule matching plus the Defaults record.
type ScheduleSettings struct {
	Enabled   bool      `db:"enabled" json:"enabled"`
	Defaults  `json:"defaults"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// ScheduleConfig is the snapshot handed to the resolver on every poll: the
// settings plus the full rule list in stored order. Rule order is part of the
// configuration, not presentation; the first matching rule wins.
type ScheduleConfig struct {
	Enabled  bool     `json:"enabled"`
	Rules    []Rule   `json:"rules"`
	Defaults Defaults `json:"defaults"`
}
