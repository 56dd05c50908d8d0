package packets

import (
	"time"

	"github.com/marquee-labs/marquee/internal/model"
	"github.com/marquee-labs/marquee/internal/schedule"
)

// RuleResponse is the persisted rule shape plus its position in the stored
// order, which the editor needs because order decides ties.
type RuleResponse struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Days      []string `json:"days"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Menu      *string  `json:"menu,omitempty"`
	Slideshow *string  `json:"slideshow,omitempty"`
	Enabled   bool     `json:"enabled"`
	Position  int      `json:"position"`
}

func NewRuleResponse(r model.Rule) RuleResponse {
	return RuleResponse{
		ID:        r.ID,
		Name:      r.Name,
		Days:      r.Days,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Menu:      r.Menu,
		Slideshow: r.Slideshow,
		Enabled:   r.Enabled,
		Position:  r.Position,
	}
}

type ScheduleSettingsResponse struct {
	Enabled           bool    `json:"enabled"`
	DefaultMenu       *string `json:"defaultMenu,omitempty"`
	DefaultSlideshow  *string `json:"defaultSlideshow,omitempty"`
	DefaultBackground *string `json:"defaultBackground,omitempty"`
	DefaultTheme      *string `json:"defaultTheme,omitempty"`
}

func NewScheduleSettingsResponse(s model.ScheduleSettings) ScheduleSettingsResponse {
	return ScheduleSettingsResponse{
		Enabled:           s.Enabled,
		DefaultMenu:       s.Menu,
		DefaultSlideshow:  s.Slideshow,
		DefaultBackground: s.Background,
		DefaultTheme:      s.Theme,
	}
}

// ActiveDecisionResponse is the diagnostics view: the full tagged decision so
// staff can see which rule (if any) is winning right now.
type ActiveDecisionResponse struct {
	At       string                 `json:"at"`
	Decision schedule.ActiveContent `json:"decision"`
}

type DisplayResponse struct {
	ID        int     `json:"id"`
	DeviceID  *string `json:"device_id"`
	Name      string  `json:"name"`
	Location  *string `json:"location"`
	Paired    bool    `json:"paired"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewDisplayResponse(d model.Display) DisplayResponse {
	return DisplayResponse{
		ID:        d.ID,
		DeviceID:  d.DeviceID,
		Name:      d.Name,
		Location:  d.Location,
		Paired:    d.Paired,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}
