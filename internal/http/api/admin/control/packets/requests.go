package packets

// CreateRuleRequest creates a scheduling rule. Days are weekday names;
// startTime/endTime are local "HH:MM". At most one of menu and slideshow may
// be set; the new rule is appended to the end of the stored order.
type CreateRuleRequest struct {
	Name      string   `json:"name" binding:"required"`
	Days      []string `json:"days" binding:"required"`
	StartTime string   `json:"startTime" binding:"required"`
	EndTime   string   `json:"endTime" binding:"required"`
	Menu      *string  `json:"menu"`
	Slideshow *string  `json:"slideshow"`
	Enabled   *bool    `json:"enabled"`
}

// UpdateRuleRequest changes fields in place; omitted fields are untouched.
// Setting menu or slideshow to "" clears that reference.
type UpdateRuleRequest struct {
	Name      *string  `json:"name"`
	Days      []string `json:"days"`
	StartTime *string  `json:"startTime"`
	EndTime   *string  `json:"endTime"`
	Menu      *string  `json:"menu"`
	Slideshow *string  `json:"slideshow"`
	Enabled   *bool    `json:"enabled"`
}

type ReorderRulesRequest struct {
	RuleIDs []int `json:"rule_ids" binding:"required"`
}

// UpdateScheduleSettingsRequest replaces the master switch and the Defaults
// record wholesale; omitted defaults are cleared.
type UpdateScheduleSettingsRequest struct {
	Enabled           bool    `json:"enabled"`
	DefaultMenu       *string `json:"defaultMenu"`
	DefaultSlideshow  *string `json:"defaultSlideshow"`
	DefaultBackground *string `json:"defaultBackground"`
	DefaultTheme      *string `json:"defaultTheme"`
}

type CreateDisplayRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
}

type UpdateDisplayRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type PairDisplayRequest struct {
	Code string `json:"code" binding:"required"`
}
