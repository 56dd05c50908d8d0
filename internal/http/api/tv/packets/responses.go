package packets

import "github.com/marquee-labs/marquee/internal/schedule"

type PairCodeResponse struct {
	Code string `json:"code"`
}

// ActiveResponse is the poll payload: the resolved decision flattened to one
// content key, e.g. {"menu":"menus/lunch.txt"}. An empty object means
// nothing is configured and the display shows its built-in idle screen.
type ActiveResponse struct {
	Menu       string `json:"menu,omitempty"`
	Slideshow  string `json:"slideshow,omitempty"`
	Background string `json:"background,omitempty"`
	Theme      string `json:"theme,omitempty"`
}

func NewActiveResponse(decision schedule.ActiveContent) ActiveResponse {
	kind := decision.Kind
	if kind == schedule.KindDefault {
		kind = decision.Subkind
	}
	switch kind {
	case schedule.KindMenu:
		return ActiveResponse{Menu: decision.Ref}
	case schedule.KindSlideshow:
		return ActiveResponse{Slideshow: decision.Ref}
	case schedule.KindBackground:
		return ActiveResponse{Background: decision.Ref}
	case schedule.KindTheme:
		return ActiveResponse{Theme: decision.Ref}
	}
	return ActiveResponse{}
}
