package packets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marquee-labs/marquee/internal/schedule"
)

func TestNewActiveResponseFlattensDecision(t *testing.T) {
	cases := []struct {
		name     string
		decision schedule.ActiveContent
		want     ActiveResponse
	}{
		{
			name:     "rule menu",
			decision: schedule.ActiveContent{Kind: schedule.KindMenu, Ref: "menus/lunch.txt", RuleID: 4},
			want:     ActiveResponse{Menu: "menus/lunch.txt"},
		},
		{
			name:     "rule slideshow",
			decision: schedule.ActiveContent{Kind: schedule.KindSlideshow, Ref: "sets/closed-ads.json", RuleID: 9},
			want:     ActiveResponse{Slideshow: "sets/closed-ads.json"},
		},
		{
			name:     "default menu",
			decision: schedule.ActiveContent{Kind: schedule.KindDefault, Subkind: schedule.KindMenu, Ref: "menus/dinner.txt"},
			want:     ActiveResponse{Menu: "menus/dinner.txt"},
		},
		{
			name:     "default background",
			decision: schedule.ActiveContent{Kind: schedule.KindDefault, Subkind: schedule.KindBackground, Ref: "bg/wood.png"},
			want:     ActiveResponse{Background: "bg/wood.png"},
		},
		{
			name:     "default theme",
			decision: schedule.ActiveContent{Kind: schedule.KindDefault, Subkind: schedule.KindTheme, Ref: "themes/dark"},
			want:     ActiveResponse{Theme: "themes/dark"},
		},
		{
			name:     "nothing configured",
			decision: schedule.ActiveContent{Kind: schedule.KindNone},
			want:     ActiveResponse{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewActiveResponse(tc.decision))
		})
	}
}
