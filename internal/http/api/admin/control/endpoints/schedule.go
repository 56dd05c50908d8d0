package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marquee-labs/marquee/internal/db"
	"github.com/marquee-labs/marquee/internal/http/api"
	"github.com/marquee-labs/marquee/internal/http/api/admin/control/packets"
	"github.com/marquee-labs/marquee/internal/http/middleware"
	"github.com/marquee-labs/marquee/internal/model"
	"github.com/marquee-labs/marquee/internal/schedule"
)

type ScheduleController struct {
	store db.Store
	clock schedule.Clock
}

func NewScheduleController(store db.Store, clock schedule.Clock) *ScheduleController {
	return &ScheduleController{store: store, clock: clock}
}

func ScheduleModule(store db.Store) api.Module {
	ctl := NewScheduleController(store, schedule.RealClock{})
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedule/settings", ctl.getSettings)
		c.PUT("/schedule/settings", ctl.updateSettings)

		// diagnostics: which rule (if any) is winning right now
		c.GET("/schedule/active", ctl.getActive)
	})
}

func (s *ScheduleController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.store.GetScheduleSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load schedule settings"}
	}
	return packets.NewScheduleSettingsResponse(settings), nil
}

func (s *ScheduleController) updateSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateScheduleSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings, err := s.store.UpdateScheduleSettings(request.Enabled, model.Defaults{
		Menu:       request.DefaultMenu,
		Slideshow:  request.DefaultSlideshow,
		Background: request.DefaultBackground,
		Theme:      request.DefaultTheme,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update schedule settings"}
	}

	middleware.NotifyScheduleChanged()
	return packets.NewScheduleSettingsResponse(settings), nil
}

// GET /api/admin/schedule/active?at=RFC3339
// Resolves against the current snapshot; “at” previews another instant.
func (s *ScheduleController) getActive(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	at := s.clock.Now()
	if raw := ctx.Query("at"); raw != "" {
		parsed, err := time.ParseInLocation(time.RFC3339, raw, time.Local)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid at timestamp"}
		}
		at = parsed.In(time.Local)
	}

	cfg, err := s.store.GetScheduleConfig()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load schedule config"}
	}

	decision := schedule.Resolve(schedule.CompileConfig(cfg), at)
	return packets.ActiveDecisionResponse{
		At:       at.Format(time.RFC3339),
		Decision: decision,
	}, nil
}
