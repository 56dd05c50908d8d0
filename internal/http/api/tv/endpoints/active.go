package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/db"
	"github.com/marquee-labs/marquee/internal/http/api"
	"github.com/marquee-labs/marquee/internal/http/api/tv/packets"
	"github.com/marquee-labs/marquee/internal/schedule"
)

type ActiveController struct {
	store db.Store
	clock schedule.Clock
}

func NewActiveController(store db.Store, clock schedule.Clock) *ActiveController {
	return &ActiveController{store: store, clock: clock}
}

// ActiveModule mounts the poll endpoint displays hit on their refresh
// interval. Each poll resolves the schedule fresh against the clock: results
// are never cached across polls because a cached decision would go stale the
// moment a window boundary passes.
func ActiveModule(store db.Store) api.Module {
	ctl := NewActiveController(store, schedule.RealClock{})
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/active", ctl.getActive)
	})
}

// GET /api/tv/active?device_id=...
func (a *ActiveController) getActive(ctx *gin.Context) (any, *api.APIError) {
	deviceID := ctx.Query("device_id")
	if deviceID == "" {
		deviceID = ctx.GetHeader("X-Device-ID")
	}
	if deviceID == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing device id"}
	}

	display, err := a.store.GetDisplayByDeviceID(deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "unknown or unpaired device"}
		}
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to look up display for poll")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to look up display"}
	}
	if !display.Paired {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "unknown or unpaired device"}
	}

	cfg, err := a.store.GetScheduleConfig()
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to load schedule config for poll")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load schedule"}
	}

	decision := schedule.Resolve(schedule.CompileConfig(cfg), a.clock.Now())
	return packets.NewActiveResponse(decision), nil
}
