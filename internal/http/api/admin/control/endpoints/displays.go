package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/db"
	"github.com/marquee-labs/marquee/internal/http/api"
	"github.com/marquee-labs/marquee/internal/http/api/admin/control/packets"
	"github.com/marquee-labs/marquee/internal/http/middleware"
	"github.com/marquee-labs/marquee/internal/model"
	redisclient "github.com/marquee-labs/marquee/internal/redis"
)

type DisplayController struct {
	store db.Store
}

func NewDisplayController(store db.Store) *DisplayController {
	return &DisplayController{store: store}
}

func DisplayModule(store db.Store) api.Module {
	ctl := NewDisplayController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/displays", ctl.listDisplays)
		c.POST("/displays", ctl.createDisplay)
		c.GET("/displays/:id", ctl.getDisplay)
		c.PUT("/displays/:id", ctl.updateDisplay)
		c.DELETE("/displays/:id", ctl.deleteDisplay)

		// pairing: the device showed a code (POST /api/tv/pair/request);
		// staff type it here to attach the device to this display record
		c.POST("/displays/:id/pair", ctl.pairDisplay)
	})
}

func (d *DisplayController) listDisplays(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := d.store.ListDisplays()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list displays"}
	}

	response := make([]packets.DisplayResponse, 0, len(list))
	for _, it := range list {
		response = append(response, packets.NewDisplayResponse(it))
	}
	return response, nil
}

func (d *DisplayController) getDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	display, err := d.store.GetDisplayByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "display not found"}
	}
	return packets.NewDisplayResponse(display), nil
}

func (d *DisplayController) createDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateDisplayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	display, err := d.store.CreateDisplay(request.Name, request.Location, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create display"}
	}
	return packets.NewDisplayResponse(display), nil
}

func (d *DisplayController) updateDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateDisplayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := d.store.GetDisplayByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "display not found"}
	}

	if err := d.store.UpdateDisplay(id, request.Name, request.Location); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update display"}
	}

	display, err := d.store.GetDisplayByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load display"}
	}
	return packets.NewDisplayResponse(display), nil
}

func (d *DisplayController) deleteDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := d.store.GetDisplayByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "display not found"}
	}

	if err := d.store.DeleteDisplay(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete display"}
	}
	return gin.H{"message": "deleted"}, nil
}

// POST /api/admin/displays/:id/pair
func (d *DisplayController) pairDisplay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.PairDisplayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := d.store.GetDisplayByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "display not found"}
	}

	deviceID, err := redisclient.GetPairingCode(ctx, request.Code)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code expired or unknown"}
	}

	if err := d.store.PairDisplay(id, deviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not pair display"}
	}

	log.Info().Int("display_id", id).Str("device_id", deviceID).Msg("display paired")
	middleware.NotifyDisplay(deviceID)

	display, err := d.store.GetDisplayByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load display"}
	}
	return packets.NewDisplayResponse(display), nil
}
