package endpoints

import (
	"math/rand"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/http/api"
	"github.com/marquee-labs/marquee/internal/http/api/tv/packets"
	redisclient "github.com/marquee-labs/marquee/internal/redis"
)

// PairingModule mounts the device side of pairing: the display posts its
// device id, gets a short code to draw on screen, and staff redeem that code
// against a display record from the admin UI.
func PairingModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/pair/request", requestPairing)
	})
}

func requestPairing(ctx *gin.Context) (any, *api.APIError) {
	var request packets.PairRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	code := generatePairCode()
	if err := redisclient.SetPairingCode(ctx, code, request.DeviceID); err != nil {
		log.Error().Err(err).Msg("failed to store pairing code")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "internal error"}
	}

	return packets.PairCodeResponse{Code: code}, nil
}

func generatePairCode() string {
	// no 0/O or 1/I, codes get read off a TV across the room
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
