package endpoints_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-labs/marquee/internal/db"
	"github.com/marquee-labs/marquee/internal/http/api"
	tvapi "github.com/marquee-labs/marquee/internal/http/api/tv/endpoints"
	"github.com/marquee-labs/marquee/internal/model"
)

func strPtr(s string) *string { return &s }

func setupTvRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		tvapi.ActiveModule(store),
	)
	return r
}

func poll(router *gin.Engine, deviceID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/tv/active", nil)
	if deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestActiveRejectsUnknownDevices(t *testing.T) {
	store := db.NewMemStore()
	router := setupTvRouter(store)

	w := poll(router, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = poll(router, "nobody")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a display record that was never paired cannot poll either
	_, err := store.CreateDisplay("window", nil, 1)
	require.NoError(t, err)
	w = poll(router, "still-unpaired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// brokenStore fails every display lookup the way a dead database would.
type brokenStore struct {
	db.Store
}

func (brokenStore) GetDisplayByDeviceID(string) (model.Display, error) {
	return model.Display{}, errors.New("connection refused")
}

func TestActiveLookupFailureIsNotUnauthorized(t *testing.T) {
	router := setupTvRouter(brokenStore{db.NewMemStore()})

	// a database outage must not read as "unpaired kiosk"
	w := poll(router, "device-1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestActivePollPayload(t *testing.T) {
	store := db.NewMemStore()
	router := setupTvRouter(store)

	d, err := store.CreateDisplay("window", nil, 1)
	require.NoError(t, err)
	require.NoError(t, store.PairDisplay(d.ID, "device-1"))

	// nothing configured: empty payload, never an error
	w := poll(router, "device-1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{}`, w.Body.String())

	// defaults only
	_, err = store.UpdateScheduleSettings(true, model.Defaults{Menu: strPtr("menus/dinner.txt")})
	require.NoError(t, err)
	w = poll(router, "device-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"menu":"menus/dinner.txt"}`, w.Body.String())

	// an always-on rule overrides the default, whatever the clock says
	allDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	_, err = store.CreateRule("takeover", allDays, "00:00", "00:00", nil, strPtr("sets/closed-ads.json"), true)
	require.NoError(t, err)
	w = poll(router, "device-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slideshow":"sets/closed-ads.json"}`, w.Body.String())

	// disabling the rule puts the default back on screen
	enabled := false
	_, err = store.UpdateRule(1, nil, nil, nil, nil, nil, nil, &enabled)
	require.NoError(t, err)
	w = poll(router, "device-1")
	assert.JSONEq(t, `{"menu":"menus/dinner.txt"}`, w.Body.String())
}
