package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/marquee-labs/marquee/internal/db"
	"github.com/marquee-labs/marquee/internal/http/api"
	authapi "github.com/marquee-labs/marquee/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/marquee-labs/marquee/internal/http/api/admin/control/endpoints"
	tvapi "github.com/marquee-labs/marquee/internal/http/api/tv/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			"X-Device-ID",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		// control modules
		adminapi.RuleModule(store),
		adminapi.ScheduleModule(store),
		adminapi.DisplayModule(store),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		tvapi.PairingModule(),
		tvapi.ActiveModule(store),
	)
}
