package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marquee-labs/marquee/internal/http/middleware"
	"github.com/marquee-labs/marquee/internal/model"
)

type APIError struct {
	Code    int
	Message string
}

type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiError := h(ctx, user)
		if apiError != nil {
			ctx.JSON(apiError.Code, gin.H{"error": apiError.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiError := h(ctx)
		if apiError != nil {
			ctx.JSON(apiError.Code, gin.H{"error": apiError.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
