// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trippy/internal/http/handlers"
	"trippy/internal/http/middleware"
	"trippy/internal/infra"
	"trippy/internal/service"
)

func NewRouter(assistant *service.Assistant, verifier infra.TokenVerifier) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(verifier))

	chatHandler := handlers.NewChatHandler(assistant)
	api.POST("/chat", chatHandler.Send)

	itineraryHandler := handlers.NewItineraryHandler(assistant)
	api.POST("/itineraries", itineraryHandler.Stream)
	api.GET("/itineraries/latest", itineraryHandler.Latest)

	return r
}
