// README: Itinerary handler; streams day-by-day progress over SSE.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"trippy/internal/http/middleware"
	"trippy/internal/modules/itinerary"
	"trippy/internal/service"
	"trippy/internal/types"
)

type ItineraryHandler struct {
	assistant *service.Assistant
}

func NewItineraryHandler(assistant *service.Assistant) *ItineraryHandler {
	return &ItineraryHandler{assistant: assistant}
}

// Stream handles POST /api/itineraries. The response is a server-sent event
// stream: zero or more "partial" events with the itinerary as built so far,
// then exactly one "complete" or "error" event.
func (h *ItineraryHandler) Stream(c *gin.Context) {
	var req itinerary.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	uid := types.ID(c.GetString(middleware.UIDKey))
	result, err := h.assistant.PlanItinerary(c.Request.Context(), uid, req, func(snapshot *itinerary.Itinerary) {
		writeEvent(c, "partial", snapshot)
	})
	if err != nil {
		writeEvent(c, "error", errorResponse{Error: err.Error()})
		return
	}
	writeEvent(c, "complete", result)
}

// Latest handles GET /api/itineraries/latest.
func (h *ItineraryHandler) Latest(c *gin.Context) {
	uid := types.ID(c.GetString(middleware.UIDKey))
	result, err := h.assistant.LatestItinerary(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}

func writeEvent(c *gin.Context, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, data)
	c.Writer.Flush()
}
