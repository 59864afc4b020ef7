// README: HTTP-level tests for the chat and itinerary endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"trippy/internal/ai"
	"trippy/internal/http/middleware"
	"trippy/internal/modules/itinerary"
	"trippy/internal/modules/location"
	"trippy/internal/modules/quota"
	"trippy/internal/service"
)

type scriptedProvider struct {
	reply  string
	chunks []string
}

func (p *scriptedProvider) SuggestLocations(ctx context.Context, userMessage string, history []ai.Message) (string, error) {
	return p.reply, nil
}

func (p *scriptedProvider) StreamItinerary(ctx context.Context, req ai.ItineraryPrompt, emit func(string) error) error {
	for _, c := range p.chunks {
		if err := emit(c); err != nil {
			return err
		}
	}
	return nil
}

func newTestRouter(p ai.LLMProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	assistant := service.NewAssistant(p, location.NewService(nil), itinerary.NewService(nil), nil, quota.NewService(nil))

	r := gin.New()
	api := r.Group("/api", middleware.Auth(nil))
	chat := NewChatHandler(assistant)
	api.POST("/chat", chat.Send)
	it := NewItineraryHandler(assistant)
	api.POST("/itineraries", it.Stream)
	api.GET("/itineraries/latest", it.Latest)
	return r
}

func TestChatSendLocations(t *testing.T) {
	p := &scriptedProvider{reply: `Top picks: { "locations": [{"name":"Eiffel Tower","coordinates":[48.8584,2.2945]}]}`}
	r := newTestRouter(p)

	body := `{"message": "what should I see in Paris?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var reply service.ChatReply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply.Text != "Top picks:" {
		t.Errorf("Text = %q", reply.Text)
	}
	if len(reply.Locations) != 1 || reply.Locations[0].Name != "Eiffel Tower" {
		t.Errorf("locations = %+v", reply.Locations)
	}
}

func TestChatSendBadRequest(t *testing.T) {
	r := newTestRouter(&scriptedProvider{})

	for name, body := range map[string]string{
		"empty message": `{"message": "  "}`,
		"broken json":   `{"message": `,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, w.Code)
		}
	}
}

func TestItineraryStreamEvents(t *testing.T) {
	p := &scriptedProvider{chunks: []string{
		`{"tripDetails": {"destination": "Paris", "startDate": "2026-05-01", "endDate": "2026-05-01", "travelGroup": "solo"}, "days": [`,
		`{"dayNumber": 1, "date": "2026-05-01", "activities": [{"name": "Louvre", "startTime": "10:00", "duration": "3h", "cost": "20 EUR", "location": {"name": "Louvre Museum", "position": {"lat": 48.8606, "lng": 2.3376}}}]}],`,
		` "budgetSummary": {"totalEstimatedBudget": "200 EUR", "categoryBreakdown": {"accommodation": "80 EUR", "food": "50 EUR", "transportation": "30 EUR", "activities": "30 EUR", "miscellaneous": "10 EUR"}}}`,
	}}
	r := newTestRouter(p)

	body := `{"destination": "Paris", "startDate": "2026-05-01", "endDate": "2026-05-01", "travelGroup": "solo"}`
	req := httptest.NewRequest(http.MethodPost, "/api/itineraries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}

	out := w.Body.String()
	if !strings.Contains(out, "event: partial\n") {
		t.Errorf("missing partial event in stream:\n%s", out)
	}
	if !strings.Contains(out, "event: complete\n") {
		t.Errorf("missing complete event in stream:\n%s", out)
	}
	if strings.Contains(out, "event: error\n") {
		t.Errorf("unexpected error event in stream:\n%s", out)
	}
	// The last complete event carries the validated itinerary.
	idx := strings.LastIndex(out, "data: ")
	var result itinerary.Itinerary
	line := out[idx+len("data: "):]
	line = strings.TrimSpace(line)
	if err := json.Unmarshal([]byte(line), &result); err != nil {
		t.Fatalf("decode complete payload: %v", err)
	}
	if len(result.Days) != 1 || result.TripDetails.Destination != "Paris" {
		t.Errorf("result = %+v", result)
	}
}

func TestItineraryStreamIncomplete(t *testing.T) {
	p := &scriptedProvider{chunks: []string{`{"tripDetails": {"destination": "Rome"`}}
	r := newTestRouter(p)

	body := `{"destination": "Rome", "startDate": "2026-06-01", "endDate": "2026-06-02"}`
	req := httptest.NewRequest(http.MethodPost, "/api/itineraries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "event: error\n") {
		t.Errorf("missing error event:\n%s", w.Body.String())
	}
}

func TestItineraryStreamValidationRejected(t *testing.T) {
	r := newTestRouter(&scriptedProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/itineraries", strings.NewReader(`{"destination": ""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestItineraryLatestEmpty(t *testing.T) {
	r := newTestRouter(&scriptedProvider{})

	req := httptest.NewRequest(http.MethodGet, "/api/itineraries/latest", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
