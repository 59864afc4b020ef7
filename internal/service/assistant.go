// README: Assistant orchestrator; wires the model, the parsers and the domain modules.
package service

import (
	"context"
	"fmt"
	"log"

	"trippy/internal/ai"
	"trippy/internal/modules/itinerary"
	"trippy/internal/modules/location"
	"trippy/internal/modules/quota"
	"trippy/internal/stream"
	"trippy/internal/types"
)

// Geocoder is the slice of the maps service the assistant needs; narrowed so
// tests can stub it.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (types.Point, error)
}

// Assistant orchestrates one trip-planning conversation surface: chat
// messages with embedded location payloads, weather lookups, and streamed
// itinerary generation.
type Assistant struct {
	provider    ai.LLMProvider
	locations   *location.Service
	itineraries *itinerary.Service
	geo         Geocoder
	quota       *quota.Service
}

func NewAssistant(provider ai.LLMProvider, locations *location.Service, itineraries *itinerary.Service, geo Geocoder, quotaSvc *quota.Service) *Assistant {
	return &Assistant{
		provider:    provider,
		locations:   locations,
		itineraries: itineraries,
		geo:         geo,
		quota:       quotaSvc,
	}
}

// WeatherCard is the structured weather answer: the extracted city plus its
// coordinates when geocoding succeeded.
type WeatherCard struct {
	City     string       `json:"city"`
	Position *types.Point `json:"position,omitempty"`
}

// ChatReply is what one chat turn hands to the UI layer. Locations and
// Weather are mutually exclusive; Text is always present.
type ChatReply struct {
	Text      string              `json:"textContent"`
	Locations []location.Location `json:"locations,omitempty"`
	Weather   *WeatherCard        `json:"weather,omitempty"`
}

// HandleMessage processes one chat turn end to end: quota, model call, then
// interpretation of the raw model output.
func (a *Assistant) HandleMessage(ctx context.Context, uid types.ID, messageID string, userMessage string, history []ai.Message) (*ChatReply, error) {
	if err := a.quota.Consume(ctx, string(uid)); err != nil {
		return nil, err
	}

	raw, err := a.provider.SuggestLocations(ctx, userMessage, history)
	if err != nil {
		return nil, fmt.Errorf("ai error: %w", err)
	}

	return a.interpret(ctx, messageID, raw), nil
}

// interpret classifies the raw model output and builds the reply. It is the
// outermost parse boundary: an unexpected panic anywhere in the pipeline is
// logged and degraded to a text-only reply, never surfaced to the chat.
func (a *Assistant) interpret(ctx context.Context, messageID string, raw string) (reply *ChatReply) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("assistant: parse panic recovered: %v", r)
			reply = &ChatReply{Text: stream.StripDanglingJSON(raw)}
		}
	}()

	intent := stream.Classify(raw)
	reply = &ChatReply{Text: intent.Parsed.Text}

	switch intent.Kind {
	case stream.KindWeather:
		city := intent.Parsed.WeatherLocation
		card := &WeatherCard{City: city}
		if a.geo != nil {
			if p, err := a.geo.Geocode(ctx, city); err == nil {
				card.Position = &p
			} else {
				// Card without a pin still renders; keep the reply.
				log.Printf("assistant: geocode %q: %v", city, err)
			}
		}
		reply.Weather = card

	case stream.KindLocationList:
		reply.Locations = a.locations.ExtractFromPayload(ctx, messageID, intent.Parsed.JSON)
	}
	return reply
}

// PlanItinerary streams an itinerary for the request, forwarding every merged
// partial snapshot to onPartial and returning the validated terminal result.
func (a *Assistant) PlanItinerary(ctx context.Context, uid types.ID, req itinerary.Request, onPartial func(*itinerary.Itinerary)) (*itinerary.Itinerary, error) {
	if err := a.quota.Consume(ctx, string(uid)); err != nil {
		return nil, err
	}

	source := func(ctx context.Context, emit func(string) error) error {
		return a.provider.StreamItinerary(ctx, ai.ItineraryPrompt{
			Destination: req.Destination,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			TravelGroup: req.TravelGroup,
		}, emit)
	}
	return a.itineraries.Generate(ctx, uid, req, source, onPartial)
}

// LatestItinerary returns the newest saved itinerary for the user.
func (a *Assistant) LatestItinerary(ctx context.Context, uid types.ID) (*itinerary.Itinerary, error) {
	return a.itineraries.Latest(ctx, uid)
}
