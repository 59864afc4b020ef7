// README: Provider contract for the trip-assistant model calls.
package ai

import "context"

// LLMProvider defines the contract for the model behind the assistant. It
// exists so other providers (OpenAI, a canned replay for demos) can slot in
// without touching the parsing pipeline.
type LLMProvider interface {
	// SuggestLocations answers a chat message with prose that may embed a
	// `{ "locations": ...}` payload, returned as one raw text blob. The
	// caller runs the splitter/classifier over it; this method does not
	// interpret its own output.
	SuggestLocations(ctx context.Context, userMessage string, history []Message) (string, error)

	// StreamItinerary generates an itinerary as a chunked text stream,
	// calling emit once per increment in arrival order. It returns once the
	// model stream ends; emit returning an error aborts the stream.
	StreamItinerary(ctx context.Context, req ItineraryPrompt, emit func(chunk string) error) error
}
