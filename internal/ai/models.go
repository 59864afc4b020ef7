// README: Request/response value types shared by providers.
package ai

// Message is one turn of conversation history passed back to the model.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ItineraryPrompt carries the trip parameters the itinerary prompt is built
// from. All fields are plain strings; date parsing is the caller's concern.
type ItineraryPrompt struct {
	Destination string
	StartDate   string
	EndDate     string
	TravelGroup string
}
