// README: Offline demo; replays a scripted response stream through the interpreter.
package main

import (
	"encoding/json"
	"fmt"
	"log"

	"trippy/internal/modules/itinerary"
	"trippy/internal/modules/location"
	"trippy/internal/stream"
)

// chatChunks mimics a streamed chat answer: prose first, then a location
// payload arriving in pieces.
var chatChunks = []string{
	"Here are some places you might enjoy in Paris. ",
	`{ "locations": [{"name": "Eiffel Tower", "coordinates": [48.8584, 2.2945], "rating": 4.8},`,
	` {"name": "Louvre Museum", "coordinates": [48.8606, 2.3376]}]}`,
}

// itineraryChunks mimics a streamed itinerary, cut mid-token on purpose.
var itineraryChunks = []string{
	`{"tripDetails": {"destination": "Paris", "startDate": "2026-05-01", "endDate": "2026-05-02", "travelGroup": "couple"}, "days": [`,
	`{"dayNumber": 1, "date": "2026-05-01", "activities": [{"name": "Eiffel Tower", "startTime": "09:00", "duration": "2h", "cost": "30 EUR", "location": {"name": "Eiffel Tower", "position": {"lat": 48.8584, "lng": 2.2945}}}]},`,
	` {"dayNumber": 2, "date": "2026-05-02", "activities": [{"name": "Louvre", "startTime": "10:00", "duration": "3h", "cost": "20 EUR", "location": {"name": "Louvre Museum", "position": {"lat": 48.8606, "lng": 2.3376}}}]}],`,
	` "budgetSummary": {"totalEstimatedBudget": "500 EUR", "categoryBreakdown": {"accommodation": "200 EUR", "food": "120 EUR", "transportation": "60 EUR", "activities": "80 EUR", "miscellaneous": "40 EUR"}}}`,
}

func main() {
	runChat()
	runItinerary()
}

func runChat() {
	fmt.Println("=== chat interpretation ===")

	var buf string
	for _, c := range chatChunks {
		buf += c
	}

	intent := stream.Classify(buf)
	fmt.Printf("kind: %v\n", intent.Kind)
	fmt.Printf("text: %s\n", intent.Parsed.Text)

	locs := location.ParsePayload(intent.Parsed.JSON, location.NewIDSource())
	for _, l := range locs {
		fmt.Printf("location: %s (%.4f, %.4f) rating=%.1f reviews=%d\n",
			l.Name, l.Position.Lat, l.Position.Lng, l.Rating, l.Reviews)
	}
}

func runItinerary() {
	fmt.Println("=== itinerary stream ===")

	acc := itinerary.NewAccumulator()
	for i, chunk := range itineraryChunks {
		acc.Append(chunk)
		if update := acc.NextUpdate(); update != nil {
			fmt.Printf("after chunk %d: %d day(s) ready\n", i+1, len(update.Days))
		}
	}

	result, err := acc.Finish()
	if err != nil {
		log.Fatalf("stream ended without an itinerary: %v", err)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}
