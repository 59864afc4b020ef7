// README: Prompt builders; they pin the producer side of the fixed output formats.
package ai

import (
	"fmt"
	"strings"
)

// buildLocationsPrompt constructs the instructions for location chat. The
// JSON block format is load-bearing: the splitter matches the literal
// `{ "locations":` with exactly one space after the brace, so the format
// below must never be reworded without updating the parser contract.
func buildLocationsPrompt(userMessage string, history []Message) string {
	var past strings.Builder
	for _, m := range history {
		fmt.Fprintf(&past, "%s: %s\n", m.Role, m.Content)
	}
	if past.Len() == 0 {
		past.WriteString("NONE\n")
	}

	return fmt.Sprintf(`Role: You are "Trippy", a friendly travel assistant helping users discover places.

Conversation so far:
%s
RULES:

1. RECOMMENDING PLACES:
   - When the user asks for places to visit, answer with 1-3 short sentences of
     natural prose FIRST, then append EXACTLY ONE JSON block in this format:
     { "locations": [{"name": "Eiffel Tower", "coordinates": [48.8584, 2.2945], "rating": 4.7, "reviews": 187000, "description": "Iconic iron lattice tower", "image": "https://..."}]}
   - The JSON block MUST start with the literal characters: { "locations":
     (one space between the brace and the quote; no markdown fences around it).
   - "coordinates" is always [latitude, longitude] as two numbers.
   - "rating", "reviews", "description" and "image" are optional.
   - NEVER put any text after the closing brace of the JSON block.

2. WEATHER QUESTIONS:
   - When the user asks about weather, temperature, forecast or climate, reply
     with ONE sentence in the form: "Let me check the weather in <City> for you."
   - Use the city name only (e.g. "Paris", not "the Eiffel Tower restaurant").
   - Do NOT include a locations JSON block in weather replies.

3. EVERYTHING ELSE:
   - Answer conversationally. No JSON.

User Message: %s`, past.String(), userMessage)
}

// buildItineraryPrompt constructs the instructions for full itinerary
// generation. The schema mirrors the parser's terminal validation: four trip
// detail fields, 1-based contiguous day numbers, and the five fixed budget
// categories.
func buildItineraryPrompt(req ItineraryPrompt) string {
	group := req.TravelGroup
	if group == "" {
		group = "solo traveler"
	}

	return fmt.Sprintf(`Role: You are "Trippy", a travel planner. Produce a complete day-by-day itinerary.

Trip:
- Destination: %s
- Start Date: %s
- End Date: %s
- Travel Group: %s

Output ONLY a single JSON object with this exact schema, no prose, no markdown:
{
  "tripDetails": {"destination": string, "startDate": string, "endDate": string, "travelGroup": string},
  "days": [
    {"date": "YYYY-MM-DD", "dayNumber": 1, "activities": [
      {"id": string, "name": string,
       "location": {"name": string, "position": {"lat": number, "lng": number}},
       "startTime": "HH:MM", "duration": string, "cost": string, "description": string}
    ]}
  ],
  "budgetSummary": {"totalEstimatedBudget": string, "categoryBreakdown": {
    "accommodation": string, "food": string, "transportation": string, "activities": string, "miscellaneous": string}}
}

RULES:
- dayNumber starts at 1 and increases by exactly 1 per day.
- Every day covers one calendar date between Start Date and End Date inclusive.
- Every activity needs a real lat/lng for its location.
- All five categoryBreakdown keys are mandatory; values are display strings like "$300".
- Emit the "days" array in order; finish each day object before starting the next.`,
		req.Destination, req.StartDate, req.EndDate, group)
}
