// README: Heuristic weather-intent detection and city extraction.
package stream

import (
	"regexp"
	"strings"
)

// Weather detection is regex-based on purpose: the producer phrases weather
// answers in a handful of predictable ways and a grammar would be overkill.
// A message classified as weather intent must skip location-list JSON
// processing entirely; Classify enforces that.
var (
	weatherKeyword = regexp.MustCompile(`(?i)\b(?:weather|temperature|forecast|climate)\b`)

	// Polite lead-in phrasing, e.g. "Let me check the weather in Paris for you."
	weatherLeadIn = regexp.MustCompile(`(?i)\b(?:let me check|checking|i(?:'|’)ll check|let me get|fetching)\s+the\s+(?:current\s+)?(?:weather|temperature|forecast)\s+(?:in|at|for)\s+([^.!?\n]+)`)

	// Generic phrasing, e.g. "What's the weather like in Tokyo?"
	weatherGeneric = regexp.MustCompile(`(?i)\b(?:weather|temperature|forecast|climate)\b[^.!?\n]*?\b(?:in|at|for)\s+([^.!?\n]+)`)

	// Venue-type nouns stripped from the captured phrase so "The Ritz hotel"
	// degrades to a geocodable name.
	venueNoun = regexp.MustCompile(`(?i)\b(?:restaurant|cafe|hotel|bar|grill|pub|bistro|lounge|the)\b`)

	edgePunct = regexp.MustCompile(`^\W+|\W+$`)
)

// ExtractWeatherLocation detects weather phrasing in content and pulls out a
// cleaned city name. ok is false when content carries no weather keyword or no
// location phrase could be captured.
func ExtractWeatherLocation(content string) (city string, ok bool) {
	if !weatherKeyword.MatchString(content) {
		return "", false
	}

	var phrase string
	if m := weatherLeadIn.FindStringSubmatch(content); m != nil {
		phrase = m[1]
	} else if m := weatherGeneric.FindStringSubmatch(content); m != nil {
		phrase = m[1]
	} else {
		return "", false
	}

	// "Paris, France for you" → "Paris". The first comma segment wins: the
	// producer writes "City, Country" far more often than "Venue, City".
	if i := strings.IndexByte(phrase, ','); i >= 0 {
		phrase = phrase[:i]
	}

	phrase = venueNoun.ReplaceAllString(phrase, "")
	phrase = edgePunct.ReplaceAllString(phrase, "")
	phrase = strings.Join(strings.Fields(phrase), " ")
	if phrase == "" {
		return "", false
	}
	return phrase, true
}
