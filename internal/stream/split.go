// README: Splits a growing response buffer into prose and the trailing location JSON payload.
package stream

import "strings"

// LocationsMarker is the literal prefix the model emits before the location
// array. The single space after '{' is part of the producer's fixed output
// format; a payload written as `{"locations":` is deliberately not matched.
const LocationsMarker = `{ "locations":`

// ParsedText is the outcome of separating a message into human-readable text
// and an embedded JSON payload. JSON stays empty until a balanced object has
// fully arrived. WeatherLocation is set by the classifier, never by Split.
type ParsedText struct {
	Text            string `json:"textContent"`
	JSON            string `json:"jsonContent,omitempty"`
	WeatherLocation string `json:"weatherLocation,omitempty"`
}

// Split separates content into the prose prefix and the JSON region starting
// at marker. While the JSON region is still unbalanced (mid-stream) JSON is
// left empty and the caller retries on the next increment. Split is a pure
// function of its input.
func Split(content, marker string) ParsedText {
	at := strings.Index(content, marker)
	if at < 0 {
		return ParsedText{Text: StripDanglingJSON(content)}
	}

	text := StripDanglingJSON(content[:at])
	tail := content[at:]
	if end, ok := ScanBalance(tail); ok {
		return ParsedText{Text: text, JSON: tail[:end+1]}
	}
	return ParsedText{Text: text}
}

// StripDanglingJSON removes a trailing partial-object fragment (a '{' followed
// by a '"' with no balanced close) from the end of s, so the UI never flashes
// raw JSON while an object is still streaming in. Balanced objects are left
// alone. The result is trimmed.
func StripDanglingJSON(s string) string {
	from := 0
	for {
		open := strings.IndexByte(s[from:], '{')
		if open < 0 {
			return strings.TrimSpace(s)
		}
		open += from
		tail := s[open:]
		if end, ok := ScanBalance(tail); ok {
			from = open + end + 1
			continue
		}
		if !strings.Contains(tail, `"`) {
			// A lone '{' with no quote yet is ambiguous prose; keep it.
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(s[:open])
	}
}
