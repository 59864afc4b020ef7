// README: Validates, defaults and de-duplicates raw location entries from the model.
package location

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"trippy/internal/types"
)

// IDSource yields synthetic IDs that are collision-free within one
// normalization call; the index disambiguates entries sharing a seed.
type IDSource func(index int) string

// NewIDSource returns the production source, seeded once per call from the
// wall clock. Tests inject a deterministic source instead.
func NewIDSource() IDSource {
	seed := time.Now().UnixMilli()
	return func(i int) string {
		return fmt.Sprintf("loc-%d-%d", seed, i)
	}
}

// rawLocation mirrors one entry of the model's "locations" array before any
// validation. Fields stay loose on purpose; Normalize decides what survives.
type rawLocation struct {
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

// locationsPayload is the fixed response shape following the marker.
type locationsPayload struct {
	Locations []json.RawMessage `json:"locations"`
}

// ParsePayload decodes a `{ "locations": [...] }` payload and normalizes the
// entries. A payload that is not an object with a locations array yields nil;
// individually malformed entries are dropped without failing the call.
func ParsePayload(jsonContent string, ids IDSource) []Location {
	var payload locationsPayload
	if err := json.Unmarshal([]byte(jsonContent), &payload); err != nil {
		return nil
	}
	return Normalize(payload.Locations, ids)
}

// Normalize converts raw entries to canonical Locations. Records missing a
// name or a 2-element numeric coordinate pair are filtered out, defaults are
// applied to the cosmetic fields, and duplicate names are collapsed keeping
// the first occurrence.
func Normalize(raws []json.RawMessage, ids IDSource) []Location {
	if ids == nil {
		ids = NewIDSource()
	}

	var out []Location
	seen := make(map[string]bool, len(raws))
	for i, raw := range raws {
		loc, ok := normalizeOne(raw, i, ids)
		if !ok {
			continue
		}
		key := strings.ToLower(loc.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, loc)
	}
	return out
}

func normalizeOne(raw json.RawMessage, index int, ids IDSource) (Location, bool) {
	var r rawLocation
	if err := json.Unmarshal(raw, &r); err != nil {
		// Wrong-typed coordinates or fields; expected noise from the model.
		return Location{}, false
	}
	if strings.TrimSpace(r.Name) == "" {
		return Location{}, false
	}
	// Coordinates are a hard filter, not a default-fill: exactly [lat, lng].
	if len(r.Coordinates) != 2 {
		return Location{}, false
	}

	loc := Location{
		ID:   ids(index),
		Name: strings.TrimSpace(r.Name),
		Position: types.Point{
			Lat: r.Coordinates[0],
			Lng: r.Coordinates[1],
		},
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		Description: strings.TrimSpace(r.Description),
		ImageURL:    r.Image,
	}
	if loc.Rating == 0 {
		loc.Rating = DefaultRating
	}
	if loc.Reviews == 0 {
		loc.Reviews = DefaultReviews
	}
	if loc.Description == "" {
		loc.Description = "Explore " + loc.Name
	}
	if loc.ImageURL == "" {
		loc.ImageURL = fallbackImageURL(loc.Name)
	}
	return loc, true
}

// fallbackImageURL builds a deterministic external image-search URL so cards
// always have artwork even when the model omits one.
func fallbackImageURL(name string) string {
	return "https://source.unsplash.com/featured/?" + url.QueryEscape(name+" landmark")
}
