// README: Normalizer tests (coordinate filter, defaults, dedup, ID uniqueness).
package location

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

// fixedIDs is the deterministic source used throughout these tests.
func fixedIDs(i int) string { return fmt.Sprintf("test-%d", i) }

func TestNormalizeCoordinateFilter(t *testing.T) {
	raws := mustRaws(t, `[
		{"name":"A", "coordinates":[1,2]},
		{"name":"B", "coordinates":[1]},
		{"name":"C"},
		{"name":"D", "coordinates":"oops"},
		{"name":"E", "coordinates":[1,2,3]},
		{"name":"", "coordinates":[3,4]}
	]`)

	got := Normalize(raws, fixedIDs)
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1: %+v", len(got), got)
	}
	if got[0].Name != "A" {
		t.Errorf("survivor = %q, want %q", got[0].Name, "A")
	}
	if got[0].Position.Lat != 1 || got[0].Position.Lng != 2 {
		t.Errorf("position = %+v, want (1, 2)", got[0].Position)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	raws := mustRaws(t, `[{"name":"Eiffel Tower", "coordinates":[48.8584, 2.2945]}]`)

	got := Normalize(raws, fixedIDs)
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1", len(got))
	}
	loc := got[0]

	if loc.Rating != DefaultRating {
		t.Errorf("Rating = %v, want %v", loc.Rating, DefaultRating)
	}
	if loc.Reviews != DefaultReviews {
		t.Errorf("Reviews = %v, want %v", loc.Reviews, DefaultReviews)
	}
	if loc.Description != "Explore Eiffel Tower" {
		t.Errorf("Description = %q", loc.Description)
	}
	if loc.ImageURL == "" || !strings.Contains(loc.ImageURL, "Eiffel") {
		t.Errorf("ImageURL = %q, want derived fallback", loc.ImageURL)
	}
	if loc.ID != "test-0" {
		t.Errorf("ID = %q, want %q", loc.ID, "test-0")
	}
}

func TestNormalizeExplicitFieldsKept(t *testing.T) {
	raws := mustRaws(t, `[{
		"name":"Louvre", "coordinates":[48.8606, 2.3376],
		"rating":4.8, "reviews":250000,
		"description":"World's largest art museum",
		"image":"https://example.com/louvre.jpg"
	}]`)

	got := Normalize(raws, fixedIDs)
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1", len(got))
	}
	loc := got[0]
	if loc.Rating != 4.8 || loc.Reviews != 250000 {
		t.Errorf("rating/reviews = %v/%v, want 4.8/250000", loc.Rating, loc.Reviews)
	}
	if loc.Description != "World's largest art museum" {
		t.Errorf("Description = %q", loc.Description)
	}
	if loc.ImageURL != "https://example.com/louvre.jpg" {
		t.Errorf("ImageURL = %q", loc.ImageURL)
	}
}

func TestNormalizeDeduplicatesByName(t *testing.T) {
	raws := mustRaws(t, `[
		{"name":"Eiffel Tower", "coordinates":[48.8584, 2.2945], "rating":4.8},
		{"name":"eiffel tower", "coordinates":[0, 0]},
		{"name":"Louvre", "coordinates":[48.8606, 2.3376]}
	]`)

	got := Normalize(raws, fixedIDs)
	if len(got) != 2 {
		t.Fatalf("got %d locations, want 2", len(got))
	}
	if got[0].Name != "Eiffel Tower" || got[0].Rating != 4.8 {
		t.Errorf("first occurrence must win: %+v", got[0])
	}
}

func TestNormalizeIDsUniqueWithinCall(t *testing.T) {
	raws := mustRaws(t, `[
		{"name":"A", "coordinates":[1,2]},
		{"name":"B", "coordinates":[3,4]},
		{"name":"C", "coordinates":[5,6]}
	]`)

	got := Normalize(raws, NewIDSource())
	seen := make(map[string]bool)
	for _, loc := range got {
		if seen[loc.ID] {
			t.Fatalf("duplicate ID %q", loc.ID)
		}
		seen[loc.ID] = true
	}
}

func TestParsePayload(t *testing.T) {
	payload := `{ "locations": [{"name":"Eiffel Tower","coordinates":[48.8584,2.2945],"rating":4.8}]}`

	got := ParsePayload(payload, fixedIDs)
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1", len(got))
	}
	loc := got[0]
	if loc.Name != "Eiffel Tower" || loc.Rating != 4.8 || loc.Reviews != DefaultReviews {
		t.Errorf("unexpected location: %+v", loc)
	}

	if got := ParsePayload("not json at all", fixedIDs); got != nil {
		t.Errorf("malformed payload must yield nil, got %+v", got)
	}
}

func mustRaws(t *testing.T, s string) []json.RawMessage {
	t.Helper()
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(s), &raws); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return raws
}
