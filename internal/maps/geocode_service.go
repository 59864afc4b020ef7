// README: Google Maps geocoding with a Redis cache for extracted city names.
package maps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"

	"trippy/internal/types"
)

// City coordinates move rarely; cache aggressively.
const geocodeCacheTTL = 7 * 24 * time.Hour

// GeocodeService resolves free-text place names (typically cities pulled out
// of weather phrasing) to coordinates.
type GeocodeService struct {
	client *maps.Client
	cache  *redis.Client
}

// NewGeocodeService creates a GeocodeService with the given API key. cache
// may be nil, in which case every lookup hits the Maps API.
func NewGeocodeService(apiKey string, cache *redis.Client) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client, cache: cache}, nil
}

// Geocode resolves a place name to a coordinate pair, consulting the cache
// first. Unknown places return an error; callers degrade to a card without a
// map position.
func (s *GeocodeService) Geocode(ctx context.Context, place string) (types.Point, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return types.Point{}, fmt.Errorf("empty place name")
	}

	key := "geo:place:" + strings.ToLower(place)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var p types.Point
			if _, err := fmt.Sscanf(cached, "%f,%f", &p.Lat, &p.Lng); err == nil {
				return p, nil
			}
		}
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: place})
	if err != nil {
		return types.Point{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return types.Point{}, fmt.Errorf("no geocoding result for %q", place)
	}

	loc := results[0].Geometry.Location
	p := types.Point{Lat: loc.Lat, Lng: loc.Lng}

	if s.cache != nil {
		// Cache misses here are harmless; next lookup re-geocodes.
		s.cache.Set(ctx, key, fmt.Sprintf("%f,%f", p.Lat, p.Lng), geocodeCacheTTL)
	}
	return p, nil
}
