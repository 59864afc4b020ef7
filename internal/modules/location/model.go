// README: Canonical location shape handed to the UI layer.
package location

import "trippy/internal/types"

// Defaults filled in for fields the model frequently omits. Coordinates are
// never defaulted: a record without a usable position is dropped outright.
const (
	DefaultRating  = 4.5
	DefaultReviews = 1000
)

// Location is the normalized record consumed by the map and card UI. IDs are
// synthetic and unique within one message, not stable across messages.
type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Position    types.Point `json:"position"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
}
