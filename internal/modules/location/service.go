// README: Location service; normalizes extracted payloads and persists them per message.
package location

import (
	"context"
	"log"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ExtractFromPayload normalizes the JSON payload of one chat message and
// records the survivors. Persistence failures are logged and swallowed: a
// dead database must not cost the user their map markers.
func (s *Service) ExtractFromPayload(ctx context.Context, messageID string, jsonContent string) []Location {
	locs := ParsePayload(jsonContent, NewIDSource())
	if len(locs) == 0 {
		return nil
	}
	if s.store != nil {
		if err := s.store.SaveExtracted(ctx, messageID, locs); err != nil {
			log.Printf("location: persist extracted for message %s: %v", messageID, err)
		}
	}
	return locs
}
