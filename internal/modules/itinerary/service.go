// README: Itinerary generation service; drives an accumulator over a chunk stream.
package itinerary

import (
	"context"
	"fmt"
	"log"
	"strings"

	"trippy/internal/types"
)

// Request describes the trip the user asked for.
type Request struct {
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TravelGroup string `json:"travelGroup"`
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	if strings.TrimSpace(r.StartDate) == "" || strings.TrimSpace(r.EndDate) == "" {
		return fmt.Errorf("startDate and endDate are required")
	}
	return nil
}

// ChunkSource produces the raw text increments of one response stream,
// calling emit once per increment. It returns when the stream ends, whether
// or not the content ever became a valid itinerary.
type ChunkSource func(ctx context.Context, emit func(chunk string) error) error

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Generate runs one accumulator over the chunks produced by source. Each
// partial update is merged into a draft itinerary and handed to onPartial
// (which may be nil). The terminal result is persisted and returned; a stream
// that ends without a valid itinerary returns ErrNoItinerary.
//
// One accumulator per call: concurrent generations never share state.
func (s *Service) Generate(ctx context.Context, userID types.ID, req Request, source ChunkSource, onPartial func(*Itinerary)) (*Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	acc := NewAccumulator()
	draft := NewDraft(TripDetails{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TravelGroup: req.TravelGroup,
	})

	err := source(ctx, func(chunk string) error {
		acc.Append(chunk)
		if update := acc.NextUpdate(); update != nil && onPartial != nil {
			MergeDays(draft, *update)
			onPartial(draft.Clone())
		}
		return ctx.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("itinerary stream: %w", err)
	}

	result, err := acc.Finish()
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.Save(ctx, userID, result); err != nil {
			// The user still gets their itinerary; persistence is best effort.
			log.Printf("itinerary: persist for %s: %v", userID, err)
		}
	}
	return result, nil
}

// Latest returns the most recently saved itinerary for a user.
func (s *Service) Latest(ctx context.Context, userID types.ID) (*Itinerary, error) {
	if s.store == nil {
		return nil, ErrNoItinerary
	}
	return s.store.Latest(ctx, userID)
}
