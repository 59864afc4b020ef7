// README: Postgres persistence for completed itineraries (JSONB payloads).
package itinerary

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"trippy/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Save writes a completed itinerary. Only validated terminal results reach
// this point; drafts and partials are never persisted.
func (s *Store) Save(ctx context.Context, userID types.ID, it *Itinerary) error {
	payload, err := json.Marshal(it)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO itineraries (user_id, destination, start_date, end_date, payload)
		VALUES ($1, $2, $3, $4, $5)
	`, string(userID), it.TripDetails.Destination, it.TripDetails.StartDate, it.TripDetails.EndDate, payload)
	return err
}

// Latest returns the newest itinerary saved for userID, or ErrNoItinerary.
func (s *Store) Latest(ctx context.Context, userID types.ID) (*Itinerary, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, `
		SELECT payload FROM itineraries
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, string(userID)).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoItinerary
	}
	if err != nil {
		return nil, err
	}

	var it Itinerary
	if err := json.Unmarshal(payload, &it); err != nil {
		return nil, err
	}
	return &it, nil
}
