// README: Postgres persistence for locations extracted from chat messages.
package location

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store appends extracted locations so past messages can re-render their
// markers without re-parsing.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SaveExtracted writes all locations of one message in a single batch.
func (s *Store) SaveExtracted(ctx context.Context, messageID string, locs []Location) error {
	batch := &pgx.Batch{}
	for _, loc := range locs {
		batch.Queue(`
			INSERT INTO extracted_locations (message_id, loc_id, name, lat, lng, rating, reviews, description, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, messageID, loc.ID, loc.Name, loc.Position.Lat, loc.Position.Lng,
			loc.Rating, loc.Reviews, loc.Description, loc.ImageURL)
	}
	return s.db.SendBatch(ctx, batch).Close()
}

// ByMessage returns the locations previously extracted for a message, in
// insertion order.
func (s *Store) ByMessage(ctx context.Context, messageID string) ([]Location, error) {
	rows, err := s.db.Query(ctx, `
		SELECT loc_id, name, lat, lng, rating, reviews, description, image_url
		FROM extracted_locations
		WHERE message_id = $1
		ORDER BY id
	`, messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		var loc Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Position.Lat, &loc.Position.Lng,
			&loc.Rating, &loc.Reviews, &loc.Description, &loc.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}
