// README: Postgres persistence for per-user monthly message quotas.
package quota

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the monthly allowance and deducts one message.
// A row whose period lags the current month is reset to DefaultMessages
// first, so stale users are never locked out. Returns ErrQuotaExceeded when
// no row was updated (allowance spent or user absent).
func (s *Store) Consume(ctx context.Context, uid string) error {
	period := time.Now().UTC().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE message_quota SET
			messages_remaining = CASE WHEN period != $1 THEN $2 - 1 ELSE messages_remaining - 1 END,
			period = $1
		WHERE uid = $3 AND (period < $1 OR messages_remaining > 0)
	`, period, DefaultMessages, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExceeded
	}
	return nil
}

// EnsureUser inserts a quota row for uid with the default allowance; an
// existing row is left untouched.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO message_quota (uid, messages_remaining, period)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, DefaultMessages, time.Now().UTC().Format("2006-01"))
	return err
}

// Remaining reports the messages left for uid in the current month.
func (s *Store) Remaining(ctx context.Context, uid string) (int, error) {
	period := time.Now().UTC().Format("2006-01")

	var remaining int
	var rowPeriod string
	err := s.db.QueryRow(ctx, `
		SELECT messages_remaining, period FROM message_quota WHERE uid = $1
	`, uid).Scan(&remaining, &rowPeriod)
	if err != nil {
		return 0, err
	}
	if rowPeriod != period {
		return DefaultMessages, nil
	}
	return remaining, nil
}
