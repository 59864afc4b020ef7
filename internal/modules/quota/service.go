// README: Quota service; lazy row creation around the atomic deduction.
package quota

import "context"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Consume deducts one message from the user's monthly allowance, creating the
// row on first contact. With a nil store (local development without Postgres)
// every request is allowed.
func (s *Service) Consume(ctx context.Context, uid string) error {
	if s == nil || s.store == nil {
		return nil
	}

	err := s.store.Consume(ctx, uid)
	if err != ErrQuotaExceeded {
		return err
	}

	// Row may simply be missing: create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, uid)
}
