package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const defaultListLimit = 200

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

// Record writes an audit event. Failures are logged and swallowed so
// that auditing never blocks the mutation it describes.
func (s *Service) Record(ctx context.Context, actorID, action, entityKind, entityID, detail string) {
	event := Event{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		Action:     action,
		EntityKind: entityKind,
		EntityID:   entityID,
		Detail:     detail,
		OccurredAt: s.now(),
	}
	if err := s.store.Insert(ctx, event); err != nil {
		slog.Warn("audit event not recorded", "action", action, "error", err)
	}
}

func (s *Service) List(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.store.List(ctx, limit)
}
