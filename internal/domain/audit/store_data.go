package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, event Event) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO audit_events (id, actor_id, action, entity_kind, entity_id, detail, occurred_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, event.ID, event.ActorID, event.Action, event.EntityKind, event.EntityID, event.Detail, event.OccurredAt)
	return err
}

func (s *Store) List(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, actor_id, action, entity_kind, entity_id, COALESCE(detail, ''), occurred_at
    FROM audit_events
    ORDER BY occurred_at DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.ActorID, &event.Action, &event.EntityKind, &event.EntityID, &event.Detail, &event.OccurredAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
