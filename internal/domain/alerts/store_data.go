package alerts

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

func (s *Store) ListManual(ctx context.Context) ([]Alert, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT entity_kind, entity_id, facet, type, description, due_date, due_km, urgency, seen
    FROM manual_alerts
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Alert
	for rows.Next() {
		var alert Alert
		if err := rows.Scan(
			&alert.Key.Kind, &alert.Key.EntityID, &alert.Key.Facet,
			&alert.Type, &alert.Description,
			&alert.Due.Date, &alert.Due.Km,
			&alert.Urgency, &alert.Seen,
		); err != nil {
			return nil, err
		}
		alert.ID = alert.Key.String()
		alert.Manual = true
		out = append(out, alert)
	}
	return out, rows.Err()
}

func (s *Store) InsertManual(ctx context.Context, alert Alert) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO manual_alerts (entity_kind, entity_id, facet, type, description, due_date, due_km, urgency, seen)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    ON CONFLICT (entity_kind, entity_id, facet) DO UPDATE
      SET type = EXCLUDED.type,
          description = EXCLUDED.description,
          due_date = EXCLUDED.due_date,
          due_km = EXCLUDED.due_km,
          urgency = EXCLUDED.urgency,
          seen = EXCLUDED.seen
  `,
		alert.Key.Kind, alert.Key.EntityID, alert.Key.Facet,
		alert.Type, alert.Description,
		alert.Due.Date, alert.Due.Km,
		alert.Urgency, alert.Seen,
	)
	return err
}

func (s *Store) SetSeen(ctx context.Context, key Key) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE manual_alerts SET seen = true
    WHERE entity_kind = $1 AND entity_id = $2 AND facet = $3
  `, key.Kind, key.EntityID, key.Facet)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
