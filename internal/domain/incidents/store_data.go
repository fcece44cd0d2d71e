package incidents

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("incident not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Incident, error) {
	return s.query(ctx, `
    SELECT id, description, date, vehicle_id, reported_by, status
    FROM incidents
    ORDER BY date DESC
  `)
}

func (s *Store) Recent(ctx context.Context, limit int) ([]Incident, error) {
	return s.query(ctx, `
    SELECT id, description, date, vehicle_id, reported_by, status
    FROM incidents
    ORDER BY date DESC
    LIMIT $1
  `, limit)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Incident, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []Incident
	for rows.Next() {
		var incident Incident
		if err := rows.Scan(&incident.ID, &incident.Description, &incident.Date, &incident.VehicleID, &incident.ReportedBy, &incident.Status); err != nil {
			return nil, err
		}
		incidents = append(incidents, incident)
	}
	return incidents, rows.Err()
}

func (s *Store) Insert(ctx context.Context, incident Incident) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO incidents (id, description, date, vehicle_id, reported_by, status)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, incident.ID, incident.Description, incident.Date, incident.VehicleID, incident.ReportedBy, incident.Status)
	return err
}

func (s *Store) Update(ctx context.Context, incident Incident) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE incidents SET description = $2, date = $3, vehicle_id = $4, reported_by = $5, status = $6
    WHERE id = $1
  `, incident.ID, incident.Description, incident.Date, incident.VehicleID, incident.ReportedBy, incident.Status)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM incidents WHERE id = $1", id)
	return err
}
