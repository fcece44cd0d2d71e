package scheduling

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Shift, error) {
	return s.query(ctx, `
    SELECT id, employee_id, start_at, end_at
    FROM shifts
    ORDER BY start_at
  `)
}

func (s *Store) ListBetween(ctx context.Context, from, to time.Time) ([]Shift, error) {
	return s.query(ctx, `
    SELECT id, employee_id, start_at, end_at
    FROM shifts
    WHERE start_at < $2 AND end_at > $1
    ORDER BY start_at
  `, from, to)
}

func (s *Store) ListForEmployee(ctx context.Context, employeeID string) ([]Shift, error) {
	return s.query(ctx, `
    SELECT id, employee_id, start_at, end_at
    FROM shifts
    WHERE employee_id = $1
    ORDER BY start_at
  `, employeeID)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Shift, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []Shift
	for rows.Next() {
		var shift Shift
		if err := rows.Scan(&shift.ID, &shift.EmployeeID, &shift.Start, &shift.End); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

func (s *Store) Insert(ctx context.Context, shift Shift) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO shifts (id, employee_id, start_at, end_at)
    VALUES ($1,$2,$3,$4)
  `, shift.ID, shift.EmployeeID, shift.Start, shift.End)
	return err
}

func (s *Store) Update(ctx context.Context, shift Shift) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE shifts SET employee_id = $2, start_at = $3, end_at = $4
    WHERE id = $1
  `, shift.ID, shift.EmployeeID, shift.Start, shift.End)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM shifts WHERE id = $1", id)
	return err
}
