package interest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("note not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Note, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, body, created_by, created_at, updated_at
    FROM interest_notes
    ORDER BY updated_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var note Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &note.CreatedBy, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (s *Store) Insert(ctx context.Context, note Note) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO interest_notes (id, title, body, created_by, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, note.ID, note.Title, note.Body, note.CreatedBy, note.CreatedAt, note.UpdatedAt)
	return err
}

func (s *Store) Update(ctx context.Context, note Note) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE interest_notes SET title = $2, body = $3, updated_at = $4
    WHERE id = $1
  `, note.ID, note.Title, note.Body, note.UpdatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM interest_notes WHERE id = $1", id)
	return err
}
