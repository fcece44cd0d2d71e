package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("medical supply not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]MedicalSupply, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, category, stock, reorder_level, expires_at
    FROM medical_supplies
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var supplies []MedicalSupply
	for rows.Next() {
		var supply MedicalSupply
		if err := rows.Scan(&supply.ID, &supply.Name, &supply.Category, &supply.Stock, &supply.ReorderLevel, &supply.ExpiresAt); err != nil {
			return nil, err
		}
		supplies = append(supplies, supply)
	}
	return supplies, rows.Err()
}

func (s *Store) Insert(ctx context.Context, supply MedicalSupply) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO medical_supplies (id, name, category, stock, reorder_level, expires_at)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, supply.ID, supply.Name, supply.Category, supply.Stock, supply.ReorderLevel, supply.ExpiresAt)
	return err
}

func (s *Store) Update(ctx context.Context, supply MedicalSupply) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE medical_supplies SET name = $2, category = $3, stock = $4, reorder_level = $5, expires_at = $6
    WHERE id = $1
  `, supply.ID, supply.Name, supply.Category, supply.Stock, supply.ReorderLevel, supply.ExpiresAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM medical_supplies WHERE id = $1", id)
	return err
}
