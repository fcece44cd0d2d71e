package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleetops/internal/domain/auth"
	"fleetops/internal/platform/config"
)

// Seed guarantees an admin account exists so a fresh deployment can log in.
// It is idempotent and never overwrites an existing account.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	return ensureAdminAccount(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureAdminAccount(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)", email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO employees (
      id, first_name, last_name, role, email, active, password_hash,
      mandatory_documents, labor_documents, additional_documents, payslips
    ) VALUES ($1, 'Admin', 'User', $2, $3, TRUE, $4, '[]', '[]', '[]', '[]')
  `, uuid.NewString(), auth.RoleAdmin, email, hash)
	return err
}
