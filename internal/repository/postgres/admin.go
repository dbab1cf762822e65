package postgres

import (
	"context"
	"time"

	"github.com/digicides/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func newAdminRepo(db *pgxpool.Pool) Admin {
	return &adminRepo{
		db: db,
	}
}

func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, email, name, password_hash, last_login FROM admins WHERE lower(email) = lower($1)`,
		email,
	).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.LastLogin,
	); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE admins SET last_login = $2 WHERE id = $1`, id, at)
	return err
}
