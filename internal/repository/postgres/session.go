package postgres

import (
	"context"

	"github.com/digicides/blog-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type sessionRepo struct {
	db *pgxpool.Pool
}

func newSessionRepo(db *pgxpool.Pool) Session {
	return &sessionRepo{
		db: db,
	}
}

func (r *sessionRepo) Create(ctx context.Context, session model.AdminSession) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO admin_sessions(admin_id, token, expires_at) VALUES($1, $2, $3)`,
		session.AdminID,
		session.Token,
		session.ExpiresAt,
	)
	return err
}

// FindByToken returns the session and its owning admin. Expired sessions are
// filtered out by the query and are indistinguishable from missing tokens.
func (r *sessionRepo) FindByToken(ctx context.Context, token string) (*model.AdminSession, *model.Admin, error) {
	var session model.AdminSession
	var admin model.Admin
	if err := r.db.QueryRow(
		ctx,
		`SELECT s.id, s.admin_id, s.expires_at, a.id, a.email, a.name
		FROM admin_sessions s
		JOIN admins a ON s.admin_id = a.id
		WHERE s.token = $1 AND s.expires_at > NOW()`,
		token,
	).Scan(
		&session.ID,
		&session.AdminID,
		&session.ExpiresAt,
		&admin.ID,
		&admin.Email,
		&admin.Name,
	); err != nil {
		return nil, nil, err
	}

	session.Token = token
	return &session, &admin, nil
}

func (r *sessionRepo) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM admin_sessions WHERE token = $1`, token)
	return err
}
