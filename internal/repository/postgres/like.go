package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type likeRepo struct {
	db *pgxpool.Pool
}

func newLikeRepo(db *pgxpool.Pool) Like {
	return &likeRepo{
		db: db,
	}
}

func (r *likeRepo) Exists(ctx context.Context, blogID uuid.UUID, fingerprint string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM blog_likes WHERE blog_id = $1 AND user_fingerprint = $2)`,
		blogID,
		fingerprint,
	).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Toggle removes the like row when present, inserts it when absent, and reports
// the resulting state. The unique constraint on (blog_id, user_fingerprint) plus
// ON CONFLICT DO NOTHING keeps concurrent toggles from the same fingerprint from
// double-inserting.
func (r *likeRepo) Toggle(ctx context.Context, blogID uuid.UUID, fingerprint string) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM blog_likes WHERE blog_id = $1 AND user_fingerprint = $2`,
		blogID,
		fingerprint,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO blog_likes(blog_id, user_fingerprint) VALUES($1, $2) ON CONFLICT (blog_id, user_fingerprint) DO NOTHING`,
		blogID,
		fingerprint,
	); err != nil {
		return false, err
	}

	return true, nil
}
