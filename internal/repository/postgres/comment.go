package postgres

import (
	"context"
	"time"

	"github.com/digicides/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const commentColumns = `id, blog_id, user_name, user_email, content, status, created_at, approved_at, approved_by`

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.BlogComment) (*model.BlogComment, error) {
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blog_comments(blog_id, user_name, user_email, content, status)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		comment.BlogID,
		comment.UserName,
		comment.UserEmail,
		comment.Content,
		comment.Status,
	).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByBlog(ctx context.Context, blogID uuid.UUID, status *model.CommentStatus) ([]*model.BlogComment, error) {
	var rows pgx.Rows
	var err error
	if status == nil {
		rows, err = r.db.Query(
			ctx,
			`SELECT `+commentColumns+` FROM blog_comments WHERE blog_id = $1 ORDER BY created_at DESC`,
			blogID,
		)
	} else {
		rows, err = r.db.Query(
			ctx,
			`SELECT `+commentColumns+` FROM blog_comments WHERE blog_id = $1 AND status = $2 ORDER BY created_at DESC`,
			blogID,
			*status,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.BlogComment
	for rows.Next() {
		var comment model.BlogComment
		if err := scanComment(rows, &comment); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) FindAll(ctx context.Context, status *model.CommentStatus) ([]*model.AdminComment, error) {
	query := `SELECT
	c.id, c.blog_id, c.user_name, c.user_email, c.content, c.status, c.created_at, c.approved_at, c.approved_by, b.title, b.slug
	FROM blog_comments c
	JOIN blogs b ON c.blog_id = b.id`

	var rows pgx.Rows
	var err error
	if status == nil {
		rows, err = r.db.Query(ctx, query+` ORDER BY c.created_at DESC`)
	} else {
		rows, err = r.db.Query(ctx, query+` WHERE c.status = $1 ORDER BY c.created_at DESC`, *status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.AdminComment
	for rows.Next() {
		var comment model.AdminComment
		if err := rows.Scan(
			&comment.ID,
			&comment.BlogID,
			&comment.UserName,
			&comment.UserEmail,
			&comment.Content,
			&comment.Status,
			&comment.CreatedAt,
			&comment.ApprovedAt,
			&comment.ApprovedBy,
			&comment.BlogTitle,
			&comment.BlogSlug,
		); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.BlogComment, error) {
	var comment model.BlogComment
	row := r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM blog_comments WHERE id = $1`, id)
	if err := scanComment(row, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CommentStatus, approvedAt *time.Time, approvedBy *string) (*model.BlogComment, error) {
	var comment model.BlogComment
	row := r.db.QueryRow(
		ctx,
		`UPDATE blog_comments SET status = $2, approved_at = $3, approved_by = $4 WHERE id = $1 RETURNING `+commentColumns,
		id,
		status,
		approvedAt,
		approvedBy,
	)
	if err := scanComment(row, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blog_comments WHERE id = $1`, id)
	return err
}

func scanComment(row pgx.Row, comment *model.BlogComment) error {
	return row.Scan(
		&comment.ID,
		&comment.BlogID,
		&comment.UserName,
		&comment.UserEmail,
		&comment.Content,
		&comment.Status,
		&comment.CreatedAt,
		&comment.ApprovedAt,
		&comment.ApprovedBy,
	)
}
