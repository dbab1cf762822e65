package postgres

import (
	"context"

	"github.com/digicides/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const blogColumns = `id, title, subtitle, slug, content, author, category, tags, thumbnail, meta_title, meta_description, status, word_count, reading_time, likes_count, created_at, updated_at`

type blogRepo struct {
	db *pgxpool.Pool
}

func newBlogRepo(db *pgxpool.Pool) Blog {
	return &blogRepo{
		db: db,
	}
}

func (r *blogRepo) Create(ctx context.Context, blog model.Blog) (*model.Blog, error) {
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO blogs(title, subtitle, slug, content, author, category, tags, thumbnail, meta_title, meta_description, status, word_count, reading_time, likes_count)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`,
		blog.Title,
		blog.Subtitle,
		blog.Slug,
		blog.Content,
		blog.Author,
		blog.Category,
		blog.Tags,
		blog.Thumbnail,
		blog.MetaTitle,
		blog.MetaDescription,
		blog.Status,
		blog.WordCount,
		blog.ReadingTime,
		blog.LikesCount,
	).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt); err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *blogRepo) FindAll(ctx context.Context, status *model.BlogStatus) ([]*model.Blog, error) {
	var rows pgx.Rows
	var err error
	if status == nil {
		rows, err = r.db.Query(ctx, `SELECT `+blogColumns+` FROM blogs ORDER BY created_at DESC`)
	} else {
		rows, err = r.db.Query(ctx, `SELECT `+blogColumns+` FROM blogs WHERE status = $1 ORDER BY created_at DESC`, *status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *blogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	row := r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
	return scanBlog(row)
}

func (r *blogRepo) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	row := r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug)
	return scanBlog(row)
}

func (r *blogRepo) Update(ctx context.Context, blog model.Blog) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE blogs SET
		title = $2, subtitle = $3, slug = $4, content = $5, author = $6, category = $7, tags = $8, thumbnail = $9,
		meta_title = $10, meta_description = $11, status = $12, word_count = $13, reading_time = $14, updated_at = $15
		WHERE id = $1`,
		blog.ID,
		blog.Title,
		blog.Subtitle,
		blog.Slug,
		blog.Content,
		blog.Author,
		blog.Category,
		blog.Tags,
		blog.Thumbnail,
		blog.MetaTitle,
		blog.MetaDescription,
		blog.Status,
		blog.WordCount,
		blog.ReadingTime,
		blog.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	return err
}

func scanBlog(row pgx.Row) (*model.Blog, error) {
	var blog model.Blog
	if err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Subtitle,
		&blog.Slug,
		&blog.Content,
		&blog.Author,
		&blog.Category,
		&blog.Tags,
		&blog.Thumbnail,
		&blog.MetaTitle,
		&blog.MetaDescription,
		&blog.Status,
		&blog.WordCount,
		&blog.ReadingTime,
		&blog.LikesCount,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	return &blog, nil
}
