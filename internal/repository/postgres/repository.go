package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/digicides/blog-service/internal/config"
	"github.com/digicides/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, connString)
}

type Blog interface {
	Create(ctx context.Context, blog model.Blog) (*model.Blog, error)
	FindAll(ctx context.Context, status *model.BlogStatus) ([]*model.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*model.Blog, error)
	Update(ctx context.Context, blog model.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, comment model.BlogComment) (*model.BlogComment, error)
	FindByBlog(ctx context.Context, blogID uuid.UUID, status *model.CommentStatus) ([]*model.BlogComment, error)
	FindAll(ctx context.Context, status *model.CommentStatus) ([]*model.AdminComment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.BlogComment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.CommentStatus, approvedAt *time.Time, approvedBy *string) (*model.BlogComment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Like interface {
	Exists(ctx context.Context, blogID uuid.UUID, fingerprint string) (bool, error)
	Toggle(ctx context.Context, blogID uuid.UUID, fingerprint string) (bool, error)
}

type Admin interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type Session interface {
	Create(ctx context.Context, session model.AdminSession) error
	FindByToken(ctx context.Context, token string) (*model.AdminSession, *model.Admin, error)
	DeleteByToken(ctx context.Context, token string) error
}

type PostgresRepository struct {
	Blog
	Comment
	Like
	Admin
	Session
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Blog:    newBlogRepo(db),
		Comment: newCommentRepo(db),
		Like:    newLikeRepo(db),
		Admin:   newAdminRepo(db),
		Session: newSessionRepo(db),
	}
}
