package service

import (
	"context"
	"time"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/model"
	"github.com/digicides/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Blog interface {
	FindAll(ctx context.Context, status *model.BlogStatus) ([]*model.Blog, error)
	FindByIDOrSlug(ctx context.Context, key string) (*model.Blog, error)
	Create(ctx context.Context, input dto.CreateBlogRequest) (*model.Blog, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateBlogRequest) (*model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Comment interface {
	Submit(ctx context.Context, blogID uuid.UUID, input dto.CreateCommentRequest) (*model.BlogComment, error)
	FindBlogComments(ctx context.Context, blogID uuid.UUID, asAdmin bool, status string) ([]*model.BlogComment, error)
	FindAll(ctx context.Context, status string) ([]*model.AdminComment, error)
	Moderate(ctx context.Context, id uuid.UUID, status model.CommentStatus, approver string) (*model.BlogComment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Like interface {
	Check(ctx context.Context, blogID uuid.UUID, fingerprint string) (*dto.LikeStatus, error)
	Toggle(ctx context.Context, blogID uuid.UUID, fingerprint string) (*dto.LikeStatus, error)
}

type Auth interface {
	Login(ctx context.Context, input dto.LoginRequest, ip string) (*dto.AuthAdmin, string, time.Time, error)
	Validate(ctx context.Context, token string) (*dto.AuthAdmin, error)
	Logout(ctx context.Context, token string) error
}

type Service struct {
	Blog
	Comment
	Like
	Auth
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Blog:    newBlogService(logger, repo),
		Comment: newCommentService(logger, repo),
		Like:    newLikeService(logger, repo),
		Auth:    newAuthService(logger, repo, newLoginLimiter(logger, repo.Redis)),
	}
}
