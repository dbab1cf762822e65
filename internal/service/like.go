package service

import (
	"context"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type likeService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newLikeService(logger *zap.Logger, repo *repository.Repository) Like {
	return &likeService{
		logger: logger,
		repo:   repo,
	}
}

func (s *likeService) Check(ctx context.Context, blogID uuid.UUID, fingerprint string) (*dto.LikeStatus, error) {
	if fingerprint == "" {
		return nil, ErrFingerprintRequired
	}

	hasLiked, err := s.repo.Postgres.Like.Exists(ctx, blogID, fingerprint)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check like for blog(%s): %s", blogID.String(), err.Error())
		return nil, ErrInternal
	}

	likesCount, err := s.likesCount(ctx, blogID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeStatus{
		Success:    true,
		HasLiked:   hasLiked,
		LikesCount: likesCount,
	}, nil
}

func (s *likeService) Toggle(ctx context.Context, blogID uuid.UUID, fingerprint string) (*dto.LikeStatus, error) {
	if fingerprint == "" {
		return nil, ErrFingerprintRequired
	}

	if _, err := s.repo.Postgres.Blog.FindByID(ctx, blogID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrBlogNotFound
		}
		s.logger.Sugar().Errorf("failed to find blog(%s) from postgres: %s", blogID.String(), err.Error())
		return nil, ErrInternal
	}

	liked, err := s.repo.Postgres.Like.Toggle(ctx, blogID, fingerprint)
	if err != nil {
		s.logger.Sugar().Errorf("failed to toggle like for blog(%s): %s", blogID.String(), err.Error())
		return nil, ErrInternal
	}

	// The store keeps likes_count in step with the join table; re-read it after
	// the mutation.
	likesCount, err := s.likesCount(ctx, blogID)
	if err != nil {
		return nil, err
	}

	action := "unliked"
	if liked {
		action = "liked"
	}

	return &dto.LikeStatus{
		Success:    true,
		HasLiked:   liked,
		LikesCount: likesCount,
		Action:     action,
	}, nil
}

func (s *likeService) likesCount(ctx context.Context, blogID uuid.UUID) (int64, error) {
	blog, err := s.repo.Postgres.Blog.FindByID(ctx, blogID)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to read likes count for blog(%s): %s", blogID.String(), err.Error())
		return 0, ErrInternal
	}
	return blog.LikesCount, nil
}
