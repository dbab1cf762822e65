package service

import (
	"context"
	"strings"
	"time"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/model"
	"github.com/digicides/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	commentMinLength = 3
	commentMaxLength = 1000
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Submit(ctx context.Context, blogID uuid.UUID, input dto.CreateCommentRequest) (*model.BlogComment, error) {
	if strings.TrimSpace(input.UserName) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrNameAndContentRequired
	}
	if len(input.Content) < commentMinLength {
		return nil, ErrCommentTooShort
	}
	if len(input.Content) > commentMaxLength {
		return nil, ErrCommentTooLong
	}

	// Only published blogs accept comments; a draft target reads as missing.
	blog, err := s.repo.Postgres.Blog.FindByID(ctx, blogID)
	if err == pgx.ErrNoRows {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find blog(%s) from postgres: %s", blogID.String(), err.Error())
		return nil, ErrInternal
	}
	if blog.Status != model.BlogStatusPublished {
		return nil, ErrBlogNotFound
	}

	var email *string
	if input.UserEmail != nil {
		if trimmed := strings.TrimSpace(*input.UserEmail); trimmed != "" {
			email = &trimmed
		}
	}

	comment := model.BlogComment{
		BlogID:    blogID,
		UserName:  strings.TrimSpace(input.UserName),
		UserEmail: email,
		Content:   strings.TrimSpace(input.Content),
		Status:    model.CommentStatusPending,
	}

	created, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create comment for blog(%s): %s", blogID.String(), err.Error())
		return nil, ErrInternal
	}

	return created, nil
}

func (s *commentService) FindBlogComments(ctx context.Context, blogID uuid.UUID, asAdmin bool, status string) ([]*model.BlogComment, error) {
	// Non-admin callers only ever see approved comments, whatever they asked for.
	filter := statusFilter(status)
	if !asAdmin {
		approved := model.CommentStatusApproved
		filter = &approved
	}

	comments, err := s.repo.Postgres.Comment.FindByBlog(ctx, blogID, filter)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comments for blog(%s): %s", blogID.String(), err.Error())
		return nil, ErrInternal
	}

	if comments == nil {
		comments = []*model.BlogComment{}
	}

	return comments, nil
}

func (s *commentService) FindAll(ctx context.Context, status string) ([]*model.AdminComment, error) {
	comments, err := s.repo.Postgres.Comment.FindAll(ctx, statusFilter(status))
	if err != nil {
		s.logger.Sugar().Errorf("failed to find comments from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if comments == nil {
		comments = []*model.AdminComment{}
	}

	return comments, nil
}

func (s *commentService) Moderate(ctx context.Context, id uuid.UUID, status model.CommentStatus, approver string) (*model.BlogComment, error) {
	if status != model.CommentStatusApproved && status != model.CommentStatusRejected {
		return nil, ErrInvalidCommentStatus
	}

	var approvedAt *time.Time
	var approvedBy *string
	if status == model.CommentStatusApproved {
		now := time.Now()
		approvedAt = &now
		approvedBy = &approver
	}

	comment, err := s.repo.Postgres.Comment.UpdateStatus(ctx, id, status, approvedAt, approvedBy)
	if err == pgx.ErrNoRows {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to update comment(%s) status: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Postgres.Comment.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete comment(%s): %s", id.String(), err.Error())
		return ErrInternal
	}
	return nil
}

func statusFilter(status string) *model.CommentStatus {
	if status == "" || status == "all" {
		return nil
	}
	s := model.CommentStatus(status)
	return &s
}
