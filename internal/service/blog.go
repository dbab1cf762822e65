package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/model"
	"github.com/digicides/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphen.
func Slugify(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// ReadingStats computes the word count of content with HTML tags stripped, and
// the reading time at 200 words per minute with a minimum of 1.
func ReadingStats(content string) (int, int) {
	plain := htmlTagPattern.ReplaceAllString(content, "")
	wordCount := len(strings.Fields(plain))
	readingTime := (wordCount + 199) / 200
	if readingTime < 1 {
		readingTime = 1
	}
	return wordCount, readingTime
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type blogService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newBlogService(logger *zap.Logger, repo *repository.Repository) Blog {
	return &blogService{
		logger: logger,
		repo:   repo,
	}
}

func (s *blogService) FindAll(ctx context.Context, status *model.BlogStatus) ([]*model.Blog, error) {
	blogs, err := s.repo.Postgres.Blog.FindAll(ctx, status)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find blogs from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if blogs == nil {
		blogs = []*model.Blog{}
	}

	return blogs, nil
}

func (s *blogService) FindByIDOrSlug(ctx context.Context, key string) (*model.Blog, error) {
	if id, err := uuid.Parse(key); err == nil {
		blog, err := s.repo.Postgres.Blog.FindByID(ctx, id)
		if err == nil {
			return blog, nil
		}
		if err != pgx.ErrNoRows {
			s.logger.Sugar().Errorf("failed to find blog(%s) from postgres: %s", key, err.Error())
			return nil, ErrInternal
		}
	}

	blog, err := s.repo.Postgres.Blog.FindBySlug(ctx, key)
	if err == pgx.ErrNoRows {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find blog by slug(%s) from postgres: %s", key, err.Error())
		return nil, ErrInternal
	}

	return blog, nil
}

func (s *blogService) Create(ctx context.Context, input dto.CreateBlogRequest) (*model.Blog, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(input.Title)
	}

	existing, err := s.repo.Postgres.Blog.FindBySlug(ctx, slug)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to check slug(%s) in postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}
	if existing != nil {
		return nil, ErrSlugExists
	}

	wordCount, readingTime := ReadingStats(input.Content)

	status := model.BlogStatusDraft
	if input.Status != "" {
		status = model.BlogStatus(input.Status)
	}

	metaTitle := input.MetaTitle
	if metaTitle == "" {
		metaTitle = input.Title
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	blog := model.Blog{
		Title:           input.Title,
		Subtitle:        input.Subtitle,
		Slug:            slug,
		Content:         input.Content,
		Author:          input.Author,
		Category:        input.Category,
		Tags:            tags,
		Thumbnail:       input.Thumbnail,
		MetaTitle:       metaTitle,
		MetaDescription: input.MetaDescription,
		Status:          status,
		WordCount:       wordCount,
		ReadingTime:     readingTime,
		LikesCount:      0,
	}

	created, err := s.repo.Postgres.Blog.Create(ctx, blog)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		s.logger.Sugar().Errorf("failed to create blog(%s): %s", slug, err.Error())
		return nil, ErrInternal
	}

	return created, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateBlogRequest) (*model.Blog, error) {
	blog, err := s.repo.Postgres.Blog.FindByID(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find blog(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Subtitle != nil {
		blog.Subtitle = *input.Subtitle
	}
	if input.Slug != nil {
		blog.Slug = *input.Slug
	}
	if input.Content != nil {
		blog.Content = *input.Content
		blog.WordCount, blog.ReadingTime = ReadingStats(*input.Content)
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.Category != nil {
		blog.Category = *input.Category
	}
	if input.Tags != nil {
		blog.Tags = *input.Tags
	}
	if input.Thumbnail != nil {
		blog.Thumbnail = input.Thumbnail
	}
	if input.MetaTitle != nil {
		blog.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		blog.MetaDescription = *input.MetaDescription
	}
	if input.Status != nil {
		blog.Status = model.BlogStatus(*input.Status)
	}
	blog.UpdatedAt = time.Now()

	if err := s.repo.Postgres.Blog.Update(ctx, *blog); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrBlogNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		s.logger.Sugar().Errorf("failed to update blog(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Postgres.Blog.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete blog(%s): %s", id.String(), err.Error())
		return ErrInternal
	}
	return nil
}
