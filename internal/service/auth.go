package service

import (
	"context"
	"strings"
	"time"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/model"
	"github.com/digicides/blog-service/internal/repository"
	"github.com/digicides/blog-service/pkg/utils"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type authService struct {
	logger  *zap.Logger
	repo    *repository.Repository
	limiter loginLimiter
}

func newAuthService(logger *zap.Logger, repo *repository.Repository, limiter loginLimiter) Auth {
	return &authService{
		logger:  logger,
		repo:    repo,
		limiter: limiter,
	}
}

func (s *authService) Login(ctx context.Context, input dto.LoginRequest, ip string) (*dto.AuthAdmin, string, time.Time, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", time.Time{}, ErrEmailAndPasswordRequired
	}

	if !s.limiter.Allow(ctx, ip) {
		return nil, "", time.Time{}, ErrTooManyAttempts
	}

	admin, err := s.repo.Postgres.Admin.FindByEmail(ctx, strings.ToLower(input.Email))
	if err == pgx.ErrNoRows {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find admin by email: %s", err.Error())
		return nil, "", time.Time{}, ErrInternal
	}

	if !utils.VerifyPassword(input.Password, admin.PasswordHash) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate session token: %s", err.Error())
		return nil, "", time.Time{}, ErrInternal
	}

	expiresAt := time.Now().Add(sessionTTL())
	session := model.AdminSession{
		AdminID:   admin.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := s.repo.Postgres.Session.Create(ctx, session); err != nil {
		s.logger.Sugar().Errorf("failed to create session for admin(%s): %s", admin.ID.String(), err.Error())
		return nil, "", time.Time{}, ErrInternal
	}

	// Best effort; a failed last-login stamp must not fail the login.
	if err := s.repo.Postgres.Admin.UpdateLastLogin(ctx, admin.ID, time.Now()); err != nil {
		s.logger.Sugar().Errorf("failed to update last login for admin(%s): %s", admin.ID.String(), err.Error())
	}

	return &dto.AuthAdmin{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	}, token, expiresAt, nil
}

func (s *authService) Validate(ctx context.Context, token string) (*dto.AuthAdmin, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	// Expired sessions are filtered out by the store query, so an expired token
	// fails here the same way a missing one does.
	_, admin, err := s.repo.Postgres.Session.FindByToken(ctx, token)
	if err == pgx.ErrNoRows {
		return nil, ErrUnauthorized
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to find session from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	return &dto.AuthAdmin{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.repo.Postgres.Session.DeleteByToken(ctx, token); err != nil {
		s.logger.Sugar().Errorf("failed to delete session: %s", err.Error())
		return ErrInternal
	}

	return nil
}

func sessionTTL() time.Duration {
	hours := viper.GetInt("auth.session_ttl_hours")
	if hours == 0 {
		hours = 24 * 7
	}
	return time.Duration(hours) * time.Hour
}
