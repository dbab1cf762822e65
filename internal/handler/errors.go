package handler

import (
	"errors"
	"net/http"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidBlogID = errors.New("invalid blog ID")
	errInvalidID     = errors.New("invalid ID")
)

// serviceError maps a service error to its HTTP status and writes the JSON
// error body.
func (h *Handler) serviceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrBlogNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrSlugExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNameAndContentRequired),
		errors.Is(err, service.ErrCommentTooShort),
		errors.Is(err, service.ErrCommentTooLong),
		errors.Is(err, service.ErrInvalidCommentStatus),
		errors.Is(err, service.ErrFingerprintRequired),
		errors.Is(err, service.ErrEmailAndPasswordRequired):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrTooManyAttempts):
		status = http.StatusTooManyRequests
	}

	c.JSON(status, dto.NewErrorResponse(err))
}
