package service

import "errors"

var (
	ErrInternal = errors.New("internal server error")

	ErrBlogNotFound    = errors.New("blog not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrSlugExists      = errors.New("a blog with this slug already exists")

	ErrNameAndContentRequired   = errors.New("name and comment are required")
	ErrCommentTooShort          = errors.New("comment must be at least 3 characters")
	ErrCommentTooLong           = errors.New("comment must be less than 1000 characters")
	ErrInvalidCommentStatus     = errors.New("invalid status")
	ErrFingerprintRequired      = errors.New("fingerprint required")
	ErrEmailAndPasswordRequired = errors.New("email and password are required")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
