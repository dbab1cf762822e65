package dto

import (
	"github.com/digicides/blog-service/internal/model"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}

type BlogsResponse struct {
	Success bool          `json:"success"`
	Blogs   []*model.Blog `json:"blogs"`
}

type BlogResponse struct {
	Success bool        `json:"success"`
	Blog    *model.Blog `json:"blog"`
}

type CommentsResponse struct {
	Success  bool                 `json:"success"`
	Comments []*model.BlogComment `json:"comments"`
}

type AdminCommentsResponse struct {
	Success  bool                  `json:"success"`
	Comments []*model.AdminComment `json:"comments"`
}

type CommentResponse struct {
	Success bool               `json:"success"`
	Comment *model.BlogComment `json:"comment"`
	Message string             `json:"message"`
}

// LikeStatus reports the state of one (blog, fingerprint) pair after a check or
// toggle. Action is "liked" or "unliked" and only set by toggles.
type LikeStatus struct {
	Success    bool   `json:"success"`
	HasLiked   bool   `json:"hasLiked"`
	LikesCount int64  `json:"likesCount"`
	Action     string `json:"action,omitempty"`
}

type AuthAdmin struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Admin   AuthAdmin `json:"admin"`
}

type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Admin         *AuthAdmin `json:"admin,omitempty"`
}
