package model

import (
	"time"

	"github.com/google/uuid"
)

type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
)

type BlogComment struct {
	ID         uuid.UUID     `json:"id"`
	BlogID     uuid.UUID     `json:"blogId"`
	UserName   string        `json:"userName"`
	UserEmail  *string       `json:"userEmail,omitempty"`
	Content    string        `json:"content"`
	Status     CommentStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	ApprovedAt *time.Time    `json:"approvedAt,omitempty"`
	ApprovedBy *string       `json:"approvedBy,omitempty"`
}

// AdminComment is a comment joined with its owning blog for the moderation view.
type AdminComment struct {
	BlogComment
	BlogTitle string `json:"blogTitle"`
	BlogSlug  string `json:"blogSlug"`
}
