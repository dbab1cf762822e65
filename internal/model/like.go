package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogLike is one (blog, fingerprint) row. A fingerprint may like a blog at most
// once; uniqueness is enforced by the store.
type BlogLike struct {
	ID          uuid.UUID `json:"id"`
	BlogID      uuid.UUID `json:"blogId"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"`
}
