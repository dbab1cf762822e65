package model

import (
	"time"

	"github.com/google/uuid"
)

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

type Blog struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Author          string     `json:"author"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Thumbnail       *string    `json:"thumbnail"`
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	Status          BlogStatus `json:"status"`
	WordCount       int        `json:"wordCount"`
	ReadingTime     int        `json:"readingTime"`
	LikesCount      int64      `json:"likesCount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
