package dto

type CreateBlogRequest struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content"`
	Author          string   `json:"author"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	Thumbnail       *string  `json:"thumbnail"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Status          string   `json:"status"`
}

// UpdateBlogRequest carries a partial update; nil fields are left untouched.
type UpdateBlogRequest struct {
	Title           *string   `json:"title"`
	Subtitle        *string   `json:"subtitle"`
	Slug            *string   `json:"slug"`
	Content         *string   `json:"content"`
	Author          *string   `json:"author"`
	Category        *string   `json:"category"`
	Tags            *[]string `json:"tags"`
	Thumbnail       *string   `json:"thumbnail"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
	Status          *string   `json:"status"`
}
