package domain

import "time"

// Status de publicação de um post
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

type BlogPost struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content,omitempty"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImage   *string    `json:"featured_image"`
	Tags            []string   `json:"tags"`
	Status          string     `json:"status,omitempty"`
	MetaTitle       *string    `json:"meta_title,omitempty"`
	MetaDescription *string    `json:"meta_description,omitempty"`
	AuthorID        int        `json:"author_id,omitempty"`
	AuthorName      *string    `json:"author_name"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at,omitempty"`
}

type CreateBlogPostRequest struct {
	Title           string   `json:"title"`
	Slug            *string  `json:"slug"`
	Content         string   `json:"content"`
	Excerpt         *string  `json:"excerpt"`
	FeaturedImage   *string  `json:"featured_image"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
}

type UpdateBlogPostRequest struct {
	Title           *string  `json:"title"`
	Slug            *string  `json:"slug"`
	Content         *string  `json:"content"`
	Excerpt         *string  `json:"excerpt"`
	FeaturedImage   *string  `json:"featured_image"`
	Tags            []string `json:"tags"`
	Status          *string  `json:"status"`
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
}

// BlogFilters são os filtros da listagem pública de posts
type BlogFilters struct {
	Tag    string
	Search string
	Page   int
	Limit  int
}
