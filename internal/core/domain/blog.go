package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("blog post not found")

// BlogPost is a station blog entry written by staff.
type BlogPost struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	AuthorID         string    `json:"author_id"`
	FeaturedImageURL string    `json:"featured_image_url,omitempty"`
	Published        bool      `json:"is_published"`
	PublishedAt      time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
