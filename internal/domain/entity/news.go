package entity

import "time"

// News is a church announcement or article. Category is a free-text grouping
// ("notice", "event", ...) used for exact-match filtering of published lists.
type News struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Category     string     `json:"category"`
	Author       string     `json:"author"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Views        int        `json:"views"`
	IsPublished  bool       `json:"is_published"`
	PublishedAt  *time.Time `json:"published_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
