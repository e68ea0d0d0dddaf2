package entity

import "time"

// Sermon is a preached message with optional recorded media. The view counter
// is best-effort and monotonically non-decreasing; it is bumped as a side
// effect of single-record reads, never by list queries.
type Sermon struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Pastor       string    `json:"pastor"`
	BibleVerse   string    `json:"bible_verse"`
	SermonDate   time.Time `json:"sermon_date"` // Date the sermon was preached.
	Content      string    `json:"content"`
	VideoURL     string    `json:"video_url"`
	AudioURL     string    `json:"audio_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Views        int       `json:"views"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
