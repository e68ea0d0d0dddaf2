package model

import "time"

// NewsModel mirrors the 'news' table.
type NewsModel struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	Title        string     `gorm:"type:varchar(200);not null"`
	Content      string     `gorm:"type:text;not null"`
	Category     string     `gorm:"type:varchar(50)"`
	Author       string     `gorm:"type:varchar(100)"`
	ThumbnailURL string     `gorm:"type:varchar(500)"`
	Views        int        `gorm:"not null;default:0"`
	IsPublished  bool       `gorm:"not null;default:true"`
	PublishedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsModel) TableName() string {
	return "news"
}
