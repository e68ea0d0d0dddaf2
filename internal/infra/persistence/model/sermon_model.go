package model

import "time"

// SermonModel mirrors the 'sermons' table.
type SermonModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Pastor       string    `gorm:"type:varchar(100);not null"`
	BibleVerse   string    `gorm:"type:varchar(200)"`
	SermonDate   time.Time `gorm:"type:date;not null"`
	Content      string    `gorm:"type:text"`
	VideoURL     string    `gorm:"type:varchar(500)"`
	AudioURL     string    `gorm:"type:varchar(500)"`
	ThumbnailURL string    `gorm:"type:varchar(500)"`
	Views        int       `gorm:"not null;default:0"`
	IsPublished  bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SermonModel) TableName() string {
	return "sermons"
}
