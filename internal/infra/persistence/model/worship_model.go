package model

import "time"

// WorshipModel mirrors the 'worships' table.
type WorshipModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	WorshipType string `gorm:"type:varchar(50);not null"`
	DayOfWeek   string `gorm:"type:varchar(20)"`
	Time        string `gorm:"type:time"`
	Location    string `gorm:"type:varchar(200)"`
	Pastor      string `gorm:"type:varchar(100)"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorshipModel) TableName() string {
	return "worships"
}
