// Package model contains the GORM persistence models mirroring the database
// tables. They are exported so the GORM Gen tool can reference them.
package model

import "time"

// UserModel mirrors the 'users' table. Email and username each carry a unique index.
type UserModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username       string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	FullName       string    `gorm:"type:varchar(100)"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsAdmin        bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
