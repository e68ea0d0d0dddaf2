// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. Regular accounts exist so members can
// authenticate; only accounts with IsAdmin set may mutate content.
type User struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`     // Unique login identifier.
	Username       string    `json:"username"`  // Unique handle, used for login.
	HashedPassword string    `json:"-"`         // bcrypt hash, never serialized.
	FullName       string    `json:"full_name"` // Optional real name.
	IsActive       bool      `json:"is_active"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
