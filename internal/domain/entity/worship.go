package entity

import "time"

// Worship is a recurring worship schedule entry: a service type, the weekday
// and time it takes place, and who leads it. Worship entries carry no view
// counter; they are reference information, not articles.
type Worship struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	WorshipType string    `json:"worship_type"` // e.g. "sunday", "wednesday", "dawn".
	DayOfWeek   string    `json:"day_of_week"`
	Time        string    `json:"time"` // Service time of day, "HH:MM:SS".
	Location    string    `json:"location"`
	Pastor      string    `json:"pastor"` // Free-text, no referential link to User.
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
