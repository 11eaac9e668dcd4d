package models

import "time"

// Client is an address-book entry managed from the admin panel. The counters
// are informational; they are not recomputed from appointment rows.
type Client struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"not null" json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
	Notes             string  `json:"notes"`
	TotalAppointments int     `gorm:"default:0" json:"total_appointments"`
	TotalSpent        float64 `gorm:"type:decimal(10,2);default:0" json:"total_spent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
