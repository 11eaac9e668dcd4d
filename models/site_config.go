package models

import "time"

// SiteConfig is a flat key-value store for site content and contact data.
// Keys are seeded at first run and only their values change afterwards.
type SiteConfig struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"uniqueIndex;not null" json:"key"`
	Value       string `json:"value"`
	Type        string `gorm:"default:'text'" json:"type"` // text, textarea, email, url
	Description string `json:"description"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteConfig) TableName() string {
	return "site_config"
}
