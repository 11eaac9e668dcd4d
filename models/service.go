package models

import "time"

type Service struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	Title            string  `gorm:"not null" json:"title"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	PriceFrom        float64 `gorm:"type:decimal(10,2)" json:"price_from"`
	ImageURL         string  `json:"image_url"`
	// No column default: CreateService supplies true when the form omits the
	// field, and a gorm default would override an explicit false on insert.
	IsActive       bool   `json:"is_active"`
	SortOrder      int    `gorm:"default:0" json:"sort_order"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
