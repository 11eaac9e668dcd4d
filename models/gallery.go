package models

import "time"

// GalleryEntry holds a before/after photo pair, optionally linked to the
// service that produced the result. The service reference is weak: deleting
// a service does not cascade here.
type GalleryEntry struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	BeforeImage string `json:"before_image"`
	AfterImage  string `json:"after_image"`
	ServiceID   *uint  `gorm:"index" json:"service_id"`
	IsFeatured  bool   `gorm:"default:false" json:"is_featured"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
}

func (GalleryEntry) TableName() string {
	return "gallery"
}
