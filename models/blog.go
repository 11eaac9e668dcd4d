package models

import "time"

type BlogPost struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"not null" json:"title"`
	Slug           string     `gorm:"uniqueIndex;not null" json:"slug"`
	Content        string     `json:"content"`
	Excerpt        string     `json:"excerpt"`
	FeaturedImage  string     `json:"featured_image"`
	IsPublished    bool       `gorm:"default:false" json:"is_published"`
	Author         string     `gorm:"default:'PurDetall'" json:"author"`
	Tags           StringList `gorm:"type:text" json:"tags"`
	SEOTitle       string     `json:"seo_title"`
	SEODescription string     `json:"seo_description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
