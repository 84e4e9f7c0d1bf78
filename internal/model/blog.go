package model

import "time"

const (
	DefaultBlogCategory = "Other"
	MaxExcerptLength    = 300
)

var BlogCategories = []string{"Branding", "Marketing", "Design", "Business Tips", "Case Studies", "Other"}

type BlogPost struct {
	ID            string    `json:"id" bson:"_id"`
	Title         string    `json:"title" bson:"title"`
	Slug          string    `json:"slug" bson:"slug"`
	Author        string    `json:"author" bson:"author"`
	Excerpt       string    `json:"excerpt" bson:"excerpt"`
	Content       string    `json:"content,omitempty" bson:"content"`
	FeaturedImage string    `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
	Category      string    `json:"category" bson:"category"`
	Tags          []string  `json:"tags" bson:"tags"`
	Published     bool      `json:"published" bson:"published"`
	Views         int64     `json:"views" bson:"views"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

type BlogListOptions struct {
	Category string
	Tag      string
	// PublishedOnly hides drafts and strips Content from results.
	PublishedOnly bool
	Page
}
