// Package model provides domain models for the content module.
package model

import "time"

// Post represents a user-authored post.
// Matches the posts table schema.
type Post struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	AuthorID  string    `gorm:"column:author_id;type:uuid;not null" json:"author_id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Post) TableName() string {
	return "posts"
}

// MemberPost is a post joined with its author's name, as shown on group
// detail views.
type MemberPost struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
