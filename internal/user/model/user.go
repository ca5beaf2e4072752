package model

import "time"

// User represents a registered user.
// Matches the users table schema.
type User struct {
	ID              string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Username        string    `gorm:"column:username;type:varchar(255);not null" json:"username"`
	Admin           bool      `gorm:"column:admin;not null;default:false" json:"admin"`
	GlobalModerator bool      `gorm:"column:global_moderator;not null;default:false" json:"global_moderator"`
	Active          bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
