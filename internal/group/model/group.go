package model

import "time"

// Group represents a named, possibly hidden collection of users.
// Matches the groups table schema. Slugs are stored lower-case and map
// case-insensitively to exactly one group.
type Group struct {
	ID          string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Slug        string    `gorm:"column:slug;type:varchar(255);uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Hidden      bool      `gorm:"column:hidden;not null;default:false" json:"hidden"`
	Ephemeral   bool      `gorm:"column:ephemeral;not null;default:false" json:"ephemeral"`
	MemberCount int64     `gorm:"column:member_count;not null;default:0" json:"member_count"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "groups"
}

// GroupMember is the membership relation between a user and a group.
type GroupMember struct {
	GroupID  string    `gorm:"primaryKey;column:group_id;type:uuid" json:"group_id"`
	UserID   string    `gorm:"primaryKey;column:user_id;type:uuid" json:"user_id"`
	JoinedAt time.Time `gorm:"column:joined_at;not null" json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (GroupMember) TableName() string {
	return "group_members"
}

// GroupInvitation is a pending invitation of a user into a group.
// Invitees need not be members; an invitation alone grants visibility
// into a hidden group.
type GroupInvitation struct {
	GroupID   string    `gorm:"primaryKey;column:group_id;type:uuid" json:"group_id"`
	UserID    string    `gorm:"primaryKey;column:user_id;type:uuid" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (GroupInvitation) TableName() string {
	return "group_invitations"
}
