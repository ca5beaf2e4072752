// Package repository provides the recent-content store for the content module.
package repository

import (
	"context"

	"gorm.io/gorm"

	contentModel "github.com/mkravchenko/groupdir/internal/content/model"
)

// Repository defines recent-content access for group detail views.
type Repository interface {
	// LatestMemberContent returns the newest posts authored by the
	// group's members, newest first, limited to limit entries.
	LatestMemberContent(ctx context.Context, groupID string, limit int) ([]contentModel.MemberPost, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new content repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// LatestMemberContent returns the newest posts authored by members of
// the group.
func (r *repository) LatestMemberContent(ctx context.Context, groupID string, limit int) ([]contentModel.MemberPost, error) {
	if limit <= 0 {
		return []contentModel.MemberPost{}, nil
	}

	var posts []contentModel.MemberPost
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.author_id, users.username AS author_name, posts.body, posts.created_at").
		Joins("JOIN group_members ON group_members.user_id = posts.author_id").
		Joins("JOIN users ON users.id = posts.author_id").
		Where("group_members.group_id = ?", groupID).
		Order("posts.created_at DESC, posts.id ASC").
		Limit(limit).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []contentModel.MemberPost{}
	}
	return posts, nil
}
