// Package repository provides the principal store for the user module.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mkravchenko/groupdir/internal/principal"
	userModel "github.com/mkravchenko/groupdir/internal/user/model"
)

// Repository defines principal-level predicates and member roster access.
type Repository interface {
	// IsAdministrator reports whether the principal is an administrator.
	IsAdministrator(ctx context.Context, p principal.Principal) (bool, error)

	// IsGlobalModerator reports whether the principal is a global moderator.
	IsGlobalModerator(ctx context.Context, p principal.Principal) (bool, error)

	// IsAdminOrGlobalMod reports whether the principal holds either role.
	IsAdminOrGlobalMod(ctx context.Context, p principal.Principal) (bool, error)

	// FetchMembersPage returns the members of a group between the
	// zero-based start and stop indexes inclusive, ordered by join time.
	FetchMembersPage(ctx context.Context, groupID string, start, stop int) ([]userModel.Member, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// IsAdministrator reports whether the principal is an administrator.
// Anonymous principals hold no roles and cause no lookup.
func (r *repository) IsAdministrator(ctx context.Context, p principal.Principal) (bool, error) {
	return r.hasRole(ctx, p, "admin = ?", true)
}

// IsGlobalModerator reports whether the principal is a global moderator.
func (r *repository) IsGlobalModerator(ctx context.Context, p principal.Principal) (bool, error) {
	return r.hasRole(ctx, p, "global_moderator = ?", true)
}

// IsAdminOrGlobalMod reports whether the principal holds either role.
func (r *repository) IsAdminOrGlobalMod(ctx context.Context, p principal.Principal) (bool, error) {
	return r.hasRole(ctx, p, "admin = ? OR global_moderator = ?", true, true)
}

func (r *repository) hasRole(ctx context.Context, p principal.Principal, condition string, args ...interface{}) (bool, error) {
	if p.IsAnonymous() {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel.User{}).
		Where("id = ? AND active = ?", p.UserID, true).
		Where(condition, args...).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// FetchMembersPage returns one page of a group's member roster, ordered by
// join time with user id as the tiebreaker.
func (r *repository) FetchMembersPage(ctx context.Context, groupID string, start, stop int) ([]userModel.Member, error) {
	if start < 0 {
		start = 0
	}
	limit := stop - start + 1
	if limit <= 0 {
		return []userModel.Member{}, nil
	}

	var members []userModel.Member
	err := r.db.WithContext(ctx).
		Table("group_members").
		Select("users.id AS user_id, users.username").
		Joins("JOIN users ON users.id = group_members.user_id").
		Where("group_members.group_id = ?", groupID).
		Order("group_members.joined_at ASC, users.id ASC").
		Offset(start).
		Limit(limit).
		Scan(&members).Error
	if err != nil {
		return nil, err
	}

	if members == nil {
		members = []userModel.Member{}
	}
	return members, nil
}
