// Package repository provides the group store for the group module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	userModel "github.com/mkravchenko/groupdir/internal/user/model"
)

// Repository defines the group store capabilities consumed by the
// directory service. All operations are read-only.
type Repository interface {
	// ResolveSlug maps a canonical (lower-case) slug to a group id.
	// Returns ErrGroupNotFound when no group carries the slug.
	ResolveSlug(ctx context.Context, slug string) (string, error)

	// Exists reports whether a group with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)

	// IsHidden reports whether the group is hidden. Missing groups
	// report false; existence is checked separately.
	IsHidden(ctx context.Context, id string) (bool, error)

	// IsMember reports whether the user is a member of the group.
	IsMember(ctx context.Context, userID, groupID string) (bool, error)

	// IsInvited reports whether the user holds a pending invitation
	// into the group.
	IsInvited(ctx context.Context, userID, groupID string) (bool, error)

	// GetByID retrieves a group by id. Returns ErrGroupNotFound when absent.
	GetByID(ctx context.Context, id string) (*groupModel.Group, error)

	// GetDetail retrieves a group with its member preview truncated to
	// previewCount entries. Returns ErrGroupNotFound when absent.
	GetDetail(ctx context.Context, id string, previewCount int) (*groupModel.GroupDetail, error)

	// ListBySort returns the groups between the zero-based start and
	// stop indexes inclusive under the given sort order.
	ListBySort(ctx context.Context, key groupModel.SortKey, start, stop int, includeHidden bool) ([]groupModel.Group, error)

	// CountBySort returns the total number of groups visible under the
	// same constraints as ListBySort.
	CountBySort(ctx context.Context, key groupModel.SortKey, includeHidden bool) (int64, error)

	// Search returns the entire matching result set for a free-text
	// query, filtered and sorted. The caller pages it in memory.
	Search(ctx context.Context, query string, filters groupModel.SearchFilters) ([]groupModel.Group, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new group repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// orderClause maps a sort key onto a deterministic SQL order. The slug
// tiebreaker keeps page boundaries stable between the range fetch and
// the count.
func orderClause(key groupModel.SortKey) string {
	switch key {
	case groupModel.SortByMembers:
		return "member_count DESC, slug ASC"
	case groupModel.SortByNewest:
		return "created_at DESC, slug ASC"
	default:
		return "name ASC, slug ASC"
	}
}

// ResolveSlug maps a slug to a group id, case-insensitively.
func (r *repository) ResolveSlug(ctx context.Context, slug string) (string, error) {
	if slug == "" {
		return "", groupModel.ErrInvalidSlug
	}

	var group groupModel.Group
	err := r.db.WithContext(ctx).
		Select("id").
		Where("slug = ?", strings.ToLower(slug)).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", groupModel.ErrGroupNotFound
		}
		return "", err
	}

	return group.ID, nil
}

// Exists reports whether a group with the given id exists.
func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&groupModel.Group{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsHidden reports whether the group is hidden.
func (r *repository) IsHidden(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&groupModel.Group{}).
		Where("id = ? AND hidden = ?", id, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsMember reports whether the user is a member of the group.
// Anonymous users are members of nothing and cause no lookup.
func (r *repository) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&groupModel.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsInvited reports whether the user holds a pending invitation.
func (r *repository) IsInvited(ctx context.Context, userID, groupID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&groupModel.GroupInvitation{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID retrieves a group by id.
func (r *repository) GetByID(ctx context.Context, id string) (*groupModel.Group, error) {
	var group groupModel.Group
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupModel.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// GetDetail retrieves a group with a truncated member preview.
func (r *repository) GetDetail(ctx context.Context, id string, previewCount int) (*groupModel.GroupDetail, error) {
	group, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var preview []userModel.Member
	if previewCount > 0 {
		err = r.db.WithContext(ctx).
			Table("group_members").
			Select("users.id AS user_id, users.username").
			Joins("JOIN users ON users.id = group_members.user_id").
			Where("group_members.group_id = ?", id).
			Order("group_members.joined_at ASC, users.id ASC").
			Limit(previewCount).
			Scan(&preview).Error
		if err != nil {
			return nil, err
		}
	}
	if preview == nil {
		preview = []userModel.Member{}
	}

	return &groupModel.GroupDetail{Group: *group, Preview: preview}, nil
}

// ListBySort returns one range of the sorted directory. The store serves
// the range directly so a listing never materializes more than one page.
func (r *repository) ListBySort(ctx context.Context, key groupModel.SortKey, start, stop int, includeHidden bool) ([]groupModel.Group, error) {
	if start < 0 {
		start = 0
	}
	limit := stop - start + 1
	if limit <= 0 {
		return []groupModel.Group{}, nil
	}

	q := r.db.WithContext(ctx).
		Model(&groupModel.Group{}).
		Order(orderClause(key)).
		Offset(start).
		Limit(limit)
	if !includeHidden {
		q = q.Where("hidden = ?", false)
	}

	var groups []groupModel.Group
	if err := q.Find(&groups).Error; err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []groupModel.Group{}
	}
	return groups, nil
}

// CountBySort returns the directory size under the same constraints as
// ListBySort.
func (r *repository) CountBySort(ctx context.Context, key groupModel.SortKey, includeHidden bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&groupModel.Group{})
	if !includeHidden {
		q = q.Where("hidden = ?", false)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Search returns every group matching the free-text query under the
// given filters, fully sorted. Name matching is case-insensitive.
func (r *repository) Search(ctx context.Context, query string, filters groupModel.SearchFilters) ([]groupModel.Group, error) {
	q := r.db.WithContext(ctx).
		Model(&groupModel.Group{}).
		Order(orderClause(filters.SortKey))

	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if filters.FilterHidden {
		q = q.Where("hidden = ?", false)
	}
	if filters.HideEphemeral {
		q = q.Where("ephemeral = ?", false)
	}
	if len(filters.ExcludeGroups) > 0 {
		q = q.Where("id NOT IN ?", filters.ExcludeGroups)
	}

	var groups []groupModel.Group
	if err := q.Find(&groups).Error; err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []groupModel.Group{}
	}
	return groups, nil
}
