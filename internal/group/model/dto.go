// Package model provides domain models and DTOs for the group module.
package model

import (
	"time"

	userModel "github.com/mkravchenko/groupdir/internal/user/model"
)

// GroupSummary represents one group row in directory listings.
type GroupSummary struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Hidden      bool   `json:"hidden"`
	MemberCount int64  `json:"member_count"`
}

// GroupListResponse is one page of the group directory plus pager metadata.
type GroupListResponse struct {
	Groups     []GroupSummary `json:"groups"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
}

// RecentPost is a member-authored post shown on the group detail view.
type RecentPost struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// GroupDetailView is the assembled detail view-model for one group.
// IsAdmin and IsGlobalMod are threaded through for rendering decisions
// such as showing management controls.
type GroupDetailView struct {
	ID           string             `json:"id"`
	Slug         string             `json:"slug"`
	Name         string             `json:"name"`
	Hidden       bool               `json:"hidden"`
	MemberCount  int64              `json:"member_count"`
	Members      []userModel.Member `json:"members"`
	RecentPosts  []RecentPost       `json:"recent_posts"`
	CanonicalURL string             `json:"canonical_url"`
	IsAdmin      bool               `json:"is_admin"`
	IsGlobalMod  bool               `json:"is_global_mod"`
}

// GroupDetailResult is the outcome of assembling a group detail view.
// A non-empty RedirectTo means the caller must redirect to the canonical
// slug and no view was fetched.
type GroupDetailResult struct {
	RedirectTo string
	View       *GroupDetailView
}

// GroupMembersResponse is one page of a group's member roster.
type GroupMembersResponse struct {
	Slug       string             `json:"slug"`
	Members    []userModel.Member `json:"members"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
}

// GroupDetail is a group record with its truncated member preview, as
// returned by the group store's detail fetch.
type GroupDetail struct {
	Group   Group
	Preview []userModel.Member
}
