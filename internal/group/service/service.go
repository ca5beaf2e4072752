// Package service provides the business logic layer for the group
// directory: slug canonicalization, visibility gating, listing and
// member pagination, and detail view assembly.
package service

import (
	"context"

	"go.uber.org/zap"

	contentRepository "github.com/mkravchenko/groupdir/internal/content/repository"
	appConfig "github.com/mkravchenko/groupdir/internal/config"
	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	"github.com/mkravchenko/groupdir/internal/group/repository"
	"github.com/mkravchenko/groupdir/internal/principal"
	userRepository "github.com/mkravchenko/groupdir/internal/user/repository"
)

const (
	// groupsPerPage is the page size of the plain sorted listing.
	groupsPerPage = 15
	// searchResultsPerPage is the page size of free-text search results.
	searchResultsPerPage = 100
	// membersPerPage is the page size of member rosters.
	membersPerPage = 50
	// memberPreviewCount caps the member preview on detail views.
	memberPreviewCount = 10
	// recentPostLimit caps the recent posts on detail views.
	recentPostLimit = 5
)

// Service defines the read-only directory operations.
type Service interface {
	// ListGroups returns one page of the directory, sorted and filtered.
	ListGroups(ctx context.Context, p principal.Principal, page int, filters groupModel.SearchFilters) (*groupModel.GroupListResponse, error)

	// GetGroupDetails assembles the detail view for a slug, or signals
	// a redirect to the canonical slug.
	GetGroupDetails(ctx context.Context, p principal.Principal, rawSlug string, isAPI bool) (*groupModel.GroupDetailResult, error)

	// GetGroupMembers returns one page of a group's member roster.
	GetGroupMembers(ctx context.Context, p principal.Principal, rawSlug string, page int) (*groupModel.GroupMembersResponse, error)
}

type service struct {
	groups    repository.Repository
	users     userRepository.Repository
	content   contentRepository.Repository
	directory appConfig.DirectoryConfig
	logger    *zap.SugaredLogger
}

// New creates a new group directory service instance.
func New(
	groups repository.Repository,
	users userRepository.Repository,
	content contentRepository.Repository,
	directory appConfig.DirectoryConfig,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		groups:    groups,
		users:     users,
		content:   content,
		directory: directory,
		logger:    logger,
	}
}
