package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	"github.com/mkravchenko/groupdir/internal/principal"
	"github.com/mkravchenko/groupdir/pkg/paging"
)

// ListGroups returns one page of the directory. A non-empty free-text
// query selects search mode; otherwise the sorted store serves the page
// directly. Hidden groups are excluded for principals that are not
// administrators regardless of the caller-supplied filter.
func (s *service) ListGroups(ctx context.Context, p principal.Principal, page int, filters groupModel.SearchFilters) (*groupModel.GroupListResponse, error) {
	isAdmin, err := s.users.IsAdministrator(ctx, p)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		filters.FilterHidden = true
	}

	if filters.Query != "" {
		return s.searchGroups(ctx, page, filters)
	}
	return s.listSorted(ctx, page, filters)
}

// listSorted serves a page from the sorted store: the range fetch and
// the total count run in parallel, and at most one page of rows is ever
// materialized.
func (s *service) listSorted(ctx context.Context, page int, filters groupModel.SearchFilters) (*groupModel.GroupListResponse, error) {
	window := paging.New(page, groupsPerPage, 0)
	includeHidden := !filters.FilterHidden

	var (
		groups []groupModel.Group
		total  int64
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		groups, err = s.groups.ListBySort(gctx, filters.SortKey, window.Offset(), window.Stop(), includeHidden)
		return err
	})
	grp.Go(func() error {
		var err error
		total, err = s.groups.CountBySort(gctx, filters.SortKey, includeHidden)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	descriptor := paging.New(page, groupsPerPage, total)
	return &groupModel.GroupListResponse{
		Groups:     summarize(groups, filters.ShowMembers),
		Page:       descriptor.Page,
		PerPage:    groupsPerPage,
		TotalPages: descriptor.TotalPages,
	}, nil
}

// searchGroups materializes the full filtered result set and slices the
// requested page out of it. Weaker scalability, but it supports text
// matching the sorted store cannot serve as a range read.
func (s *service) searchGroups(ctx context.Context, page int, filters groupModel.SearchFilters) (*groupModel.GroupListResponse, error) {
	matches, err := s.groups.Search(ctx, filters.Query, filters)
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("directory search", "query", filters.Query, "matches", len(matches))

	descriptor := paging.New(page, searchResultsPerPage, int64(len(matches)))
	return &groupModel.GroupListResponse{
		Groups:     summarize(paging.Window(matches, descriptor), filters.ShowMembers),
		Page:       descriptor.Page,
		PerPage:    searchResultsPerPage,
		TotalPages: descriptor.TotalPages,
	}, nil
}

// summarize maps store rows to listing summaries. Member counts are
// included only when the caller asked for them.
func summarize(groups []groupModel.Group, showMembers bool) []groupModel.GroupSummary {
	summaries := make([]groupModel.GroupSummary, 0, len(groups))
	for _, g := range groups {
		summary := groupModel.GroupSummary{
			ID:     g.ID,
			Slug:   g.Slug,
			Name:   g.Name,
			Hidden: g.Hidden,
		}
		if showMembers {
			summary.MemberCount = g.MemberCount
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
