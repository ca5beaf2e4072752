package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	"github.com/mkravchenko/groupdir/internal/principal"
	"github.com/mkravchenko/groupdir/pkg/paging"
)

// GetGroupMembers returns one page of a group's member roster. The
// roster is restricted to administrators, global moderators, and members
// of the group itself, whether or not the group is hidden; everyone else
// gets the same not-found answer as for an unknown group. The page count
// is floored at one so empty rosters never present zero pages.
func (s *service) GetGroupMembers(ctx context.Context, p principal.Principal, rawSlug string, page int) (*groupModel.GroupMembersResponse, error) {
	groupID, err := s.groups.ResolveSlug(ctx, strings.ToLower(rawSlug))
	if err != nil {
		return nil, err
	}

	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	var (
		privileged bool
		member     bool
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		privileged, err = s.users.IsAdminOrGlobalMod(gctx, p)
		return err
	})
	grp.Go(func() error {
		var err error
		member, err = s.groups.IsMember(gctx, p.UserID, groupID)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if !privileged && !member {
		return nil, groupModel.ErrGroupNotFound
	}

	descriptor := paging.NewFloored(page, membersPerPage, group.MemberCount)
	members, err := s.users.FetchMembersPage(ctx, groupID, descriptor.Offset(), descriptor.Stop())
	if err != nil {
		return nil, err
	}

	return &groupModel.GroupMembersResponse{
		Slug:       group.Slug,
		Members:    members,
		Page:       descriptor.Page,
		PerPage:    membersPerPage,
		TotalPages: descriptor.TotalPages,
	}, nil
}
