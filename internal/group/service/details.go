package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	contentModel "github.com/mkravchenko/groupdir/internal/content/model"
	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	"github.com/mkravchenko/groupdir/internal/principal"
)

// GetGroupDetails assembles the detail view for a slug. The steps are
// fixed and each one short-circuits: canonicalize, resolve, evaluate
// visibility, then fetch the detail record and recent posts together.
// A group that disappears between resolution and the detail fetch is
// answered as not-found, the same as a hidden group the principal may
// not see.
func (s *service) GetGroupDetails(ctx context.Context, p principal.Principal, rawSlug string, isAPI bool) (*groupModel.GroupDetailResult, error) {
	canonical := s.canonicalizeSlug(rawSlug, isAPI)
	if canonical.Redirect {
		return &groupModel.GroupDetailResult{RedirectTo: canonical.Location}, nil
	}

	groupID, err := s.groups.ResolveSlug(ctx, canonical.Slug)
	if err != nil {
		return nil, err
	}

	visibility, err := s.evaluateVisibility(ctx, groupID, p)
	if err != nil {
		return nil, err
	}
	if !visibility.Visible {
		return nil, groupModel.ErrGroupNotFound
	}

	var (
		detail *groupModel.GroupDetail
		posts  []contentModel.MemberPost
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		detail, err = s.groups.GetDetail(gctx, groupID, memberPreviewCount)
		return err
	})
	grp.Go(func() error {
		var err error
		posts, err = s.content.LatestMemberContent(gctx, groupID, recentPostLimit)
		return err
	})
	if err := grp.Wait(); err != nil {
		// Deleted between resolution and fetch: still a plain not-found.
		if errors.Is(err, groupModel.ErrGroupNotFound) {
			return nil, groupModel.ErrGroupNotFound
		}
		return nil, err
	}

	view := &groupModel.GroupDetailView{
		ID:           detail.Group.ID,
		Slug:         detail.Group.Slug,
		Name:         detail.Group.Name,
		Hidden:       detail.Group.Hidden,
		MemberCount:  detail.Group.MemberCount,
		Members:      detail.Preview,
		RecentPosts:  recentPosts(posts),
		CanonicalURL: s.directory.GroupURL(detail.Group.Slug),
		IsAdmin:      visibility.IsAdmin,
		IsGlobalMod:  visibility.IsGlobalMod,
	}
	return &groupModel.GroupDetailResult{View: view}, nil
}

func recentPosts(posts []contentModel.MemberPost) []groupModel.RecentPost {
	views := make([]groupModel.RecentPost, 0, len(posts))
	for _, post := range posts {
		views = append(views, groupModel.RecentPost{
			ID:         post.ID,
			AuthorID:   post.AuthorID,
			AuthorName: post.AuthorName,
			Body:       post.Body,
			CreatedAt:  post.CreatedAt,
		})
	}
	return views
}
