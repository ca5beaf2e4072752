package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mkravchenko/groupdir/internal/principal"
)

// Visibility is the verdict of evaluating a principal against a group.
// IsAdmin and IsGlobalMod are principal-level roles, resolved regardless
// of the group's hidden state.
type Visibility struct {
	Visible     bool
	IsAdmin     bool
	IsGlobalMod bool
}

// evaluateVisibility decides whether the principal may view the group.
// Existence, hidden state, and the two role predicates are independent
// reads and are fetched concurrently. Membership and invitation are only
// looked up when the group is hidden and no role already grants access.
// Store failures propagate; visibility is never defaulted on error.
func (s *service) evaluateVisibility(ctx context.Context, groupID string, p principal.Principal) (Visibility, error) {
	var (
		exists bool
		hidden bool
		admin  bool
		mod    bool
	)

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		exists, err = s.groups.Exists(gctx, groupID)
		return err
	})
	grp.Go(func() error {
		var err error
		hidden, err = s.groups.IsHidden(gctx, groupID)
		return err
	})
	grp.Go(func() error {
		var err error
		admin, err = s.users.IsAdministrator(gctx, p)
		return err
	})
	grp.Go(func() error {
		var err error
		mod, err = s.users.IsGlobalModerator(gctx, p)
		return err
	})
	if err := grp.Wait(); err != nil {
		return Visibility{}, err
	}

	v := Visibility{IsAdmin: admin, IsGlobalMod: mod}
	if !exists {
		return v, nil
	}
	if !hidden || admin || mod {
		v.Visible = true
		return v, nil
	}

	member, err := s.groups.IsMember(ctx, p.UserID, groupID)
	if err != nil {
		return Visibility{}, err
	}
	if member {
		v.Visible = true
		return v, nil
	}

	invited, err := s.groups.IsInvited(ctx, p.UserID, groupID)
	if err != nil {
		return Visibility{}, err
	}
	v.Visible = invited
	return v, nil
}
