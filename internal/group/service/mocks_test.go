package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	contentModel "github.com/mkravchenko/groupdir/internal/content/model"
	appConfig "github.com/mkravchenko/groupdir/internal/config"
	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	"github.com/mkravchenko/groupdir/internal/principal"
	userModel "github.com/mkravchenko/groupdir/internal/user/model"
)

type mockGroupRepository struct {
	mock.Mock
}

func (m *mockGroupRepository) ResolveSlug(ctx context.Context, slug string) (string, error) {
	args := m.Called(ctx, slug)
	return args.String(0), args.Error(1)
}

func (m *mockGroupRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockGroupRepository) IsHidden(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockGroupRepository) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	args := m.Called(ctx, userID, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGroupRepository) IsInvited(ctx context.Context, userID, groupID string) (bool, error) {
	args := m.Called(ctx, userID, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGroupRepository) GetByID(ctx context.Context, id string) (*groupModel.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groupModel.Group), args.Error(1)
}

func (m *mockGroupRepository) GetDetail(ctx context.Context, id string, previewCount int) (*groupModel.GroupDetail, error) {
	args := m.Called(ctx, id, previewCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groupModel.GroupDetail), args.Error(1)
}

func (m *mockGroupRepository) ListBySort(ctx context.Context, key groupModel.SortKey, start, stop int, includeHidden bool) ([]groupModel.Group, error) {
	args := m.Called(ctx, key, start, stop, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]groupModel.Group), args.Error(1)
}

func (m *mockGroupRepository) CountBySort(ctx context.Context, key groupModel.SortKey, includeHidden bool) (int64, error) {
	args := m.Called(ctx, key, includeHidden)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGroupRepository) Search(ctx context.Context, query string, filters groupModel.SearchFilters) ([]groupModel.Group, error) {
	args := m.Called(ctx, query, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]groupModel.Group), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) IsAdministrator(ctx context.Context, p principal.Principal) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) IsGlobalModerator(ctx context.Context, p principal.Principal) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) IsAdminOrGlobalMod(ctx context.Context, p principal.Principal) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) FetchMembersPage(ctx context.Context, groupID string, start, stop int) ([]userModel.Member, error) {
	args := m.Called(ctx, groupID, start, stop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]userModel.Member), args.Error(1)
}

type mockContentRepository struct {
	mock.Mock
}

func (m *mockContentRepository) LatestMemberContent(ctx context.Context, groupID string, limit int) ([]contentModel.MemberPost, error) {
	args := m.Called(ctx, groupID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contentModel.MemberPost), args.Error(1)
}

func testDirectoryConfig() appConfig.DirectoryConfig {
	return appConfig.DirectoryConfig{BaseURL: "https://example.com"}
}

func newTestService(groups *mockGroupRepository, users *mockUserRepository, content *mockContentRepository) Service {
	return New(groups, users, content, testDirectoryConfig(), zap.NewNop().Sugar())
}
