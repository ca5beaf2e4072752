package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	groupModel "github.com/mkravchenko/groupdir/internal/group/model"
	"github.com/mkravchenko/groupdir/internal/principal"
	userModel "github.com/mkravchenko/groupdir/internal/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&userModel.User{}, &groupModel.GroupMember{})
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, admin, globalMod, active bool) userModel.User {
	user := userModel.User{
		ID:              uuid.NewString(),
		Username:        username,
		Admin:           admin,
		GlobalModerator: globalMod,
		Active:          active,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestRolePredicates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	admin := seedUser(t, db, "admin", true, false, true)
	moderator := seedUser(t, db, "mod", false, true, true)
	regular := seedUser(t, db, "regular", false, false, true)
	suspended := seedUser(t, db, "suspended", true, true, false)

	t.Run("IsAdministrator", func(t *testing.T) {
		ok, err := repo.IsAdministrator(ctx, principal.Principal{UserID: admin.ID})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.IsAdministrator(ctx, principal.Principal{UserID: moderator.ID})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("IsGlobalModerator", func(t *testing.T) {
		ok, err := repo.IsGlobalModerator(ctx, principal.Principal{UserID: moderator.ID})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.IsGlobalModerator(ctx, principal.Principal{UserID: regular.ID})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("IsAdminOrGlobalMod", func(t *testing.T) {
		for _, u := range []userModel.User{admin, moderator} {
			ok, err := repo.IsAdminOrGlobalMod(ctx, principal.Principal{UserID: u.ID})
			require.NoError(t, err)
			assert.True(t, ok, u.Username)
		}

		ok, err := repo.IsAdminOrGlobalMod(ctx, principal.Principal{UserID: regular.ID})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("inactive users hold no roles", func(t *testing.T) {
		ok, err := repo.IsAdminOrGlobalMod(ctx, principal.Principal{UserID: suspended.ID})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("anonymous principal skips the lookup", func(t *testing.T) {
		ok, err := repo.IsAdministrator(ctx, principal.Anonymous())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown principal", func(t *testing.T) {
		ok, err := repo.IsAdminOrGlobalMod(ctx, principal.Principal{UserID: uuid.NewString()})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFetchMembersPage(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := New(db)

	groupID := uuid.NewString()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		user := seedUser(t, db, fmt.Sprintf("member-%02d", i), false, false, true)
		require.NoError(t, db.Create(&groupModel.GroupMember{
			GroupID:  groupID,
			UserID:   user.ID,
			JoinedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	t.Run("first page ordered by join time", func(t *testing.T) {
		members, err := repo.FetchMembersPage(ctx, groupID, 0, 2)

		require.NoError(t, err)
		require.Len(t, members, 3)
		assert.Equal(t, "member-00", members[0].Username)
		assert.Equal(t, "member-02", members[2].Username)
	})

	t.Run("interior range", func(t *testing.T) {
		members, err := repo.FetchMembersPage(ctx, groupID, 3, 5)

		require.NoError(t, err)
		require.Len(t, members, 3)
		assert.Equal(t, "member-03", members[0].Username)
	})

	t.Run("range past the roster is empty", func(t *testing.T) {
		members, err := repo.FetchMembersPage(ctx, groupID, 50, 99)

		require.NoError(t, err)
		assert.Empty(t, members)
		assert.NotNil(t, members)
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		members, err := repo.FetchMembersPage(ctx, groupID, 5, 2)

		require.NoError(t, err)
		assert.Empty(t, members)
	})

	t.Run("other groups are not visible", func(t *testing.T) {
		members, err := repo.FetchMembersPage(ctx, uuid.NewString(), 0, 49)

		require.NoError(t, err)
		assert.Empty(t, members)
	})
}
