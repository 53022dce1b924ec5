package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/testutil"
)

func Test_userDomain_GetProfile(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	userDomain := NewUserDomain(repository.NewUserRepository(), cache.NewStore())

	profile, err := userDomain.GetProfile(ctx, &model.GetUserRequest{UserID: "user2"})
	require.NoError(t, err)
	require.Equal(t, "bob", profile.Username)

	// Empty user id means the requester.
	profile, err = userDomain.GetProfile(ctx, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, "alice", profile.Username)

	_, err = userDomain.GetProfile(ctx, &model.GetUserRequest{UserID: "nobody"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_userDomain_SearchUsers(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	userDomain := NewUserDomain(repository.NewUserRepository(), cache.NewStore())

	resp, err := userDomain.SearchUsers(ctx, &model.SearchUsersRequest{Q: "a"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	require.Equal(t, "alice", resp.Users[0].Username)

	// The result is cached per query: a user created afterwards does not
	// appear inside the stale window.
	require.NoError(t, repository.NewUserRepository().Create(ctx, &entity.User{
		Base: entity.Base{ID: "user4"}, Username: "amy",
	}))

	resp, err = userDomain.SearchUsers(ctx, &model.SearchUsersRequest{Q: "a"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)

	// A different query is a different cache entry.
	resp, err = userDomain.SearchUsers(ctx, &model.SearchUsersRequest{Q: "am"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	require.Equal(t, "amy", resp.Users[0].Username)

	resp, err = userDomain.SearchUsers(ctx, &model.SearchUsersRequest{Q: "  "})
	require.NoError(t, err)
	require.Empty(t, resp.Users)
}
