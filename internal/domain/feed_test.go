package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/testutil"
)

func Test_feedDomain_GetFeed(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	cacheStore := cache.NewStore()
	followDomain := newFollowDomainForTest(cacheStore)
	feedDomain := NewFeedDomain(repository.NewRatingRepository(), repository.NewFollowRepository(), cacheStore)

	_, err := followDomain.Follow(ctx, &model.FollowRequest{UserID: "user2"})
	require.NoError(t, err)

	now := time.Now()
	for i := 0; i < 25; i++ {
		insertRating(ctx, t, "user2", now.Add(-time.Duration(i+1)*time.Minute))
	}

	// user3 is not followed, their ratings stay out of the feed.
	insertRating(ctx, t, "user3", now)

	first, err := feedDomain.GetFeed(ctx, &model.GetFeedRequest{})
	require.NoError(t, err)
	require.Len(t, first.Items, 20)
	require.NotNil(t, first.NextCursor)
	require.Equal(t, 20, *first.NextCursor)
	require.Equal(t, "bob", first.Items[0].User.Username)

	second, err := feedDomain.GetFeed(ctx, &model.GetFeedRequest{Cursor: *first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Items, 5)
	require.Nil(t, second.NextCursor)

	// The first page is served from cache: a newer rating does not show
	// up until the stale window passes.
	newest := insertRating(ctx, t, "user2", now.Add(time.Minute))
	cached, err := feedDomain.GetFeed(ctx, &model.GetFeedRequest{})
	require.NoError(t, err)
	require.Equal(t, first.Items[0].Rating.ID, cached.Items[0].Rating.ID)
	require.NotEqual(t, newest.ID, cached.Items[0].Rating.ID)
}

func Test_feedDomain_GetFeed_anonymous(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	feedDomain := NewFeedDomain(repository.NewRatingRepository(), repository.NewFollowRepository(), cache.NewStore())

	resp, err := feedDomain.GetFeed(ctx, &model.GetFeedRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
	require.Nil(t, resp.NextCursor)
}

func Test_feedDomain_GetFeed_nobodyFollowed(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	insertRating(ctx, t, "user2", time.Now())

	feedDomain := NewFeedDomain(repository.NewRatingRepository(), repository.NewFollowRepository(), cache.NewStore())

	resp, err := feedDomain.GetFeed(ctx, &model.GetFeedRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Items)
	require.Nil(t, resp.NextCursor)
}
