package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/testutil"
)

func Test_celebrationDomain(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	// Seven consecutive days ending today.
	now := time.Now()
	for i := 0; i < 7; i++ {
		insertRating(ctx, t, "user1", now.Add(-time.Duration(i)*24*time.Hour))
	}

	var storedKey string
	redisClient := &testutil.MockRedisClient{
		SetFunc: func(_ context.Context, key, _ string) error {
			storedKey = key
			return nil
		},
	}

	celebrationDomain := NewCelebrationDomain(repository.NewRatingRepository(), redisClient, time.Local)

	resp, err := celebrationDomain.GetStreakCelebration(ctx, &model.GetStreakCelebrationRequest{})
	require.NoError(t, err)
	require.True(t, resp.Celebrate)
	require.Equal(t, 7, resp.Milestone)
	require.Equal(t, "celebrated_streak:user1:7", storedKey)

	// The flag is set now, the same milestone stays silent.
	redisClient.ExistFunc = func(_ context.Context, key string) (bool, error) {
		return key == storedKey, nil
	}

	resp, err = celebrationDomain.GetStreakCelebration(ctx, &model.GetStreakCelebrationRequest{})
	require.NoError(t, err)
	require.False(t, resp.Celebrate)
}

func Test_celebrationDomain_noMilestone(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	// A five day streak is not a milestone.
	now := time.Now()
	for i := 0; i < 5; i++ {
		insertRating(ctx, t, "user1", now.Add(-time.Duration(i)*24*time.Hour))
	}

	celebrationDomain := NewCelebrationDomain(
		repository.NewRatingRepository(), &testutil.MockRedisClient{}, time.Local)

	resp, err := celebrationDomain.GetStreakCelebration(ctx, &model.GetStreakCelebrationRequest{})
	require.NoError(t, err)
	require.False(t, resp.Celebrate)
	require.Equal(t, 0, resp.Milestone)
}

func Test_celebrationDomain_flagStoreDown(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	now := time.Now()
	for i := 0; i < 7; i++ {
		insertRating(ctx, t, "user1", now.Add(-time.Duration(i)*24*time.Hour))
	}

	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(_ context.Context, _ string) (bool, error) {
			return false, errors.New("connection refused")
		},
	}

	celebrationDomain := NewCelebrationDomain(repository.NewRatingRepository(), redisClient, time.Local)

	// An unreadable flag degrades to "already celebrated", never an error.
	resp, err := celebrationDomain.GetStreakCelebration(ctx, &model.GetStreakCelebrationRequest{})
	require.NoError(t, err)
	require.False(t, resp.Celebrate)
}
