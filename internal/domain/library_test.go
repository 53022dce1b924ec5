package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/testutil"
)

func newLibraryDomainForTest(cacheStore *cache.Store) LibraryDomain {
	return NewLibraryDomain(
		repository.NewContentStatusRepository(),
		repository.NewRatingRepository(),
		cacheStore,
	)
}

func Test_libraryDomain_pendingResolver(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	cacheStore := cache.NewStore()
	libraryDomain := newLibraryDomainForTest(cacheStore)
	ratingDomain := newRatingDomainForTest(cacheStore)

	statusRepo := repository.NewContentStatusRepository()
	now := time.Now()
	for i, id := range []string{"content-a", "content-b", "content-c"} {
		require.NoError(t, statusRepo.Upsert(ctx, &entity.ContentStatus{
			UserID:       "user1",
			ContentType:  entity.ContentMovie,
			ContentID:    id,
			Status:       entity.StatusWant,
			ContentTitle: id,
			CreatedAt:    now.Add(time.Duration(i) * time.Second),
			UpdatedAt:    now.Add(time.Duration(i) * time.Second),
		}))
	}

	pending, err := libraryDomain.GetPending(ctx, &model.GetPendingItemsRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Items, 3)
	require.Equal(t, "content-c", pending.Items[0].ContentID) // most recently touched first

	// Rating one of them settles it and invalidates the cached list.
	_, err = ratingDomain.Create(ctx, &model.CreateRatingRequest{
		ContentType:  "movie",
		ContentID:    "content-b",
		ContentTitle: "content-b",
		Score:        8,
	})
	require.NoError(t, err)

	pending, err = libraryDomain.GetPending(ctx, &model.GetPendingItemsRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Items, 2)
	require.Equal(t, "content-c", pending.Items[0].ContentID)
	require.Equal(t, "content-a", pending.Items[1].ContentID)
}

func Test_libraryDomain_UpsertStatus(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	cacheStore := cache.NewStore()
	libraryDomain := newLibraryDomainForTest(cacheStore)

	_, err := libraryDomain.UpsertStatus(ctx, &model.UpsertContentStatusRequest{
		ContentType:  "book",
		ContentID:    "isbn-1",
		Status:       "want",
		ContentTitle: "Dune",
	})
	require.NoError(t, err)

	// Last write wins, still one row.
	_, err = libraryDomain.UpsertStatus(ctx, &model.UpsertContentStatusRequest{
		ContentType:  "book",
		ContentID:    "isbn-1",
		Status:       "doing",
		ContentTitle: "Dune",
	})
	require.NoError(t, err)

	pending, err := libraryDomain.GetPending(ctx, &model.GetPendingItemsRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	require.Equal(t, "doing", pending.Items[0].Status)

	t.Run("invalid status", func(t *testing.T) {
		_, err := libraryDomain.UpsertStatus(ctx, &model.UpsertContentStatusRequest{
			ContentType:  "book",
			ContentID:    "isbn-1",
			Status:       "done",
			ContentTitle: "Dune",
		})
		require.Error(t, err)
	})
}

func Test_libraryDomain_pendingWindow(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	statusRepo := repository.NewContentStatusRepository()
	now := time.Now()
	for i := 0; i < 25; i++ {
		require.NoError(t, statusRepo.Upsert(ctx, &entity.ContentStatus{
			UserID:       "user1",
			ContentType:  entity.ContentGame,
			ContentID:    fmt.Sprintf("game-%d", i),
			Status:       entity.StatusWant,
			ContentTitle: fmt.Sprintf("Game %d", i),
			CreatedAt:    now.Add(time.Duration(i) * time.Second),
			UpdatedAt:    now.Add(time.Duration(i) * time.Second),
		}))
	}

	libraryDomain := newLibraryDomainForTest(cache.NewStore())

	pending, err := libraryDomain.GetPending(ctx, &model.GetPendingItemsRequest{})
	require.NoError(t, err)
	require.Len(t, pending.Items, 10)
	require.Equal(t, "game-24", pending.Items[0].ContentID)
	require.Equal(t, "game-15", pending.Items[9].ContentID)
}
