package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/testutil"
)

func Test_pinDomain(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	cacheStore := cache.NewStore()
	pinDomain := NewPinDomain(repository.NewPinnedItemRepository(), cacheStore)

	for _, id := range []string{"movie-1", "movie-2", "movie-3"} {
		_, err := pinDomain.Pin(ctx, &model.PinItemRequest{
			ContentType:  "movie",
			ContentID:    id,
			ContentTitle: id,
		})
		require.NoError(t, err)
	}

	pins, err := pinDomain.GetPins(ctx, &model.GetPinnedItemsRequest{UserID: "user1"})
	require.NoError(t, err)
	require.Len(t, pins.Items, 3)
	require.Equal(t, "movie-1", pins.Items[0].ContentID)
	require.Equal(t, 0, pins.Items[0].Position)

	// Re-pinning keeps the slot.
	_, err = pinDomain.Pin(ctx, &model.PinItemRequest{
		ContentType:  "movie",
		ContentID:    "movie-1",
		ContentTitle: "Movie One, renamed",
	})
	require.NoError(t, err)

	pins, err = pinDomain.GetPins(ctx, &model.GetPinnedItemsRequest{UserID: "user1"})
	require.NoError(t, err)
	require.Len(t, pins.Items, 3)
	require.Equal(t, "Movie One, renamed", pins.Items[0].ContentTitle)

	// Reorder to the reverse and observe it through the invalidated cache.
	_, err = pinDomain.Reorder(ctx, &model.ReorderPinsRequest{Items: []model.PinRef{
		{ContentType: "movie", ContentID: "movie-3"},
		{ContentType: "movie", ContentID: "movie-2"},
		{ContentType: "movie", ContentID: "movie-1"},
	}})
	require.NoError(t, err)

	pins, err = pinDomain.GetPins(ctx, &model.GetPinnedItemsRequest{UserID: "user1"})
	require.NoError(t, err)
	require.Equal(t, "movie-3", pins.Items[0].ContentID)
	require.Equal(t, "movie-1", pins.Items[2].ContentID)

	// Unpinning the middle item compacts the positions.
	_, err = pinDomain.Unpin(ctx, &model.UnpinItemRequest{ContentType: "movie", ContentID: "movie-2"})
	require.NoError(t, err)

	pins, err = pinDomain.GetPins(ctx, &model.GetPinnedItemsRequest{UserID: "user1"})
	require.NoError(t, err)
	require.Len(t, pins.Items, 2)
	require.Equal(t, "movie-3", pins.Items[0].ContentID)
	require.Equal(t, 0, pins.Items[0].Position)
	require.Equal(t, "movie-1", pins.Items[1].ContentID)
	require.Equal(t, 1, pins.Items[1].Position)
}

func Test_pinDomain_Reorder_errors(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	pinDomain := NewPinDomain(repository.NewPinnedItemRepository(), cache.NewStore())

	_, err := pinDomain.Pin(ctx, &model.PinItemRequest{
		ContentType: "movie", ContentID: "movie-1", ContentTitle: "One",
	})
	require.NoError(t, err)

	t.Run("missing item", func(t *testing.T) {
		_, err := pinDomain.Reorder(ctx, &model.ReorderPinsRequest{Items: []model.PinRef{
			{ContentType: "movie", ContentID: "movie-9"},
		}})
		var errx errorx.Error
		require.ErrorAs(t, err, &errx)
		require.Equal(t, errorx.BadRequest, errx.Code)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := pinDomain.Reorder(ctx, &model.ReorderPinsRequest{Items: []model.PinRef{}})
		var errx errorx.Error
		require.ErrorAs(t, err, &errx)
		require.Equal(t, errorx.BadRequest, errx.Code)
	})
}

func Test_pinDomain_limit(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	testutil.CreateFixtureDb(ctx)

	pinDomain := NewPinDomain(repository.NewPinnedItemRepository(), cache.NewStore())

	for i := 0; i < maxPinnedItems; i++ {
		_, err := pinDomain.Pin(ctx, &model.PinItemRequest{
			ContentType:  "game",
			ContentID:    fmt.Sprintf("game-%d", i),
			ContentTitle: fmt.Sprintf("Game %d", i),
		})
		require.NoError(t, err)
	}

	_, err := pinDomain.Pin(ctx, &model.PinItemRequest{
		ContentType: "game", ContentID: "one-too-many", ContentTitle: "Nope",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
