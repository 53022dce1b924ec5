package domain

import (
	"context"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

const feedPageSize = 20

type FeedDomain interface {
	GetFeed(ctx context.Context, req *model.GetFeedRequest) (*model.GetFeedResponse, error)
}

type feedDomain struct {
	ratingRepo repository.RatingRepository
	followRepo repository.FollowRepository
	cache      *cache.Store
}

func NewFeedDomain(
	ratingRepo repository.RatingRepository,
	followRepo repository.FollowRepository,
	cacheStore *cache.Store,
) FeedDomain {
	return &feedDomain{ratingRepo: ratingRepo, followRepo: followRepo, cache: cacheStore}
}

// GetFeed returns the ratings of followed users, newest first. A page of
// exactly feedPageSize rows advertises a next cursor even when the next
// page turns out empty; strictly fewer rows means the feed is exhausted.
func (d *feedDomain) GetFeed(ctx context.Context, req *model.GetFeedRequest) (*model.GetFeedResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		// Nobody followed, nothing to show.
		return &model.GetFeedResponse{Items: []model.FeedItem{}}, nil
	}

	if req.Cursor < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid cursor")
	}

	return cache.GetOrFetch(ctx, d.cache, keySocialFeedPage(userID, req.Cursor), socialFeedStaleAfter,
		func(ctx context.Context) (*model.GetFeedResponse, error) {
			followeeIDs, err := d.followRepo.GetFolloweeIDs(ctx, userID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get followee ids: %v", err)
				return nil, errorx.Unknown
			}

			ratings, err := d.ratingRepo.GetFeed(ctx, followeeIDs, req.Cursor, feedPageSize)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get feed: %v", err)
				return nil, errorx.Unknown
			}

			items := make([]model.FeedItem, 0, len(ratings))
			for i := range ratings {
				items = append(items, model.FeedItem{
					Rating: model.ConvertRating(&ratings[i]),
					User:   model.ConvertUser(&ratings[i].User),
				})
			}

			resp := &model.GetFeedResponse{Items: items}
			if len(ratings) == feedPageSize {
				next := req.Cursor + feedPageSize
				resp.NextCursor = &next
			}

			return resp, nil
		})
}
