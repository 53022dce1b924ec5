package domain

import (
	"context"

	"github.com/pkg/math"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/enum"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

const (
	// pendingWindow is how many recent want/doing rows are considered
	// before rated content is filtered out. An item older than the 20
	// most recent ones does not resurface even if everything newer was
	// rated in the meantime.
	pendingWindow = 20
	pendingLimit  = 10
)

type LibraryDomain interface {
	UpsertStatus(ctx context.Context, req *model.UpsertContentStatusRequest) (*model.UpsertContentStatusResponse, error)
	GetPending(ctx context.Context, req *model.GetPendingItemsRequest) (*model.GetPendingItemsResponse, error)
}

type libraryDomain struct {
	contentStatusRepo repository.ContentStatusRepository
	ratingRepo        repository.RatingRepository
	cache             *cache.Store
}

func NewLibraryDomain(
	contentStatusRepo repository.ContentStatusRepository,
	ratingRepo repository.RatingRepository,
	cacheStore *cache.Store,
) LibraryDomain {
	return &libraryDomain{
		contentStatusRepo: contentStatusRepo,
		ratingRepo:        ratingRepo,
		cache:             cacheStore,
	}
}

// UpsertStatus is last-write-wins on the (user, content type, content id)
// key. Moving want -> doing -> want again is three upserts of one row.
func (d *libraryDomain) UpsertStatus(
	ctx context.Context, req *model.UpsertContentStatusRequest,
) (*model.UpsertContentStatusResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	contentType, err := enum.ToEnum[entity.ContentType](req.ContentType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid content type %s", req.ContentType)
	}

	status, err := enum.ToEnum[entity.StatusType](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
	}

	if req.ContentID == "" || req.ContentTitle == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found content in request")
	}

	err = d.contentStatusRepo.Upsert(ctx, &entity.ContentStatus{
		UserID:          userID,
		ContentType:     contentType,
		ContentID:       req.ContentID,
		Status:          status,
		ContentTitle:    req.ContentTitle,
		ContentImageURL: req.ContentImageURL,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert content status: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Invalidate(keyPendingItems(userID))

	return &model.UpsertContentStatusResponse{}, nil
}

// GetPending returns the want/doing items the user has not rated yet,
// most recently touched first. Rated content is filtered after the recency
// window is cut, so the result can be shorter than pendingLimit even when
// older unrated items exist.
func (d *libraryDomain) GetPending(
	ctx context.Context, _ *model.GetPendingItemsRequest,
) (*model.GetPendingItemsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.GetPendingItemsResponse{Items: []model.ContentStatus{}}, nil
	}

	return cache.GetOrFetch(ctx, d.cache, keyPendingItems(userID), pendingItemsStaleAfter,
		func(ctx context.Context) (*model.GetPendingItemsResponse, error) {
			statuses, err := d.contentStatusRepo.GetRecentByUserID(
				ctx, userID, []entity.StatusType{entity.StatusWant, entity.StatusDoing}, pendingWindow)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get content statuses: %v", err)
				return nil, errorx.Unknown
			}

			ratedIDs, err := d.ratingRepo.GetRatedContentIDs(ctx, userID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get rated content ids: %v", err)
				return nil, errorx.Unknown
			}

			rated := make(map[string]struct{}, len(ratedIDs))
			for _, id := range ratedIDs {
				rated[id] = struct{}{}
			}

			pending := make([]model.ContentStatus, 0, pendingLimit)
			for i := range statuses {
				if _, ok := rated[statuses[i].ContentID]; ok {
					continue
				}

				pending = append(pending, model.ConvertContentStatus(&statuses[i]))
			}

			return &model.GetPendingItemsResponse{
				Items: pending[:math.MinInt(len(pending), pendingLimit)],
			}, nil
		})
}
