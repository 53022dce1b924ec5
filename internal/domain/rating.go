package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/enum"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

const ratingPageSize = 20

type RatingDomain interface {
	Create(ctx context.Context, req *model.CreateRatingRequest) (*model.CreateRatingResponse, error)
	GetHistory(ctx context.Context, req *model.GetRatingHistoryRequest) (*model.GetRatingHistoryResponse, error)
	GetCommunityScore(ctx context.Context, req *model.GetCommunityScoreRequest) (*model.GetCommunityScoreResponse, error)
	Like(ctx context.Context, req *model.LikeRatingRequest) (*model.LikeRatingResponse, error)
	Unlike(ctx context.Context, req *model.UnlikeRatingRequest) (*model.UnlikeRatingResponse, error)
	GetRatingLike(ctx context.Context, req *model.GetRatingLikeRequest) (*model.GetRatingLikeResponse, error)
	GetLikesCount(ctx context.Context, req *model.GetLikesCountRequest) (*model.GetLikesCountResponse, error)
}

type ratingDomain struct {
	ratingRepo       repository.RatingRepository
	likeRepo         repository.LikeRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	scoreProvider    ScoreProvider
	cache            *cache.Store
}

func NewRatingDomain(
	ratingRepo repository.RatingRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	scoreProvider ScoreProvider,
	cacheStore *cache.Store,
) RatingDomain {
	return &ratingDomain{
		ratingRepo:       ratingRepo,
		likeRepo:         likeRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		scoreProvider:    scoreProvider,
		cache:            cacheStore,
	}
}

// Create always inserts a new row. Re-rating the same content is a new
// opinion, not an update.
func (d *ratingDomain) Create(ctx context.Context, req *model.CreateRatingRequest) (*model.CreateRatingResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	contentType, err := enum.ToEnum[entity.ContentType](req.ContentType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid content type %s", req.ContentType)
	}

	if req.ContentID == "" || req.ContentTitle == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found content in request")
	}

	if req.Score < 1 || req.Score > 10 {
		return nil, errorx.New(errorx.BadRequest, "Score must be between 1 and 10")
	}

	rating := &entity.Rating{
		Base:            entity.Base{ID: uuid.NewString()},
		UserID:          userID,
		ContentType:     contentType,
		ContentID:       req.ContentID,
		ContentTitle:    req.ContentTitle,
		ContentImageURL: req.ContentImageURL,
		Score:           req.Score,
	}

	if err := d.ratingRepo.Create(ctx, rating); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create rating: %v", err)
		return nil, errorx.Unknown
	}

	// A new rating settles a pending item and feeds the follower feeds.
	d.cache.Invalidate(
		keyPendingItems(userID),
		keyCommunityScore(contentType, req.ContentID),
	)

	return &model.CreateRatingResponse{ID: rating.ID}, nil
}

func (d *ratingDomain) GetHistory(
	ctx context.Context, req *model.GetRatingHistoryRequest,
) (*model.GetRatingHistoryResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return &model.GetRatingHistoryResponse{Ratings: []model.Rating{}}, nil
	}

	if req.Cursor < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid cursor")
	}

	ratings, err := d.ratingRepo.GetListByUserID(ctx, userID, req.Cursor, ratingPageSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rating history: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetRatingHistoryResponse{Ratings: model.ConvertRatings(ratings)}
	if len(ratings) == ratingPageSize {
		next := req.Cursor + ratingPageSize
		resp.NextCursor = &next
	}

	return resp, nil
}

func (d *ratingDomain) GetCommunityScore(
	ctx context.Context, req *model.GetCommunityScoreRequest,
) (*model.GetCommunityScoreResponse, error) {
	contentType, err := enum.ToEnum[entity.ContentType](req.ContentType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid content type %s", req.ContentType)
	}

	if req.ContentID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found content id in request")
	}

	score, err := d.scoreProvider.Score(ctx, contentType, req.ContentID)
	if err != nil {
		return nil, err
	}

	resp := model.GetCommunityScoreResponse(score)
	return &resp, nil
}

// Like is idempotent and never notifies the actor about themselves.
func (d *ratingDomain) Like(ctx context.Context, req *model.LikeRatingRequest) (*model.LikeRatingResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	rating, err := d.ratingRepo.GetByID(ctx, req.RatingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found rating")
		}

		xcontext.Logger(ctx).Errorf("Cannot get rating: %v", err)
		return nil, errorx.Unknown
	}

	_, err = d.likeRepo.Get(ctx, userID, req.RatingID)
	if err == nil {
		return &model.LikeRatingResponse{}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get like state: %v", err)
		return nil, errorx.Unknown
	}

	err = d.likeRepo.Create(ctx, &entity.Like{
		UserID:    userID,
		RatingID:  req.RatingID,
		CreatedAt: time.Now(),
	})
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
		return nil, errorx.Unknown
	}

	if rating.UserID != userID {
		actor, err := d.userRepo.GetByID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get actor for notification: %v", err)
		} else {
			err = d.notificationRepo.Create(ctx, &entity.Notification{
				Base:           entity.Base{ID: uuid.NewString()},
				UserID:         rating.UserID,
				Type:           entity.NotificationLike,
				ActorID:        actor.ID,
				ActorUsername:  actor.Username,
				ActorAvatarURL: actor.AvatarURL,
				RatingID:       rating.ID,
				RatingTitle:    rating.ContentTitle,
				RatingType:     rating.ContentType,
			})
			if err != nil {
				xcontext.Logger(ctx).Warnf("Cannot create like notification: %v", err)
			}
		}
	}

	d.cache.Invalidate(
		keyRatingLikes(req.RatingID),
		keyLikesCount(req.RatingID),
		keySocialFeed(userID),
		keyNotifications(rating.UserID),
		keyUnreadCount(rating.UserID),
	)

	return &model.LikeRatingResponse{}, nil
}

// Unlike is idempotent: removing a like that is not there succeeds.
func (d *ratingDomain) Unlike(ctx context.Context, req *model.UnlikeRatingRequest) (*model.UnlikeRatingResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	err := d.likeRepo.Delete(ctx, userID, req.RatingID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Invalidate(
		keyRatingLikes(req.RatingID),
		keyLikesCount(req.RatingID),
		keySocialFeed(userID),
	)

	return &model.UnlikeRatingResponse{}, nil
}

func (d *ratingDomain) GetRatingLike(
	ctx context.Context, req *model.GetRatingLikeRequest,
) (*model.GetRatingLikeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		// An anonymous viewer likes nothing.
		return &model.GetRatingLikeResponse{}, nil
	}

	return cache.GetOrFetch(ctx, d.cache, keyRatingLike(req.RatingID, userID), ratingLikeStaleAfter,
		func(ctx context.Context) (*model.GetRatingLikeResponse, error) {
			_, err := d.likeRepo.Get(ctx, userID, req.RatingID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &model.GetRatingLikeResponse{Liked: false}, nil
				}

				xcontext.Logger(ctx).Errorf("Cannot get like state: %v", err)
				return nil, errorx.Unknown
			}

			return &model.GetRatingLikeResponse{Liked: true}, nil
		})
}

func (d *ratingDomain) GetLikesCount(
	ctx context.Context, req *model.GetLikesCountRequest,
) (*model.GetLikesCountResponse, error) {
	return cache.GetOrFetch(ctx, d.cache, keyLikesCount(req.RatingID), ratingLikeStaleAfter,
		func(ctx context.Context) (*model.GetLikesCountResponse, error) {
			count, err := d.likeRepo.Count(ctx, req.RatingID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot count likes: %v", err)
				return nil, errorx.Unknown
			}

			return &model.GetLikesCountResponse{Count: count}, nil
		})
}
