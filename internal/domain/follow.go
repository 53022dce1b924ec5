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
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type FollowDomain interface {
	Follow(ctx context.Context, req *model.FollowRequest) (*model.FollowResponse, error)
	Unfollow(ctx context.Context, req *model.UnfollowRequest) (*model.UnfollowResponse, error)
	GetFollowers(ctx context.Context, req *model.GetFollowersRequest) (*model.GetFollowersResponse, error)
	GetFollowing(ctx context.Context, req *model.GetFollowingRequest) (*model.GetFollowingResponse, error)
	IsFollowing(ctx context.Context, req *model.IsFollowingRequest) (*model.IsFollowingResponse, error)
}

type followDomain struct {
	followRepo       repository.FollowRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	cache            *cache.Store
}

func NewFollowDomain(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	cacheStore *cache.Store,
) FollowDomain {
	return &followDomain{
		followRepo:       followRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		cache:            cacheStore,
	}
}

// Follow is idempotent: following an already-followed user succeeds
// without a second edge or a second notification.
func (d *followDomain) Follow(ctx context.Context, req *model.FollowRequest) (*model.FollowResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	if req.UserID == "" || req.UserID == userID {
		return nil, errorx.New(errorx.BadRequest, "Cannot follow this user")
	}

	_, err := d.followRepo.Get(ctx, userID, req.UserID)
	if err == nil {
		return &model.FollowResponse{}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get follow state: %v", err)
		return nil, errorx.Unknown
	}

	followee, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get followee: %v", err)
		return nil, errorx.Unknown
	}

	err = d.followRepo.Create(ctx, &entity.Follow{
		FollowerID: userID,
		FolloweeID: followee.ID,
		CreatedAt:  time.Now(),
	})
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	// The notification is best effort, the follow already happened.
	follower, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get follower for notification: %v", err)
	} else {
		err = d.notificationRepo.Create(ctx, &entity.Notification{
			Base:           entity.Base{ID: uuid.NewString()},
			UserID:         followee.ID,
			Type:           entity.NotificationFollow,
			ActorID:        follower.ID,
			ActorUsername:  follower.Username,
			ActorAvatarURL: follower.AvatarURL,
		})
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot create follow notification: %v", err)
		}
	}

	d.cache.Invalidate(
		keyFollowers(req.UserID),
		keyFollowing(userID),
		keyIsFollowing(userID, req.UserID),
		keyNotifications(req.UserID),
		keyUnreadCount(req.UserID),
	)

	return &model.FollowResponse{}, nil
}

// Unfollow is idempotent: removing a non-existent edge succeeds.
func (d *followDomain) Unfollow(ctx context.Context, req *model.UnfollowRequest) (*model.UnfollowResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found user id in request")
	}

	err := d.followRepo.Delete(ctx, userID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Invalidate(
		keyFollowers(req.UserID),
		keyFollowing(userID),
		keyIsFollowing(userID, req.UserID),
	)

	return &model.UnfollowResponse{}, nil
}

func (d *followDomain) GetFollowers(
	ctx context.Context, req *model.GetFollowersRequest,
) (*model.GetFollowersResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found user id in request")
	}

	return cache.GetOrFetch(ctx, d.cache, keyFollowers(req.UserID), followStaleAfter,
		func(ctx context.Context) (*model.GetFollowersResponse, error) {
			follows, err := d.followRepo.GetFollowers(ctx, req.UserID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get followers: %v", err)
				return nil, errorx.Unknown
			}

			total, err := d.followRepo.CountFollowers(ctx, req.UserID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
				return nil, errorx.Unknown
			}

			followers := make([]model.User, 0, len(follows))
			for i := range follows {
				followers = append(followers, model.ConvertUser(&follows[i].Follower))
			}

			return &model.GetFollowersResponse{Followers: followers, Total: total}, nil
		})
}

func (d *followDomain) GetFollowing(
	ctx context.Context, req *model.GetFollowingRequest,
) (*model.GetFollowingResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found user id in request")
	}

	return cache.GetOrFetch(ctx, d.cache, keyFollowing(req.UserID), followStaleAfter,
		func(ctx context.Context) (*model.GetFollowingResponse, error) {
			follows, err := d.followRepo.GetFollowing(ctx, req.UserID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get following: %v", err)
				return nil, errorx.Unknown
			}

			total, err := d.followRepo.CountFollowing(ctx, req.UserID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot count following: %v", err)
				return nil, errorx.Unknown
			}

			following := make([]model.User, 0, len(follows))
			for i := range follows {
				following = append(following, model.ConvertUser(&follows[i].Followee))
			}

			return &model.GetFollowingResponse{Following: following, Total: total}, nil
		})
}

func (d *followDomain) IsFollowing(
	ctx context.Context, req *model.IsFollowingRequest,
) (*model.IsFollowingResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		// An anonymous viewer follows nobody.
		return &model.IsFollowingResponse{}, nil
	}

	return cache.GetOrFetch(ctx, d.cache, keyIsFollowing(userID, req.UserID), followStaleAfter,
		func(ctx context.Context) (*model.IsFollowingResponse, error) {
			_, err := d.followRepo.Get(ctx, userID, req.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &model.IsFollowingResponse{Following: false}, nil
				}

				xcontext.Logger(ctx).Errorf("Cannot get follow state: %v", err)
				return nil, errorx.Unknown
			}

			return &model.IsFollowingResponse{Following: true}, nil
		})
}
