package domain

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type UserDomain interface {
	GetProfile(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	SearchUsers(ctx context.Context, req *model.SearchUsersRequest) (*model.SearchUsersResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
	cache    *cache.Store
}

func NewUserDomain(userRepo repository.UserRepository, cacheStore *cache.Store) UserDomain {
	return &userDomain{userRepo: userRepo, cache: cacheStore}
}

func (d *userDomain) GetProfile(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found user id in request")
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUserResponse(model.ConvertUser(user))
	return &resp, nil
}

func (d *userDomain) SearchUsers(
	ctx context.Context, req *model.SearchUsersRequest,
) (*model.SearchUsersResponse, error) {
	q := strings.TrimSpace(req.Q)
	if q == "" {
		return &model.SearchUsersResponse{Users: []model.User{}}, nil
	}

	return cache.GetOrFetch(ctx, d.cache, keySearchUsers(q), searchUsersStaleAfter,
		func(ctx context.Context) (*model.SearchUsersResponse, error) {
			users, err := d.userRepo.Search(ctx, q, xcontext.Configs(ctx).ApiServer.DefaultLimit)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot search users: %v", err)
				return nil, errorx.Unknown
			}

			converted := make([]model.User, 0, len(users))
			for i := range users {
				converted = append(converted, model.ConvertUser(&users[i]))
			}

			return &model.SearchUsersResponse{Users: converted}, nil
		})
}
