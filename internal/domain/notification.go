package domain

import (
	"context"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

const notificationPageSize = 20

type NotificationDomain interface {
	GetList(ctx context.Context, req *model.GetNotificationsRequest) (*model.GetNotificationsResponse, error)
	GetUnreadCount(ctx context.Context, req *model.GetUnreadCountRequest) (*model.GetUnreadCountResponse, error)
	MarkRead(ctx context.Context, req *model.MarkNotificationsReadRequest) (*model.MarkNotificationsReadResponse, error)
	MarkAllRead(ctx context.Context, req *model.MarkAllNotificationsReadRequest) (*model.MarkAllNotificationsReadResponse, error)
}

type notificationDomain struct {
	notificationRepo repository.NotificationRepository
	cache            *cache.Store
}

func NewNotificationDomain(
	notificationRepo repository.NotificationRepository, cacheStore *cache.Store,
) NotificationDomain {
	return &notificationDomain{notificationRepo: notificationRepo, cache: cacheStore}
}

func (d *notificationDomain) GetList(
	ctx context.Context, req *model.GetNotificationsRequest,
) (*model.GetNotificationsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.GetNotificationsResponse{Notifications: []model.Notification{}}, nil
	}

	if req.Cursor < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid cursor")
	}

	return cache.GetOrFetch(ctx, d.cache, keyNotificationsPage(userID, req.Cursor), notificationsStaleAfter,
		func(ctx context.Context) (*model.GetNotificationsResponse, error) {
			notifications, err := d.notificationRepo.GetListByUserID(ctx, userID, req.Cursor, notificationPageSize)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get notifications: %v", err)
				return nil, errorx.Unknown
			}

			converted := make([]model.Notification, 0, len(notifications))
			for i := range notifications {
				converted = append(converted, model.ConvertNotification(&notifications[i]))
			}

			resp := &model.GetNotificationsResponse{Notifications: converted}
			if len(notifications) == notificationPageSize {
				next := req.Cursor + notificationPageSize
				resp.NextCursor = &next
			}

			return resp, nil
		})
}

func (d *notificationDomain) GetUnreadCount(
	ctx context.Context, _ *model.GetUnreadCountRequest,
) (*model.GetUnreadCountResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.GetUnreadCountResponse{Count: 0}, nil
	}

	return cache.GetOrFetch(ctx, d.cache, keyUnreadCount(userID), unreadCountStaleAfter,
		func(ctx context.Context) (*model.GetUnreadCountResponse, error) {
			count, err := d.notificationRepo.CountUnread(ctx, userID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot count unread notifications: %v", err)
				return nil, errorx.Unknown
			}

			return &model.GetUnreadCountResponse{Count: count}, nil
		})
}

func (d *notificationDomain) MarkRead(
	ctx context.Context, req *model.MarkNotificationsReadRequest,
) (*model.MarkNotificationsReadResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	if len(req.IDs) == 0 {
		return &model.MarkNotificationsReadResponse{}, nil
	}

	if err := d.notificationRepo.MarkRead(ctx, userID, req.IDs); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notifications read: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Invalidate(keyNotifications(userID), keyUnreadCount(userID))

	return &model.MarkNotificationsReadResponse{}, nil
}

func (d *notificationDomain) MarkAllRead(
	ctx context.Context, _ *model.MarkAllNotificationsReadRequest,
) (*model.MarkAllNotificationsReadResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	if err := d.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notifications read: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Invalidate(keyNotifications(userID), keyUnreadCount(userID))

	return &model.MarkAllNotificationsReadResponse{}, nil
}
