package main

import (
	"context"
	"net/http"

	"github.com/rateshelf/backend/internal/middleware"
	"github.com/rateshelf/backend/pkg/router"
	"github.com/rateshelf/backend/pkg/xcontext"
)

func (s *srv) loadRouter() {
	s.router = router.New()
	s.router.Use(func(ctx context.Context, _ *http.Request) (context.Context, error) {
		ctx = xcontext.WithConfigs(ctx, s.configs)
		ctx = xcontext.WithLogger(ctx, s.logger)
		ctx = xcontext.WithDB(ctx, s.db)
		return ctx, nil
	})
	s.router.Use(middleware.Authenticate)

	router.GET(s.router, "/getUser", s.userDomain.GetProfile)
	router.GET(s.router, "/searchUsers", s.userDomain.SearchUsers)

	router.POST(s.router, "/follow", s.followDomain.Follow)
	router.POST(s.router, "/unfollow", s.followDomain.Unfollow)
	router.GET(s.router, "/getFollowers", s.followDomain.GetFollowers)
	router.GET(s.router, "/getFollowing", s.followDomain.GetFollowing)
	router.GET(s.router, "/isFollowing", s.followDomain.IsFollowing)

	router.POST(s.router, "/createRating", s.ratingDomain.Create)
	router.GET(s.router, "/getRatingHistory", s.ratingDomain.GetHistory)
	router.GET(s.router, "/getCommunityScore", s.ratingDomain.GetCommunityScore)
	router.POST(s.router, "/likeRating", s.ratingDomain.Like)
	router.POST(s.router, "/unlikeRating", s.ratingDomain.Unlike)
	router.GET(s.router, "/getRatingLike", s.ratingDomain.GetRatingLike)
	router.GET(s.router, "/getLikesCount", s.ratingDomain.GetLikesCount)

	router.GET(s.router, "/getFeed", s.feedDomain.GetFeed)

	router.GET(s.router, "/getStreak", s.statisticDomain.GetStreak)
	router.GET(s.router, "/getDiary", s.statisticDomain.GetDiary)
	router.GET(s.router, "/getCategoryStats", s.statisticDomain.GetCategoryStats)

	router.GET(s.router, "/getNotifications", s.notificationDomain.GetList)
	router.GET(s.router, "/getUnreadCount", s.notificationDomain.GetUnreadCount)
	router.POST(s.router, "/markNotificationsRead", s.notificationDomain.MarkRead)
	router.POST(s.router, "/markAllNotificationsRead", s.notificationDomain.MarkAllRead)

	router.POST(s.router, "/upsertContentStatus", s.libraryDomain.UpsertStatus)
	router.GET(s.router, "/getPendingItems", s.libraryDomain.GetPending)

	router.GET(s.router, "/getPinnedItems", s.pinDomain.GetPins)
	router.POST(s.router, "/pinItem", s.pinDomain.Pin)
	router.POST(s.router, "/unpinItem", s.pinDomain.Unpin)
	router.POST(s.router, "/reorderPins", s.pinDomain.Reorder)

	router.GET(s.router, "/getAlbumTracks", s.trackDomain.GetAlbumTracks)
	router.GET(s.router, "/getActiveChallenges", s.challengeDomain.GetActive)
	router.GET(s.router, "/getStreakCelebration", s.celebrationDomain.GetStreakCelebration)
}
