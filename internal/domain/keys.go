package domain

import (
	"strconv"
	"time"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/cache"
)

// Stale windows per derived query. A read older than its window refetches
// from the database; an explicit Invalidate refetches regardless.
const (
	communityScoreStaleAfter = 5 * time.Minute
	followStaleAfter         = 30 * time.Second
	notificationsStaleAfter  = time.Minute
	unreadCountStaleAfter    = 30 * time.Second
	ratingLikeStaleAfter     = 5 * time.Minute
	searchUsersStaleAfter    = 2 * time.Minute
	albumTracksStaleAfter    = time.Hour
	socialFeedStaleAfter     = time.Minute
	pendingItemsStaleAfter   = time.Minute
	pinnedItemsStaleAfter    = 5 * time.Minute
)

// Key builders. The page-less form of a paginated key doubles as the
// family handle for Invalidate.

func keyFollowers(userID string) cache.Key {
	return cache.Key{"followers", userID}
}

func keyFollowing(userID string) cache.Key {
	return cache.Key{"following", userID}
}

func keyIsFollowing(followerID, followeeID string) cache.Key {
	return cache.Key{"is_following", followerID, followeeID}
}

func keyCommunityScore(contentType entity.ContentType, contentID string) cache.Key {
	return cache.Key{"community_score", string(contentType), contentID}
}

func keyRatingLikes(ratingID string) cache.Key {
	return cache.Key{"rating_like", ratingID}
}

func keyRatingLike(ratingID, userID string) cache.Key {
	return cache.Key{"rating_like", ratingID, userID}
}

func keyLikesCount(ratingID string) cache.Key {
	return cache.Key{"likes_count", ratingID}
}

func keyNotifications(userID string) cache.Key {
	return cache.Key{"notifications", userID}
}

func keyNotificationsPage(userID string, cursor int) cache.Key {
	return cache.Key{"notifications", userID, strconv.Itoa(cursor)}
}

func keyUnreadCount(userID string) cache.Key {
	return cache.Key{"unread_count", userID}
}

func keySearchUsers(q string) cache.Key {
	return cache.Key{"search_users", q}
}

func keyAlbumTracks(albumID string) cache.Key {
	return cache.Key{"album_tracks", albumID}
}

func keySocialFeed(userID string) cache.Key {
	return cache.Key{"social_feed", userID}
}

func keySocialFeedPage(userID string, cursor int) cache.Key {
	return cache.Key{"social_feed", userID, strconv.Itoa(cursor)}
}

func keyPendingItems(userID string) cache.Key {
	return cache.Key{"pending_items", userID}
}

func keyPinnedItems(userID string) cache.Key {
	return cache.Key{"pinned_items", userID}
}
