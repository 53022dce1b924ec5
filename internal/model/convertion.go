package model

import (
	"github.com/rateshelf/backend/internal/entity"
)

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
	}
}

func ConvertRating(rating *entity.Rating) Rating {
	if rating == nil {
		return Rating{}
	}

	return Rating{
		ID:              rating.ID,
		UserID:          rating.UserID,
		ContentType:     string(rating.ContentType),
		ContentID:       rating.ContentID,
		ContentTitle:    rating.ContentTitle,
		ContentImageURL: rating.ContentImageURL,
		Score:           rating.Score,
		CreatedAt:       rating.CreatedAt,
	}
}

func ConvertRatings(ratings []entity.Rating) []Rating {
	converted := make([]Rating, 0, len(ratings))
	for i := range ratings {
		converted = append(converted, ConvertRating(&ratings[i]))
	}

	return converted
}

func ConvertNotification(n *entity.Notification) Notification {
	if n == nil {
		return Notification{}
	}

	return Notification{
		ID:             n.ID,
		Type:           string(n.Type),
		ActorID:        n.ActorID,
		ActorUsername:  n.ActorUsername,
		ActorAvatarURL: n.ActorAvatarURL,
		RatingID:       n.RatingID,
		RatingTitle:    n.RatingTitle,
		RatingType:     string(n.RatingType),
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

func ConvertContentStatus(s *entity.ContentStatus) ContentStatus {
	if s == nil {
		return ContentStatus{}
	}

	return ContentStatus{
		ContentType:     string(s.ContentType),
		ContentID:       s.ContentID,
		Status:          string(s.Status),
		ContentTitle:    s.ContentTitle,
		ContentImageURL: s.ContentImageURL,
		UpdatedAt:       s.UpdatedAt,
	}
}

func ConvertPinnedItem(p *entity.PinnedItem) PinnedItem {
	if p == nil {
		return PinnedItem{}
	}

	return PinnedItem{
		ContentType:     string(p.ContentType),
		ContentID:       p.ContentID,
		Position:        p.Position,
		ContentTitle:    p.ContentTitle,
		ContentImageURL: p.ContentImageURL,
	}
}

func ConvertAlbumTrack(t *entity.AlbumTrack) AlbumTrack {
	if t == nil {
		return AlbumTrack{}
	}

	return AlbumTrack{
		Position:    t.Position,
		Title:       t.Title,
		DurationSec: t.DurationSec,
	}
}
