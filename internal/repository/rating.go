package repository

import (
	"context"
	"time"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type RatingFilter struct {
	UserID      string
	ContentType entity.ContentType
	Begin       time.Time
	End         time.Time
}

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	GetByID(ctx context.Context, id string) (*entity.Rating, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.Rating, error)
	GetAllByUserID(ctx context.Context, userID string) ([]entity.Rating, error)
	GetByUserInRange(ctx context.Context, userID string, begin, end time.Time) ([]entity.Rating, error)
	GetCreatedTimes(ctx context.Context, userID string) ([]time.Time, error)
	GetScores(ctx context.Context, contentType entity.ContentType, contentID string) ([]float64, error)
	GetRatedContentIDs(ctx context.Context, userID string) ([]string, error)
	GetFeed(ctx context.Context, userIDs []string, offset, limit int) ([]entity.Rating, error)
	Count(ctx context.Context, filter RatingFilter) (int64, error)
}

type ratingRepository struct{}

func NewRatingRepository() RatingRepository {
	return &ratingRepository{}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	return xcontext.DB(ctx).Create(rating).Error
}

func (r *ratingRepository) GetByID(ctx context.Context, id string) (*entity.Rating, error) {
	var result entity.Rating
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ratingRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.Rating, error) {
	var result []entity.Rating
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ratingRepository) GetAllByUserID(ctx context.Context, userID string) ([]entity.Rating, error) {
	var result []entity.Rating
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ratingRepository) GetByUserInRange(
	ctx context.Context, userID string, begin, end time.Time,
) ([]entity.Rating, error) {
	var result []entity.Rating
	err := xcontext.DB(ctx).
		Where("user_id=? AND created_at >= ? AND created_at < ?", userID, begin, end).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ratingRepository) GetCreatedTimes(ctx context.Context, userID string) ([]time.Time, error) {
	var result []time.Time
	err := xcontext.DB(ctx).
		Model(&entity.Rating{}).
		Where("user_id=?", userID).
		Order("created_at DESC").
		Pluck("created_at", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ratingRepository) GetScores(
	ctx context.Context, contentType entity.ContentType, contentID string,
) ([]float64, error) {
	var result []float64
	err := xcontext.DB(ctx).
		Model(&entity.Rating{}).
		Where("content_type=? AND content_id=?", contentType, contentID).
		Pluck("score", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ratingRepository) GetRatedContentIDs(ctx context.Context, userID string) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).
		Model(&entity.Rating{}).
		Where("user_id=?", userID).
		Distinct().
		Pluck("content_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ratingRepository) GetFeed(
	ctx context.Context, userIDs []string, offset, limit int,
) ([]entity.Rating, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var result []entity.Rating
	err := xcontext.DB(ctx).
		Preload("User").
		Where("user_id IN (?)", userIDs).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ratingRepository) Count(ctx context.Context, filter RatingFilter) (int64, error) {
	tx := xcontext.DB(ctx).Model(&entity.Rating{})
	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if filter.ContentType != "" {
		tx = tx.Where("content_type=?", filter.ContentType)
	}

	if !filter.Begin.IsZero() {
		tx = tx.Where("created_at >= ?", filter.Begin)
	}

	if !filter.End.IsZero() {
		tx = tx.Where("created_at < ?", filter.End)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
