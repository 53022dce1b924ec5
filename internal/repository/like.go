package repository

import (
	"context"
	"errors"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, userID, ratingID string) error
	Get(ctx context.Context, userID, ratingID string) (*entity.Like, error)
	Count(ctx context.Context, ratingID string) (int64, error)
}

type likeRepository struct{}

func NewLikeRepository() LikeRepository {
	return &likeRepository{}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	return xcontext.DB(ctx).Create(like).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, ratingID string) error {
	tx := xcontext.DB(ctx).
		Where("user_id=? AND rating_id=?", userID, ratingID).
		Delete(&entity.Like{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	return nil
}

func (r *likeRepository) Get(ctx context.Context, userID, ratingID string) (*entity.Like, error) {
	var result entity.Like
	err := xcontext.DB(ctx).
		Where("user_id=? AND rating_id=?", userID, ratingID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *likeRepository) Count(ctx context.Context, ratingID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Like{}).
		Where("rating_id=?", ratingID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
