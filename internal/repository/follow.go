package repository

import (
	"context"
	"errors"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *entity.Follow) error
	Delete(ctx context.Context, followerID, followeeID string) error
	Get(ctx context.Context, followerID, followeeID string) (*entity.Follow, error)
	GetFollowers(ctx context.Context, followeeID string) ([]entity.Follow, error)
	GetFollowing(ctx context.Context, followerID string) ([]entity.Follow, error)
	GetFolloweeIDs(ctx context.Context, followerID string) ([]string, error)
	CountFollowers(ctx context.Context, followeeID string) (int64, error)
	CountFollowing(ctx context.Context, followerID string) (int64, error)
}

type followRepository struct{}

func NewFollowRepository() FollowRepository {
	return &followRepository{}
}

func (r *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	return xcontext.DB(ctx).Create(follow).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID string) error {
	tx := xcontext.DB(ctx).
		Where("follower_id=? AND followee_id=?", followerID, followeeID).
		Delete(&entity.Follow{})
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

func (r *followRepository) Get(ctx context.Context, followerID, followeeID string) (*entity.Follow, error) {
	var result entity.Follow
	err := xcontext.DB(ctx).
		Where("follower_id=? AND followee_id=?", followerID, followeeID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, followeeID string) ([]entity.Follow, error) {
	var result []entity.Follow
	err := xcontext.DB(ctx).
		Where("followee_id=?", followeeID).
		Preload("Follower").
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, followerID string) ([]entity.Follow, error) {
	var result []entity.Follow
	err := xcontext.DB(ctx).
		Where("follower_id=?", followerID).
		Preload("Followee").
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) GetFolloweeIDs(ctx context.Context, followerID string) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("follower_id=?", followerID).
		Pluck("followee_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, followeeID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("followee_id=?", followeeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, followerID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Follow{}).
		Where("follower_id=?", followerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
