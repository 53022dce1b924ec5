package repository

import (
	"context"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type PinnedItemRepository interface {
	Upsert(ctx context.Context, item *entity.PinnedItem) error
	Delete(ctx context.Context, userID string, contentType entity.ContentType, contentID string) error
	GetByUserID(ctx context.Context, userID string) ([]entity.PinnedItem, error)
	UpdatePosition(ctx context.Context, userID string, contentType entity.ContentType, contentID string, position int) error
}

type pinnedItemRepository struct{}

func NewPinnedItemRepository() PinnedItemRepository {
	return &pinnedItemRepository{}
}

func (r *pinnedItemRepository) Upsert(ctx context.Context, item *entity.PinnedItem) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "content_type"}, {Name: "content_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"position", "content_title", "content_image_url", "updated_at",
		}),
	}).Create(item).Error
}

func (r *pinnedItemRepository) Delete(
	ctx context.Context, userID string, contentType entity.ContentType, contentID string,
) error {
	return xcontext.DB(ctx).
		Where("user_id=? AND content_type=? AND content_id=?", userID, contentType, contentID).
		Delete(&entity.PinnedItem{}).Error
}

func (r *pinnedItemRepository) GetByUserID(ctx context.Context, userID string) ([]entity.PinnedItem, error) {
	var result []entity.PinnedItem
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *pinnedItemRepository) UpdatePosition(
	ctx context.Context, userID string, contentType entity.ContentType, contentID string, position int,
) error {
	return xcontext.DB(ctx).
		Model(&entity.PinnedItem{}).
		Where("user_id=? AND content_type=? AND content_id=?", userID, contentType, contentID).
		Update("position", position).Error
}
