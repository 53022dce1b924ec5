package repository

import (
	"context"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type ContentStatusRepository interface {
	Upsert(ctx context.Context, status *entity.ContentStatus) error
	GetRecentByUserID(ctx context.Context, userID string, statuses []entity.StatusType, limit int) ([]entity.ContentStatus, error)
	Get(ctx context.Context, userID string, contentType entity.ContentType, contentID string) (*entity.ContentStatus, error)
}

type contentStatusRepository struct{}

func NewContentStatusRepository() ContentStatusRepository {
	return &contentStatusRepository{}
}

// Upsert is last-write-wins on the (user, content type, content id) key.
func (r *contentStatusRepository) Upsert(ctx context.Context, status *entity.ContentStatus) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "content_type"}, {Name: "content_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "content_title", "content_image_url", "updated_at",
		}),
	}).Create(status).Error
}

func (r *contentStatusRepository) GetRecentByUserID(
	ctx context.Context, userID string, statuses []entity.StatusType, limit int,
) ([]entity.ContentStatus, error) {
	var result []entity.ContentStatus
	err := xcontext.DB(ctx).
		Where("user_id=? AND status IN (?)", userID, statuses).
		Order("updated_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *contentStatusRepository) Get(
	ctx context.Context, userID string, contentType entity.ContentType, contentID string,
) (*entity.ContentStatus, error) {
	var result entity.ContentStatus
	err := xcontext.DB(ctx).
		Where("user_id=? AND content_type=? AND content_id=?", userID, contentType, contentID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
