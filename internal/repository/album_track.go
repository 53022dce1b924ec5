package repository

import (
	"context"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type AlbumTrackRepository interface {
	GetByAlbumID(ctx context.Context, albumID string) ([]entity.AlbumTrack, error)
}

type albumTrackRepository struct{}

func NewAlbumTrackRepository() AlbumTrackRepository {
	return &albumTrackRepository{}
}

func (r *albumTrackRepository) GetByAlbumID(ctx context.Context, albumID string) ([]entity.AlbumTrack, error) {
	var result []entity.AlbumTrack
	err := xcontext.DB(ctx).
		Where("album_id=?", albumID).
		Order("position ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
