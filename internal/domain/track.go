package domain

import (
	"context"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type TrackDomain interface {
	GetAlbumTracks(ctx context.Context, req *model.GetAlbumTracksRequest) (*model.GetAlbumTracksResponse, error)
}

type trackDomain struct {
	albumTrackRepo repository.AlbumTrackRepository
	cache          *cache.Store
}

func NewTrackDomain(albumTrackRepo repository.AlbumTrackRepository, cacheStore *cache.Store) TrackDomain {
	return &trackDomain{albumTrackRepo: albumTrackRepo, cache: cacheStore}
}

// Tracklists never change once imported, hence the long stale window.
func (d *trackDomain) GetAlbumTracks(
	ctx context.Context, req *model.GetAlbumTracksRequest,
) (*model.GetAlbumTracksResponse, error) {
	if req.AlbumID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found album id in request")
	}

	return cache.GetOrFetch(ctx, d.cache, keyAlbumTracks(req.AlbumID), albumTracksStaleAfter,
		func(ctx context.Context) (*model.GetAlbumTracksResponse, error) {
			tracks, err := d.albumTrackRepo.GetByAlbumID(ctx, req.AlbumID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get album tracks: %v", err)
				return nil, errorx.Unknown
			}

			converted := make([]model.AlbumTrack, 0, len(tracks))
			for i := range tracks {
				converted = append(converted, model.ConvertAlbumTrack(&tracks[i]))
			}

			return &model.GetAlbumTracksResponse{Tracks: converted}, nil
		})
}
