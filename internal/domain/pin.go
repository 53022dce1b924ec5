package domain

import (
	"context"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/enum"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

const maxPinnedItems = 10

type PinDomain interface {
	GetPins(ctx context.Context, req *model.GetPinnedItemsRequest) (*model.GetPinnedItemsResponse, error)
	Pin(ctx context.Context, req *model.PinItemRequest) (*model.PinItemResponse, error)
	Unpin(ctx context.Context, req *model.UnpinItemRequest) (*model.UnpinItemResponse, error)
	Reorder(ctx context.Context, req *model.ReorderPinsRequest) (*model.ReorderPinsResponse, error)
}

type pinDomain struct {
	pinnedItemRepo repository.PinnedItemRepository
	cache          *cache.Store
}

func NewPinDomain(pinnedItemRepo repository.PinnedItemRepository, cacheStore *cache.Store) PinDomain {
	return &pinDomain{pinnedItemRepo: pinnedItemRepo, cache: cacheStore}
}

func (d *pinDomain) GetPins(
	ctx context.Context, req *model.GetPinnedItemsRequest,
) (*model.GetPinnedItemsResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found user id in request")
	}

	return cache.GetOrFetch(ctx, d.cache, keyPinnedItems(req.UserID), pinnedItemsStaleAfter,
		func(ctx context.Context) (*model.GetPinnedItemsResponse, error) {
			items, err := d.pinnedItemRepo.GetByUserID(ctx, req.UserID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get pinned items: %v", err)
				return nil, errorx.Unknown
			}

			converted := make([]model.PinnedItem, 0, len(items))
			for i := range items {
				converted = append(converted, model.ConvertPinnedItem(&items[i]))
			}

			return &model.GetPinnedItemsResponse{Items: converted}, nil
		})
}

// Pin appends to the showcase; pinning already-pinned content refreshes
// its title and image but keeps its slot.
func (d *pinDomain) Pin(ctx context.Context, req *model.PinItemRequest) (*model.PinItemResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	contentType, err := enum.ToEnum[entity.ContentType](req.ContentType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid content type %s", req.ContentType)
	}

	if req.ContentID == "" || req.ContentTitle == "" {
		return nil, errorx.New(errorx.BadRequest, "Not found content in request")
	}

	existing, err := d.pinnedItemRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pinned items: %v", err)
		return nil, errorx.Unknown
	}

	position := len(existing)
	for i := range existing {
		if existing[i].ContentType == contentType && existing[i].ContentID == req.ContentID {
			position = existing[i].Position
			break
		}
	}

	if position == len(existing) && len(existing) >= maxPinnedItems {
		return nil, errorx.New(errorx.BadRequest, "Cannot pin more than %d items", maxPinnedItems)
	}

	err = d.pinnedItemRepo.Upsert(ctx, &entity.PinnedItem{
		UserID:          userID,
		ContentType:     contentType,
		ContentID:       req.ContentID,
		Position:        position,
		ContentTitle:    req.ContentTitle,
		ContentImageURL: req.ContentImageURL,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert pinned item: %v", err)
		return nil, errorx.Unknown
	}

	d.cache.Invalidate(keyPinnedItems(userID))

	return &model.PinItemResponse{}, nil
}

// Unpin is idempotent and compacts the positions of the remaining pins.
func (d *pinDomain) Unpin(ctx context.Context, req *model.UnpinItemRequest) (*model.UnpinItemResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	contentType, err := enum.ToEnum[entity.ContentType](req.ContentType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid content type %s", req.ContentType)
	}

	if err := d.pinnedItemRepo.Delete(ctx, userID, contentType, req.ContentID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete pinned item: %v", err)
		return nil, errorx.Unknown
	}

	remaining, err := d.pinnedItemRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pinned items: %v", err)
		return nil, errorx.Unknown
	}

	for i := range remaining {
		if remaining[i].Position == i {
			continue
		}

		err := d.pinnedItemRepo.UpdatePosition(
			ctx, userID, remaining[i].ContentType, remaining[i].ContentID, i)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update pin position: %v", err)
			return nil, errorx.Unknown
		}
	}

	d.cache.Invalidate(keyPinnedItems(userID))

	return &model.UnpinItemResponse{}, nil
}

// Reorder assigns positions from the request order. Every currently
// pinned item must appear exactly once; the request neither adds nor
// removes pins.
func (d *pinDomain) Reorder(ctx context.Context, req *model.ReorderPinsRequest) (*model.ReorderPinsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "User is not authenticated")
	}

	existing, err := d.pinnedItemRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pinned items: %v", err)
		return nil, errorx.Unknown
	}

	if len(req.Items) != len(existing) {
		return nil, errorx.New(errorx.BadRequest, "Reorder must list every pinned item")
	}

	pinned := make(map[model.PinRef]entity.ContentType, len(existing))
	for i := range existing {
		ref := model.PinRef{ContentType: string(existing[i].ContentType), ContentID: existing[i].ContentID}
		pinned[ref] = existing[i].ContentType
	}

	seen := make(map[model.PinRef]struct{}, len(req.Items))
	for _, ref := range req.Items {
		if _, ok := pinned[ref]; !ok {
			return nil, errorx.New(errorx.BadRequest, "Not found pinned item %s/%s", ref.ContentType, ref.ContentID)
		}

		if _, ok := seen[ref]; ok {
			return nil, errorx.New(errorx.BadRequest, "Duplicated pinned item %s/%s", ref.ContentType, ref.ContentID)
		}

		seen[ref] = struct{}{}
	}

	for position, ref := range req.Items {
		err := d.pinnedItemRepo.UpdatePosition(ctx, userID, pinned[ref], ref.ContentID, position)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update pin position: %v", err)
			return nil, errorx.Unknown
		}
	}

	d.cache.Invalidate(keyPinnedItems(userID))

	return &model.ReorderPinsResponse{}, nil
}
