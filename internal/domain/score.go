package domain

import (
	"context"
	"hash/fnv"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/cache"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/numberutil"
	"github.com/rateshelf/backend/pkg/xcontext"
)

// ScoreProvider produces the community score of one piece of content.
// Which provider serves is a deployment decision, not a call-site one.
type ScoreProvider interface {
	Score(ctx context.Context, contentType entity.ContentType, contentID string) (model.CommunityScore, error)
}

// placeholderScoreProvider derives a stable pseudo score from the content
// id, so the same content always shows the same number. Scores land in
// [4.0, 9.5] at one-decimal steps and rating counts in [10, 500].
type placeholderScoreProvider struct{}

func NewPlaceholderScoreProvider() ScoreProvider {
	return placeholderScoreProvider{}
}

func (placeholderScoreProvider) Score(
	_ context.Context, _ entity.ContentType, contentID string,
) (model.CommunityScore, error) {
	h := fnv.New32a()
	h.Write([]byte(contentID))
	seed := h.Sum32()

	return model.CommunityScore{
		AverageScore: 4.0 + float64(seed%56)/10.0,
		TotalRatings: 10 + int((seed/56)%491),
	}, nil
}

// ratingScoreProvider averages the real rating rows. Content nobody rated
// scores {0, 0}.
type ratingScoreProvider struct {
	ratingRepo repository.RatingRepository
	cache      *cache.Store
}

func NewRatingScoreProvider(ratingRepo repository.RatingRepository, cacheStore *cache.Store) ScoreProvider {
	return &ratingScoreProvider{ratingRepo: ratingRepo, cache: cacheStore}
}

func (p *ratingScoreProvider) Score(
	ctx context.Context, contentType entity.ContentType, contentID string,
) (model.CommunityScore, error) {
	return cache.GetOrFetch(ctx, p.cache, keyCommunityScore(contentType, contentID), communityScoreStaleAfter,
		func(ctx context.Context) (model.CommunityScore, error) {
			scores, err := p.ratingRepo.GetScores(ctx, contentType, contentID)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot get scores: %v", err)
				return model.CommunityScore{}, errorx.Unknown
			}

			if len(scores) == 0 {
				return model.CommunityScore{}, nil
			}

			var sum float64
			for _, s := range scores {
				sum += s
			}

			return model.CommunityScore{
				AverageScore: numberutil.Round1(sum / float64(len(scores))),
				TotalRatings: len(scores),
			}, nil
		})
}
