package domain

import (
	"context"
	"time"

	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type ChallengeDomain interface {
	GetActive(ctx context.Context, req *model.GetActiveChallengesRequest) (*model.GetActiveChallengesResponse, error)
}

type challengeDomain struct {
	challengeRepo repository.ChallengeRepository
	ratingRepo    repository.RatingRepository
}

func NewChallengeDomain(
	challengeRepo repository.ChallengeRepository, ratingRepo repository.RatingRepository,
) ChallengeDomain {
	return &challengeDomain{challengeRepo: challengeRepo, ratingRepo: ratingRepo}
}

// GetActive returns the currently running challenges with the requesting
// user's progress. Only ratings created inside the challenge window count.
func (d *challengeDomain) GetActive(
	ctx context.Context, _ *model.GetActiveChallengesRequest,
) (*model.GetActiveChallengesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.GetActiveChallengesResponse{Challenges: []model.ChallengeProgress{}}, nil
	}

	challenges, err := d.challengeRepo.GetActive(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active challenges: %v", err)
		return nil, errorx.Unknown
	}

	progress := make([]model.ChallengeProgress, 0, len(challenges))
	for i := range challenges {
		count, err := d.ratingRepo.Count(ctx, repository.RatingFilter{
			UserID:      userID,
			ContentType: challenges[i].ContentType,
			Begin:       challenges[i].StartAt,
			End:         challenges[i].EndAt,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot count challenge ratings: %v", err)
			return nil, errorx.Unknown
		}

		progress = append(progress, model.ChallengeProgress{
			ID:          challenges[i].ID,
			Title:       challenges[i].Title,
			ContentType: string(challenges[i].ContentType),
			TargetCount: challenges[i].TargetCount,
			Progress:    count,
			StartAt:     challenges[i].StartAt,
			EndAt:       challenges[i].EndAt,
		})
	}

	return &model.GetActiveChallengesResponse{Challenges: progress}, nil
}
