package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/rateshelf/backend/internal/domain/statistic"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
	"github.com/rateshelf/backend/pkg/xredis"
)

// Milestones are celebrated once each, on the exact day the streak
// reaches them.
var streakMilestones = []int{7, 30, 100, 365}

type CelebrationDomain interface {
	GetStreakCelebration(ctx context.Context, req *model.GetStreakCelebrationRequest) (*model.GetStreakCelebrationResponse, error)
}

type celebrationDomain struct {
	ratingRepo  repository.RatingRepository
	redisClient xredis.Client
	location    *time.Location
}

func NewCelebrationDomain(
	ratingRepo repository.RatingRepository, redisClient xredis.Client, location *time.Location,
) CelebrationDomain {
	if location == nil {
		location = time.Local
	}

	return &celebrationDomain{ratingRepo: ratingRepo, redisClient: redisClient, location: location}
}

func (d *celebrationDomain) GetStreakCelebration(
	ctx context.Context, _ *model.GetStreakCelebrationRequest,
) (*model.GetStreakCelebrationResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.GetStreakCelebrationResponse{}, nil
	}

	times, err := d.ratingRepo.GetCreatedTimes(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rating times: %v", err)
		return nil, errorx.Unknown
	}

	streak := statistic.Streak(times, time.Now(), d.location)
	milestone := 0
	for _, m := range streakMilestones {
		if streak == m {
			milestone = m
			break
		}
	}

	if milestone == 0 {
		return &model.GetStreakCelebrationResponse{}, nil
	}

	key := fmt.Sprintf("celebrated_streak:%s:%d", userID, milestone)
	celebrated, err := d.redisClient.Exist(ctx, key)
	if err != nil {
		// When the flag store is unreachable, staying silent beats
		// celebrating the same milestone twice.
		xcontext.Logger(ctx).Warnf("Cannot read celebration flag: %v", err)
		return &model.GetStreakCelebrationResponse{}, nil
	}

	if celebrated {
		return &model.GetStreakCelebrationResponse{}, nil
	}

	if err := d.redisClient.Set(ctx, key, "1"); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot write celebration flag: %v", err)
	}

	return &model.GetStreakCelebrationResponse{Celebrate: true, Milestone: milestone}, nil
}
