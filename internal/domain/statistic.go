package domain

import (
	"context"
	"time"

	"github.com/rateshelf/backend/internal/domain/statistic"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/internal/repository"
	"github.com/rateshelf/backend/pkg/dateutil"
	"github.com/rateshelf/backend/pkg/errorx"
	"github.com/rateshelf/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetStreak(ctx context.Context, req *model.GetStreakRequest) (*model.GetStreakResponse, error)
	GetDiary(ctx context.Context, req *model.GetDiaryRequest) (*model.GetDiaryResponse, error)
	GetCategoryStats(ctx context.Context, req *model.GetCategoryStatsRequest) (*model.GetCategoryStatsResponse, error)
}

type statisticDomain struct {
	ratingRepo repository.RatingRepository
	location   *time.Location
}

func NewStatisticDomain(ratingRepo repository.RatingRepository, location *time.Location) StatisticDomain {
	if location == nil {
		location = time.Local
	}

	return &statisticDomain{ratingRepo: ratingRepo, location: location}
}

func (d *statisticDomain) GetStreak(ctx context.Context, _ *model.GetStreakRequest) (*model.GetStreakResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.GetStreakResponse{Days: 0}, nil
	}

	times, err := d.ratingRepo.GetCreatedTimes(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rating times: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetStreakResponse{
		Days: statistic.Streak(times, time.Now(), d.location),
	}, nil
}

func (d *statisticDomain) GetDiary(ctx context.Context, req *model.GetDiaryRequest) (*model.GetDiaryResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1970 {
		return nil, errorx.New(errorx.BadRequest, "Invalid diary month")
	}

	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.GetDiaryResponse{Days: map[string][]model.Rating{}}, nil
	}

	begin, end := dateutil.MonthWindow(req.Year, time.Month(req.Month), d.location)
	ratings, err := d.ratingRepo.GetByUserInRange(ctx, userID, begin, end)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get diary ratings: %v", err)
		return nil, errorx.Unknown
	}

	grouped := statistic.GroupByDay(ratings, d.location)
	days := make(map[string][]model.Rating, len(grouped))
	for day, dayRatings := range grouped {
		days[day] = model.ConvertRatings(dayRatings)
	}

	return &model.GetDiaryResponse{Days: days}, nil
}

func (d *statisticDomain) GetCategoryStats(
	ctx context.Context, req *model.GetCategoryStatsRequest,
) (*model.GetCategoryStatsResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return &model.GetCategoryStatsResponse{ByCategory: []model.CategoryStat{}}, nil
	}

	ratings, err := d.ratingRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ratings: %v", err)
		return nil, errorx.Unknown
	}

	total, average, byCategory := statistic.Summarize(ratings)
	if byCategory == nil {
		byCategory = []model.CategoryStat{}
	}

	return &model.GetCategoryStatsResponse{
		TotalRatings: total,
		AverageScore: average,
		ByCategory:   byCategory,
	}, nil
}
