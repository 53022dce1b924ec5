// Package statistic computes rating aggregations: consecutive-day
// streaks, monthly diaries, and per-category summaries.
package statistic

import (
	"sort"
	"time"

	"golang.org/x/exp/slices"

	"github.com/rateshelf/backend/internal/entity"
	"github.com/rateshelf/backend/internal/model"
	"github.com/rateshelf/backend/pkg/dateutil"
	"github.com/rateshelf/backend/pkg/numberutil"
)

// Streak returns the number of consecutive local days ending today on
// which the user rated something. A day with any number of ratings
// counts once. If there is no rating today, the streak is zero no
// matter how long the previous run was.
func Streak(times []time.Time, now time.Time, loc *time.Location) int {
	seen := make(map[string]struct{}, len(times))
	var days []time.Time
	for _, t := range times {
		key := dateutil.DayKey(t, loc)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		days = append(days, t)
	}

	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	if dateutil.DaysBetween(days[0], now, loc) != 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if dateutil.DaysBetween(days[i], days[i-1], loc) != 1 {
			break
		}

		streak++
	}

	return streak
}

// GroupByDay buckets ratings under their local YYYY-MM-DD date. The
// input order is preserved inside each bucket.
func GroupByDay(ratings []entity.Rating, loc *time.Location) map[string][]entity.Rating {
	result := make(map[string][]entity.Rating)
	for i := range ratings {
		key := dateutil.DayKey(ratings[i].CreatedAt, loc)
		result[key] = append(result[key], ratings[i])
	}

	return result
}

// Summarize returns the total count, the overall average score, and
// per-category stats ordered by count descending. Categories with the
// same count keep their first-seen order. Averages are rounded to one
// decimal; an empty input yields zero values.
func Summarize(ratings []entity.Rating) (int, float64, []model.CategoryStat) {
	if len(ratings) == 0 {
		return 0, 0, nil
	}

	type bucket struct {
		count int
		sum   float64
	}

	byType := map[entity.ContentType]*bucket{}
	var order []entity.ContentType
	var sum float64
	for i := range ratings {
		sum += ratings[i].Score
		b, ok := byType[ratings[i].ContentType]
		if !ok {
			b = &bucket{}
			byType[ratings[i].ContentType] = b
			order = append(order, ratings[i].ContentType)
		}

		b.count++
		b.sum += ratings[i].Score
	}

	stats := make([]model.CategoryStat, 0, len(order))
	for _, contentType := range order {
		b := byType[contentType]
		stats = append(stats, model.CategoryStat{
			ContentType:  string(contentType),
			Count:        b.count,
			AverageScore: numberutil.Round1(b.sum / float64(b.count)),
		})
	}

	slices.SortStableFunc(stats, func(a, b model.CategoryStat) bool {
		return a.Count > b.Count
	})

	return len(ratings), numberutil.Round1(sum / float64(len(ratings))), stats
}
