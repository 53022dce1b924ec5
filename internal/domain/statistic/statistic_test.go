package statistic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rateshelf/backend/internal/entity"
)

func day(t *testing.T, value string, loc *time.Location) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	require.NoError(t, err)
	return parsed
}

func TestStreak(t *testing.T) {
	loc := time.UTC
	now := day(t, "2023-06-15 20:00", loc)

	t.Run("no ratings", func(t *testing.T) {
		require.Equal(t, 0, Streak(nil, now, loc))
	})

	t.Run("no rating today breaks the run", func(t *testing.T) {
		times := []time.Time{
			day(t, "2023-06-14 10:00", loc),
			day(t, "2023-06-13 10:00", loc),
			day(t, "2023-06-12 10:00", loc),
		}
		require.Equal(t, 0, Streak(times, now, loc))
	})

	t.Run("consecutive days ending today", func(t *testing.T) {
		times := []time.Time{
			day(t, "2023-06-15 08:00", loc),
			day(t, "2023-06-14 23:30", loc),
			day(t, "2023-06-13 00:30", loc),
			day(t, "2023-06-11 12:00", loc), // gap before this one
		}
		require.Equal(t, 3, Streak(times, now, loc))
	})

	t.Run("several ratings on one day count once", func(t *testing.T) {
		times := []time.Time{
			day(t, "2023-06-15 08:00", loc),
			day(t, "2023-06-15 18:00", loc),
			day(t, "2023-06-14 10:00", loc),
		}
		require.Equal(t, 2, Streak(times, now, loc))
	})

	t.Run("local midnight boundary", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)

		// 23:30 and 00:30 around local midnight are two distinct days.
		times := []time.Time{
			day(t, "2023-06-15 00:30", berlin),
			day(t, "2023-06-14 23:30", berlin),
		}
		require.Equal(t, 2, Streak(times, day(t, "2023-06-15 09:00", berlin), berlin))
	})
}

func TestGroupByDay(t *testing.T) {
	loc := time.UTC
	ratings := []entity.Rating{
		{Base: entity.Base{ID: "r1", CreatedAt: day(t, "2023-06-01 09:00", loc)}},
		{Base: entity.Base{ID: "r2", CreatedAt: day(t, "2023-06-01 21:00", loc)}},
		{Base: entity.Base{ID: "r3", CreatedAt: day(t, "2023-06-02 10:00", loc)}},
	}

	grouped := GroupByDay(ratings, loc)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["2023-06-01"], 2)
	require.Equal(t, "r1", grouped["2023-06-01"][0].ID)
	require.Equal(t, "r2", grouped["2023-06-01"][1].ID)
	require.Len(t, grouped["2023-06-02"], 1)
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		total, avg, stats := Summarize(nil)
		require.Equal(t, 0, total)
		require.Equal(t, float64(0), avg)
		require.Empty(t, stats)
	})

	t.Run("mixed categories", func(t *testing.T) {
		ratings := []entity.Rating{
			{ContentType: entity.ContentMovie, Score: 8},
			{ContentType: entity.ContentMovie, Score: 6},
			{ContentType: entity.ContentBook, Score: 10},
		}

		total, avg, stats := Summarize(ratings)
		require.Equal(t, 3, total)
		require.Equal(t, 8.0, avg)
		require.Len(t, stats, 2)
		require.Equal(t, string(entity.ContentMovie), stats[0].ContentType)
		require.Equal(t, 2, stats[0].Count)
		require.Equal(t, 7.0, stats[0].AverageScore)
		require.Equal(t, string(entity.ContentBook), stats[1].ContentType)
		require.Equal(t, 1, stats[1].Count)
		require.Equal(t, 10.0, stats[1].AverageScore)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		ratings := []entity.Rating{
			{ContentType: entity.ContentGame, Score: 5},
			{ContentType: entity.ContentMusic, Score: 7},
		}

		_, _, stats := Summarize(ratings)
		require.Len(t, stats, 2)
		require.Equal(t, string(entity.ContentGame), stats[0].ContentType)
		require.Equal(t, string(entity.ContentMusic), stats[1].ContentType)
	})

	t.Run("averages rounded half up", func(t *testing.T) {
		ratings := []entity.Rating{
			{ContentType: entity.ContentSeries, Score: 7},
			{ContentType: entity.ContentSeries, Score: 8},
			{ContentType: entity.ContentSeries, Score: 8},
		}

		_, avg, stats := Summarize(ratings)
		require.Equal(t, 7.7, avg)
		require.Equal(t, 7.7, stats[0].AverageScore)
	})
}
