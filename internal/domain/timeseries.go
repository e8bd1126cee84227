package domain

import (
	"time"
)

// timeSeriesDays is the length of the daily time series.
const timeSeriesDays = 30

// BuildTimeSeries folds content into exactly 30 daily buckets, oldest first,
// spanning now-29 days through today inclusive. Buckets are pre-seeded with
// zeros so every date is present even without activity. Items whose publish
// date falls outside the window are dropped from the series only; they still
// count in every other aggregator.
func BuildTimeSeries(content []ContentItem, now time.Time) []TimeSeriesPoint {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	series := make([]TimeSeriesPoint, timeSeriesDays)
	index := make(map[string]*TimeSeriesPoint, timeSeriesDays)

	for i := 0; i < timeSeriesDays; i++ {
		day := today.AddDate(0, 0, i-timeSeriesDays+1)
		key := day.Format("2006-01-02")
		series[i] = TimeSeriesPoint{Date: key}
		index[key] = &series[i]
	}

	for _, item := range content {
		bucket, ok := index[item.PublishedDay(loc)]
		if !ok {
			continue
		}
		bucket.Views += item.ViewsCount
		bucket.Likes += item.LikesCount
		bucket.Shares += item.SharesCount
		bucket.Comments += item.CommentsCount
		bucket.PostsCreated++
	}

	return series
}
