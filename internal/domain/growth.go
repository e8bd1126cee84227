package domain

import (
	"math"
	"time"
)

// followerGrowthPrior is the assumed prior-period follower growth rate used
// to infer a baseline when no historical snapshot exists.
const followerGrowthPrior = 0.05

// GrowthPercent returns the percentage change from previous to current.
// A zero previous value yields 100 when current is positive (new activity
// from nothing) and 0 otherwise, avoiding a division by zero while still
// signaling growth.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}

		return 0
	}

	return roundTo2Decimals((current - previous) / previous * 100)
}

// BuildGrowthMetrics compares the current trailing-30-day window (now-30 to
// now) against the 30 days immediately before it (now-60 to now-30) for post
// count, views and engagement.
//
// Follower growth is estimated, not measured: the previous follower count is
// inferred as max(0, current - round(current*0.05)), assuming 5% growth
// backward. This is a known approximation; the real fix is a historical
// follower snapshot, which the platform does not keep.
func BuildGrowthMetrics(user User, content []ContentItem, now time.Time) GrowthMetrics {
	currentStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	var (
		currentPosts, previousPosts           int
		currentViews, previousViews           int
		currentEngagement, previousEngagement int
	)

	for _, item := range content {
		switch {
		case !item.PublishedAt.Before(currentStart):
			currentPosts++
			currentViews += item.ViewsCount
			currentEngagement += item.EngagementScore()
		case !item.PublishedAt.Before(previousStart):
			previousPosts++
			previousViews += item.ViewsCount
			previousEngagement += item.EngagementScore()
		}
	}

	currentFollowers := float64(user.FollowersCount)
	previousFollowers := currentFollowers - math.Round(currentFollowers*followerGrowthPrior)
	if previousFollowers < 0 {
		previousFollowers = 0
	}

	return GrowthMetrics{
		PostsGrowth:      GrowthPercent(float64(currentPosts), float64(previousPosts)),
		ViewsGrowth:      GrowthPercent(float64(currentViews), float64(previousViews)),
		EngagementGrowth: GrowthPercent(float64(currentEngagement), float64(previousEngagement)),
		FollowersGrowth:  GrowthPercent(currentFollowers, previousFollowers),
	}
}
