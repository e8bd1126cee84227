package domain

import (
	"time"
)

// AnalyticsPeriod is the reporting window label carried on every result.
// This pipeline always reports over a trailing 30-day window.
const AnalyticsPeriod = "30days"

// Overview holds the 9 account-wide totals.
type Overview struct {
	TotalViews        int `json:"total_views"`
	TotalLikes        int `json:"total_likes"`
	TotalShares       int `json:"total_shares"`
	TotalComments     int `json:"total_comments"`
	TotalBookmarks    int `json:"total_bookmarks"`
	FollowersCount    int `json:"followers_count"`
	FollowingCount    int `json:"following_count"`
	TotalPosts        int `json:"total_posts"`
	TotalApplications int `json:"total_applications"`
}

// TypePerformance is one content-performance row. All 5 content types are
// always present, even with zero items.
type TypePerformance struct {
	ContentType   ContentType `json:"content_type"`
	TotalItems    int         `json:"total_items"`
	TotalViews    int         `json:"total_views"`
	TotalLikes    int         `json:"total_likes"`
	TotalShares   int         `json:"total_shares"`
	TotalComments int         `json:"total_comments"`
	AvgEngagement float64     `json:"avg_engagement"`
}

// TimeSeriesPoint is one daily bucket of the 30-day time series.
type TimeSeriesPoint struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Views        int    `json:"views"`
	Likes        int    `json:"likes"`
	Shares       int    `json:"shares"`
	Comments     int    `json:"comments"`
	PostsCreated int    `json:"posts_created"`
}

// TopContentItem is one entry of the top-content ranking.
type TopContentItem struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Slug               string      `json:"slug"`
	ContentType        ContentType `json:"content_type"`
	ContentTypeDisplay string      `json:"content_type_display"`
	ViewsCount         int         `json:"views_count"`
	LikesCount         int         `json:"likes_count"`
	SharesCount        int         `json:"shares_count"`
	CommentsCount      int         `json:"comments_count"`
	EngagementScore    int         `json:"engagement_score"`
	PublishedAt        time.Time   `json:"published_at"`
}

// ActivityType tags entries of the recent-activity feed.
type ActivityType string

const (
	ActivityPublished  ActivityType = "published"
	ActivityApplied    ActivityType = "applied"
	ActivityBookmarked ActivityType = "bookmarked"
)

// ActivityItem is one entry of the unified recent-activity feed.
// ID is a synthetic composite id, unique across the three sources.
type ActivityItem struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	ContentType ContentType  `json:"content_type"`
	CreatedAt   time.Time    `json:"created_at"`
}

// PeriodEngagement is one engagement-breakdown window.
type PeriodEngagement struct {
	Period    string `json:"period"` // today, week, month, all_time
	Views     int    `json:"views"`
	Likes     int    `json:"likes"`
	Shares    int    `json:"shares"`
	Comments  int    `json:"comments"`
	Bookmarks int    `json:"bookmarks"`
}

// GrowthMetrics compares the current trailing-30-day window against the one
// before it. FollowersGrowth is an estimate against an inferred baseline, not
// a measured value; no historical follower snapshot exists.
type GrowthMetrics struct {
	PostsGrowth      float64 `json:"posts_growth"`
	ViewsGrowth      float64 `json:"views_growth"`
	EngagementGrowth float64 `json:"engagement_growth"`
	FollowersGrowth  float64 `json:"followers_growth"`
}

// AnalyticsData is the full analytics result. It is constructed once per
// aggregation call and never mutated after return.
type AnalyticsData struct {
	Overview             Overview             `json:"overview"`
	ContentPerformance   []TypePerformance    `json:"content_performance"`
	TimeSeries           []TimeSeriesPoint    `json:"time_series"`
	TopContent           []TopContentItem     `json:"top_content"`
	ApplicationAnalytics ApplicationAnalytics `json:"application_analytics"`
	RecentActivity       []ActivityItem       `json:"recent_activity"`
	EngagementBreakdown  []PeriodEngagement   `json:"engagement_breakdown"`
	GrowthMetrics        GrowthMetrics        `json:"growth_metrics"`
	Period               string               `json:"period"`
}

// EmptyAnalytics returns the structurally-complete zero-valued result used as
// the availability-first fallback: all 5 content-performance rows, all 30
// time-series buckets and all 4 engagement periods are present with zeros, so
// callers never have to distinguish failure from an empty account.
func EmptyAnalytics(now time.Time) *AnalyticsData {
	return &AnalyticsData{
		Overview:             Overview{},
		ContentPerformance:   BuildContentPerformance(nil),
		TimeSeries:           BuildTimeSeries(nil, now),
		TopContent:           []TopContentItem{},
		ApplicationAnalytics: BuildApplicationAnalytics(nil),
		RecentActivity:       []ActivityItem{},
		EngagementBreakdown:  BuildEngagementBreakdown(nil, nil, Overview{}, now),
		GrowthMetrics:        GrowthMetrics{},
		Period:               AnalyticsPeriod,
	}
}
