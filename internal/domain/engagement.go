package domain

import (
	"time"
)

// BuildEngagementBreakdown reports engagement over 4 fixed windows: today
// (since local midnight), week (trailing 7 days), month (trailing 30 days)
// and all_time. The windows overlap rather than nest: an item counted in
// "today" is also counted in "week" and "month".
//
// The all_time row reuses the overview totals exactly instead of recomputing,
// so the two facets can never disagree.
func BuildEngagementBreakdown(content []ContentItem, bookmarks []BookmarkItem, overview Overview, now time.Time) []PeriodEngagement {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	windows := []struct {
		period string
		start  time.Time
	}{
		{"today", midnight},
		{"week", now.AddDate(0, 0, -7)},
		{"month", now.AddDate(0, 0, -30)},
	}

	breakdown := make([]PeriodEngagement, 0, len(windows)+1)

	for _, window := range windows {
		row := PeriodEngagement{Period: window.period}

		for _, item := range content {
			if item.PublishedAt.Before(window.start) {
				continue
			}
			row.Views += item.ViewsCount
			row.Likes += item.LikesCount
			row.Shares += item.SharesCount
			row.Comments += item.CommentsCount
		}

		for _, bookmark := range bookmarks {
			if !bookmark.CreatedAt.Before(window.start) {
				row.Bookmarks++
			}
		}

		breakdown = append(breakdown, row)
	}

	breakdown = append(breakdown, PeriodEngagement{
		Period:    "all_time",
		Views:     overview.TotalViews,
		Likes:     overview.TotalLikes,
		Shares:    overview.TotalShares,
		Comments:  overview.TotalComments,
		Bookmarks: overview.TotalBookmarks,
	})

	return breakdown
}
