package domain

import (
	"sort"
)

// maxTopContent bounds the top-content ranking.
const maxTopContent = 8

// BuildOverview computes the account-wide totals.
//
// TotalPosts takes the larger of the profile's self-reported post count and
// the normalized content length: the profile counter may undercount content
// this pipeline can see, or count content types outside its five sources.
func BuildOverview(user User, content []ContentItem, bookmarks []BookmarkItem, applications []ApplicationItem) Overview {
	overview := Overview{
		TotalBookmarks:    len(bookmarks),
		FollowersCount:    user.FollowersCount,
		FollowingCount:    user.FollowingCount,
		TotalApplications: len(applications),
	}

	for _, item := range content {
		overview.TotalViews += item.ViewsCount
		overview.TotalLikes += item.LikesCount
		overview.TotalShares += item.SharesCount
		overview.TotalComments += item.CommentsCount
	}

	overview.TotalPosts = user.PostsCount
	if len(content) > overview.TotalPosts {
		overview.TotalPosts = len(content)
	}

	return overview
}

// BuildContentPerformance aggregates per-type totals. The result always has
// one row per content type in normalization order, zero rows included.
//
// AvgEngagement is (likes+shares+comments)/views*100 — a rate against reach,
// not a true per-item average. Zero views yields zero.
func BuildContentPerformance(content []ContentItem) []TypePerformance {
	byType := make(map[ContentType]*TypePerformance, len(ContentTypes))
	rows := make([]TypePerformance, len(ContentTypes))

	for i, contentType := range ContentTypes {
		rows[i] = TypePerformance{ContentType: contentType}
		byType[contentType] = &rows[i]
	}

	for _, item := range content {
		row, ok := byType[item.ContentType]
		if !ok {
			continue
		}
		row.TotalItems++
		row.TotalViews += item.ViewsCount
		row.TotalLikes += item.LikesCount
		row.TotalShares += item.SharesCount
		row.TotalComments += item.CommentsCount
	}

	for i := range rows {
		if rows[i].TotalViews > 0 {
			engagement := rows[i].TotalLikes + rows[i].TotalShares + rows[i].TotalComments
			rows[i].AvgEngagement = roundTo2Decimals(float64(engagement) / float64(rows[i].TotalViews) * 100)
		}
	}

	return rows
}

// BuildTopContent ranks content by engagement score descending and returns at
// most 8 entries. The sort is stable, so ties keep normalization order.
func BuildTopContent(content []ContentItem) []TopContentItem {
	ranked := make([]TopContentItem, 0, len(content))
	for _, item := range content {
		ranked = append(ranked, TopContentItem{
			ID:                 item.ID,
			Title:              item.Title,
			Slug:               item.Slug,
			ContentType:        item.ContentType,
			ContentTypeDisplay: item.ContentTypeDisplay,
			ViewsCount:         item.ViewsCount,
			LikesCount:         item.LikesCount,
			SharesCount:        item.SharesCount,
			CommentsCount:      item.CommentsCount,
			EngagementScore:    item.EngagementScore(),
			PublishedAt:        item.PublishedAt,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EngagementScore > ranked[j].EngagementScore
	})

	if len(ranked) > maxTopContent {
		ranked = ranked[:maxTopContent]
	}

	return ranked
}

// roundTo2Decimals rounds a float to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	if value < 0 {
		return -float64(int(-value*100+0.5)) / 100
	}

	return float64(int(value*100+0.5)) / 100
}
