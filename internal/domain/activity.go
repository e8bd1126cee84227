package domain

import (
	"fmt"
	"sort"
)

// maxRecentActivity bounds the unified recent-activity feed.
const maxRecentActivity = 12

// genericApplicationTitle is used when the application's nested opportunity
// title is missing.
const genericApplicationTitle = "Opportunity application"

// BuildRecentActivity merges published content, submitted applications and
// created bookmarks into one feed, newest first, truncated to 12 entries.
//
// Composite ids ("content-{type}-{id}", "application-{id}", "bookmark-{id}")
// stay unique across the three sources. The sort is stable, so entries with
// equal timestamps keep source order: content, applications, bookmarks.
func BuildRecentActivity(content []ContentItem, applications []ApplicationItem, bookmarks []BookmarkItem) []ActivityItem {
	feed := make([]ActivityItem, 0, len(content)+len(applications)+len(bookmarks))

	for _, item := range content {
		feed = append(feed, ActivityItem{
			ID:          fmt.Sprintf("content-%s-%s", item.ContentType, item.ID),
			Type:        ActivityPublished,
			Title:       item.Title,
			ContentType: item.ContentType,
			CreatedAt:   item.PublishedAt,
		})
	}

	for _, app := range applications {
		title := app.OpportunityTitle
		if title == "" {
			title = genericApplicationTitle
		}

		timestamp := app.CreatedAt
		if app.SubmittedAt != nil {
			timestamp = *app.SubmittedAt
		}

		feed = append(feed, ActivityItem{
			ID:          fmt.Sprintf("application-%s", app.ID),
			Type:        ActivityApplied,
			Title:       title,
			ContentType: ContentTypeOpportunities,
			CreatedAt:   timestamp,
		})
	}

	for _, bookmark := range bookmarks {
		contentType := UnifiedContentType(bookmark.ContentTypeName)
		feed = append(feed, ActivityItem{
			ID:          fmt.Sprintf("bookmark-%s", bookmark.ID),
			Type:        ActivityBookmarked,
			Title:       fmt.Sprintf("Saved %s", contentType),
			ContentType: contentType,
			CreatedAt:   bookmark.CreatedAt,
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	if len(feed) > maxRecentActivity {
		feed = feed[:maxRecentActivity]
	}

	return feed
}
