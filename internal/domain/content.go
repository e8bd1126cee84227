// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"time"
)

// ContentType identifies one of the five platform content collections.
type ContentType string

const (
	ContentTypeNews          ContentType = "news"
	ContentTypeEvents        ContentType = "events"
	ContentTypeOpportunities ContentType = "opportunities"
	ContentTypeDiaspora      ContentType = "diaspora"
	ContentTypeAnnouncements ContentType = "announcements"
)

// ContentTypes lists every content type in normalization order.
// The order is part of the contract: merged content is concatenated in this
// sequence, so any first-match or stable-sort behavior downstream is
// deterministic.
var ContentTypes = []ContentType{
	ContentTypeNews,
	ContentTypeEvents,
	ContentTypeOpportunities,
	ContentTypeDiaspora,
	ContentTypeAnnouncements,
}

// DisplayName returns the fixed human label for a content type.
// Opportunities may override this per item with their own type label.
func (t ContentType) DisplayName() string {
	switch t {
	case ContentTypeNews:
		return "News Article"
	case ContentTypeEvents:
		return "Event"
	case ContentTypeOpportunities:
		return "Opportunity"
	case ContentTypeDiaspora:
		return "Diaspora Post"
	case ContentTypeAnnouncements:
		return "Announcement"
	default:
		return string(t)
	}
}

// ContentItem is the normalized shape every platform content variant maps to.
// Counters are always defined and non-negative; PublishedAt falls back to
// CreatedAt during normalization, so it is never zero for well-formed input.
type ContentItem struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Slug               string      `json:"slug"`
	ContentType        ContentType `json:"content_type"`
	ContentTypeDisplay string      `json:"content_type_display"`

	ViewsCount    int `json:"views_count"`
	LikesCount    int `json:"likes_count"`
	SharesCount   int `json:"shares_count"`
	CommentsCount int `json:"comments_count"`

	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// EngagementScore is likes + shares + comments.
// Views are deliberately excluded: the score ranks active engagement, not reach.
func (c *ContentItem) EngagementScore() int {
	return c.LikesCount + c.SharesCount + c.CommentsCount
}

// PublishedDay returns the calendar date of publication in the given location.
func (c *ContentItem) PublishedDay(loc *time.Location) string {
	return c.PublishedAt.In(loc).Format("2006-01-02")
}

// MergeContent concatenates the per-type collections in the fixed
// normalization order: news, events, opportunities, diaspora, announcements.
func MergeContent(news, events, opportunities, diaspora, announcements []ContentItem) []ContentItem {
	merged := make([]ContentItem, 0,
		len(news)+len(events)+len(opportunities)+len(diaspora)+len(announcements))

	merged = append(merged, news...)
	merged = append(merged, events...)
	merged = append(merged, opportunities...)
	merged = append(merged, diaspora...)
	merged = append(merged, announcements...)

	return merged
}
