package domain

import (
	"time"
)

// BookmarkItem is a saved-content record from the account API.
// ContentTypeName is the raw model tag the platform stores, not the unified
// content type; use UnifiedContentType to remap it.
type BookmarkItem struct {
	ID              string    `json:"id"`
	ContentTypeName string    `json:"content_type_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// UnifiedContentType remaps a raw bookmark type tag to the unified content
// type. Unknown tags fall through to announcements, matching the platform's
// catch-all model.
func UnifiedContentType(raw string) ContentType {
	switch raw {
	case "newsarticle":
		return ContentTypeNews
	case "event":
		return ContentTypeEvents
	case "opportunity":
		return ContentTypeOpportunities
	case "diasporapost":
		return ContentTypeDiaspora
	default:
		return ContentTypeAnnouncements
	}
}
