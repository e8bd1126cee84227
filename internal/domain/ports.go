package domain

import (
	"context"
)

// ContentSource retrieves the user's content collections from the platform's
// public API. News and events are scoped server-side by an author/organizer
// query parameter; the other three collections lack server-side owner
// filtering, so implementations fetch them unscoped and filter client-side
// against the raw nested owner id.
// Implementations: internal/infra/contentapi/public.go
type ContentSource interface {
	// AuthorNews returns news articles authored by the user.
	AuthorNews(ctx context.Context, userID string) ([]ContentItem, error)

	// OrganizerEvents returns events organized by the user.
	OrganizerEvents(ctx context.Context, userID string) ([]ContentItem, error)

	// OwnedOpportunities returns opportunities posted by the user.
	OwnedOpportunities(ctx context.Context, userID string) ([]ContentItem, error)

	// OwnedDiasporaPosts returns diaspora posts authored by the user.
	OwnedDiasporaPosts(ctx context.Context, userID string) ([]ContentItem, error)

	// OwnedAnnouncements returns announcements created by the user.
	OwnedAnnouncements(ctx context.Context, userID string) ([]ContentItem, error)
}

// AccountSource retrieves the caller's private collections. Implementations
// sign requests with the caller-supplied credentials carried on the context.
// Implementations: internal/infra/contentapi/account.go
type AccountSource interface {
	// Applications returns the caller's opportunity applications.
	Applications(ctx context.Context) ([]ApplicationItem, error)

	// Bookmarks returns the caller's saved content.
	Bookmarks(ctx context.Context) ([]BookmarkItem, error)
}
