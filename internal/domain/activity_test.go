package domain

import (
	"testing"
	"time"
)

func TestBuildRecentActivity_MergeAndOrder(t *testing.T) {
	base := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	content := []ContentItem{
		{ID: "n1", Title: "Article", ContentType: ContentTypeNews, PublishedAt: base.Add(-2 * time.Hour)},
	}
	applications := []ApplicationItem{
		{ID: "a1", OpportunityTitle: "Backend role", SubmittedAt: timePtr(base.Add(-1 * time.Hour)), CreatedAt: base.Add(-5 * time.Hour)},
	}
	bookmarks := []BookmarkItem{
		{ID: "b1", ContentTypeName: "event", CreatedAt: base},
	}

	feed := BuildRecentActivity(content, applications, bookmarks)

	if len(feed) != 3 {
		t.Fatalf("len = %d, want 3", len(feed))
	}

	// Newest first: bookmark, application, content.
	if feed[0].ID != "bookmark-b1" || feed[1].ID != "application-a1" || feed[2].ID != "content-news-n1" {
		t.Errorf("order = %s,%s,%s", feed[0].ID, feed[1].ID, feed[2].ID)
	}

	if feed[0].Type != ActivityBookmarked || feed[0].Title != "Saved events" || feed[0].ContentType != ContentTypeEvents {
		t.Errorf("bookmark entry = %+v", feed[0])
	}
	if feed[1].Type != ActivityApplied || feed[1].Title != "Backend role" {
		t.Errorf("application entry = %+v", feed[1])
	}
	if feed[2].Type != ActivityPublished || feed[2].Title != "Article" {
		t.Errorf("content entry = %+v", feed[2])
	}
}

func TestBuildRecentActivity_Bound(t *testing.T) {
	base := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	content := make([]ContentItem, 20)
	for i := range content {
		content[i] = ContentItem{
			ID:          string(rune('a' + i)),
			ContentType: ContentTypeNews,
			PublishedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}

	feed := BuildRecentActivity(content, nil, nil)

	if len(feed) != maxRecentActivity {
		t.Fatalf("len = %d, want %d", len(feed), maxRecentActivity)
	}
	for i := 0; i < len(feed)-1; i++ {
		if feed[i].CreatedAt.Before(feed[i+1].CreatedAt) {
			t.Errorf("feed[%d] older than feed[%d]", i, i+1)
		}
	}
}

// Applications without a submission timestamp fall back to creation time, and
// a missing opportunity title falls back to the generic label.
func TestBuildRecentActivity_ApplicationFallbacks(t *testing.T) {
	created := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	feed := BuildRecentActivity(nil, []ApplicationItem{{ID: "a1", CreatedAt: created}}, nil)

	if len(feed) != 1 {
		t.Fatalf("len = %d, want 1", len(feed))
	}
	if !feed[0].CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", feed[0].CreatedAt, created)
	}
	if feed[0].Title != genericApplicationTitle {
		t.Errorf("Title = %q, want %q", feed[0].Title, genericApplicationTitle)
	}
}

func TestUnifiedContentType(t *testing.T) {
	tests := []struct {
		raw  string
		want ContentType
	}{
		{"newsarticle", ContentTypeNews},
		{"event", ContentTypeEvents},
		{"opportunity", ContentTypeOpportunities},
		{"diasporapost", ContentTypeDiaspora},
		{"announcement", ContentTypeAnnouncements},
		{"something-else", ContentTypeAnnouncements},
	}

	for _, tt := range tests {
		if got := UnifiedContentType(tt.raw); got != tt.want {
			t.Errorf("UnifiedContentType(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
