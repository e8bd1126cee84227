package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"creator-analytics-service/internal/domain"
)

// fakeContentSource returns canned collections, or fails a chosen one.
type fakeContentSource struct {
	news          []domain.ContentItem
	events        []domain.ContentItem
	opportunities []domain.ContentItem
	diaspora      []domain.ContentItem
	announcements []domain.ContentItem
	failNews      error
}

func (f *fakeContentSource) AuthorNews(_ context.Context, _ string) ([]domain.ContentItem, error) {
	if f.failNews != nil {
		return nil, f.failNews
	}

	return f.news, nil
}

func (f *fakeContentSource) OrganizerEvents(_ context.Context, _ string) ([]domain.ContentItem, error) {
	return f.events, nil
}

func (f *fakeContentSource) OwnedOpportunities(_ context.Context, _ string) ([]domain.ContentItem, error) {
	return f.opportunities, nil
}

func (f *fakeContentSource) OwnedDiasporaPosts(_ context.Context, _ string) ([]domain.ContentItem, error) {
	return f.diaspora, nil
}

func (f *fakeContentSource) OwnedAnnouncements(_ context.Context, _ string) ([]domain.ContentItem, error) {
	return f.announcements, nil
}

type fakeAccountSource struct {
	applications []domain.ApplicationItem
	bookmarks    []domain.BookmarkItem
	failBookmark error
}

func (f *fakeAccountSource) Applications(_ context.Context) ([]domain.ApplicationItem, error) {
	return f.applications, nil
}

func (f *fakeAccountSource) Bookmarks(_ context.Context) ([]domain.BookmarkItem, error) {
	if f.failBookmark != nil {
		return nil, f.failBookmark
	}

	return f.bookmarks, nil
}

func newTestService(content domain.ContentSource, account domain.AccountSource, now time.Time) *AnalyticsService {
	svc := NewAnalyticsService(content, account, zap.NewNop())
	svc.nowFn = func() time.Time { return now }

	return svc
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// Full pipeline over a small realistic account: 2 news items, 1 bookmark
// saved today, 1 accepted application.
func TestGetUserAnalytics_EndToEnd(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	content := &fakeContentSource{
		news: []domain.ContentItem{
			{
				ID: "n1", Title: "First", ContentType: domain.ContentTypeNews,
				ViewsCount: 100, LikesCount: 3,
				PublishedAt: yesterday, CreatedAt: yesterday,
			},
			{
				ID: "n2", Title: "Second", ContentType: domain.ContentTypeNews,
				ViewsCount: 50, LikesCount: 1,
				PublishedAt: now.Add(-1 * time.Hour), CreatedAt: now.Add(-1 * time.Hour),
			},
		},
	}
	account := &fakeAccountSource{
		applications: []domain.ApplicationItem{
			{
				ID: "a1", Status: domain.StatusAccepted,
				CreatedAt:   now.AddDate(0, 0, -3),
				SubmittedAt: timePtr(now.AddDate(0, 0, -3)),
			},
		},
		bookmarks: []domain.BookmarkItem{
			{ID: "b1", ContentTypeName: "newsarticle", CreatedAt: now.Add(-2 * time.Hour)},
		},
	}

	svc := newTestService(content, account, now)
	data := svc.GetUserAnalytics(context.Background(), domain.User{ID: "u1", FollowersCount: 10})

	require.NotNil(t, data)
	assert.Equal(t, 150, data.Overview.TotalViews)
	assert.Equal(t, 2, data.Overview.TotalPosts)
	assert.Equal(t, 1, data.Overview.TotalBookmarks)
	assert.Equal(t, 1, data.Overview.TotalApplications)

	newsRow := data.ContentPerformance[0]
	assert.Equal(t, domain.ContentTypeNews, newsRow.ContentType)
	assert.Equal(t, 2, newsRow.TotalItems)
	assert.Equal(t, 150, newsRow.TotalViews)

	require.Len(t, data.TimeSeries, 30)
	assert.Equal(t, 50, data.TimeSeries[29].Views)
	assert.Equal(t, 100, data.TimeSeries[28].Views)

	assert.Equal(t, 1, data.ApplicationAnalytics.StatusCounts[domain.StatusAccepted])
	assert.Equal(t, float64(100), data.ApplicationAnalytics.AcceptanceRate)

	// today window: n2 published an hour ago plus the bookmark.
	today := data.EngagementBreakdown[0]
	assert.Equal(t, "today", today.Period)
	assert.Equal(t, 50, today.Views)
	assert.Equal(t, 1, today.Bookmarks)

	assert.Equal(t, domain.AnalyticsPeriod, data.Period)
	assert.LessOrEqual(t, len(data.TopContent), 8)
	assert.LessOrEqual(t, len(data.RecentActivity), 12)
}

// Content from all five collections is merged in normalization order, so the
// performance rows and top-content tie-breaks stay deterministic.
func TestGetUserAnalytics_MergeOrder(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	item := func(id string, contentType domain.ContentType) domain.ContentItem {
		return domain.ContentItem{
			ID: id, ContentType: contentType, LikesCount: 5,
			PublishedAt: now, CreatedAt: now,
		}
	}

	content := &fakeContentSource{
		news:          []domain.ContentItem{item("n1", domain.ContentTypeNews)},
		events:        []domain.ContentItem{item("e1", domain.ContentTypeEvents)},
		opportunities: []domain.ContentItem{item("o1", domain.ContentTypeOpportunities)},
		diaspora:      []domain.ContentItem{item("d1", domain.ContentTypeDiaspora)},
		announcements: []domain.ContentItem{item("an1", domain.ContentTypeAnnouncements)},
	}

	svc := newTestService(content, &fakeAccountSource{}, now)
	data := svc.GetUserAnalytics(context.Background(), domain.User{ID: "u1"})

	// All engagement scores tie at 5; order must match normalization order.
	wantOrder := []string{"n1", "e1", "o1", "d1", "an1"}
	require.Len(t, data.TopContent, 5)
	for i, want := range wantOrder {
		assert.Equal(t, want, data.TopContent[i].ID)
	}
}

// Any single fetch failure fails the whole batch and serves the fallback:
// callers never see a mix of real and missing collections.
func TestGetUserAnalytics_FallbackOnFetchFailure(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	content := &fakeContentSource{
		news:     []domain.ContentItem{{ID: "n1", ViewsCount: 100, PublishedAt: now, CreatedAt: now}},
		failNews: errors.New("upstream down"),
	}
	account := &fakeAccountSource{
		bookmarks: []domain.BookmarkItem{{ID: "b1", CreatedAt: now}},
	}

	svc := newTestService(content, account, now)
	data := svc.GetUserAnalytics(context.Background(), domain.User{ID: "u1", FollowersCount: 50})

	require.NotNil(t, data)
	assert.Equal(t, 0, data.Overview.TotalViews)
	assert.Equal(t, 0, data.Overview.FollowersCount)
	assert.Len(t, data.ContentPerformance, 5)
	assert.Len(t, data.TimeSeries, 30)
	assert.Len(t, data.EngagementBreakdown, 4)
	assert.Empty(t, data.TopContent)
	assert.Empty(t, data.RecentActivity)
	assert.Equal(t, domain.AnalyticsPeriod, data.Period)
}

func TestGetUserAnalytics_AccountFailureAlsoFallsBack(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	content := &fakeContentSource{
		news: []domain.ContentItem{{ID: "n1", ViewsCount: 100, PublishedAt: now, CreatedAt: now}},
	}
	account := &fakeAccountSource{failBookmark: errors.New("401 from account API")}

	svc := newTestService(content, account, now)
	data := svc.GetUserAnalytics(context.Background(), domain.User{ID: "u1"})

	assert.Equal(t, 0, data.Overview.TotalViews)
	assert.Len(t, data.TimeSeries, 30)
}

// The fallback is shaped exactly like a successful run over an empty account.
func TestGetUserAnalytics_FallbackShapeMatchesEmptySuccess(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	okSvc := newTestService(&fakeContentSource{}, &fakeAccountSource{}, now)
	failSvc := newTestService(&fakeContentSource{failNews: errors.New("boom")}, &fakeAccountSource{}, now)

	success := okSvc.GetUserAnalytics(context.Background(), domain.User{ID: "u1"})
	fallback := failSvc.GetUserAnalytics(context.Background(), domain.User{ID: "u1"})

	assert.Equal(t, len(success.ContentPerformance), len(fallback.ContentPerformance))
	assert.Equal(t, len(success.TimeSeries), len(fallback.TimeSeries))
	assert.Equal(t, len(success.EngagementBreakdown), len(fallback.EngagementBreakdown))
	assert.Equal(t, success.TimeSeries[0].Date, fallback.TimeSeries[0].Date)
	assert.Equal(t, success.TimeSeries[29].Date, fallback.TimeSeries[29].Date)
	assert.Equal(t, success.Period, fallback.Period)
}
