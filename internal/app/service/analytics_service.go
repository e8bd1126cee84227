// Package service provides application use cases.
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"creator-analytics-service/internal/domain"
)

// AnalyticsService computes a user's dashboard analytics on demand. Each call
// fetches fresh data, aggregates it and returns an immutable result; no state
// is shared between calls.
type AnalyticsService struct {
	content domain.ContentSource
	account domain.AccountSource
	logger  *zap.Logger
	nowFn   func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(content domain.ContentSource, account domain.AccountSource, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		content: content,
		account: account,
		logger:  logger,
		nowFn:   time.Now,
	}
}

// GetUserAnalytics aggregates the user's analytics. It never fails from the
// caller's point of view: any error anywhere in the pipeline is logged and
// replaced by the structurally-complete zero-valued result, trading error
// visibility for availability.
func (s *AnalyticsService) GetUserAnalytics(ctx context.Context, user domain.User) *domain.AnalyticsData {
	start := time.Now()

	data, err := s.aggregate(ctx, user)
	if err != nil {
		s.logger.Error("analytics aggregation failed, serving zero-valued fallback",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)

		return domain.EmptyAnalytics(s.nowFn())
	}

	s.logger.Info("analytics aggregation completed",
		zap.String("user_id", user.ID),
		zap.Int("content_items", data.Overview.TotalPosts),
		zap.Duration("duration", time.Since(start)),
	)

	return data
}

// aggregate runs the full pipeline: concurrent fetch of all 7 collections,
// fixed-order merge, then every facet aggregator over the same snapshot.
func (s *AnalyticsService) aggregate(ctx context.Context, user domain.User) (data *domain.AnalyticsData, err error) {
	// Aggregator math is pure, but a malformed payload slipping through
	// normalization must degrade to the fallback, not crash the caller.
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("aggregation panicked: %v", r)
		}
	}()

	var (
		news          []domain.ContentItem
		events        []domain.ContentItem
		opportunities []domain.ContentItem
		diaspora      []domain.ContentItem
		announcements []domain.ContentItem
		applications  []domain.ApplicationItem
		bookmarks     []domain.BookmarkItem
	)

	// Fire all 7 collection fetches concurrently; none depends on another.
	// The first failure cancels the group and fails the whole batch: there is
	// no partial-results path across collections.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var fetchErr error
		news, fetchErr = s.content.AuthorNews(gctx, user.ID)

		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		events, fetchErr = s.content.OrganizerEvents(gctx, user.ID)

		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		opportunities, fetchErr = s.content.OwnedOpportunities(gctx, user.ID)

		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		diaspora, fetchErr = s.content.OwnedDiasporaPosts(gctx, user.ID)

		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		announcements, fetchErr = s.content.OwnedAnnouncements(gctx, user.ID)

		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		applications, fetchErr = s.account.Applications(gctx)

		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		bookmarks, fetchErr = s.account.Bookmarks(gctx)

		return fetchErr
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.nowFn()
	content := domain.MergeContent(news, events, opportunities, diaspora, announcements)
	overview := domain.BuildOverview(user, content, bookmarks, applications)

	return &domain.AnalyticsData{
		Overview:             overview,
		ContentPerformance:   domain.BuildContentPerformance(content),
		TimeSeries:           domain.BuildTimeSeries(content, now),
		TopContent:           domain.BuildTopContent(content),
		ApplicationAnalytics: domain.BuildApplicationAnalytics(applications),
		RecentActivity:       domain.BuildRecentActivity(content, applications, bookmarks),
		EngagementBreakdown:  domain.BuildEngagementBreakdown(content, bookmarks, overview, now),
		GrowthMetrics:        domain.BuildGrowthMetrics(user, content, now),
		Period:               domain.AnalyticsPeriod,
	}, nil
}
