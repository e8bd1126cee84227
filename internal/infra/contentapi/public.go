package contentapi

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"creator-analytics-service/internal/domain"
)

// Endpoint paths of the public content API.
const (
	newsEndpoint          = "/api/v1/news/articles/"
	eventsEndpoint        = "/api/v1/events/"
	opportunitiesEndpoint = "/api/v1/opportunities/"
	diasporaEndpoint      = "/api/v1/diaspora/posts/"
	announcementsEndpoint = "/api/v1/announcements/"
)

// PublicClient implements domain.ContentSource against the public content API.
//
// News and events support server-side author/organizer scoping. The other
// three collections do not, so they are fetched unscoped and filtered here
// against the raw nested owner id before normalization.
type PublicClient struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// NewPublicClient creates a new public content API client.
func NewPublicClient(cfg ClientConfig, logger *zap.Logger) *PublicClient {
	return &PublicClient{
		client: NewRestyClient(cfg),
		cb:     NewCircuitBreaker("contentapi_public", cfg.CB),
		logger: logger,
	}
}

// AuthorNews returns news articles authored by the user.
func (c *PublicClient) AuthorNews(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	path := newsEndpoint + "?author=" + url.QueryEscape(userID)

	raw, err := fetchAllPages[newsArticle](ctx, c.client, c.cb, path, c.logger)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(raw))
	for i := range raw {
		items = append(items, raw[i].ToDomain())
	}

	c.logger.Debug("news fetch completed", zap.Int("count", len(items)))

	return items, nil
}

// OrganizerEvents returns events organized by the user.
func (c *PublicClient) OrganizerEvents(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	path := eventsEndpoint + "?organizer=" + url.QueryEscape(userID)

	raw, err := fetchAllPages[event](ctx, c.client, c.cb, path, c.logger)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(raw))
	for i := range raw {
		items = append(items, raw[i].ToDomain())
	}

	c.logger.Debug("events fetch completed", zap.Int("count", len(items)))

	return items, nil
}

// OwnedOpportunities returns opportunities posted by the user. The API has no
// server-side owner filter for this collection.
func (c *PublicClient) OwnedOpportunities(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	raw, err := fetchAllPages[opportunity](ctx, c.client, c.cb, opportunitiesEndpoint, c.logger)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(raw))
	for i := range raw {
		if raw[i].PostedBy.ID != userID {
			continue
		}
		items = append(items, raw[i].ToDomain())
	}

	c.logger.Debug("opportunities fetch completed",
		zap.Int("fetched", len(raw)),
		zap.Int("owned", len(items)),
	)

	return items, nil
}

// OwnedDiasporaPosts returns diaspora posts authored by the user. The API has
// no server-side owner filter for this collection.
func (c *PublicClient) OwnedDiasporaPosts(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	raw, err := fetchAllPages[diasporaPost](ctx, c.client, c.cb, diasporaEndpoint, c.logger)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(raw))
	for i := range raw {
		if raw[i].Author.ID != userID {
			continue
		}
		items = append(items, raw[i].ToDomain())
	}

	c.logger.Debug("diaspora fetch completed",
		zap.Int("fetched", len(raw)),
		zap.Int("owned", len(items)),
	)

	return items, nil
}

// OwnedAnnouncements returns announcements created by the user. The API has
// no server-side owner filter for this collection.
func (c *PublicClient) OwnedAnnouncements(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	raw, err := fetchAllPages[announcement](ctx, c.client, c.cb, announcementsEndpoint, c.logger)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContentItem, 0, len(raw))
	for i := range raw {
		if raw[i].CreatedBy.ID != userID {
			continue
		}
		items = append(items, raw[i].ToDomain())
	}

	c.logger.Debug("announcements fetch completed",
		zap.Int("fetched", len(raw)),
		zap.Int("owned", len(items)),
	)

	return items, nil
}
