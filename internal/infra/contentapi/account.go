package contentapi

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"creator-analytics-service/internal/domain"
)

// Endpoint paths of the authenticated account API.
const (
	applicationsEndpoint = "/api/v1/opportunities/applications/"
	bookmarksEndpoint    = "/api/v1/bookmarks/"
)

// AccountClient implements domain.AccountSource against the authenticated
// account API. Requests are signed with the bearer token carried on the
// context (see WithToken) and sent with a no-cache directive.
type AccountClient struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// NewAccountClient creates a new authenticated account API client.
func NewAccountClient(cfg ClientConfig, logger *zap.Logger) *AccountClient {
	return &AccountClient{
		client: NewAccountRestyClient(cfg),
		cb:     NewCircuitBreaker("contentapi_account", cfg.CB),
		logger: logger,
	}
}

// Applications returns the caller's opportunity applications.
func (c *AccountClient) Applications(ctx context.Context) ([]domain.ApplicationItem, error) {
	raw, err := fetchAllPages[application](ctx, c.client, c.cb, applicationsEndpoint, c.logger)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ApplicationItem, 0, len(raw))
	for i := range raw {
		items = append(items, raw[i].ToDomain())
	}

	c.logger.Debug("applications fetch completed", zap.Int("count", len(items)))

	return items, nil
}

// Bookmarks returns the caller's saved content.
func (c *AccountClient) Bookmarks(ctx context.Context) ([]domain.BookmarkItem, error) {
	raw, err := fetchAllPages[bookmark](ctx, c.client, c.cb, bookmarksEndpoint, c.logger)
	if err != nil {
		return nil, err
	}

	items := make([]domain.BookmarkItem, 0, len(raw))
	for i := range raw {
		items = append(items, raw[i].ToDomain())
	}

	c.logger.Debug("bookmarks fetch completed", zap.Int("count", len(items)))

	return items, nil
}
