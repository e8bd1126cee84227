package contentapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// maxPages is a loop-runaway guard, not a real pagination limit: a collection
// with more than 100 pages is silently truncated (logged at warn).
const maxPages = 100

// listEnvelope is the API's standard paginated list shape.
type listEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// fetchAllPages follows a collection's next-page pointers starting at path,
// accumulating results until no next page remains or the page cap is hit.
//
// Each page is accepted in two shapes: the standard envelope or a bare array,
// which is treated as a single final page. Server-relative next URLs resolve
// against the client's base URL; absolute ones pass through unchanged.
//
// A non-2xx status stops pagination and keeps the partial results. A
// transport or decode failure aborts the whole call with an error.
func fetchAllPages[T any](
	ctx context.Context,
	client *resty.Client,
	cb *gobreaker.CircuitBreaker[*resty.Response],
	path string,
	logger *zap.Logger,
) ([]T, error) {
	items := []T{}
	next := path

	for page := 1; page <= maxPages; page++ {
		url := next

		resp, err := cb.Execute(func() (*resty.Response, error) {
			return client.R().SetContext(ctx).Get(url)
		})
		if err != nil {
			return nil, fmt.Errorf("fetching page %d of %s: %w", page, path, err)
		}

		if resp.IsError() {
			logger.Warn("pagination stopped on HTTP error, keeping partial results",
				zap.String("url", url),
				zap.Int("status", resp.StatusCode()),
				zap.Int("accumulated", len(items)),
			)

			return items, nil
		}

		body := resp.Body()

		var envelope listEnvelope[T]
		if err := json.Unmarshal(body, &envelope); err != nil {
			// A bare array is a single, final page.
			var bare []T
			if arrErr := json.Unmarshal(body, &bare); arrErr != nil {
				return nil, fmt.Errorf("decoding page %d of %s: %w", page, path, err)
			}

			return append(items, bare...), nil
		}

		items = append(items, envelope.Results...)

		if envelope.Next == nil || *envelope.Next == "" {
			return items, nil
		}
		next = *envelope.Next
	}

	logger.Warn("pagination page cap reached, collection truncated",
		zap.String("url", path),
		zap.Int("max_pages", maxPages),
		zap.Int("accumulated", len(items)),
	)

	return items, nil
}
