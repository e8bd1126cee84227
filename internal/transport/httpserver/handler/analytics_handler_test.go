package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"creator-analytics-service/internal/domain"
	"creator-analytics-service/internal/infra/contentapi"
	"creator-analytics-service/internal/validator"
)

// fakeAnalytics records the call and returns a canned result.
type fakeAnalytics struct {
	gotUser  domain.User
	gotToken string
	result   *domain.AnalyticsData
}

func (f *fakeAnalytics) GetUserAnalytics(ctx context.Context, user domain.User) *domain.AnalyticsData {
	f.gotUser = user
	f.gotToken = contentapi.TokenFromContext(ctx)

	if f.result != nil {
		return f.result
	}

	return domain.EmptyAnalytics(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))
}

func newTestApp(svc AnalyticsProvider) *fiber.App {
	app := fiber.New()
	h := NewAnalyticsHandler(svc, validator.New(), zap.NewNop())
	app.Get("/api/v1/analytics", h.GetAnalytics)

	return app
}

func TestGetAnalytics_OK(t *testing.T) {
	svc := &fakeAnalytics{}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET",
		"/api/v1/analytics?user_id=u1&followers_count=10&following_count=3&posts_count=2", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, domain.User{
		ID:             "u1",
		FollowersCount: 10,
		FollowingCount: 3,
		PostsCount:     2,
	}, svc.gotUser)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var data domain.AnalyticsData
	require.NoError(t, json.Unmarshal(body, &data))
	assert.Equal(t, "30days", data.Period)
	assert.Len(t, data.ContentPerformance, 5)
	assert.Len(t, data.TimeSeries, 30)
}

func TestGetAnalytics_MissingUserID(t *testing.T) {
	app := newTestApp(&fakeAnalytics{})

	req := httptest.NewRequest("GET", "/api/v1/analytics", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var errResp map[string]any
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "VALIDATION_ERROR", errResp["code"])
}

func TestGetAnalytics_NegativeCounter(t *testing.T) {
	app := newTestApp(&fakeAnalytics{})

	req := httptest.NewRequest("GET", "/api/v1/analytics?user_id=u1&followers_count=-1", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAnalytics_ForwardsBearerToken(t *testing.T) {
	svc := &fakeAnalytics{}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/v1/analytics?user_id=u1", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "secret-token", svc.gotToken)
}

func TestGetAnalytics_NoTokenWithoutBearerScheme(t *testing.T) {
	svc := &fakeAnalytics{}
	app := newTestApp(svc)

	req := httptest.NewRequest("GET", "/api/v1/analytics?user_id=u1", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, svc.gotToken)
}
