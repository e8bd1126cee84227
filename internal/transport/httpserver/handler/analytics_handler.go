// Package handler provides HTTP handlers for the API.
package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"creator-analytics-service/internal/domain"
	"creator-analytics-service/internal/infra/contentapi"
	"creator-analytics-service/internal/transport/httpserver/dto"
	"creator-analytics-service/internal/validator"
)

// AnalyticsProvider computes a user's analytics.
type AnalyticsProvider interface {
	GetUserAnalytics(ctx context.Context, user domain.User) *domain.AnalyticsData
}

// AnalyticsHandler handles analytics HTTP requests.
type AnalyticsHandler struct {
	service   AnalyticsProvider
	validator *validator.Validator
	logger    *zap.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc AnalyticsProvider, v *validator.Validator, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// GetAnalytics handles GET /api/v1/analytics
//
// A valid request always returns 200: aggregation failures are absorbed by
// the service and surface as a zero-valued result, never as an error status.
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	var req dto.AnalyticsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	ctx := contextWithBearer(c)
	data := h.service.GetUserAnalytics(ctx, req.ToUser())

	return c.JSON(data)
}

// contextWithBearer lifts the caller's bearer token into the request context
// so the account-scoped upstream calls can forward it.
func contextWithBearer(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()

	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return ctx
	}

	token := strings.TrimPrefix(auth, "Bearer ")
	if token == "" {
		return ctx
	}

	return contentapi.WithToken(ctx, token)
}
