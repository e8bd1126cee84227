// Package dto defines HTTP request and response shapes.
package dto

import (
	"creator-analytics-service/internal/domain"
)

// AnalyticsRequest identifies the user whose analytics are requested.
// The follower, following and post counters come from the caller's profile
// record; the aggregation uses them for the overview and growth estimates.
type AnalyticsRequest struct {
	UserID         string `query:"user_id" json:"user_id" validate:"required,max=64"`
	FollowersCount int    `query:"followers_count" json:"followers_count" validate:"gte=0"`
	FollowingCount int    `query:"following_count" json:"following_count" validate:"gte=0"`
	PostsCount     int    `query:"posts_count" json:"posts_count" validate:"gte=0"`
}

// ToUser converts the request to a domain user.
func (r *AnalyticsRequest) ToUser() domain.User {
	return domain.User{
		ID:             r.UserID,
		FollowersCount: r.FollowersCount,
		FollowingCount: r.FollowingCount,
		PostsCount:     r.PostsCount,
	}
}
