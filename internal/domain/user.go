package domain

// User is the read-only profile context the analytics pipeline consumes.
// Counter fields default to zero when the profile omits them.
type User struct {
	ID             string `json:"id"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	PostsCount     int    `json:"posts_count"`
}
