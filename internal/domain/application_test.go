package domain

import (
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBuildApplicationAnalytics_StatusCounts(t *testing.T) {
	applications := []ApplicationItem{
		{ID: "1", Status: StatusDraft},
		{ID: "2", Status: StatusSubmitted},
		{ID: "3", Status: StatusAccepted},
		{ID: "4", Status: StatusAccepted},
		{ID: "5", Status: StatusRejected},
	}

	analytics := BuildApplicationAnalytics(applications)

	if analytics.Total != 5 {
		t.Errorf("Total = %d, want 5", analytics.Total)
	}
	if len(analytics.StatusCounts) != len(ApplicationStatuses) {
		t.Errorf("StatusCounts has %d keys, want %d", len(analytics.StatusCounts), len(ApplicationStatuses))
	}
	if analytics.StatusCounts[StatusAccepted] != 2 {
		t.Errorf("accepted = %d, want 2", analytics.StatusCounts[StatusAccepted])
	}
	if analytics.StatusCounts[StatusWithdrawn] != 0 {
		t.Errorf("withdrawn = %d, want 0", analytics.StatusCounts[StatusWithdrawn])
	}
}

func TestBuildApplicationAnalytics_AcceptanceRate(t *testing.T) {
	tests := []struct {
		name         string
		applications []ApplicationItem
		want         float64
	}{
		{
			name:         "empty",
			applications: nil,
			want:         0,
		},
		{
			name: "only drafts",
			applications: []ApplicationItem{
				{Status: StatusDraft},
				{Status: StatusDraft},
			},
			want: 0, // no non-draft denominator, no division by zero
		},
		{
			name: "2 accepted of 8 non-draft",
			applications: []ApplicationItem{
				{Status: StatusDraft}, {Status: StatusDraft},
				{Status: StatusSubmitted}, {Status: StatusSubmitted},
				{Status: StatusUnderReview}, {Status: StatusShortlisted},
				{Status: StatusRejected}, {Status: StatusWithdrawn},
				{Status: StatusAccepted}, {Status: StatusAccepted},
			},
			want: 25,
		},
		{
			name: "single accepted",
			applications: []ApplicationItem{
				{Status: StatusAccepted},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analytics := BuildApplicationAnalytics(tt.applications)
			if analytics.AcceptanceRate != tt.want {
				t.Errorf("AcceptanceRate = %v, want %v", analytics.AcceptanceRate, tt.want)
			}
		})
	}
}

func TestBuildApplicationAnalytics_AvgResponseTime(t *testing.T) {
	submitted := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		applications []ApplicationItem
		want         float64
	}{
		{
			name: "no timestamps",
			applications: []ApplicationItem{
				{Status: StatusSubmitted},
			},
			want: 0,
		},
		{
			name: "submitted only",
			applications: []ApplicationItem{
				{Status: StatusUnderReview, SubmittedAt: timePtr(submitted)},
			},
			want: 0,
		},
		{
			name: "two day review",
			applications: []ApplicationItem{
				{
					Status:      StatusAccepted,
					SubmittedAt: timePtr(submitted),
					ReviewedAt:  timePtr(submitted.AddDate(0, 0, 2)),
				},
			},
			want: 2,
		},
		{
			name: "mean over responded only",
			applications: []ApplicationItem{
				{
					Status:      StatusAccepted,
					SubmittedAt: timePtr(submitted),
					ReviewedAt:  timePtr(submitted.AddDate(0, 0, 4)),
				},
				{
					Status:      StatusRejected,
					SubmittedAt: timePtr(submitted),
					ReviewedAt:  timePtr(submitted.AddDate(0, 0, 2)),
				},
				{Status: StatusSubmitted, SubmittedAt: timePtr(submitted)},
			},
			want: 3,
		},
		{
			name: "malformed review before submission clamps to zero",
			applications: []ApplicationItem{
				{
					Status:      StatusRejected,
					SubmittedAt: timePtr(submitted),
					ReviewedAt:  timePtr(submitted.AddDate(0, 0, -3)),
				},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analytics := BuildApplicationAnalytics(tt.applications)
			if analytics.AvgResponseTime != tt.want {
				t.Errorf("AvgResponseTime = %v, want %v", analytics.AvgResponseTime, tt.want)
			}
		})
	}
}
