package domain

import (
	"time"
)

// ApplicationStatus is the lifecycle state of an opportunity application.
type ApplicationStatus string

const (
	StatusDraft              ApplicationStatus = "draft"
	StatusSubmitted          ApplicationStatus = "submitted"
	StatusUnderReview        ApplicationStatus = "under_review"
	StatusShortlisted        ApplicationStatus = "shortlisted"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusAccepted           ApplicationStatus = "accepted"
	StatusRejected           ApplicationStatus = "rejected"
	StatusWithdrawn          ApplicationStatus = "withdrawn"
)

// ApplicationStatuses lists all 8 statuses. Every analytics result reports a
// count for each of them, including zero counts.
var ApplicationStatuses = []ApplicationStatus{
	StatusDraft,
	StatusSubmitted,
	StatusUnderReview,
	StatusShortlisted,
	StatusInterviewScheduled,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

// ApplicationItem is an opportunity application as returned by the account API.
type ApplicationItem struct {
	ID               string            `json:"id"`
	Status           ApplicationStatus `json:"status"`
	OpportunityTitle string            `json:"opportunity_title,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	SubmittedAt      *time.Time        `json:"submitted_at,omitempty"`
	ReviewedAt       *time.Time        `json:"reviewed_at,omitempty"`
}

// ApplicationAnalytics is the application funnel facet of the analytics result.
type ApplicationAnalytics struct {
	Total           int                       `json:"total"`
	StatusCounts    map[ApplicationStatus]int `json:"status_counts"`
	AcceptanceRate  float64                   `json:"acceptance_rate"`
	AvgResponseTime float64                   `json:"avg_response_time"` // days
}

// BuildApplicationAnalytics aggregates the application funnel.
//
// Acceptance rate excludes drafts from the denominator: a draft was never
// submitted for judgment, so it cannot be accepted or rejected.
// Response time is the mean of (reviewed_at - submitted_at) in days over
// applications that carry both timestamps; malformed rows where review
// precedes submission are clamped to zero rather than skewing the mean
// negative.
func BuildApplicationAnalytics(applications []ApplicationItem) ApplicationAnalytics {
	counts := make(map[ApplicationStatus]int, len(ApplicationStatuses))
	for _, status := range ApplicationStatuses {
		counts[status] = 0
	}

	var (
		totalResponseDays float64
		responded         int
	)

	for _, app := range applications {
		counts[app.Status]++

		if app.SubmittedAt != nil && app.ReviewedAt != nil {
			days := app.ReviewedAt.Sub(*app.SubmittedAt).Hours() / 24
			if days < 0 {
				days = 0
			}
			totalResponseDays += days
			responded++
		}
	}

	nonDraft := len(applications) - counts[StatusDraft]

	acceptanceRate := 0.0
	if nonDraft > 0 {
		acceptanceRate = roundTo2Decimals(float64(counts[StatusAccepted]) / float64(nonDraft) * 100)
	}

	avgResponseTime := 0.0
	if responded > 0 {
		avgResponseTime = roundTo2Decimals(totalResponseDays / float64(responded))
	}

	return ApplicationAnalytics{
		Total:           len(applications),
		StatusCounts:    counts,
		AcceptanceRate:  acceptanceRate,
		AvgResponseTime: avgResponseTime,
	}
}
