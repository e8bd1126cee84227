package contentapi

import (
	"time"

	"creator-analytics-service/internal/domain"
)

// ownerRef is the nested owner/author reference carried by content items.
type ownerRef struct {
	ID string `json:"id"`
}

// newsArticle is the wire shape of a published news article.
type newsArticle struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Author        ownerRef   `json:"author"`
	ViewsCount    int        `json:"views_count"`
	LikesCount    int        `json:"likes_count"`
	SharesCount   int        `json:"shares_count"`
	CommentsCount int        `json:"comments_count"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToDomain converts a newsArticle to the normalized content shape.
func (a *newsArticle) ToDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:                 a.ID,
		Title:              a.Title,
		Slug:               a.Slug,
		ContentType:        domain.ContentTypeNews,
		ContentTypeDisplay: domain.ContentTypeNews.DisplayName(),
		ViewsCount:         nonNegative(a.ViewsCount),
		LikesCount:         nonNegative(a.LikesCount),
		SharesCount:        nonNegative(a.SharesCount),
		CommentsCount:      nonNegative(a.CommentsCount),
		PublishedAt:        publishedOrCreated(a.PublishedAt, a.CreatedAt),
		CreatedAt:          a.CreatedAt,
	}
}

// event is the wire shape of an event.
type event struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Organizer     ownerRef   `json:"organizer"`
	ViewsCount    int        `json:"views_count"`
	LikesCount    int        `json:"likes_count"`
	SharesCount   int        `json:"shares_count"`
	CommentsCount int        `json:"comments_count"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToDomain converts an event to the normalized content shape.
func (e *event) ToDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:                 e.ID,
		Title:              e.Title,
		Slug:               e.Slug,
		ContentType:        domain.ContentTypeEvents,
		ContentTypeDisplay: domain.ContentTypeEvents.DisplayName(),
		ViewsCount:         nonNegative(e.ViewsCount),
		LikesCount:         nonNegative(e.LikesCount),
		SharesCount:        nonNegative(e.SharesCount),
		CommentsCount:      nonNegative(e.CommentsCount),
		PublishedAt:        publishedOrCreated(e.PublishedAt, e.CreatedAt),
		CreatedAt:          e.CreatedAt,
	}
}

// opportunity is the wire shape of an opportunity posting.
// Opportunities carry no comment counter and bring their own type label.
type opportunity struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	PostedBy        ownerRef   `json:"posted_by"`
	OpportunityType string     `json:"opportunity_type"`
	ViewsCount      int        `json:"views_count"`
	LikesCount      int        `json:"likes_count"`
	SharesCount     int        `json:"shares_count"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToDomain converts an opportunity to the normalized content shape. The
// display label prefers the item's own type label over the generic one.
func (o *opportunity) ToDomain() domain.ContentItem {
	display := o.OpportunityType
	if display == "" {
		display = domain.ContentTypeOpportunities.DisplayName()
	}

	return domain.ContentItem{
		ID:                 o.ID,
		Title:              o.Title,
		Slug:               o.Slug,
		ContentType:        domain.ContentTypeOpportunities,
		ContentTypeDisplay: display,
		ViewsCount:         nonNegative(o.ViewsCount),
		LikesCount:         nonNegative(o.LikesCount),
		SharesCount:        nonNegative(o.SharesCount),
		PublishedAt:        publishedOrCreated(o.PublishedAt, o.CreatedAt),
		CreatedAt:          o.CreatedAt,
	}
}

// diasporaPost is the wire shape of a diaspora community post.
type diasporaPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Author        ownerRef   `json:"author"`
	ViewsCount    int        `json:"views_count"`
	LikesCount    int        `json:"likes_count"`
	SharesCount   int        `json:"shares_count"`
	CommentsCount int        `json:"comments_count"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ToDomain converts a diasporaPost to the normalized content shape.
func (d *diasporaPost) ToDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:                 d.ID,
		Title:              d.Title,
		Slug:               d.Slug,
		ContentType:        domain.ContentTypeDiaspora,
		ContentTypeDisplay: domain.ContentTypeDiaspora.DisplayName(),
		ViewsCount:         nonNegative(d.ViewsCount),
		LikesCount:         nonNegative(d.LikesCount),
		SharesCount:        nonNegative(d.SharesCount),
		CommentsCount:      nonNegative(d.CommentsCount),
		PublishedAt:        publishedOrCreated(d.PublishedAt, d.CreatedAt),
		CreatedAt:          d.CreatedAt,
	}
}

// announcement is the wire shape of a platform announcement.
// Announcements carry no comment counter.
type announcement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CreatedBy   ownerRef   `json:"created_by"`
	ViewsCount  int        `json:"views_count"`
	LikesCount  int        `json:"likes_count"`
	SharesCount int        `json:"shares_count"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToDomain converts an announcement to the normalized content shape.
func (a *announcement) ToDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:                 a.ID,
		Title:              a.Title,
		Slug:               a.Slug,
		ContentType:        domain.ContentTypeAnnouncements,
		ContentTypeDisplay: domain.ContentTypeAnnouncements.DisplayName(),
		ViewsCount:         nonNegative(a.ViewsCount),
		LikesCount:         nonNegative(a.LikesCount),
		SharesCount:        nonNegative(a.SharesCount),
		PublishedAt:        publishedOrCreated(a.PublishedAt, a.CreatedAt),
		CreatedAt:          a.CreatedAt,
	}
}

// application is the wire shape of an opportunity application.
type application struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Opportunity *struct {
		Title string `json:"title"`
	} `json:"opportunity"`
	CreatedAt   time.Time  `json:"created_at"`
	SubmittedAt *time.Time `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
}

// ToDomain converts an application to the domain shape.
func (a *application) ToDomain() domain.ApplicationItem {
	item := domain.ApplicationItem{
		ID:          a.ID,
		Status:      domain.ApplicationStatus(a.Status),
		CreatedAt:   a.CreatedAt,
		SubmittedAt: a.SubmittedAt,
		ReviewedAt:  a.ReviewedAt,
	}
	if a.Opportunity != nil {
		item.OpportunityTitle = a.Opportunity.Title
	}

	return item
}

// bookmark is the wire shape of a saved-content record.
type bookmark struct {
	ID              string    `json:"id"`
	ContentTypeName string    `json:"content_type_name"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToDomain converts a bookmark to the domain shape.
func (b *bookmark) ToDomain() domain.BookmarkItem {
	return domain.BookmarkItem{
		ID:              b.ID,
		ContentTypeName: b.ContentTypeName,
		CreatedAt:       b.CreatedAt,
	}
}

// nonNegative clamps a counter to zero. Counters in the normalized shape are
// always defined and >= 0.
func nonNegative(n int) int {
	if n < 0 {
		return 0
	}

	return n
}

// publishedOrCreated falls back to the creation date when an item has never
// been explicitly published.
func publishedOrCreated(published *time.Time, created time.Time) time.Time {
	if published == nil || published.IsZero() {
		return created
	}

	return *published
}
