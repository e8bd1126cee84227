package domain

import (
	"testing"
	"time"
)

func TestBuildTimeSeries_Shape(t *testing.T) {
	now := time.Date(2025, 3, 15, 13, 30, 0, 0, time.UTC)

	series := BuildTimeSeries(nil, now)

	if len(series) != 30 {
		t.Fatalf("len = %d, want 30", len(series))
	}
	if series[len(series)-1].Date != "2025-03-15" {
		t.Errorf("last date = %s, want 2025-03-15", series[len(series)-1].Date)
	}
	if series[0].Date != "2025-02-14" {
		t.Errorf("first date = %s, want 2025-02-14", series[0].Date)
	}

	// Strictly ascending, contiguous calendar dates.
	for i := 1; i < len(series); i++ {
		prev, _ := time.Parse("2006-01-02", series[i-1].Date)
		cur, _ := time.Parse("2006-01-02", series[i].Date)
		if !cur.Equal(prev.AddDate(0, 0, 1)) {
			t.Errorf("series[%d] = %s does not follow %s", i, series[i].Date, series[i-1].Date)
		}
	}
}

func TestBuildTimeSeries_Accumulation(t *testing.T) {
	now := time.Date(2025, 3, 15, 13, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	content := []ContentItem{
		{ID: "a", ContentType: ContentTypeNews, ViewsCount: 100, LikesCount: 4, PublishedAt: yesterday},
		{ID: "b", ContentType: ContentTypeNews, ViewsCount: 50, SharesCount: 2, PublishedAt: now},
		{ID: "c", ContentType: ContentTypeEvents, ViewsCount: 10, CommentsCount: 1, PublishedAt: now},
	}

	series := BuildTimeSeries(content, now)

	last := series[29]
	if last.Views != 60 || last.Shares != 2 || last.Comments != 1 || last.PostsCreated != 2 {
		t.Errorf("today bucket = %+v", last)
	}

	prior := series[28]
	if prior.Views != 100 || prior.Likes != 4 || prior.PostsCreated != 1 {
		t.Errorf("yesterday bucket = %+v", prior)
	}
}

// Items outside the 30-day window are silently dropped from the series.
func TestBuildTimeSeries_OutOfWindowDropped(t *testing.T) {
	now := time.Date(2025, 3, 15, 13, 30, 0, 0, time.UTC)

	content := []ContentItem{
		{ID: "old", ViewsCount: 999, PublishedAt: now.AddDate(0, 0, -45)},
		{ID: "future", ViewsCount: 999, PublishedAt: now.AddDate(0, 0, 2)},
	}

	series := BuildTimeSeries(content, now)

	for _, point := range series {
		if point.Views != 0 || point.PostsCreated != 0 {
			t.Errorf("bucket %s has data from out-of-window item: %+v", point.Date, point)
		}
	}
}

// Window boundary: an item published exactly 29 days ago lands in the first
// bucket, 30 days ago falls out.
func TestBuildTimeSeries_Boundary(t *testing.T) {
	now := time.Date(2025, 3, 15, 13, 30, 0, 0, time.UTC)

	content := []ContentItem{
		{ID: "edge", ViewsCount: 7, PublishedAt: now.AddDate(0, 0, -29)},
		{ID: "out", ViewsCount: 11, PublishedAt: now.AddDate(0, 0, -30)},
	}

	series := BuildTimeSeries(content, now)

	if series[0].Views != 7 || series[0].PostsCreated != 1 {
		t.Errorf("first bucket = %+v, want the 29-day-old item", series[0])
	}

	var total int
	for _, point := range series {
		total += point.Views
	}
	if total != 7 {
		t.Errorf("total views = %d, want 7 (30-day-old item must be dropped)", total)
	}
}
