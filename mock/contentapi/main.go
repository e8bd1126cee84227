// Mock platform content API for local development. Serves the five public
// content collections and the two account-scoped collections with DRF-style
// paginated envelopes.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

const pageSize = 3

type envelope struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []any   `json:"results"`
}

func main() {
	now := time.Now().UTC()
	owner := map[string]any{"id": "u1", "username": "demo-creator"}

	news := make([]any, 0, 7)
	for i := 1; i <= 7; i++ {
		news = append(news, map[string]any{
			"id":             fmt.Sprintf("n%d", i),
			"title":          fmt.Sprintf("Article %d", i),
			"slug":           fmt.Sprintf("article-%d", i),
			"author":         owner,
			"views_count":    i * 40,
			"likes_count":    i * 3,
			"shares_count":   i,
			"comments_count": i * 2,
			"published_at":   now.AddDate(0, 0, -i).Format(time.RFC3339),
			"created_at":     now.AddDate(0, 0, -i-1).Format(time.RFC3339),
		})
	}

	events := []any{
		map[string]any{
			"id": "e1", "title": "Community meetup", "slug": "community-meetup",
			"organizer": owner,
			"views_count": 90, "likes_count": 12, "shares_count": 4, "comments_count": 6,
			"published_at": now.AddDate(0, 0, -5).Format(time.RFC3339),
			"created_at":   now.AddDate(0, 0, -6).Format(time.RFC3339),
		},
	}

	opportunities := []any{
		map[string]any{
			"id": "o1", "title": "Research grant", "slug": "research-grant",
			"posted_by": owner, "opportunity_type": "Grant",
			"views_count": 60, "likes_count": 5, "shares_count": 2,
			"published_at": now.AddDate(0, 0, -12).Format(time.RFC3339),
			"created_at":   now.AddDate(0, 0, -13).Format(time.RFC3339),
		},
		map[string]any{
			"id": "o2", "title": "Someone else's job", "slug": "other-job",
			"posted_by": map[string]any{"id": "u2"}, "opportunity_type": "Job",
			"views_count": 10, "likes_count": 1, "shares_count": 0,
			"published_at": now.AddDate(0, 0, -2).Format(time.RFC3339),
			"created_at":   now.AddDate(0, 0, -3).Format(time.RFC3339),
		},
	}

	diaspora := []any{
		map[string]any{
			"id": "d1", "title": "Life abroad", "slug": "life-abroad",
			"author": owner,
			"views_count": 45, "likes_count": 8, "shares_count": 3, "comments_count": 5,
			"published_at": now.AddDate(0, 0, -20).Format(time.RFC3339),
			"created_at":   now.AddDate(0, 0, -21).Format(time.RFC3339),
		},
	}

	announcements := []any{
		map[string]any{
			"id": "an1", "title": "Platform update", "slug": "platform-update",
			"created_by": owner,
			"views_count": 30, "likes_count": 2, "shares_count": 1,
			"created_at": now.AddDate(0, 0, -8).Format(time.RFC3339),
		},
	}

	applications := []any{
		map[string]any{
			"id": "a1", "status": "accepted",
			"opportunity":  map[string]any{"title": "Research grant"},
			"created_at":   now.AddDate(0, 0, -10).Format(time.RFC3339),
			"submitted_at": now.AddDate(0, 0, -10).Format(time.RFC3339),
			"reviewed_at":  now.AddDate(0, 0, -7).Format(time.RFC3339),
		},
		map[string]any{
			"id": "a2", "status": "pending",
			"opportunity":  map[string]any{"title": "Community job"},
			"created_at":   now.AddDate(0, 0, -4).Format(time.RFC3339),
			"submitted_at": now.AddDate(0, 0, -4).Format(time.RFC3339),
		},
	}

	bookmarks := []any{
		map[string]any{
			"id": "b1", "content_type_name": "newsarticle",
			"created_at": now.Add(-2 * time.Hour).Format(time.RFC3339),
		},
		map[string]any{
			"id": "b2", "content_type_name": "event",
			"created_at": now.AddDate(0, 0, -3).Format(time.RFC3339),
		},
	}

	serve("/api/v1/news/articles/", news)
	serve("/api/v1/events/", events)
	serve("/api/v1/opportunities/", opportunities)
	serve("/api/v1/diaspora/posts/", diaspora)
	serve("/api/v1/opportunities/applications/", applications)
	serve("/api/v1/announcements/", announcements)
	serve("/api/v1/bookmarks/", bookmarks)

	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
			log.Printf("[Content API] Health write error: %v", err)
		}
	})

	log.Println("Mock Content API running on :8081")
	server := &http.Server{
		Addr:         ":8081",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}

// serve registers a paginated collection endpoint.
func serve(path string, items []any) {
	http.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		start := (page - 1) * pageSize
		if start > len(items) {
			start = len(items)
		}
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}

		var next *string
		if end < len(items) {
			q := r.URL.Query()
			q.Set("page", strconv.Itoa(page+1))
			link := path + "?" + q.Encode()
			next = &link
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(envelope{
			Count:   len(items),
			Next:    next,
			Results: items[start:end],
		}); err != nil {
			log.Printf("[Content API] Write error: %v", err)
		}

		log.Printf("[Content API] %s %s page=%d - 200 OK", r.Method, r.URL.Path, page)
	})
}
