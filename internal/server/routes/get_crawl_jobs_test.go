package routes

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"

	"github.com/google/uuid"
)

// crawlJobRowValues matches the column order of scanCrawlJob.
func crawlJobRowValues(id uuid.UUID, status string) []any {
	now := time.Now()
	return []any{
		id, (*uuid.UUID)(nil), "twitter", "acme", "https://twitter.com/acme",
		true, true, 100, 100,
		status, 100, 5, 12, "",
		"", "tester", now, (*time.Time)(nil), (*time.Time)(nil),
	}
}

// socialPostRowValues matches the column order of ListJobPosts.
func socialPostRowValues(jobID uuid.UUID, content string) []any {
	now := time.Now()
	posted := now.Add(-time.Hour)
	return []any{
		uuid.New(), jobID, "twitter", "p-1", "https://twitter.com/acme/status/1",
		content, 42, &posted, now,
	}
}

func TestGetJobPostsHandler(t *testing.T) {
	jobID := uuid.New()
	stub := &stubDB{
		rows: [][]any{crawlJobRowValues(jobID, db.JobStatusCompleted)},
		resultSets: [][][]any{
			{
				socialPostRowValues(jobID, "We are hiring"),
				socialPostRowValues(jobID, "Product launch"),
			},
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/crawler/jobs/"+jobID.String()+"/posts", "", stub)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	if err := GetJobPostsHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}

	var posts []db.SocialPost
	if err := json.NewDecoder(rec.Body).Decode(&posts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Content != "We are hiring" || posts[0].CrawlJobID != jobID {
		t.Errorf("unexpected first post: %+v", posts[0])
	}
}

func TestGetJobPostsHandlerJobNotFound(t *testing.T) {
	stub := &stubDB{}

	c, rec := newTestContext(http.MethodGet, "/api/crawler/jobs/x/posts", "", stub)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := GetJobPostsHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetJobPostsHandlerEmpty(t *testing.T) {
	jobID := uuid.New()
	stub := &stubDB{
		rows: [][]any{crawlJobRowValues(jobID, db.JobStatusCompleted)},
	}

	c, rec := newTestContext(http.MethodGet, "/api/crawler/jobs/"+jobID.String()+"/posts", "", stub)
	c.SetParamNames("id")
	c.SetParamValues(jobID.String())

	if err := GetJobPostsHandler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty array, got %q", body)
	}
}
