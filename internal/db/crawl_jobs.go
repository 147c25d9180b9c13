package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const crawlJobColumns = `
	id, entity_id, platform, target_username, target_url,
	crawl_posts, crawl_followers, max_posts, max_followers,
	status, progress, profiles_found, posts_found, error_message,
	artifact_key, created_by, created_at, started_at, completed_at`

func scanCrawlJob(row interface{ Scan(dest ...any) error }) (CrawlJob, error) {
	var j CrawlJob
	err := row.Scan(
		&j.ID, &j.EntityID, &j.Platform, &j.TargetUsername, &j.TargetURL,
		&j.CrawlPosts, &j.CrawlFollowers, &j.MaxPosts, &j.MaxFollowers,
		&j.Status, &j.Progress, &j.ProfilesFound, &j.PostsFound, &j.ErrorMessage,
		&j.ArtifactKey, &j.CreatedBy, &j.CreatedAt, &j.StartedAt, &j.CompletedAt,
	)
	return j, err
}

type CreateCrawlJobParams struct {
	EntityID       *uuid.UUID
	Platform       string
	TargetUsername string
	TargetURL      string
	CrawlPosts     bool
	CrawlFollowers bool
	MaxPosts       int
	MaxFollowers   int
	CreatedBy      string
}

func (q *Queries) CreateCrawlJob(ctx context.Context, params CreateCrawlJobParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRow(ctx, `INSERT INTO crawl_jobs (
			entity_id, platform, target_username, target_url,
			crawl_posts, crawl_followers, max_posts, max_followers,
			status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9)
		RETURNING id`,
		params.EntityID, params.Platform, params.TargetUsername, params.TargetURL,
		params.CrawlPosts, params.CrawlFollowers, params.MaxPosts, params.MaxFollowers,
		params.CreatedBy,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetCrawlJob(ctx context.Context, id uuid.UUID) (CrawlJob, error) {
	row := q.db.QueryRow(ctx, `SELECT `+crawlJobColumns+` FROM crawl_jobs WHERE id = $1`, id)
	return scanCrawlJob(row)
}

func (q *Queries) ListCrawlJobs(ctx context.Context) ([]CrawlJob, error) {
	rows, err := q.db.Query(ctx, `SELECT `+crawlJobColumns+`
		FROM crawl_jobs
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []CrawlJob
	for rows.Next() {
		j, err := scanCrawlJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// MarkCrawlJobRunning claims a pending job. It does not match cancelled jobs,
// so a cancel racing the worker wins.
func (q *Queries) MarkCrawlJobRunning(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `UPDATE crawl_jobs SET
			status = 'running', started_at = now()
		WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *Queries) UpdateCrawlJobProgress(ctx context.Context, id uuid.UUID, progress int) error {
	_, err := q.db.Exec(ctx, `UPDATE crawl_jobs SET progress = $2 WHERE id = $1`, id, progress)
	return err
}

type CompleteCrawlJobParams struct {
	ID            uuid.UUID
	ProfilesFound int
	PostsFound    int
	ArtifactKey   string
}

func (q *Queries) CompleteCrawlJob(ctx context.Context, params CompleteCrawlJobParams) error {
	_, err := q.db.Exec(ctx, `UPDATE crawl_jobs SET
			status = 'completed', progress = 100, profiles_found = $2,
			posts_found = $3, artifact_key = $4, completed_at = now()
		WHERE id = $1`,
		params.ID, params.ProfilesFound, params.PostsFound, params.ArtifactKey)
	return err
}

func (q *Queries) FailCrawlJob(ctx context.Context, id uuid.UUID, errorMessage string) error {
	_, err := q.db.Exec(ctx, `UPDATE crawl_jobs SET
			status = 'failed', error_message = $2, completed_at = now()
		WHERE id = $1`, id, errorMessage)
	return err
}

// CancelCrawlJob flips a pending or running job to cancelled. Returns
// ErrNotFound when the job is already terminal.
func (q *Queries) CancelCrawlJob(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `UPDATE crawl_jobs SET
			status = 'cancelled', completed_at = now()
		WHERE id = $1 AND status IN ('pending', 'running')`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *Queries) DeleteCrawlJob(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM crawl_jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type InsertSocialProfileParams struct {
	CrawlJobID     uuid.UUID
	Platform       string
	Username       string
	ProfileURL     string
	DisplayName    string
	Bio            string
	FollowersCount int
	FollowingCount int
	PostsCount     int
	Verified       bool
	Location       string
	Website        string
}

func (q *Queries) InsertSocialProfile(ctx context.Context, params InsertSocialProfileParams) error {
	_, err := q.db.Exec(ctx, `INSERT INTO social_profiles (
			crawl_job_id, platform, username, profile_url, display_name, bio,
			followers_count, following_count, posts_count, verified, location, website
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		params.CrawlJobID, params.Platform, params.Username, params.ProfileURL,
		params.DisplayName, params.Bio, params.FollowersCount, params.FollowingCount,
		params.PostsCount, params.Verified, params.Location, params.Website,
	)
	return err
}

type InsertSocialPostParams struct {
	CrawlJobID uuid.UUID
	Platform   string
	PostID     string
	PostURL    string
	Content    string
	LikesCount int
	PostedAt   *time.Time
}

func (q *Queries) InsertSocialPost(ctx context.Context, params InsertSocialPostParams) error {
	_, err := q.db.Exec(ctx, `INSERT INTO social_posts (
			crawl_job_id, platform, post_id, post_url, content, likes_count, posted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		params.CrawlJobID, params.Platform, params.PostID, params.PostURL,
		params.Content, params.LikesCount, params.PostedAt,
	)
	return err
}

func (q *Queries) ListJobPosts(ctx context.Context, jobID uuid.UUID) ([]SocialPost, error) {
	rows, err := q.db.Query(ctx, `SELECT
			id, crawl_job_id, platform, post_id, post_url, content,
			likes_count, posted_at, crawled_at
		FROM social_posts
		WHERE crawl_job_id = $1
		ORDER BY posted_at DESC NULLS LAST`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []SocialPost
	for rows.Next() {
		var p SocialPost
		err := rows.Scan(
			&p.ID, &p.CrawlJobID, &p.Platform, &p.PostID, &p.PostURL,
			&p.Content, &p.LikesCount, &p.PostedAt, &p.CrawledAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (q *Queries) ListJobProfiles(ctx context.Context, jobID uuid.UUID) ([]SocialProfile, error) {
	rows, err := q.db.Query(ctx, `SELECT
			id, crawl_job_id, platform, username, profile_url, display_name, bio,
			followers_count, following_count, posts_count, verified, location,
			website, crawled_at
		FROM social_profiles
		WHERE crawl_job_id = $1
		ORDER BY followers_count DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []SocialProfile
	for rows.Next() {
		var p SocialProfile
		err := rows.Scan(
			&p.ID, &p.CrawlJobID, &p.Platform, &p.Username, &p.ProfileURL,
			&p.DisplayName, &p.Bio, &p.FollowersCount, &p.FollowingCount,
			&p.PostsCount, &p.Verified, &p.Location, &p.Website, &p.CrawledAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
