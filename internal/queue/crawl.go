package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/storage"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/util"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/crawler"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProcessCrawlMessage runs a pending crawl job. The job moves to running,
// profiles land in social_profiles, the raw crawl payload is archived to S3
// and the job ends completed or failed. Cancelled jobs are skipped when their
// message arrives.
func ProcessCrawlMessage(
	ctx context.Context,
	client *s3.Client,
	conn *pgxpool.Pool,
	fetcher crawler.Fetcher,
	msgBody string,
) error {
	var data CrawlQueueMsg
	if err := json.Unmarshal([]byte(msgBody), &data); err != nil {
		logger.Error("[Crawl] Invalid message body, dropping", "err", err)
		return nil
	}

	q := db.New(conn)

	job, err := q.GetCrawlJob(ctx, data.JobID)
	if err != nil {
		return fmt.Errorf("failed to load crawl job %s: %w", data.JobID, err)
	}

	if job.Status != db.JobStatusPending {
		logger.Info("[Crawl] Skipping non-pending job", "job_id", job.ID, "status", job.Status)
		return nil
	}

	if err := q.MarkCrawlJobRunning(ctx, job.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			logger.Info("[Crawl] Job already claimed or cancelled", "job_id", job.ID)
			return nil
		}
		return fmt.Errorf("failed to mark crawl job running: %w", err)
	}

	logger.Info("[Crawl] Starting crawl", "job_id", job.ID, "platform", job.Platform, "target", job.TargetUsername)

	spec := crawler.JobSpec{
		Platform:       crawler.Platform(job.Platform),
		TargetUsername: job.TargetUsername,
		CrawlPosts:     job.CrawlPosts,
		CrawlFollowers: job.CrawlFollowers,
		MaxPosts:       job.MaxPosts,
		MaxFollowers:   job.MaxFollowers,
	}

	result, err := crawler.Run(ctx, fetcher, spec, func(progress int) {
		if err := q.UpdateCrawlJobProgress(ctx, job.ID, progress); err != nil {
			logger.Warn("[Crawl] Failed to update progress", "job_id", job.ID, "err", err)
		}
	})
	if err != nil {
		logger.Error("[Crawl] Crawl failed", "job_id", job.ID, "err", err)
		if failErr := q.FailCrawlJob(ctx, job.ID, err.Error()); failErr != nil {
			return fmt.Errorf("failed to mark crawl job failed: %w", failErr)
		}
		return nil
	}

	if err := saveProfiles(ctx, q, job.ID, result); err != nil {
		return err
	}
	if err := savePosts(ctx, q, job.ID, result); err != nil {
		return err
	}

	artifactKey, err := archiveResult(ctx, client, result)
	if err != nil {
		logger.Warn("[Crawl] Failed to archive crawl payload", "job_id", job.ID, "err", err)
	}

	err = q.CompleteCrawlJob(ctx, db.CompleteCrawlJobParams{
		ID:            job.ID,
		ProfilesFound: result.ProfilesFound(),
		PostsFound:    len(result.Posts),
		ArtifactKey:   artifactKey,
	})
	if err != nil {
		return fmt.Errorf("failed to mark crawl job completed: %w", err)
	}

	logger.Info("[Crawl] Crawl completed", "job_id", job.ID, "profiles", result.ProfilesFound(), "posts", len(result.Posts))
	return nil
}

func saveProfiles(ctx context.Context, q *db.Queries, jobID uuid.UUID, result *crawler.Result) error {
	profiles := make([]crawler.Profile, 0, len(result.Followers)+1)
	if result.Profile != nil {
		profiles = append(profiles, *result.Profile)
	}
	profiles = append(profiles, result.Followers...)

	for _, profile := range profiles {
		err := q.InsertSocialProfile(ctx, db.InsertSocialProfileParams{
			CrawlJobID:     jobID,
			Platform:       string(profile.Platform),
			Username:       profile.Username,
			ProfileURL:     profile.ProfileURL,
			DisplayName:    profile.DisplayName,
			Bio:            profile.Bio,
			FollowersCount: profile.FollowersCount,
			FollowingCount: profile.FollowingCount,
			PostsCount:     profile.PostsCount,
			Verified:       profile.Verified,
			Location:       profile.Location,
			Website:        profile.Website,
		})
		if err != nil {
			return fmt.Errorf("failed to insert social profile: %w", err)
		}
	}
	return nil
}

func savePosts(ctx context.Context, q *db.Queries, jobID uuid.UUID, result *crawler.Result) error {
	for _, post := range result.Posts {
		params := db.InsertSocialPostParams{
			CrawlJobID: jobID,
			Platform:   string(post.Platform),
			PostID:     post.PostID,
			PostURL:    post.URL,
			Content:    post.Content,
			LikesCount: post.LikesCount,
		}
		if !post.PostedAt.IsZero() {
			postedAt := post.PostedAt
			params.PostedAt = &postedAt
		}
		if err := q.InsertSocialPost(ctx, params); err != nil {
			return fmt.Errorf("failed to insert social post: %w", err)
		}
	}
	return nil
}

func archiveResult(ctx context.Context, client *s3.Client, result *crawler.Result) (string, error) {
	if client == nil {
		return "", nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	key, err := util.NewArtifactKey()
	if err != nil {
		return "", err
	}
	return storage.PutJSON(ctx, client, "crawls", key, payload)
}
