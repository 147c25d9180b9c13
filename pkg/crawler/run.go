package crawler

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// JobSpec describes one crawl job to execute.
type JobSpec struct {
	Platform       Platform
	TargetUsername string
	CrawlPosts     bool
	CrawlFollowers bool
	MaxPosts       int
	MaxFollowers   int
}

// Result aggregates everything a crawl produced.
type Result struct {
	Profile   *Profile  `json:"profile"`
	Posts     []Post    `json:"posts,omitempty"`
	Followers []Profile `json:"followers,omitempty"`
}

// ProfilesFound counts the target profile plus any crawled followers.
func (r *Result) ProfilesFound() int {
	count := len(r.Followers)
	if r.Profile != nil {
		count++
	}
	return count
}

// Run executes a crawl job: the target profile first, then posts and
// followers concurrently when requested. The progress callback receives
// coarse percentages as phases complete; it may be nil.
func Run(ctx context.Context, fetcher Fetcher, spec JobSpec, progress func(int)) (*Result, error) {
	if spec.TargetUsername == "" {
		return nil, fmt.Errorf("crawl job has no target username")
	}
	report := func(pct int) {
		if progress != nil {
			progress(pct)
		}
	}

	profile, err := fetcher.FetchProfile(ctx, spec.Platform, spec.TargetUsername)
	if err != nil {
		return nil, fmt.Errorf("profile crawl failed: %w", err)
	}
	result := &Result{Profile: profile}
	report(25)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	if spec.CrawlPosts {
		g.Go(func() error {
			posts, err := fetcher.FetchPosts(gctx, spec.Platform, spec.TargetUsername, spec.MaxPosts)
			if err != nil {
				return fmt.Errorf("post crawl failed: %w", err)
			}
			mu.Lock()
			result.Posts = posts
			mu.Unlock()
			report(50)
			return nil
		})
	}
	if spec.CrawlFollowers {
		g.Go(func() error {
			followers, err := fetcher.FetchFollowers(gctx, spec.Platform, spec.TargetUsername, spec.MaxFollowers)
			if err != nil {
				return fmt.Errorf("follower crawl failed: %w", err)
			}
			mu.Lock()
			result.Followers = followers
			mu.Unlock()
			report(75)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report(100)
	return result, nil
}
