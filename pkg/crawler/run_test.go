package crawler

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeFetcher struct {
	profileErr   error
	postsErr     error
	followersErr error
	posts        int
	followers    int
}

func (f *fakeFetcher) FetchProfile(_ context.Context, platform Platform, username string) (*Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return &Profile{Platform: platform, Username: username, CrawledAt: time.Now()}, nil
}

func (f *fakeFetcher) FetchPosts(_ context.Context, platform Platform, _ string, limit int) ([]Post, error) {
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	n := f.posts
	if n > limit {
		n = limit
	}
	posts := make([]Post, n)
	for i := range posts {
		posts[i] = Post{Platform: platform}
	}
	return posts, nil
}

func (f *fakeFetcher) FetchFollowers(_ context.Context, platform Platform, _ string, limit int) ([]Profile, error) {
	if f.followersErr != nil {
		return nil, f.followersErr
	}
	n := f.followers
	if n > limit {
		n = limit
	}
	followers := make([]Profile, n)
	for i := range followers {
		followers[i] = Profile{Platform: platform}
	}
	return followers, nil
}

func TestRunFullCrawl(t *testing.T) {
	fetcher := &fakeFetcher{posts: 250, followers: 80}
	spec := JobSpec{
		Platform:       PlatformGitHub,
		TargetUsername: "acme",
		CrawlPosts:     true,
		CrawlFollowers: true,
		MaxPosts:       100,
		MaxFollowers:   50,
	}

	var lastProgress int
	result, err := Run(context.Background(), fetcher, spec, func(pct int) { lastProgress = pct })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Profile == nil || result.Profile.Username != "acme" {
		t.Fatalf("profile = %+v", result.Profile)
	}
	if len(result.Posts) != 100 {
		t.Errorf("posts = %d, want capped at 100", len(result.Posts))
	}
	if len(result.Followers) != 50 {
		t.Errorf("followers = %d, want capped at 50", len(result.Followers))
	}
	if result.ProfilesFound() != 51 {
		t.Errorf("ProfilesFound = %d, want 51", result.ProfilesFound())
	}
	if lastProgress != 100 {
		t.Errorf("final progress = %d, want 100", lastProgress)
	}
}

func TestRunProfileOnly(t *testing.T) {
	fetcher := &fakeFetcher{posts: 10, followers: 10}
	spec := JobSpec{Platform: PlatformTwitter, TargetUsername: "acme"}

	result, err := Run(context.Background(), fetcher, spec, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Posts) != 0 || len(result.Followers) != 0 {
		t.Fatalf("expected profile-only crawl, got %d posts, %d followers", len(result.Posts), len(result.Followers))
	}
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("gateway down")

	tests := []struct {
		name    string
		fetcher *fakeFetcher
	}{
		{name: "profile failure", fetcher: &fakeFetcher{profileErr: boom}},
		{name: "posts failure", fetcher: &fakeFetcher{postsErr: boom}},
		{name: "followers failure", fetcher: &fakeFetcher{followersErr: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := JobSpec{
				Platform:       PlatformGitHub,
				TargetUsername: "acme",
				CrawlPosts:     true,
				CrawlFollowers: true,
				MaxPosts:       10,
				MaxFollowers:   10,
			}
			if _, err := Run(context.Background(), tt.fetcher, spec, nil); !errors.Is(err, boom) {
				t.Fatalf("expected wrapped gateway error, got %v", err)
			}
		})
	}
}

func TestRunRequiresTarget(t *testing.T) {
	if _, err := Run(context.Background(), &fakeFetcher{}, JobSpec{Platform: PlatformGitHub}, nil); err == nil {
		t.Fatal("expected error for empty target username")
	}
}

func TestProfileURL(t *testing.T) {
	tests := []struct {
		platform Platform
		username string
		want     string
	}{
		{platform: PlatformTwitter, username: "acme", want: "https://twitter.com/acme"},
		{platform: PlatformGitHub, username: "acme", want: "https://github.com/acme"},
		{platform: PlatformTikTok, username: "acme", want: "https://www.tiktok.com/@acme"},
	}
	for _, tt := range tests {
		got, err := ProfileURL(tt.platform, tt.username)
		if err != nil {
			t.Fatalf("ProfileURL(%s): %v", tt.platform, err)
		}
		if got != tt.want {
			t.Errorf("ProfileURL(%s) = %q, want %q", tt.platform, got, tt.want)
		}
	}

	if _, err := ProfileURL(Platform("myspace"), "acme"); err == nil {
		t.Fatal("expected error for unsupported platform")
	}

	if !ValidPlatform("instagram") || ValidPlatform("myspace") {
		t.Fatal("ValidPlatform misclassified a platform")
	}
}
