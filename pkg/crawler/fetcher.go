package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Fetcher retrieves public profile data from a platform. Implementations own
// the scraping mechanics; the job runner only sequences and bounds the calls.
type Fetcher interface {
	FetchProfile(ctx context.Context, platform Platform, username string) (*Profile, error)
	FetchPosts(ctx context.Context, platform Platform, username string, limit int) ([]Post, error)
	FetchFollowers(ctx context.Context, platform Platform, username string, limit int) ([]Profile, error)
}

// HTTPFetcher talks to the crawl gateway, the Tor-proxied scraper service
// that fronts the actual platforms. It exposes a small JSON API per platform.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPFetcherParams contains configuration for creating an HTTPFetcher.
type NewHTTPFetcherParams struct {
	BaseURL string
	Timeout time.Duration
}

// NewHTTPFetcher creates a fetcher backed by the crawl gateway.
func NewHTTPFetcher(params NewHTTPFetcherParams) *HTTPFetcher {
	timeout := params.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &HTTPFetcher{
		baseURL:    params.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crawl gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("target not found on platform")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("crawl gateway returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (f *HTTPFetcher) FetchProfile(ctx context.Context, platform Platform, username string) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/%s/profile/%s", platform, url.PathEscape(username))
	if err := f.get(ctx, path, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (f *HTTPFetcher) FetchPosts(ctx context.Context, platform Platform, username string, limit int) ([]Post, error) {
	var posts []Post
	path := fmt.Sprintf("/%s/posts/%s?limit=%s", platform, url.PathEscape(username), strconv.Itoa(limit))
	if err := f.get(ctx, path, &posts); err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (f *HTTPFetcher) FetchFollowers(ctx context.Context, platform Platform, username string, limit int) ([]Profile, error) {
	var followers []Profile
	path := fmt.Sprintf("/%s/followers/%s?limit=%s", platform, url.PathEscape(username), strconv.Itoa(limit))
	if err := f.get(ctx, path, &followers); err != nil {
		return nil, err
	}
	if len(followers) > limit {
		followers = followers[:limit]
	}
	return followers, nil
}
