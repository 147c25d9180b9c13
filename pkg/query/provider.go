package query

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Result is a single search hit returned by a Provider.
type Result struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	Snippet   string  `json:"snippet"`
	Domain    string  `json:"domain"`
	Relevance float64 `json:"relevance"`
}

// Provider executes a materialized query against a search backend.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Result, error)
}

// HTTPProvider talks to a SERP gateway that exposes search results as JSON.
type HTTPProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type NewHTTPProviderParams struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewHTTPProvider(params NewHTTPProviderParams) *HTTPProvider {
	if params.Timeout == 0 {
		params.Timeout = 30 * time.Second
	}
	return &HTTPProvider{
		baseURL:    params.BaseURL,
		apiKey:     params.APIKey,
		httpClient: &http.Client{Timeout: params.Timeout},
	}
}

func (p *HTTPProvider) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search gateway returned status %d", resp.StatusCode)
	}

	var payload struct {
		Results []Result `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := payload.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// LinkProvider is the fallback when no gateway is configured. It returns a
// single result pointing at the search engine URL for the query, which keeps
// sessions functional without external credentials.
type LinkProvider struct{}

func (LinkProvider) Search(_ context.Context, query string, _ int) ([]Result, error) {
	return []Result{{
		Title:     query,
		URL:       SearchURL(query),
		Snippet:   "Open this query in the search engine",
		Domain:    "www.google.com",
		Relevance: 1,
	}}, nil
}
