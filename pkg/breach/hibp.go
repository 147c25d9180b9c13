package breach

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBreachURL   = "https://haveibeenpwned.com/api/v3"
	defaultPasswordURL = "https://api.pwnedpasswords.com"
)

// Breach describes one known data breach an account appeared in.
type Breach struct {
	Name        string `json:"Name"`
	Title       string `json:"Title"`
	Domain      string `json:"Domain"`
	BreachDate  string `json:"BreachDate"`
	PwnCount    int64  `json:"PwnCount"`
	Description string `json:"Description"`
	IsVerified  bool   `json:"IsVerified"`
}

// EmailResult is the outcome of an email breach lookup.
type EmailResult struct {
	Status      string   `json:"status"`
	BreachCount int      `json:"breach_count"`
	Breaches    []Breach `json:"breaches"`
	Message     string   `json:"message"`
}

// PasswordResult is the outcome of a k-anonymity password check.
type PasswordResult struct {
	Status         string `json:"status"`
	TimesSeen      int64  `json:"times_seen"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Client talks to the Have I Been Pwned APIs. Email lookups need an API key;
// without one the client runs in demo mode and answers from a small built-in
// dataset so the dashboard stays usable in development.
type Client struct {
	apiKey      string
	breachURL   string
	passwordURL string
	httpClient  *http.Client
}

// NewClientParams contains configuration for creating a breach Client.
type NewClientParams struct {
	APIKey      string
	BreachURL   string
	PasswordURL string
	Timeout     time.Duration
}

// NewClient creates a breach checker client.
func NewClient(params NewClientParams) *Client {
	breachURL := params.BreachURL
	if breachURL == "" {
		breachURL = defaultBreachURL
	}
	passwordURL := params.PasswordURL
	if passwordURL == "" {
		passwordURL = defaultPasswordURL
	}
	timeout := params.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:      params.APIKey,
		breachURL:   breachURL,
		passwordURL: passwordURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// demoBreaches backs demo mode when no API key is configured.
var demoBreaches = map[string][]Breach{
	"test@example.com": {
		{
			Name:       "Adobe",
			Title:      "Adobe",
			Domain:     "adobe.com",
			BreachDate: "2013-10-04",
			PwnCount:   152445165,
			IsVerified: true,
		},
		{
			Name:       "LinkedIn",
			Title:      "LinkedIn",
			Domain:     "linkedin.com",
			BreachDate: "2012-05-05",
			PwnCount:   164611595,
			IsVerified: true,
		},
	},
}

// CheckEmail looks up known breaches for an email address. A 404 from the
// API means the account was not found in any breach.
func (c *Client) CheckEmail(ctx context.Context, email string) (*EmailResult, error) {
	if c.apiKey == "" {
		return demoEmailResult(email), nil
	}

	endpoint := fmt.Sprintf(
		"%s/breachedaccount/%s?truncateResponse=false",
		c.breachURL,
		url.PathEscape(email),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("hibp-api-key", c.apiKey)
	req.Header.Set("user-agent", "entity-research-backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("breach lookup failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &EmailResult{
			Status:   "safe",
			Breaches: []Breach{},
			Message:  "Good news! This email was not found in any known breaches.",
		}, nil
	case http.StatusOK:
		var breaches []Breach
		if err := json.NewDecoder(resp.Body).Decode(&breaches); err != nil {
			return nil, fmt.Errorf("failed to decode breach response: %w", err)
		}
		return &EmailResult{
			Status:      "found",
			BreachCount: len(breaches),
			Breaches:    breaches,
			Message:     fmt.Sprintf("This email appeared in %d known breach(es).", len(breaches)),
		}, nil
	default:
		return nil, fmt.Errorf("breach API returned status %d", resp.StatusCode)
	}
}

func demoEmailResult(email string) *EmailResult {
	breaches, ok := demoBreaches[strings.ToLower(email)]
	if !ok {
		return &EmailResult{
			Status:   "safe",
			Breaches: []Breach{},
			Message:  "Good news! This email was not found in any known breaches. (demo data)",
		}
	}
	return &EmailResult{
		Status:      "found",
		BreachCount: len(breaches),
		Breaches:    breaches,
		Message:     fmt.Sprintf("This email appeared in %d known breach(es). (demo data)", len(breaches)),
	}
}

// CheckPassword checks a password against the pwned-passwords range API using
// k-anonymity: only the first five characters of the SHA-1 hash leave the
// process.
func (c *Client) CheckPassword(ctx context.Context, password string) (*PasswordResult, error) {
	prefix, suffix := HashPrefixSuffix(password)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.passwordURL+"/range/"+prefix, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("user-agent", "entity-research-backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("password range lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("password API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read password range response: %w", err)
	}

	timesSeen := MatchSuffix(string(body), suffix)
	if timesSeen > 0 {
		return &PasswordResult{
			Status:         "found",
			TimesSeen:      timesSeen,
			Message:        fmt.Sprintf("This password has been seen %d times in data breaches.", timesSeen),
			Recommendation: "Stop using this password immediately and enable two-factor authentication.",
		}, nil
	}
	return &PasswordResult{
		Status:  "safe",
		Message: "Good news! This password was not found in any known breaches.",
	}, nil
}

// HashPrefixSuffix splits the uppercase hex SHA-1 of a password into the
// five-character range prefix and the 35-character suffix.
func HashPrefixSuffix(password string) (string, string) {
	sum := sha1.Sum([]byte(password))
	hexHash := strings.ToUpper(fmt.Sprintf("%x", sum))
	return hexHash[:5], hexHash[5:]
}

// MatchSuffix scans a range API response body ("SUFFIX:COUNT" lines) for the
// given hash suffix and returns its breach count, or 0 when absent.
func MatchSuffix(body, suffix string) int64 {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		candidate, countStr, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if !strings.EqualFold(candidate, suffix) {
			continue
		}
		count, err := strconv.ParseInt(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			return 0
		}
		return count
	}
	return 0
}
