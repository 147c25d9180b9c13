package crawler

import (
	"fmt"
	"time"
)

// Platform identifies a supported social-media platform.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformGitHub    Platform = "github"
	PlatformTikTok    Platform = "tiktok"
)

var profileURLFormats = map[Platform]string{
	PlatformTwitter:   "https://twitter.com/%s",
	PlatformInstagram: "https://www.instagram.com/%s/",
	PlatformLinkedIn:  "https://www.linkedin.com/in/%s/",
	PlatformFacebook:  "https://www.facebook.com/%s",
	PlatformGitHub:    "https://github.com/%s",
	PlatformTikTok:    "https://www.tiktok.com/@%s",
}

// ValidPlatform reports whether the given name is a supported platform.
func ValidPlatform(name string) bool {
	_, ok := profileURLFormats[Platform(name)]
	return ok
}

// ProfileURL builds the canonical public profile URL for a username.
func ProfileURL(platform Platform, username string) (string, error) {
	format, ok := profileURLFormats[platform]
	if !ok {
		return "", fmt.Errorf("unsupported platform: %s", platform)
	}
	return fmt.Sprintf(format, username), nil
}

// Profile is a crawled social-media profile.
type Profile struct {
	Platform       Platform  `json:"platform"`
	Username       string    `json:"username"`
	UserID         string    `json:"user_id,omitempty"`
	ProfileURL     string    `json:"profile_url"`
	DisplayName    string    `json:"display_name,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	PostsCount     int       `json:"posts_count"`
	Verified       bool      `json:"verified"`
	Location       string    `json:"location,omitempty"`
	Website        string    `json:"website,omitempty"`
	CrawledAt      time.Time `json:"crawled_at"`
}

// Post is a single crawled post or status update.
type Post struct {
	Platform   Platform  `json:"platform"`
	PostID     string    `json:"post_id"`
	URL        string    `json:"url"`
	Content    string    `json:"content"`
	LikesCount int       `json:"likes_count"`
	PostedAt   time.Time `json:"posted_at"`
}
