package db

import (
	"time"

	"github.com/google/uuid"
)

type EntityType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type Entity struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	EntityTypeID   int64             `json:"entity_type_id"`
	EntityTypeName string            `json:"entity_type_name"`
	EntityTypeIcon string            `json:"entity_type_icon"`
	Aliases        []string          `json:"aliases"`
	Description    string            `json:"description"`
	Industry       string            `json:"industry"`
	Location       string            `json:"location"`
	FoundedDate    *time.Time        `json:"founded_date"`
	Website        string            `json:"website"`
	Domains        []string          `json:"domains"`
	SocialMedia    map[string]string `json:"social_media"`
	Tags           []string          `json:"tags"`
	Priority       string            `json:"priority"`
	Status         string            `json:"status"`
	CreatedBy      string            `json:"created_by"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	LastResearched *time.Time        `json:"last_researched"`
	SearchCount    int               `json:"search_count"`
	ResultsFound   int               `json:"results_found"`
}

type EntityRelationship struct {
	ID               int64      `json:"id"`
	FromEntity       uuid.UUID  `json:"from_entity"`
	ToEntity         uuid.UUID  `json:"to_entity"`
	FromEntityName   string     `json:"from_entity_name"`
	ToEntityName     string     `json:"to_entity_name"`
	RelationshipType string     `json:"relationship_type"`
	Description      string     `json:"description"`
	Confidence       *float64   `json:"confidence"`
	Strength         *int       `json:"strength"`
	Source           string     `json:"source"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type SearchTemplate struct {
	ID            int64     `json:"id"`
	EntityTypeID  int64     `json:"entity_type_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	QueryTemplate string    `json:"query_template"`
	Category      string    `json:"category"`
	RiskLevel     string    `json:"risk_level"`
	Difficulty    string    `json:"difficulty"`
	IsActive      bool      `json:"is_active"`
	UsageCount    int       `json:"usage_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SearchSession struct {
	ID            uuid.UUID  `json:"id"`
	EntityID      uuid.UUID  `json:"entity_id"`
	TemplateID    int64      `json:"template_id"`
	Name          string     `json:"name"`
	ExecutedQuery string     `json:"executed_query"`
	Status        string     `json:"status"`
	ErrorMessage  string     `json:"error_message"`
	TotalResults  int        `json:"total_results"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at"`
	CompletedAt   *time.Time `json:"completed_at"`
}

type SearchResult struct {
	ID             uuid.UUID `json:"id"`
	SessionID      uuid.UUID `json:"session_id"`
	EntityID       uuid.UUID `json:"entity_id"`
	TemplateID     int64     `json:"template_id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Snippet        string    `json:"snippet"`
	Domain         string    `json:"domain"`
	RelevanceScore float64   `json:"relevance_score"`
	IsInteresting  bool      `json:"is_interesting"`
	FoundAt        time.Time `json:"found_at"`
}

type DorkCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

type GoogleDork struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id"`
	Title       string    `json:"title"`
	Query       string    `json:"query"`
	Description string    `json:"description"`
	RiskLevel   string    `json:"risk_level"`
	IsActive    bool      `json:"is_active"`
	UsageCount  int       `json:"usage_count"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CrawlJob struct {
	ID             uuid.UUID  `json:"id"`
	EntityID       *uuid.UUID `json:"entity_id"`
	Platform       string     `json:"platform"`
	TargetUsername string     `json:"target_username"`
	TargetURL      string     `json:"target_url"`
	CrawlPosts     bool       `json:"crawl_posts"`
	CrawlFollowers bool       `json:"crawl_followers"`
	MaxPosts       int        `json:"max_posts"`
	MaxFollowers   int        `json:"max_followers"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	ProfilesFound  int        `json:"profiles_found"`
	PostsFound     int        `json:"posts_found"`
	ErrorMessage   string     `json:"error_message"`
	ArtifactKey    string     `json:"artifact_key"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
}

type SocialProfile struct {
	ID             uuid.UUID `json:"id"`
	CrawlJobID     uuid.UUID `json:"crawl_job_id"`
	Platform       string    `json:"platform"`
	Username       string    `json:"username"`
	ProfileURL     string    `json:"profile_url"`
	DisplayName    string    `json:"display_name"`
	Bio            string    `json:"bio"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	PostsCount     int       `json:"posts_count"`
	Verified       bool      `json:"verified"`
	Location       string    `json:"location"`
	Website        string    `json:"website"`
	CrawledAt      time.Time `json:"crawled_at"`
}

type SocialPost struct {
	ID         uuid.UUID  `json:"id"`
	CrawlJobID uuid.UUID  `json:"crawl_job_id"`
	Platform   string     `json:"platform"`
	PostID     string     `json:"post_id"`
	PostURL    string     `json:"post_url"`
	Content    string     `json:"content"`
	LikesCount int        `json:"likes_count"`
	PostedAt   *time.Time `json:"posted_at"`
	CrawledAt  time.Time  `json:"crawled_at"`
}

const (
	SessionStatusPending   = "pending"
	SessionStatusRunning   = "running"
	SessionStatusCompleted = "completed"
	SessionStatusFailed    = "failed"

	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
	JobStatusCancelled = "cancelled"
)

// CanonicalConfidence collapses the legacy strength column and the newer
// confidence column into a single 0..1 value. Confidence wins when set,
// strength is rescaled from 0..10, and rows with neither get 0.5.
func (r EntityRelationship) CanonicalConfidence() float64 {
	if r.Confidence != nil {
		return *r.Confidence
	}
	if r.Strength != nil {
		return float64(*r.Strength) / 10
	}
	return 0.5
}
