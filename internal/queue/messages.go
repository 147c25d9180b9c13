package queue

import "github.com/google/uuid"

type SessionQueueMsg struct {
	SessionID uuid.UUID `json:"session_id"`
}

type CrawlQueueMsg struct {
	JobID uuid.UUID `json:"job_id"`
}
