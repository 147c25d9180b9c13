package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/db"
	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/util"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/query"

	"github.com/jackc/pgx/v5/pgxpool"
)

const maxSessionResults = 25

// ProcessSessionMessage executes a pending search session. The session moves
// to running, results land in search_results, entity and template counters are
// bumped, and the session ends completed or failed. Search provider failures
// mark the session failed and ack the message, only infrastructure errors
// travel to the retry queue.
func ProcessSessionMessage(
	ctx context.Context,
	conn *pgxpool.Pool,
	provider query.Provider,
	msgBody string,
) error {
	var data SessionQueueMsg
	if err := json.Unmarshal([]byte(msgBody), &data); err != nil {
		logger.Error("[Session] Invalid message body, dropping", "err", err)
		return nil
	}

	q := db.New(conn)

	session, err := q.GetSession(ctx, data.SessionID)
	if err != nil {
		return fmt.Errorf("failed to load session %s: %w", data.SessionID, err)
	}

	if session.Status != db.SessionStatusPending {
		logger.Info("[Session] Skipping non-pending session", "session_id", session.ID, "status", session.Status)
		return nil
	}

	if err := q.MarkSessionRunning(ctx, session.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			logger.Info("[Session] Session already claimed", "session_id", session.ID)
			return nil
		}
		return fmt.Errorf("failed to mark session running: %w", err)
	}

	logger.Info("[Session] Executing search", "session_id", session.ID, "query", session.ExecutedQuery)

	results, err := util.RetryWithContext(ctx, 3, func(ctx context.Context) ([]query.Result, error) {
		return provider.Search(ctx, session.ExecutedQuery, maxSessionResults)
	})
	if err != nil {
		logger.Error("[Session] Search provider failed", "session_id", session.ID, "err", err)
		if failErr := q.MarkSessionFailed(ctx, session.ID, err.Error()); failErr != nil {
			return fmt.Errorf("failed to mark session failed: %w", failErr)
		}
		return nil
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)
	qtx := q.WithTx(tx)

	for _, result := range results {
		err := qtx.InsertSearchResult(ctx, db.InsertSearchResultParams{
			SessionID:      session.ID,
			EntityID:       session.EntityID,
			TemplateID:     session.TemplateID,
			Title:          result.Title,
			URL:            result.URL,
			Snippet:        result.Snippet,
			Domain:         resultDomain(result),
			RelevanceScore: result.Relevance,
		})
		if err != nil {
			return fmt.Errorf("failed to insert search result: %w", err)
		}
	}

	if err := qtx.BumpEntitySearchCounters(ctx, session.EntityID, len(results)); err != nil {
		return fmt.Errorf("failed to bump entity counters: %w", err)
	}
	if err := qtx.BumpTemplateUsage(ctx, session.TemplateID); err != nil {
		return fmt.Errorf("failed to bump template usage: %w", err)
	}
	if err := qtx.MarkSessionCompleted(ctx, session.ID, len(results)); err != nil {
		return fmt.Errorf("failed to mark session completed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit session results: %w", err)
	}

	logger.Info("[Session] Search completed", "session_id", session.ID, "results", len(results))
	return nil
}

func resultDomain(result query.Result) string {
	if result.Domain != "" {
		return result.Domain
	}
	parsed, err := url.Parse(result.URL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
