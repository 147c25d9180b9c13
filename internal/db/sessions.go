package db

import (
	"context"

	"github.com/google/uuid"
)

const sessionColumns = `
	id, entity_id, template_id, name, executed_query, status, error_message,
	total_results, created_by, created_at, started_at, completed_at`

func scanSession(row interface{ Scan(dest ...any) error }) (SearchSession, error) {
	var s SearchSession
	err := row.Scan(
		&s.ID, &s.EntityID, &s.TemplateID, &s.Name, &s.ExecutedQuery,
		&s.Status, &s.ErrorMessage, &s.TotalResults, &s.CreatedBy,
		&s.CreatedAt, &s.StartedAt, &s.CompletedAt,
	)
	return s, err
}

type CreateSessionParams struct {
	EntityID      uuid.UUID
	TemplateID    int64
	Name          string
	ExecutedQuery string
	CreatedBy     string
}

// CreateSession inserts a pending session. Concurrent sessions for the same
// entity and template are allowed, the worker sorts them out in arrival order.
func (q *Queries) CreateSession(ctx context.Context, params CreateSessionParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.db.QueryRow(ctx, `INSERT INTO search_sessions (
			entity_id, template_id, name, executed_query, status, created_by
		) VALUES ($1, $2, $3, $4, 'pending', $5)
		RETURNING id`,
		params.EntityID, params.TemplateID, params.Name,
		params.ExecutedQuery, params.CreatedBy,
	).Scan(&id)
	return id, err
}

func (q *Queries) GetSession(ctx context.Context, id uuid.UUID) (SearchSession, error) {
	row := q.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM search_sessions WHERE id = $1`, id)
	return scanSession(row)
}

func (q *Queries) ListEntitySessions(ctx context.Context, entityID uuid.UUID) ([]SearchSession, error) {
	rows, err := q.db.Query(ctx, `SELECT `+sessionColumns+`
		FROM search_sessions
		WHERE entity_id = $1
		ORDER BY created_at DESC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []SearchSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (q *Queries) MarkSessionRunning(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `UPDATE search_sessions SET
			status = 'running', started_at = now()
		WHERE id = $1 AND status = 'pending'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *Queries) MarkSessionCompleted(ctx context.Context, id uuid.UUID, totalResults int) error {
	_, err := q.db.Exec(ctx, `UPDATE search_sessions SET
			status = 'completed', total_results = $2, completed_at = now()
		WHERE id = $1`, id, totalResults)
	return err
}

func (q *Queries) MarkSessionFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	_, err := q.db.Exec(ctx, `UPDATE search_sessions SET
			status = 'failed', error_message = $2, completed_at = now()
		WHERE id = $1`, id, errorMessage)
	return err
}

type InsertSearchResultParams struct {
	SessionID      uuid.UUID
	EntityID       uuid.UUID
	TemplateID     int64
	Title          string
	URL            string
	Snippet        string
	Domain         string
	RelevanceScore float64
}

func (q *Queries) InsertSearchResult(ctx context.Context, params InsertSearchResultParams) error {
	_, err := q.db.Exec(ctx, `INSERT INTO search_results (
			session_id, entity_id, template_id, title, url, snippet, domain, relevance_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		params.SessionID, params.EntityID, params.TemplateID,
		params.Title, params.URL, params.Snippet, params.Domain, params.RelevanceScore,
	)
	return err
}

func (q *Queries) ListSessionResults(ctx context.Context, sessionID uuid.UUID) ([]SearchResult, error) {
	rows, err := q.db.Query(ctx, `SELECT
			id, session_id, entity_id, template_id, title, url, snippet,
			domain, relevance_score, is_interesting, found_at
		FROM search_results
		WHERE session_id = $1
		ORDER BY relevance_score DESC, found_at`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		err := rows.Scan(
			&r.ID, &r.SessionID, &r.EntityID, &r.TemplateID, &r.Title, &r.URL,
			&r.Snippet, &r.Domain, &r.RelevanceScore, &r.IsInteresting, &r.FoundAt,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
