package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const relationshipColumns = `
	r.id, r.from_entity, r.to_entity, f.name, t.name,
	r.relationship_type, r.description, r.confidence, r.strength, r.source,
	r.start_date, r.end_date, r.is_active, r.created_at, r.updated_at`

func scanRelationship(row interface{ Scan(dest ...any) error }) (EntityRelationship, error) {
	var r EntityRelationship
	err := row.Scan(
		&r.ID, &r.FromEntity, &r.ToEntity, &r.FromEntityName, &r.ToEntityName,
		&r.RelationshipType, &r.Description, &r.Confidence, &r.Strength, &r.Source,
		&r.StartDate, &r.EndDate, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (q *Queries) listRelationships(ctx context.Context, query string, args ...any) ([]EntityRelationship, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rels []EntityRelationship
	for rows.Next() {
		r, err := scanRelationship(rows)
		if err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, rows.Err()
}

// ListOutgoingRelationships returns active relationships where the entity is
// the source, ordered by creation so graph layouts stay stable across calls.
func (q *Queries) ListOutgoingRelationships(ctx context.Context, entityID uuid.UUID) ([]EntityRelationship, error) {
	return q.listRelationships(ctx, `SELECT `+relationshipColumns+`
		FROM entity_relationships r
		JOIN entities f ON f.id = r.from_entity
		JOIN entities t ON t.id = r.to_entity
		WHERE r.from_entity = $1 AND r.is_active
		ORDER BY r.id`, entityID)
}

func (q *Queries) ListIncomingRelationships(ctx context.Context, entityID uuid.UUID) ([]EntityRelationship, error) {
	return q.listRelationships(ctx, `SELECT `+relationshipColumns+`
		FROM entity_relationships r
		JOIN entities f ON f.id = r.from_entity
		JOIN entities t ON t.id = r.to_entity
		WHERE r.to_entity = $1 AND r.is_active
		ORDER BY r.id`, entityID)
}

func (q *Queries) GetRelationship(ctx context.Context, id int64) (EntityRelationship, error) {
	row := q.db.QueryRow(ctx, `SELECT `+relationshipColumns+`
		FROM entity_relationships r
		JOIN entities f ON f.id = r.from_entity
		JOIN entities t ON t.id = r.to_entity
		WHERE r.id = $1`, id)
	return scanRelationship(row)
}

type CreateRelationshipParams struct {
	FromEntity       uuid.UUID
	ToEntity         uuid.UUID
	RelationshipType string
	Description      string
	Confidence       *float64
	Strength         *int
	Source           string
	StartDate        *time.Time
	EndDate          *time.Time
}

func (q *Queries) CreateRelationship(ctx context.Context, params CreateRelationshipParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, `INSERT INTO entity_relationships (
			from_entity, to_entity, relationship_type, description,
			confidence, strength, source, start_date, end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		params.FromEntity, params.ToEntity, params.RelationshipType,
		params.Description, params.Confidence, params.Strength,
		params.Source, params.StartDate, params.EndDate,
	).Scan(&id)
	return id, err
}

type UpdateRelationshipParams struct {
	ID               int64
	RelationshipType string
	Description      string
	Confidence       *float64
	Strength         *int
	Source           string
	StartDate        *time.Time
	EndDate          *time.Time
	IsActive         bool
}

func (q *Queries) UpdateRelationship(ctx context.Context, params UpdateRelationshipParams) error {
	tag, err := q.db.Exec(ctx, `UPDATE entity_relationships SET
			relationship_type = $2, description = $3, confidence = $4,
			strength = $5, source = $6, start_date = $7, end_date = $8,
			is_active = $9, updated_at = now()
		WHERE id = $1`,
		params.ID, params.RelationshipType, params.Description, params.Confidence,
		params.Strength, params.Source, params.StartDate, params.EndDate, params.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *Queries) DeleteRelationship(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM entity_relationships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
