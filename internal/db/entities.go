package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const entityColumns = `
	e.id, e.name, e.entity_type_id, t.name, t.icon,
	e.aliases, e.description, e.industry, e.location, e.founded_date,
	e.website, e.domains, e.social_media, e.tags,
	e.priority, e.status, e.created_by, e.created_at, e.updated_at,
	e.last_researched, e.search_count, e.results_found`

func scanEntity(row interface{ Scan(dest ...any) error }) (Entity, error) {
	var e Entity
	err := row.Scan(
		&e.ID, &e.Name, &e.EntityTypeID, &e.EntityTypeName, &e.EntityTypeIcon,
		&e.Aliases, &e.Description, &e.Industry, &e.Location, &e.FoundedDate,
		&e.Website, &e.Domains, &e.SocialMedia, &e.Tags,
		&e.Priority, &e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		&e.LastResearched, &e.SearchCount, &e.ResultsFound,
	)
	return e, err
}

type ListEntitiesParams struct {
	Status       string
	Priority     string
	EntityTypeID int64
	Search       string
}

func (q *Queries) ListEntities(ctx context.Context, params ListEntitiesParams) ([]Entity, error) {
	query := `SELECT ` + entityColumns + `
		FROM entities e
		JOIN entity_types t ON t.id = e.entity_type_id`

	var conds []string
	var args []any
	if params.Status != "" {
		args = append(args, params.Status)
		conds = append(conds, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if params.Priority != "" {
		args = append(args, params.Priority)
		conds = append(conds, fmt.Sprintf("e.priority = $%d", len(args)))
	}
	if params.EntityTypeID != 0 {
		args = append(args, params.EntityTypeID)
		conds = append(conds, fmt.Sprintf("e.entity_type_id = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conds = append(conds, fmt.Sprintf("(e.name ILIKE $%d OR e.description ILIKE $%d)", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.updated_at DESC"

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

func (q *Queries) GetEntity(ctx context.Context, id uuid.UUID) (Entity, error) {
	row := q.db.QueryRow(ctx, `SELECT `+entityColumns+`
		FROM entities e
		JOIN entity_types t ON t.id = e.entity_type_id
		WHERE e.id = $1`, id)
	return scanEntity(row)
}

type CreateEntityParams struct {
	Name         string
	EntityTypeID int64
	Aliases      []string
	Description  string
	Industry     string
	Location     string
	FoundedDate  *time.Time
	Website      string
	Domains      []string
	SocialMedia  map[string]string
	Tags         []string
	Priority     string
	Status       string
	CreatedBy    string
}

func (q *Queries) CreateEntity(ctx context.Context, params CreateEntityParams) (uuid.UUID, error) {
	if params.SocialMedia == nil {
		params.SocialMedia = map[string]string{}
	}
	var id uuid.UUID
	err := q.db.QueryRow(ctx, `INSERT INTO entities (
			name, entity_type_id, aliases, description, industry, location,
			founded_date, website, domains, social_media, tags,
			priority, status, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`,
		params.Name, params.EntityTypeID, params.Aliases, params.Description,
		params.Industry, params.Location, params.FoundedDate, params.Website,
		params.Domains, params.SocialMedia, params.Tags,
		params.Priority, params.Status, params.CreatedBy,
	).Scan(&id)
	return id, err
}

type UpdateEntityParams struct {
	ID           uuid.UUID
	Name         string
	EntityTypeID int64
	Aliases      []string
	Description  string
	Industry     string
	Location     string
	FoundedDate  *time.Time
	Website      string
	Domains      []string
	SocialMedia  map[string]string
	Tags         []string
	Priority     string
	Status       string
}

func (q *Queries) UpdateEntity(ctx context.Context, params UpdateEntityParams) error {
	if params.SocialMedia == nil {
		params.SocialMedia = map[string]string{}
	}
	tag, err := q.db.Exec(ctx, `UPDATE entities SET
			name = $2, entity_type_id = $3, aliases = $4, description = $5,
			industry = $6, location = $7, founded_date = $8, website = $9,
			domains = $10, social_media = $11, tags = $12,
			priority = $13, status = $14, updated_at = now()
		WHERE id = $1`,
		params.ID, params.Name, params.EntityTypeID, params.Aliases,
		params.Description, params.Industry, params.Location, params.FoundedDate,
		params.Website, params.Domains, params.SocialMedia, params.Tags,
		params.Priority, params.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *Queries) DeleteEntity(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM entities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// BumpEntitySearchCounters records a completed search against the entity.
func (q *Queries) BumpEntitySearchCounters(ctx context.Context, id uuid.UUID, resultsFound int) error {
	_, err := q.db.Exec(ctx, `UPDATE entities SET
			search_count = search_count + 1,
			results_found = results_found + $2,
			last_researched = now()
		WHERE id = $1`, id, resultsFound)
	return err
}

func (q *Queries) ListEntityTypes(ctx context.Context) ([]EntityType, error) {
	rows, err := q.db.Query(ctx, `SELECT id, name, display_name, description, icon, color, is_active, created_at
		FROM entity_types
		WHERE is_active
		ORDER BY display_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []EntityType
	for rows.Next() {
		var t EntityType
		if err := rows.Scan(&t.ID, &t.Name, &t.DisplayName, &t.Description, &t.Icon, &t.Color, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
