package db

import "context"

const templateColumns = `
	id, entity_type_id, name, description, query_template, category,
	risk_level, difficulty, is_active, usage_count, created_at, updated_at`

func scanTemplate(row interface{ Scan(dest ...any) error }) (SearchTemplate, error) {
	var t SearchTemplate
	err := row.Scan(
		&t.ID, &t.EntityTypeID, &t.Name, &t.Description, &t.QueryTemplate,
		&t.Category, &t.RiskLevel, &t.Difficulty, &t.IsActive, &t.UsageCount,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// ListTemplates returns active templates, optionally scoped to an entity type.
func (q *Queries) ListTemplates(ctx context.Context, entityTypeID int64) ([]SearchTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM search_templates WHERE is_active`
	var args []any
	if entityTypeID != 0 {
		query += ` AND entity_type_id = $1`
		args = append(args, entityTypeID)
	}
	query += ` ORDER BY category, name`

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []SearchTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (q *Queries) GetTemplate(ctx context.Context, id int64) (SearchTemplate, error) {
	row := q.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM search_templates WHERE id = $1`, id)
	return scanTemplate(row)
}

func (q *Queries) BumpTemplateUsage(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, `UPDATE search_templates SET
			usage_count = usage_count + 1, updated_at = now()
		WHERE id = $1`, id)
	return err
}
