package db

import "context"

const dorkColumns = `
	id, category_id, title, query, description, risk_level,
	is_active, usage_count, created_by, created_at, updated_at`

func scanDork(row interface{ Scan(dest ...any) error }) (GoogleDork, error) {
	var d GoogleDork
	err := row.Scan(
		&d.ID, &d.CategoryID, &d.Title, &d.Query, &d.Description, &d.RiskLevel,
		&d.IsActive, &d.UsageCount, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (q *Queries) ListDorks(ctx context.Context, categoryID int64) ([]GoogleDork, error) {
	query := `SELECT ` + dorkColumns + ` FROM google_dorks WHERE is_active`
	var args []any
	if categoryID != 0 {
		query += ` AND category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY title`

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dorks []GoogleDork
	for rows.Next() {
		d, err := scanDork(rows)
		if err != nil {
			return nil, err
		}
		dorks = append(dorks, d)
	}
	return dorks, rows.Err()
}

func (q *Queries) GetDork(ctx context.Context, id int64) (GoogleDork, error) {
	row := q.db.QueryRow(ctx, `SELECT `+dorkColumns+` FROM google_dorks WHERE id = $1`, id)
	return scanDork(row)
}

type CreateDorkParams struct {
	CategoryID  int64
	Title       string
	Query       string
	Description string
	RiskLevel   string
	CreatedBy   string
}

func (q *Queries) CreateDork(ctx context.Context, params CreateDorkParams) (int64, error) {
	var id int64
	err := q.db.QueryRow(ctx, `INSERT INTO google_dorks (
			category_id, title, query, description, risk_level, created_by
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		params.CategoryID, params.Title, params.Query,
		params.Description, params.RiskLevel, params.CreatedBy,
	).Scan(&id)
	return id, err
}

type UpdateDorkParams struct {
	ID          int64
	CategoryID  int64
	Title       string
	Query       string
	Description string
	RiskLevel   string
	IsActive    bool
}

func (q *Queries) UpdateDork(ctx context.Context, params UpdateDorkParams) error {
	tag, err := q.db.Exec(ctx, `UPDATE google_dorks SET
			category_id = $2, title = $3, query = $4, description = $5,
			risk_level = $6, is_active = $7, updated_at = now()
		WHERE id = $1`,
		params.ID, params.CategoryID, params.Title, params.Query,
		params.Description, params.RiskLevel, params.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *Queries) DeleteDork(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM google_dorks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *Queries) BumpDorkUsage(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, `UPDATE google_dorks SET
			usage_count = usage_count + 1, updated_at = now()
		WHERE id = $1`, id)
	return err
}

func (q *Queries) ListDorkCategories(ctx context.Context) ([]DorkCategory, error) {
	rows, err := q.db.Query(ctx, `SELECT id, name, description, color, created_at
		FROM dork_categories
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []DorkCategory
	for rows.Next() {
		var c DorkCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
