package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// DynamicRepository serves the dynamic_infos table.
type DynamicRepository struct {
	db *sql.DB
}

func NewDynamicRepository(db *sql.DB) *DynamicRepository {
	return &DynamicRepository{db: db}
}

var _ usecase.DynamicRepository = (*DynamicRepository)(nil)

func (r *DynamicRepository) List(ctx context.Context, f usecase.DynamicFilter) ([]domain.Dynamic, int64, error) {
	b := &whereBuilder{}
	b.add("publish_status = '1'")
	b.addTitleSearch(f.Title)
	b.addPublishRange("publish_times", f.ListFilter)
	if f.DynamicType != "" {
		b.add("dynamic_type = ?", f.DynamicType)
	}

	total, err := countRows(ctx, r.db, "dynamic_infos", b.clause(), b.args)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT id, title, title_en, dynamic_type, publish_times, created_times
	FROM dynamic_infos` + b.clause() +
		" ORDER BY COALESCE(publish_times, created_times) DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(b.args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var dynamics []domain.Dynamic
	for rows.Next() {
		var d domain.Dynamic
		if err := rows.Scan(&d.ID, &d.Title, &d.TitleEn, &d.DynamicType,
			&d.PublishTimes, &d.CreatedTimes); err != nil {
			return nil, 0, err
		}
		dynamics = append(dynamics, d)
	}
	return dynamics, total, rows.Err()
}

func (r *DynamicRepository) Get(ctx context.Context, id int64) (*domain.Dynamic, error) {
	const q = `
SELECT id, title, title_en, dynamic_type, content, content_en, publish_times,
	created_times
FROM dynamic_infos WHERE id = ? AND publish_status = '1'`

	var d domain.Dynamic
	err := r.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Title, &d.TitleEn,
		&d.DynamicType, &d.Content, &d.ContentEn, &d.PublishTimes, &d.CreatedTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dynamic %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
