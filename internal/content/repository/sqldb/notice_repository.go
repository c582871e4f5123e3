package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// NoticeRepository serves the notice_infos table.
type NoticeRepository struct {
	db *sql.DB
}

func NewNoticeRepository(db *sql.DB) *NoticeRepository {
	return &NoticeRepository{db: db}
}

var _ usecase.NoticeRepository = (*NoticeRepository)(nil)

func (r *NoticeRepository) List(ctx context.Context, f usecase.NoticeFilter) ([]domain.Notice, int64, error) {
	b := &whereBuilder{}
	b.add("publish_status = '1'")
	b.addTitleSearch(f.Title)
	b.addPublishRange("publish_times", f.ListFilter)
	if f.NoticeType != "" {
		b.add("notice_type = ?", f.NoticeType)
	}
	if f.Importance != "" {
		b.add("importance = ?", f.Importance)
	}

	total, err := countRows(ctx, r.db, "notice_infos", b.clause(), b.args)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT id, title, title_en, notice_type, importance, link_url,
	publish_times, created_times FROM notice_infos` + b.clause() +
		" ORDER BY COALESCE(publish_times, created_times) DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(b.args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notices []domain.Notice
	for rows.Next() {
		var n domain.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.TitleEn, &n.NoticeType, &n.Importance,
			&n.LinkURL, &n.PublishTimes, &n.CreatedTimes); err != nil {
			return nil, 0, err
		}
		notices = append(notices, n)
	}
	return notices, total, rows.Err()
}

func (r *NoticeRepository) Get(ctx context.Context, id int64) (*domain.Notice, error) {
	const q = `
SELECT id, title, title_en, notice_type, importance, link_url, content,
	content_en, publish_times, created_times
FROM notice_infos WHERE id = ? AND publish_status = '1'`

	var n domain.Notice
	err := r.db.QueryRowContext(ctx, q, id).Scan(&n.ID, &n.Title, &n.TitleEn,
		&n.NoticeType, &n.Importance, &n.LinkURL, &n.Content, &n.ContentEn,
		&n.PublishTimes, &n.CreatedTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("notice %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}
