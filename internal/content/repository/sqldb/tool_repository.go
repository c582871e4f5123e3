package sqldb

import (
	"context"
	"database/sql"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// ToolRepository serves the tool_infos table.
type ToolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

var _ usecase.ToolRepository = (*ToolRepository)(nil)

func (r *ToolRepository) List(ctx context.Context, f usecase.ToolFilter) ([]domain.Tool, int64, error) {
	b := &whereBuilder{}
	b.add("publish_status = '1'")
	b.addTitleSearch(f.Title)
	b.addPublishRange("publish_times", f.ListFilter)
	if f.ToolType != "" {
		b.add("tool_type = ?", f.ToolType)
	}

	total, err := countRows(ctx, r.db, "tool_infos", b.clause(), b.args)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT id, title, title_en, description, description_en, tool_type,
	tool_url, publish_times, created_times FROM tool_infos` + b.clause() +
		" ORDER BY COALESCE(publish_times, created_times) DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(b.args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var tl domain.Tool
		if err := rows.Scan(&tl.ID, &tl.Title, &tl.TitleEn, &tl.Description,
			&tl.DescriptionEn, &tl.ToolType, &tl.ToolURL, &tl.PublishTimes,
			&tl.CreatedTimes); err != nil {
			return nil, 0, err
		}
		tools = append(tools, tl)
	}
	return tools, total, rows.Err()
}
