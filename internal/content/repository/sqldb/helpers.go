package sqldb

import (
	"context"
	"database/sql"
	"strings"

	"eduportal/internal/content/usecase"
)

// whereBuilder accumulates AND-joined conditions with their arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) add(cond string, args ...any) {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// addPublishRange appends the half-open publish time bounds when a year or
// year+month filter was requested.
func (b *whereBuilder) addPublishRange(column string, f usecase.ListFilter) {
	if f.From != nil {
		b.add(column+" >= ?", *f.From)
	}
	if f.To != nil {
		b.add(column+" < ?", *f.To)
	}
}

// addTitleSearch appends a bilingual title LIKE filter.
func (b *whereBuilder) addTitleSearch(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	pattern := "%" + title + "%"
	b.add("(title LIKE ? OR title_en LIKE ?)", pattern, pattern)
}

func countRows(ctx context.Context, db *sql.DB, table, where string, args []any) (int64, error) {
	var total int64
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+where, args...).Scan(&total)
	return total, err
}
