package sqldb

import (
	"context"
	"database/sql"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// DictRepository serves the sys_dict table.
type DictRepository struct {
	db *sql.DB
}

func NewDictRepository(db *sql.DB) *DictRepository {
	return &DictRepository{db: db}
}

var _ usecase.DictRepository = (*DictRepository)(nil)

func (r *DictRepository) ByType(ctx context.Context, dictType string) ([]domain.DictEntry, error) {
	const q = `
SELECT dict_id, dict_type, dict_type_name, dict_value, dict_value_en,
	sort_order, remark
FROM sys_dict WHERE dict_type = ? AND status = 1
ORDER BY sort_order ASC, dict_id ASC`

	rows, err := r.db.QueryContext(ctx, q, dictType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.DictEntry
	for rows.Next() {
		var e domain.DictEntry
		if err := rows.Scan(&e.DictID, &e.DictType, &e.DictTypeName, &e.DictValue,
			&e.DictValueEn, &e.SortOrder, &e.Remark); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *DictRepository) Types(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT dict_type FROM sys_dict WHERE status = 1 ORDER BY dict_type`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
