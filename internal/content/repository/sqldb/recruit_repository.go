package sqldb

import (
	"context"
	"database/sql"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// RecruitRepository serves the recruit_infos table joined with sys_dict for
// type labels.
type RecruitRepository struct {
	db *sql.DB
}

func NewRecruitRepository(db *sql.DB) *RecruitRepository {
	return &RecruitRepository{db: db}
}

var _ usecase.RecruitRepository = (*RecruitRepository)(nil)

func (r *RecruitRepository) ListActive(ctx context.Context) ([]domain.LabeledRecruit, error) {
	const q = `
SELECT r.id, r.recruitment_type, r.content, r.content_en, r.publish_times,
	r.created_times, d.dict_value, d.dict_value_en, COALESCE(d.sort_order, 0)
FROM recruit_infos r
LEFT JOIN sys_dict d ON r.recruitment_type = d.dict_id
WHERE r.status = '1'
ORDER BY COALESCE(d.sort_order, 0) ASC, r.created_times DESC, r.id DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recruits []domain.LabeledRecruit
	for rows.Next() {
		var rec domain.LabeledRecruit
		if err := rows.Scan(&rec.ID, &rec.RecruitmentType, &rec.Content, &rec.ContentEn,
			&rec.PublishTimes, &rec.CreatedTimes, &rec.TypeName, &rec.TypeNameEn,
			&rec.SortOrder); err != nil {
			return nil, err
		}
		recruits = append(recruits, rec)
	}
	return recruits, rows.Err()
}

func (r *RecruitRepository) ListByType(ctx context.Context, recruitmentType string) ([]domain.Recruit, error) {
	const q = `
SELECT id, recruitment_type, content, content_en, publish_times, created_times
FROM recruit_infos
WHERE recruitment_type = ? AND status = '1'
ORDER BY created_times DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, recruitmentType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recruits []domain.Recruit
	for rows.Next() {
		var rec domain.Recruit
		if err := rows.Scan(&rec.ID, &rec.RecruitmentType, &rec.Content, &rec.ContentEn,
			&rec.PublishTimes, &rec.CreatedTimes); err != nil {
			return nil, err
		}
		recruits = append(recruits, rec)
	}
	return recruits, rows.Err()
}
