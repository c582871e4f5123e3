package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// ProfileRepository serves the lab_profile_infos table. At most one row per
// profile type is published at a time; the newest wins if several are.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ usecase.ProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) ByType(ctx context.Context, profileType string) (*domain.LabProfile, error) {
	const q = `
SELECT id, profile_type, title, content, content_en, publish_times, created_times
FROM lab_profile_infos
WHERE profile_type = ? AND publish_status = '1'
ORDER BY COALESCE(publish_times, created_times) DESC, id DESC
LIMIT 1`

	var p domain.LabProfile
	err := r.db.QueryRowContext(ctx, q, profileType).Scan(&p.ID, &p.ProfileType,
		&p.Title, &p.Content, &p.ContentEn, &p.PublishTimes, &p.CreatedTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %s: %w", profileType, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
