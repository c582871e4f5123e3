package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// UserRepository serves the user_infos table and its extension table. The
// password column is never selected.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ usecase.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const q = `
SELECT user_id, username, email, phone, title, tags, avatar, id_pic,
	lab_homepage, personal_homepage, role, created_times
FROM user_infos WHERE status = 1
ORDER BY created_times DESC, user_id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var (
			u       domain.User
			rawTags *string
		)
		if err := rows.Scan(&u.UserID, &u.Username, &u.Email, &u.Phone, &u.Title,
			&rawTags, &u.Avatar, &u.IDPic, &u.LabHomepage, &u.PersonalHomepage,
			&u.Role, &u.CreatedTimes); err != nil {
			return nil, err
		}
		u.Tags = decodeTags(rawTags)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Get(ctx context.Context, userID string) (*domain.UserDetail, error) {
	const q = `
SELECT u.user_id, u.username, u.email, u.phone, u.title, u.tags, u.avatar,
	u.id_pic, u.lab_homepage, u.personal_homepage, u.role, u.created_times,
	o.bio, o.bio_en, o.research_direction, o.research_direction_en,
	o.research_project, o.research_project_en, o.academic_appointment,
	o.academic_appointment_en, o.awards, o.awards_en, o.academic_research,
	o.academic_research_en, o.publications, o.publications_en
FROM user_infos u
LEFT JOIN user_other_infos o ON u.user_id = o.user_id
WHERE u.user_id = ? AND u.status = 1`

	var (
		d       domain.UserDetail
		rawTags *string
	)
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&d.UserID, &d.Username,
		&d.Email, &d.Phone, &d.Title, &rawTags, &d.Avatar, &d.IDPic,
		&d.LabHomepage, &d.PersonalHomepage, &d.Role, &d.CreatedTimes,
		&d.Bio, &d.BioEn, &d.ResearchDirection, &d.ResearchDirectionEn,
		&d.ResearchProject, &d.ResearchProjectEn, &d.AcademicAppointment,
		&d.AcademicAppointmentEn, &d.Awards, &d.AwardsEn, &d.AcademicResearch,
		&d.AcademicResearchEn, &d.Publications, &d.PublicationsEn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	d.Tags = decodeTags(rawTags)
	return &d, nil
}

// decodeTags reads the stored tag list, which historically was written
// either as a JSON array or as a comma-separated string.
func decodeTags(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return []string{}
	}

	if strings.HasPrefix(s, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(s), &tags); err == nil {
			return tags
		}
	}

	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
