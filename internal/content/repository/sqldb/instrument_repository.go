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

// InstrumentRepository serves the instruments_infos table.
type InstrumentRepository struct {
	db *sql.DB
}

func NewInstrumentRepository(db *sql.DB) *InstrumentRepository {
	return &InstrumentRepository{db: db}
}

var _ usecase.InstrumentRepository = (*InstrumentRepository)(nil)

func (r *InstrumentRepository) List(ctx context.Context, f usecase.InstrumentFilter) ([]domain.Instrument, int64, error) {
	b := &whereBuilder{}
	b.add("publish_status = '1'")
	addLike := func(column, value string) {
		value = strings.TrimSpace(value)
		if value != "" {
			b.add(column+" LIKE ?", "%"+value+"%")
		}
	}
	addLike("inst_name", f.InstName)
	addLike("manufacturer", f.Manufacturer)
	addLike("model", f.Model)

	total, err := countRows(ctx, r.db, "instruments_infos", b.clause(), b.args)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT id, inst_name, inst_name_en, manufacturer, manufacturer_en,
	model, image_files, publish_times, created_times FROM instruments_infos` + b.clause() +
		" ORDER BY COALESCE(publish_times, created_times) DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(b.args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var instruments []domain.Instrument
	for rows.Next() {
		var (
			inst      domain.Instrument
			imageJSON *string
		)
		if err := rows.Scan(&inst.ID, &inst.InstName, &inst.InstNameEn,
			&inst.Manufacturer, &inst.ManufacturerEn, &inst.Model, &imageJSON,
			&inst.PublishTimes, &inst.CreatedTimes); err != nil {
			return nil, 0, err
		}
		inst.ImageFiles = decodeImageFiles(imageJSON)
		instruments = append(instruments, inst)
	}
	return instruments, total, rows.Err()
}

func (r *InstrumentRepository) Get(ctx context.Context, id int64) (*domain.Instrument, error) {
	const q = `
SELECT id, inst_name, inst_name_en, manufacturer, manufacturer_en, model,
	working_principle, working_principle_en, application_scope,
	application_scope_en, performance_features, performance_features_en,
	other_info, other_info_en, image_files, publish_times, created_times
FROM instruments_infos WHERE id = ? AND publish_status = '1'`

	var (
		inst      domain.Instrument
		imageJSON *string
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(&inst.ID, &inst.InstName,
		&inst.InstNameEn, &inst.Manufacturer, &inst.ManufacturerEn, &inst.Model,
		&inst.WorkingPrinciple, &inst.WorkingPrincipleEn, &inst.ApplicationScope,
		&inst.ApplicationScopeEn, &inst.PerformanceFeatures, &inst.PerformanceFeaturesEn,
		&inst.OtherInfo, &inst.OtherInfoEn, &imageJSON, &inst.PublishTimes,
		&inst.CreatedTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("instrument %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	inst.ImageFiles = decodeImageFiles(imageJSON)
	return &inst, nil
}

// decodeImageFiles parses the stored JSON array of image paths. Malformed or
// empty values decode to an empty list rather than failing the row.
func decodeImageFiles(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return []string{}
	}
	var files []string
	if err := json.Unmarshal([]byte(*raw), &files); err != nil {
		return []string{}
	}
	return files
}
