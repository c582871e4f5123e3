package usecase

import (
	"context"

	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

// InstrumentListRequest carries the instrument search filters.
type InstrumentListRequest struct {
	Page         Page
	InstName     string
	Manufacturer string
	Model        string
}

// InstrumentService serves the published instrument catalogue.
type InstrumentService struct {
	repo   InstrumentRepository
	logger *zap.Logger
}

func NewInstrumentService(repo InstrumentRepository, logger *zap.Logger) *InstrumentService {
	return &InstrumentService{repo: repo, logger: logger}
}

func (s *InstrumentService) List(ctx context.Context, req InstrumentListRequest) (*PageResult[domain.Instrument], error) {
	page := req.Page.normalize()
	items, total, err := s.repo.List(ctx, InstrumentFilter{
		Offset:       page.offset(),
		Limit:        page.Size,
		InstName:     req.InstName,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
	})
	if err != nil {
		return nil, err
	}
	return newPageResult(items, total, page), nil
}

func (s *InstrumentService) Detail(ctx context.Context, id int64) (*domain.Instrument, error) {
	return s.repo.Get(ctx, id)
}
