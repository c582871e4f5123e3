package usecase

import (
	"context"

	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

// DynamicListRequest extends the common listing shape with the type filter.
type DynamicListRequest struct {
	ListRequest
	DynamicType string
}

// DynamicService serves published news items.
type DynamicService struct {
	repo   DynamicRepository
	logger *zap.Logger
}

func NewDynamicService(repo DynamicRepository, logger *zap.Logger) *DynamicService {
	return &DynamicService{repo: repo, logger: logger}
}

func (s *DynamicService) List(ctx context.Context, req DynamicListRequest) (*PageResult[domain.Dynamic], error) {
	page, f := req.filter()
	items, total, err := s.repo.List(ctx, DynamicFilter{
		ListFilter:  f,
		DynamicType: req.DynamicType,
	})
	if err != nil {
		return nil, err
	}
	return newPageResult(items, total, page), nil
}

func (s *DynamicService) Detail(ctx context.Context, id int64) (*domain.Dynamic, error) {
	return s.repo.Get(ctx, id)
}
