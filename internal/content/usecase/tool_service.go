package usecase

import (
	"context"

	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

// ToolListRequest extends the common listing shape with the type filter.
type ToolListRequest struct {
	ListRequest
	ToolType string
}

// ToolService serves published tool and resource links.
type ToolService struct {
	repo   ToolRepository
	logger *zap.Logger
}

func NewToolService(repo ToolRepository, logger *zap.Logger) *ToolService {
	return &ToolService{repo: repo, logger: logger}
}

func (s *ToolService) List(ctx context.Context, req ToolListRequest) (*PageResult[domain.Tool], error) {
	page, f := req.filter()
	items, total, err := s.repo.List(ctx, ToolFilter{
		ListFilter: f,
		ToolType:   req.ToolType,
	})
	if err != nil {
		return nil, err
	}
	return newPageResult(items, total, page), nil
}
