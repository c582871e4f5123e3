package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

// NoticeListRequest extends the common listing shape with notice filters.
type NoticeListRequest struct {
	ListRequest
	NoticeType string
	Importance string
}

// NoticeService serves published announcements.
type NoticeService struct {
	repo   NoticeRepository
	logger *zap.Logger
}

func NewNoticeService(repo NoticeRepository, logger *zap.Logger) *NoticeService {
	return &NoticeService{repo: repo, logger: logger}
}

func (s *NoticeService) List(ctx context.Context, req NoticeListRequest) (*PageResult[domain.Notice], error) {
	page, f := req.filter()
	items, total, err := s.repo.List(ctx, NoticeFilter{
		ListFilter: f,
		NoticeType: req.NoticeType,
		Importance: req.Importance,
	})
	if err != nil {
		return nil, err
	}
	return newPageResult(items, total, page), nil
}

// Detail returns one text notice. Link-type notices have no detail page;
// asking for one reports not found.
func (s *NoticeService) Detail(ctx context.Context, id int64) (*domain.Notice, error) {
	notice, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if notice.NoticeType != domain.TextNoticeType {
		return nil, fmt.Errorf("notice %d: %w", id, domain.ErrNotFound)
	}
	return notice, nil
}
