package usecase

import (
	"context"

	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

// DictService serves the shared dictionary table.
type DictService struct {
	repo   DictRepository
	logger *zap.Logger
}

func NewDictService(repo DictRepository, logger *zap.Logger) *DictService {
	return &DictService{repo: repo, logger: logger}
}

// ByType returns the active entries of one dict type in sort order.
func (s *DictService) ByType(ctx context.Context, dictType string) ([]domain.DictEntry, error) {
	entries, err := s.repo.ByType(ctx, dictType)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.DictEntry{}
	}
	return entries, nil
}

// Types lists the distinct dict types that have active entries.
func (s *DictService) Types(ctx context.Context) ([]string, error) {
	types, err := s.repo.Types(ctx)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}
