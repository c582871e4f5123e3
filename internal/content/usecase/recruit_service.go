package usecase

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

// RecruitService serves active recruitment postings grouped by type.
type RecruitService struct {
	repo   RecruitRepository
	logger *zap.Logger
}

func NewRecruitService(repo RecruitRepository, logger *zap.Logger) *RecruitService {
	return &RecruitService{repo: repo, logger: logger}
}

// GroupedByType returns every active posting bucketed by recruitment type.
// Group order follows the dictionary sort order; items within a group stay
// newest first as the repository returns them.
func (s *RecruitService) GroupedByType(ctx context.Context) ([]domain.RecruitGroup, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	groups := []domain.RecruitGroup{}
	index := map[string]int{}
	for _, row := range rows {
		i, ok := index[row.RecruitmentType]
		if !ok {
			name := row.RecruitmentType
			if row.TypeName != nil && *row.TypeName != "" {
				name = *row.TypeName
			}
			groups = append(groups, domain.RecruitGroup{
				RecruitmentType: row.RecruitmentType,
				TypeName:        name,
				TypeNameEn:      row.TypeNameEn,
			})
			i = len(groups) - 1
			index[row.RecruitmentType] = i
		}
		groups[i].Items = append(groups[i].Items, row.Recruit)
	}
	return groups, nil
}

// ByType returns the active postings of one recruitment type.
func (s *RecruitService) ByType(ctx context.Context, recruitmentType string) ([]domain.Recruit, error) {
	items, err := s.repo.ListByType(ctx, recruitmentType)
	if err != nil {
		return nil, err
	}
	return lo.CoalesceSliceOrEmpty(items), nil
}
