package usecase

import (
	"context"

	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

// ProfileService serves the singleton descriptive pages.
type ProfileService struct {
	repo   ProfileRepository
	logger *zap.Logger
}

func NewProfileService(repo ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) Institute(ctx context.Context) (*domain.LabProfile, error) {
	return s.repo.ByType(ctx, domain.ProfileTypeInstitute)
}

func (s *ProfileService) LabEnvironment(ctx context.Context) (*domain.LabProfile, error) {
	return s.repo.ByType(ctx, domain.ProfileTypeLabEnvironment)
}

func (s *ProfileService) ByType(ctx context.Context, profileType string) (*domain.LabProfile, error) {
	return s.repo.ByType(ctx, profileType)
}
