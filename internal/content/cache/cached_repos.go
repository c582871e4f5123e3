package cache

import (
	"context"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

var (
	_ usecase.ProfileRepository = (*CachedProfileRepository)(nil)
	_ usecase.DictRepository    = (*CachedDictRepository)(nil)
)

// CachedProfileRepository decorates a ProfileRepository with read-through
// caching. Profile pages change rarely and are read on every landing view.
type CachedProfileRepository struct {
	repo  usecase.ProfileRepository
	store Store
}

func NewCachedProfileRepository(repo usecase.ProfileRepository, store Store) *CachedProfileRepository {
	return &CachedProfileRepository{repo: repo, store: store}
}

func (r *CachedProfileRepository) ByType(ctx context.Context, profileType string) (*domain.LabProfile, error) {
	key := profileCachePrefix + profileType

	var cached domain.LabProfile
	if r.store.Get(ctx, key, &cached) {
		return &cached, nil
	}

	profile, err := r.repo.ByType(ctx, profileType)
	if err != nil {
		return nil, err
	}
	r.store.Set(ctx, key, profile)
	return profile, nil
}

// CachedDictRepository decorates a DictRepository with read-through caching
// of the per-type entry lists.
type CachedDictRepository struct {
	repo  usecase.DictRepository
	store Store
}

func NewCachedDictRepository(repo usecase.DictRepository, store Store) *CachedDictRepository {
	return &CachedDictRepository{repo: repo, store: store}
}

func (r *CachedDictRepository) ByType(ctx context.Context, dictType string) ([]domain.DictEntry, error) {
	key := dictCachePrefix + dictType

	var cached []domain.DictEntry
	if r.store.Get(ctx, key, &cached) {
		return cached, nil
	}

	entries, err := r.repo.ByType(ctx, dictType)
	if err != nil {
		return nil, err
	}
	r.store.Set(ctx, key, entries)
	return entries, nil
}

func (r *CachedDictRepository) Types(ctx context.Context) ([]string, error) {
	return r.repo.Types(ctx)
}
