package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduportal/internal/content/domain"
)

// memStore is an in-process Store used to observe decorator behavior.
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(ctx context.Context, key string, dest any) bool {
	raw, ok := s.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *memStore) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.data[key] = raw
}

func (s *memStore) Invalidate(ctx context.Context, key string) {
	delete(s.data, key)
}

type countingProfileRepo struct {
	calls   int
	profile *domain.LabProfile
	err     error
}

func (r *countingProfileRepo) ByType(ctx context.Context, profileType string) (*domain.LabProfile, error) {
	r.calls++
	return r.profile, r.err
}

type countingDictRepo struct {
	calls   int
	entries []domain.DictEntry
}

func (r *countingDictRepo) ByType(ctx context.Context, dictType string) ([]domain.DictEntry, error) {
	r.calls++
	return r.entries, nil
}

func (r *countingDictRepo) Types(ctx context.Context) ([]string, error) {
	return []string{"4000"}, nil
}

func TestCachedProfileRepository_MissThenHit(t *testing.T) {
	title := "about the institute"
	repo := &countingProfileRepo{profile: &domain.LabProfile{
		ID:          1,
		ProfileType: domain.ProfileTypeInstitute,
		Title:       &title,
	}}
	cached := NewCachedProfileRepository(repo, newMemStore())

	first, err := cached.ByType(context.Background(), domain.ProfileTypeInstitute)
	require.NoError(t, err)
	second, err := cached.ByType(context.Background(), domain.ProfileTypeInstitute)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Title)
	assert.Equal(t, title, *second.Title)
}

func TestCachedProfileRepository_ErrorNotCached(t *testing.T) {
	repo := &countingProfileRepo{err: domain.ErrNotFound}
	cached := NewCachedProfileRepository(repo, newMemStore())

	_, err := cached.ByType(context.Background(), domain.ProfileTypeInstitute)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = cached.ByType(context.Background(), domain.ProfileTypeInstitute)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 2, repo.calls)
}

func TestCachedDictRepository_MissThenHit(t *testing.T) {
	repo := &countingDictRepo{entries: []domain.DictEntry{
		{DictID: "4001", DictType: "4000", SortOrder: 1},
	}}
	cached := NewCachedDictRepository(repo, newMemStore())

	first, err := cached.ByType(context.Background(), "4000")
	require.NoError(t, err)
	second, err := cached.ByType(context.Background(), "4000")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
}

func TestNoopStore_AlwaysMisses(t *testing.T) {
	repo := &countingDictRepo{entries: []domain.DictEntry{{DictID: "4001", DictType: "4000"}}}
	cached := NewCachedDictRepository(repo, NewStore(nil, nil))

	_, err := cached.ByType(context.Background(), "4000")
	require.NoError(t, err)
	_, err = cached.ByType(context.Background(), "4000")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls)
}
