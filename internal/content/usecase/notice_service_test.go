package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

type mockNoticeRepo struct {
	notices []domain.Notice
	total   int64
	got     NoticeFilter
	byID    map[int64]*domain.Notice
}

func (m *mockNoticeRepo) List(ctx context.Context, f NoticeFilter) ([]domain.Notice, int64, error) {
	m.got = f
	return m.notices, m.total, nil
}

func (m *mockNoticeRepo) Get(ctx context.Context, id int64) (*domain.Notice, error) {
	if n, ok := m.byID[id]; ok {
		return n, nil
	}
	return nil, domain.ErrNotFound
}

func TestNoticeList_PassesFiltersAndPaginates(t *testing.T) {
	repo := &mockNoticeRepo{total: 23}
	svc := NewNoticeService(repo, zap.NewNop())

	result, err := svc.List(context.Background(), NoticeListRequest{
		ListRequest: ListRequest{Page: Page{No: 2, Size: 10}, Year: 2024},
		NoticeType:  "2001",
		Importance:  "1",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, repo.got.Offset)
	assert.Equal(t, 10, repo.got.Limit)
	assert.Equal(t, "2001", repo.got.NoticeType)
	assert.Equal(t, "1", repo.got.Importance)
	require.NotNil(t, repo.got.From)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.PageNo)
}

func TestNoticeDetail_TextNotice_Returned(t *testing.T) {
	repo := &mockNoticeRepo{byID: map[int64]*domain.Notice{
		7: {ID: 7, Title: "maintenance window", NoticeType: domain.TextNoticeType},
	}}
	svc := NewNoticeService(repo, zap.NewNop())

	notice, err := svc.Detail(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), notice.ID)
}

func TestNoticeDetail_LinkNotice_NotFound(t *testing.T) {
	repo := &mockNoticeRepo{byID: map[int64]*domain.Notice{
		8: {ID: 8, Title: "external link", NoticeType: "2001"},
	}}
	svc := NewNoticeService(repo, zap.NewNop())

	_, err := svc.Detail(context.Background(), 8)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoticeDetail_MissingNotice_NotFound(t *testing.T) {
	repo := &mockNoticeRepo{}
	svc := NewNoticeService(repo, zap.NewNop())

	_, err := svc.Detail(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
