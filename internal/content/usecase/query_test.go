package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageNormalize_Defaults(t *testing.T) {
	p := Page{}.normalize()

	assert.Equal(t, 1, p.No)
	assert.Equal(t, defaultPageSize, p.Size)
}

func TestPageNormalize_CapsSize(t *testing.T) {
	p := Page{No: 2, Size: 5000}.normalize()

	assert.Equal(t, 2, p.No)
	assert.Equal(t, maxPageSize, p.Size)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{No: 1, Size: 10}.offset())
	assert.Equal(t, 30, Page{No: 4, Size: 10}.offset())
}

func TestNewPageResult_TotalPagesCeiling(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tt := range tests {
		result := newPageResult([]int{}, tt.total, Page{No: 1, Size: tt.size})
		assert.Equal(t, tt.want, result.TotalPages, "total=%d size=%d", tt.total, tt.size)
	}
}

func TestNewPageResult_NilListBecomesEmpty(t *testing.T) {
	result := newPageResult[int](nil, 0, Page{No: 1, Size: 10})

	assert.NotNil(t, result.List)
	assert.Empty(t, result.List)
}

func TestPublishRange_YearOnly(t *testing.T) {
	from, to := publishRange(2024, 0)

	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), *from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), *to)
}

func TestPublishRange_YearAndMonth(t *testing.T) {
	from, to := publishRange(2024, 12)

	require.NotNil(t, from)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), *from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), *to)
}

func TestPublishRange_NoYear_NoBounds(t *testing.T) {
	from, to := publishRange(0, 6)

	assert.Nil(t, from)
	assert.Nil(t, to)
}
