package usecase

import (
	"context"
	"time"

	"eduportal/internal/content/domain"
)

// ListFilter is the shared shape of every paged content query. From/To bound
// the publish time when a year or year+month filter was requested.
type ListFilter struct {
	Offset int
	Limit  int
	Title  string
	From   *time.Time
	To     *time.Time
}

// ResearchRepository serves the three research entities. List methods return
// the page plus the unpaged total; Get methods return domain.ErrNotFound for
// missing or unpublished rows.
type ResearchRepository interface {
	ListPapers(ctx context.Context, f ListFilter) ([]domain.Paper, int64, error)
	GetPaper(ctx context.Context, id int64) (*domain.Paper, error)
	ListPatents(ctx context.Context, f ListFilter) ([]domain.Patent, int64, error)
	GetPatent(ctx context.Context, id int64) (*domain.Patent, error)
	ListBooks(ctx context.Context, f ListFilter) ([]domain.Book, int64, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
}

// NoticeFilter narrows the notice listing.
type NoticeFilter struct {
	ListFilter
	NoticeType string
	Importance string
}

type NoticeRepository interface {
	List(ctx context.Context, f NoticeFilter) ([]domain.Notice, int64, error)
	Get(ctx context.Context, id int64) (*domain.Notice, error)
}

// DynamicFilter narrows the dynamics listing.
type DynamicFilter struct {
	ListFilter
	DynamicType string
}

type DynamicRepository interface {
	List(ctx context.Context, f DynamicFilter) ([]domain.Dynamic, int64, error)
	Get(ctx context.Context, id int64) (*domain.Dynamic, error)
}

// InstrumentFilter narrows the instrument listing.
type InstrumentFilter struct {
	Offset       int
	Limit        int
	InstName     string
	Manufacturer string
	Model        string
}

type InstrumentRepository interface {
	List(ctx context.Context, f InstrumentFilter) ([]domain.Instrument, int64, error)
	Get(ctx context.Context, id int64) (*domain.Instrument, error)
}

type RecruitRepository interface {
	// ListActive returns every active posting joined with its dictionary
	// label, ordered by dictionary sort order then newest first.
	ListActive(ctx context.Context) ([]domain.LabeledRecruit, error)
	// ListByType returns active postings of one recruitment type, newest
	// first.
	ListByType(ctx context.Context, recruitmentType string) ([]domain.Recruit, error)
}

// ToolFilter narrows the tool listing.
type ToolFilter struct {
	ListFilter
	ToolType string
}

type ToolRepository interface {
	List(ctx context.Context, f ToolFilter) ([]domain.Tool, int64, error)
}

type DictRepository interface {
	// ByType returns active entries of one dict_type in sort order.
	ByType(ctx context.Context, dictType string) ([]domain.DictEntry, error)
	// Types lists the distinct active dict types.
	Types(ctx context.Context) ([]string, error)
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, userID string) (*domain.UserDetail, error)
}

type ProfileRepository interface {
	// ByType returns the published profile for one type, or
	// domain.ErrNotFound.
	ByType(ctx context.Context, profileType string) (*domain.LabProfile, error)
}
