package usecase

import (
	"context"

	"go.uber.org/zap"

	"eduportal/internal/content/domain"
)

const overviewSampleSize = 5

// ListRequest is the common shape of the paged content listings.
type ListRequest struct {
	Page  Page
	Title string
	Year  int
	Month int
}

func (r ListRequest) filter() (Page, ListFilter) {
	page := r.Page.normalize()
	from, to := publishRange(r.Year, r.Month)
	return page, ListFilter{
		Offset: page.offset(),
		Limit:  page.Size,
		Title:  r.Title,
		From:   from,
		To:     to,
	}
}

// ResearchOverview is the combined achievements payload: the newest few of
// each entity plus the full counts.
type ResearchOverview struct {
	Papers       []domain.Paper  `json:"papers"`
	Patents      []domain.Patent `json:"patents"`
	Books        []domain.Book   `json:"books"`
	PapersTotal  int64           `json:"papersTotal"`
	PatentsTotal int64           `json:"patentsTotal"`
	BooksTotal   int64           `json:"booksTotal"`
}

// ResearchService serves published papers, patents and books.
type ResearchService struct {
	repo   ResearchRepository
	logger *zap.Logger
}

func NewResearchService(repo ResearchRepository, logger *zap.Logger) *ResearchService {
	return &ResearchService{repo: repo, logger: logger}
}

// Overview returns the newest entries of each research entity with totals.
func (s *ResearchService) Overview(ctx context.Context) (*ResearchOverview, error) {
	sample := ListFilter{Limit: overviewSampleSize}

	papers, papersTotal, err := s.repo.ListPapers(ctx, sample)
	if err != nil {
		return nil, err
	}
	patents, patentsTotal, err := s.repo.ListPatents(ctx, sample)
	if err != nil {
		return nil, err
	}
	books, booksTotal, err := s.repo.ListBooks(ctx, sample)
	if err != nil {
		return nil, err
	}

	if papers == nil {
		papers = []domain.Paper{}
	}
	if patents == nil {
		patents = []domain.Patent{}
	}
	if books == nil {
		books = []domain.Book{}
	}
	return &ResearchOverview{
		Papers:       papers,
		Patents:      patents,
		Books:        books,
		PapersTotal:  papersTotal,
		PatentsTotal: patentsTotal,
		BooksTotal:   booksTotal,
	}, nil
}

func (s *ResearchService) Papers(ctx context.Context, req ListRequest) (*PageResult[domain.Paper], error) {
	page, f := req.filter()
	items, total, err := s.repo.ListPapers(ctx, f)
	if err != nil {
		return nil, err
	}
	return newPageResult(items, total, page), nil
}

func (s *ResearchService) PaperDetail(ctx context.Context, id int64) (*domain.Paper, error) {
	return s.repo.GetPaper(ctx, id)
}

func (s *ResearchService) Patents(ctx context.Context, req ListRequest) (*PageResult[domain.Patent], error) {
	page, f := req.filter()
	items, total, err := s.repo.ListPatents(ctx, f)
	if err != nil {
		return nil, err
	}
	return newPageResult(items, total, page), nil
}

func (s *ResearchService) PatentDetail(ctx context.Context, id int64) (*domain.Patent, error) {
	return s.repo.GetPatent(ctx, id)
}

func (s *ResearchService) Books(ctx context.Context, req ListRequest) (*PageResult[domain.Book], error) {
	page, f := req.filter()
	items, total, err := s.repo.ListBooks(ctx, f)
	if err != nil {
		return nil, err
	}
	return newPageResult(items, total, page), nil
}

func (s *ResearchService) BookDetail(ctx context.Context, id int64) (*domain.Book, error) {
	return s.repo.GetBook(ctx, id)
}
