package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
)

// ResearchRepository serves papers, patents and books from their tables.
type ResearchRepository struct {
	db *sql.DB
}

func NewResearchRepository(db *sql.DB) *ResearchRepository {
	return &ResearchRepository{db: db}
}

var _ usecase.ResearchRepository = (*ResearchRepository)(nil)

const paperColumns = `id, title, title_en, abstract, abstract_en,
	paper_publish_times, original_url, created_times`

func (r *ResearchRepository) ListPapers(ctx context.Context, f usecase.ListFilter) ([]domain.Paper, int64, error) {
	b := &whereBuilder{}
	b.add("publish_status = '1'")
	b.addTitleSearch(f.Title)
	b.addPublishRange("paper_publish_times", f)

	total, err := countRows(ctx, r.db, "paper_infos", b.clause(), b.args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + paperColumns + " FROM paper_infos" + b.clause() +
		" ORDER BY COALESCE(paper_publish_times, created_times) DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(b.args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var papers []domain.Paper
	for rows.Next() {
		var p domain.Paper
		if err := rows.Scan(&p.ID, &p.Title, &p.TitleEn, &p.Abstract, &p.AbstractEn,
			&p.PublishTimes, &p.OriginalURL, &p.CreatedTimes); err != nil {
			return nil, 0, err
		}
		papers = append(papers, p)
	}
	return papers, total, rows.Err()
}

func (r *ResearchRepository) GetPaper(ctx context.Context, id int64) (*domain.Paper, error) {
	const q = `
SELECT id, title, title_en, abstract, abstract_en, content, content_en,
	paper_publish_times, original_url, created_times
FROM paper_infos WHERE id = ? AND publish_status = '1'`

	var p domain.Paper
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Title, &p.TitleEn,
		&p.Abstract, &p.AbstractEn, &p.Content, &p.ContentEn,
		&p.PublishTimes, &p.OriginalURL, &p.CreatedTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("paper %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const patentColumns = `id, title, title_en, patent_publish_date, applicants,
	application_num, is_service_patent, application_date, authorization_date,
	abstract, abstract_en, created_times`

func (r *ResearchRepository) ListPatents(ctx context.Context, f usecase.ListFilter) ([]domain.Patent, int64, error) {
	b := &whereBuilder{}
	b.add("publish_status = '1'")
	b.addTitleSearch(f.Title)
	b.addPublishRange("patent_publish_date", f)

	total, err := countRows(ctx, r.db, "patent_infos", b.clause(), b.args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + patentColumns + " FROM patent_infos" + b.clause() +
		" ORDER BY COALESCE(patent_publish_date, created_times) DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(b.args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patents []domain.Patent
	for rows.Next() {
		var p domain.Patent
		if err := rows.Scan(&p.ID, &p.Title, &p.TitleEn, &p.PublishDate, &p.Applicants,
			&p.ApplicationNum, &p.IsServicePatent, &p.ApplicationDate, &p.AuthorizationDate,
			&p.Abstract, &p.AbstractEn, &p.CreatedTimes); err != nil {
			return nil, 0, err
		}
		patents = append(patents, p)
	}
	return patents, total, rows.Err()
}

func (r *ResearchRepository) GetPatent(ctx context.Context, id int64) (*domain.Patent, error) {
	const q = `
SELECT id, title, title_en, patent_publish_date, applicants, application_num,
	is_service_patent, application_date, authorization_date, abstract,
	abstract_en, content, content_en, created_times
FROM patent_infos WHERE id = ? AND publish_status = '1'`

	var p domain.Patent
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Title, &p.TitleEn,
		&p.PublishDate, &p.Applicants, &p.ApplicationNum, &p.IsServicePatent,
		&p.ApplicationDate, &p.AuthorizationDate, &p.Abstract, &p.AbstractEn,
		&p.Content, &p.ContentEn, &p.CreatedTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("patent %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const bookColumns = `id, title, title_en, author, author_en, book_publish_date,
	book_url, is_translated, abstract, abstract_en, created_times`

func (r *ResearchRepository) ListBooks(ctx context.Context, f usecase.ListFilter) ([]domain.Book, int64, error) {
	b := &whereBuilder{}
	b.add("publish_status = '1'")
	b.addTitleSearch(f.Title)
	b.addPublishRange("book_publish_date", f)

	total, err := countRows(ctx, r.db, "book_infos", b.clause(), b.args)
	if err != nil {
		return nil, 0, err
	}

	query := "SELECT " + bookColumns + " FROM book_infos" + b.clause() +
		" ORDER BY COALESCE(book_publish_date, created_times) DESC, id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(b.args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var bk domain.Book
		if err := rows.Scan(&bk.ID, &bk.Title, &bk.TitleEn, &bk.Author, &bk.AuthorEn,
			&bk.PublishDate, &bk.BookURL, &bk.IsTranslated, &bk.Abstract, &bk.AbstractEn,
			&bk.CreatedTimes); err != nil {
			return nil, 0, err
		}
		books = append(books, bk)
	}
	return books, total, rows.Err()
}

func (r *ResearchRepository) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	const q = `
SELECT id, title, title_en, author, author_en, book_publish_date, book_url,
	is_translated, abstract, abstract_en, content, content_en, created_times
FROM book_infos WHERE id = ? AND publish_status = '1'`

	var bk domain.Book
	err := r.db.QueryRowContext(ctx, q, id).Scan(&bk.ID, &bk.Title, &bk.TitleEn,
		&bk.Author, &bk.AuthorEn, &bk.PublishDate, &bk.BookURL, &bk.IsTranslated,
		&bk.Abstract, &bk.AbstractEn, &bk.Content, &bk.ContentEn, &bk.CreatedTimes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("book %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &bk, nil
}
