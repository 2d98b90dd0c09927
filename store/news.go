package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/model"
)

const newsColumns = `n.id, n.title, n.slug, n.description, COALESCE(n.content, ''), n.category_id,
	COALESCE(n.priority, 1), n.author_id, COALESCE(n.image_url, ''), COALESCE(n.is_pinned, 0),
	COALESCE(n.views, 0), COALESCE(n.status, 'published'), COALESCE(n.created_at, ''), COALESCE(n.updated_at, ''),
	COALESCE(c.name, ''), COALESCE(c.slug, ''), COALESCE(c.icon, ''), COALESCE(c.color, ''),
	COALESCE(u.name, ''), COALESCE(u.role, '')`

const newsFrom = `
	FROM news n
	LEFT JOIN categories c ON n.category_id = c.id
	LEFT JOIN users u ON n.author_id = u.id`

var numericID = regexp.MustCompile(`^\d+$`)

func scanNews(row interface{ Scan(...any) error }, extra ...any) (*model.News, error) {
	var n model.News
	dest := append([]any{
		&n.ID, &n.Title, &n.Slug, &n.Description, &n.Content, &n.CategoryID,
		&n.Priority, &n.AuthorID, &n.ImageURL, &n.IsPinned,
		&n.Views, &n.Status, &n.CreatedAt, &n.UpdatedAt,
		&n.CategoryName, &n.CategorySlug, &n.CategoryIcon, &n.CategoryColor,
		&n.AuthorName, &n.AuthorRole,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *SQLiteStore) queryNews(ctx context.Context, query string, args ...any) ([]model.News, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	news := make([]model.News, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news: %w", err)
		}
		news = append(news, *n)
	}
	return news, rows.Err()
}

// ListNews returns one page of articles matching the filter. Pinned articles
// always come first, then the requested sort column.
func (s *SQLiteStore) ListNews(ctx context.Context, filter model.NewsFilter) (*model.NewsPage, error) {
	page, limit := normalizePage(filter.Page, filter.Limit)

	var where []string
	var args []any
	if filter.Status != "" {
		where = append(where, "n.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.CategorySlug != "" {
		where = append(where, "c.slug = ?")
		args = append(args, filter.CategorySlug)
	}
	if filter.MinPriority > 0 {
		where = append(where, "n.priority >= ?")
		args = append(args, filter.MinPriority)
	}
	if filter.Search != "" {
		where = append(where, "(n.title LIKE ? OR n.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+newsFrom+whereClause, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}

	sortBy := filter.SortBy
	if !slices.Contains(model.NewsSortColumns, sortBy) {
		sortBy = "created_at"
	}
	order := strings.ToUpper(filter.Order)
	if order != "ASC" {
		order = "DESC"
	}

	query := `SELECT ` + newsColumns + newsFrom + whereClause +
		fmt.Sprintf(` ORDER BY n.is_pinned DESC, n.%s %s, n.id %s LIMIT ? OFFSET ?`, sortBy, order, order)
	news, err := s.queryNews(ctx, query, append(args, limit, (page-1)*limit)...)
	if err != nil {
		return nil, err
	}

	return &model.NewsPage{News: news, Pagination: model.NewPagination(page, limit, total)}, nil
}

// ListPrioritizedNews returns the most urgent published articles: pinned first,
// then by priority, then newest.
func (s *SQLiteStore) ListPrioritizedNews(ctx context.Context, limit int) ([]model.News, error) {
	if limit < 1 {
		limit = 10
	}
	return s.queryNews(ctx, `SELECT `+newsColumns+newsFrom+`
		WHERE n.status = 'published'
		ORDER BY n.is_pinned DESC, n.priority DESC, n.created_at DESC, n.id DESC
		LIMIT ?`, limit)
}

// ListCategoryNews returns one page of a category's published articles.
func (s *SQLiteStore) ListCategoryNews(ctx context.Context, categoryID int64, page, limit int) (*model.NewsPage, error) {
	page, limit = normalizePage(page, limit)

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM news WHERE category_id = ? AND status = 'published'`, categoryID).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count category news: %w", err)
	}

	news, err := s.queryNews(ctx, `SELECT `+newsColumns+newsFrom+`
		WHERE n.category_id = ? AND n.status = 'published'
		ORDER BY n.is_pinned DESC, n.priority DESC, n.created_at DESC, n.id DESC
		LIMIT ? OFFSET ?`, categoryID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &model.NewsPage{News: news, Pagination: model.NewPagination(page, limit, total)}, nil
}

// ViewNews returns the article whose id (all digits) or slug is identifier,
// counting the view. The returned article includes the author's email.
func (s *SQLiteStore) ViewNews(ctx context.Context, identifier string) (*model.News, error) {
	column := "slug"
	var key any = identifier
	if numericID.MatchString(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err != nil {
			return nil, internalErrors.NewNotFoundError("news article", identifier)
		}
		column, key = "id", id
	}

	var email string
	n, err := scanNews(s.db.QueryRowContext(ctx,
		`SELECT `+newsColumns+`, COALESCE(u.email, '')`+newsFrom+` WHERE n.`+column+` = ?`, key), &email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("news article", identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	n.AuthorEmail = email

	views, ok, err := s.increment(ctx, "news", "views", n.ID)
	if err != nil {
		return nil, err
	}
	if ok {
		n.Views = views
	}
	return n, nil
}

// GetNewsByID returns an article without counting a view.
func (s *SQLiteStore) GetNewsByID(ctx context.Context, id int64) (*model.News, error) {
	n, err := scanNews(s.db.QueryRowContext(ctx, `SELECT `+newsColumns+newsFrom+` WHERE n.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("news article", idString(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	return n, nil
}

// CreateNews inserts an article. The category must exist.
func (s *SQLiteStore) CreateNews(ctx context.Context, news model.NewNews) (*model.News, error) {
	ok, err := s.exists(ctx, "categories", news.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, internalErrors.NewValidationError("category_id", "invalid category ID")
	}
	if news.Status == "" {
		news.Status = model.NewsStatusPublished
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO news (title, slug, description, content, category_id, priority, author_id, image_url, is_pinned, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		news.Title, news.Slug, news.Description, news.Content, news.CategoryID, news.Priority,
		news.AuthorID, nullString(news.ImageURL), boolToInt(news.IsPinned), string(news.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, internalErrors.NewAlreadyExistsError("news article", news.Slug)
		}
		return nil, fmt.Errorf("failed to create news: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetNewsByID(ctx, id)
}

// UpdateNews changes the given fields of an article and bumps updated_at.
func (s *SQLiteStore) UpdateNews(ctx context.Context, id int64, update model.NewsUpdate) (*model.News, error) {
	if _, err := s.GetNewsByID(ctx, id); err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return nil, internalErrors.NewValidationError("", "no fields to update")
	}

	var sets []string
	var args []any
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if update.Title != nil && *update.Title != "" {
		set("title", *update.Title)
	}
	if update.Description != nil && *update.Description != "" {
		set("description", *update.Description)
	}
	if update.Content != nil {
		set("content", *update.Content)
	}
	if update.CategoryID != nil && *update.CategoryID != 0 {
		ok, err := s.exists(ctx, "categories", *update.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, internalErrors.NewValidationError("category_id", "invalid category ID")
		}
		set("category_id", *update.CategoryID)
	}
	if update.Priority != nil && *update.Priority != 0 {
		set("priority", *update.Priority)
	}
	if update.ImageURL != nil {
		set("image_url", nullString(*update.ImageURL))
	}
	if update.IsPinned != nil {
		set("is_pinned", boolToInt(*update.IsPinned))
	}
	if update.Status != nil && *update.Status != "" {
		set("status", string(*update.Status))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	if _, err := s.db.ExecContext(ctx, `UPDATE news SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	return s.GetNewsByID(ctx, id)
}

// DeleteNews removes an article.
func (s *SQLiteStore) DeleteNews(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "news", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("news article", idString(id))
	}
	return nil
}

// NewsStats summarizes the article collection.
func (s *SQLiteStore) NewsStats(ctx context.Context) (*model.NewsStats, error) {
	stats := &model.NewsStats{
		ByCategory: make([]model.CategoryNewsCount, 0),
		ByPriority: make(map[int]int),
		RecentNews: make([]model.RecentNews, 0),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'published' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(views), 0)
		FROM news`).Scan(&stats.TotalNews, &stats.PublishedNews, &stats.TotalViews)
	if err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, COALESCE(c.icon, ''), COUNT(n.id)
		FROM categories c
		LEFT JOIN news n ON c.id = n.category_id AND n.status = 'published'
		GROUP BY c.id
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to count news by category: %w", err)
	}
	for rows.Next() {
		var row model.CategoryNewsCount
		if err := rows.Scan(&row.Name, &row.Icon, &row.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.ByCategory = append(stats.ByCategory, row)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT priority, COUNT(*) FROM news WHERE status = 'published' GROUP BY priority`)
	if err != nil {
		return nil, fmt.Errorf("failed to count news by priority: %w", err)
	}
	for rows.Next() {
		var priority, count int
		if err := rows.Scan(&priority, &count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan priority count: %w", err)
		}
		stats.ByPriority[priority] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT id, title, COALESCE(views, 0), COALESCE(created_at, '')
		FROM news
		WHERE status = 'published'
		ORDER BY created_at DESC, id DESC
		LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent news: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var recent model.RecentNews
		if err := rows.Scan(&recent.ID, &recent.Title, &recent.Views, &recent.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent news: %w", err)
		}
		stats.RecentNews = append(stats.RecentNews, recent)
	}
	return stats, rows.Err()
}
