package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/internal/tokenizer"
	"github.com/gcbaptista/campus-buzz/model"
)

const categoryColumns = `c.id, c.name, c.slug, COALESCE(c.description, ''), COALESCE(c.icon, ''),
	COALESCE(c.color, ''), COALESCE(c.created_at, '')`

func scanCategory(row interface{ Scan(...any) error }, extra ...any) (*model.Category, error) {
	var c model.Category
	dest := append([]any{&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.Color, &c.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCategories returns every category by name, with its published article count.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+categoryColumns+`, COUNT(n.id)
		FROM categories c
		LEFT JOIN news n ON c.id = n.category_id AND n.status = 'published'
		GROUP BY c.id
		ORDER BY c.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var count int
		c, err := scanCategory(rows, &count)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.NewsCount = count
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// GetCategoryByID returns the category with the given id.
func (s *SQLiteStore) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	return s.getCategory(ctx, "c.id = ?", id, idString(id))
}

// GetCategoryBySlug returns the category with the given slug.
func (s *SQLiteStore) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	return s.getCategory(ctx, "c.slug = ?", slug, slug)
}

func (s *SQLiteStore) getCategory(ctx context.Context, where string, arg any, key string) (*model.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE `+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("category", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

// CreateCategory inserts a category. The slug is derived from the name; icon
// and color fall back to the defaults.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	category.Slug = tokenizer.Slugify(category.Name)
	if category.Slug == "" {
		return nil, internalErrors.NewValidationError("name", "must contain at least one letter or digit")
	}
	if category.Icon == "" {
		category.Icon = model.DefaultCategoryIcon
	}
	if category.Color == "" {
		category.Color = model.DefaultCategoryColor
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, slug, description, icon, color) VALUES (?, ?, ?, ?, ?)`,
		category.Name, category.Slug, category.Description, category.Icon, category.Color)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, internalErrors.NewAlreadyExistsError("category", category.Name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetCategoryByID(ctx, id)
}

// UpdateCategory changes the given fields of a category. The slug never changes.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, id int64, update model.CategoryUpdate) (*model.Category, error) {
	if _, err := s.GetCategoryByID(ctx, id); err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return nil, internalErrors.NewValidationError("", "no fields to update")
	}

	var sets []string
	var args []any
	if update.Name != nil && *update.Name != "" {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}
	if update.Icon != nil && *update.Icon != "" {
		sets = append(sets, "icon = ?")
		args = append(args, *update.Icon)
	}
	if update.Color != nil && *update.Color != "" {
		sets = append(sets, "color = ?")
		args = append(args, *update.Color)
	}
	args = append(args, id)

	if _, err := s.db.ExecContext(ctx, `UPDATE categories SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, internalErrors.NewAlreadyExistsError("category", *update.Name)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return s.GetCategoryByID(ctx, id)
}

// DeleteCategory removes a category that has no articles left.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.GetCategoryByID(ctx, id); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news WHERE category_id = ?`, id).Scan(&count); err != nil {
		return fmt.Errorf("failed to count category news: %w", err)
	}
	if count > 0 {
		return internalErrors.NewConflictError("category",
			fmt.Sprintf("it still has %d news articles, remove or reassign them first", count))
	}

	if _, err := s.deleteByID(ctx, "categories", id); err != nil {
		return err
	}
	return nil
}
