package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/model"
)

const clubColumns = `id, name, slug, category, COALESCE(description, ''), COALESCE(logo_url, ''),
	COALESCE(cover_url, ''), COALESCE(founded_year, 0), COALESCE(member_count, 0), COALESCE(contact_email, ''),
	COALESCE(instagram_url, ''), COALESCE(created_at, '')`

func scanClub(row interface{ Scan(...any) error }) (*model.Club, error) {
	var c model.Club
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Category, &c.Description, &c.LogoURL,
		&c.CoverURL, &c.FoundedYear, &c.MemberCount, &c.ContactEmail, &c.InstagramURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListClubs returns the clubs of a category by size, or every club grouped by
// category when category is empty or "All".
func (s *SQLiteStore) ListClubs(ctx context.Context, category string) ([]model.Club, error) {
	var rows *sql.Rows
	var err error
	if category != "" && category != "All" {
		rows, err = s.db.QueryContext(ctx,
			`SELECT `+clubColumns+` FROM clubs WHERE category = ? ORDER BY member_count DESC, id`, category)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT `+clubColumns+` FROM clubs ORDER BY category, member_count DESC, id`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	defer rows.Close()

	clubs := make([]model.Club, 0)
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

// GetClub returns the club whose id or slug is identifier, with its posts newest first.
func (s *SQLiteStore) GetClub(ctx context.Context, identifier string) (*model.ClubWithPosts, error) {
	var row *sql.Row
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		row = s.db.QueryRowContext(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = ? OR slug = ?`, id, identifier)
	} else {
		row = s.db.QueryRowContext(ctx, `SELECT `+clubColumns+` FROM clubs WHERE slug = ?`, identifier)
	}

	club, err := scanClub(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("club", identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	posts, err := s.ListClubPosts(ctx, club.ID, "")
	if err != nil {
		return nil, err
	}
	return &model.ClubWithPosts{Club: *club, Posts: posts}, nil
}

// CreateClub inserts a club. The slug must be unique.
func (s *SQLiteStore) CreateClub(ctx context.Context, club model.Club) (*model.Club, error) {
	if club.Category == "" {
		club.Category = model.DefaultClubCategory
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO clubs (name, slug, category, description, logo_url, cover_url, founded_year, member_count, contact_email, instagram_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		club.Name, club.Slug, club.Category, nullString(club.Description), nullString(club.LogoURL),
		nullString(club.CoverURL), nullInt(club.FoundedYear), club.MemberCount,
		nullString(club.ContactEmail), nullString(club.InstagramURL))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, internalErrors.NewAlreadyExistsError("club", club.Slug)
		}
		return nil, fmt.Errorf("failed to create club: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	c, err := scanClub(s.db.QueryRowContext(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to load club: %w", err)
	}
	return c, nil
}

// DeleteClub removes a club and its posts.
func (s *SQLiteStore) DeleteClub(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "clubs", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("club", idString(id))
	}
	return nil
}

const clubPostSelect = `
	SELECT cp.id, cp.club_id, cp.title, cp.content, COALESCE(cp.image_url, ''),
		COALESCE(cp.post_type, 'announcement'), COALESCE(cp.likes, 0), COALESCE(cp.created_at, ''),
		c.name, c.category, COALESCE(c.logo_url, '')
	FROM club_posts cp
	JOIN clubs c ON cp.club_id = c.id`

func (s *SQLiteStore) queryClubPosts(ctx context.Context, query string, args ...any) ([]model.ClubPost, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list club posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.ClubPost, 0)
	for rows.Next() {
		var p model.ClubPost
		if err := rows.Scan(&p.ID, &p.ClubID, &p.Title, &p.Content, &p.ImageURL,
			&p.PostType, &p.Likes, &p.CreatedAt, &p.ClubName, &p.ClubCategory, &p.ClubLogo); err != nil {
			return nil, fmt.Errorf("failed to scan club post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListClubPosts returns a club's posts newest first. An empty postType or "All" disables the type filter.
func (s *SQLiteStore) ListClubPosts(ctx context.Context, clubID int64, postType string) ([]model.ClubPost, error) {
	query := clubPostSelect + ` WHERE cp.club_id = ?`
	args := []any{clubID}
	if postType != "" && postType != "All" {
		query += ` AND cp.post_type = ?`
		args = append(args, postType)
	}
	return s.queryClubPosts(ctx, query+` ORDER BY cp.created_at DESC, cp.id DESC`, args...)
}

// ListAllClubPosts returns posts across clubs, newest first, 50 by default.
func (s *SQLiteStore) ListAllClubPosts(ctx context.Context, filter model.ClubPostFilter) ([]model.ClubPost, error) {
	query := clubPostSelect + ` WHERE 1=1`
	var args []any
	if filter.Category != "" && filter.Category != "All" {
		query += ` AND c.category = ?`
		args = append(args, filter.Category)
	}
	if filter.Type != "" && filter.Type != "All" {
		query += ` AND cp.post_type = ?`
		args = append(args, filter.Type)
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}
	return s.queryClubPosts(ctx, query+` ORDER BY cp.created_at DESC, cp.id DESC LIMIT ?`, append(args, limit)...)
}

// CreateClubPost publishes a post for an existing club.
func (s *SQLiteStore) CreateClubPost(ctx context.Context, post model.ClubPost) (*model.ClubPost, error) {
	ok, err := s.exists(ctx, "clubs", post.ClubID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, internalErrors.NewNotFoundError("club", idString(post.ClubID))
	}
	if post.PostType == "" {
		post.PostType = model.ClubPostAnnouncement
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO club_posts (club_id, title, content, image_url, post_type) VALUES (?, ?, ?, ?, ?)`,
		post.ClubID, post.Title, post.Content, nullString(post.ImageURL), string(post.PostType))
	if err != nil {
		return nil, fmt.Errorf("failed to create club post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	posts, err := s.queryClubPosts(ctx, clubPostSelect+` WHERE cp.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, internalErrors.NewNotFoundError("post", idString(id))
	}
	return &posts[0], nil
}

// DeleteClubPost removes a post.
func (s *SQLiteStore) DeleteClubPost(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "club_posts", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("post", idString(id))
	}
	return nil
}

// LikeClubPost adds a like and returns the new count.
func (s *SQLiteStore) LikeClubPost(ctx context.Context, id int64) (int, error) {
	likes, ok, err := s.increment(ctx, "club_posts", "likes", id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, internalErrors.NewNotFoundError("post", idString(id))
	}
	return likes, nil
}
