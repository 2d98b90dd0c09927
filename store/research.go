package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/model"
)

const paperSelect = `
	SELECT r.id, r.title, r.abstract, r.journal_conference, COALESCE(r.publication_date, ''),
		COALESCE(r.pdf_link, ''), COALESCE(r.citation_count, 0), COALESCE(r.looking_for_assistants, 0),
		r.author_id, COALESCE(r.created_at, ''), u.name, COALESCE(u.avatar, '')
	FROM research_papers r
	JOIN users u ON r.author_id = u.id`

func scanPaper(row interface{ Scan(...any) error }) (*model.ResearchPaper, error) {
	var p model.ResearchPaper
	err := row.Scan(&p.ID, &p.Title, &p.Abstract, &p.JournalConference, &p.PublicationDate,
		&p.PDFLink, &p.CitationCount, &p.LookingForAssistants,
		&p.AuthorID, &p.CreatedAt, &p.AuthorName, &p.AuthorAvatar)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPapers returns every paper, most recently published first.
func (s *SQLiteStore) ListPapers(ctx context.Context) ([]model.ResearchPaper, error) {
	rows, err := s.db.QueryContext(ctx, paperSelect+` ORDER BY r.publication_date DESC, r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list papers: %w", err)
	}
	defer rows.Close()

	papers := make([]model.ResearchPaper, 0)
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan paper: %w", err)
		}
		papers = append(papers, *p)
	}
	return papers, rows.Err()
}

// GetPaper returns one paper.
func (s *SQLiteStore) GetPaper(ctx context.Context, id int64) (*model.ResearchPaper, error) {
	p, err := scanPaper(s.db.QueryRowContext(ctx, paperSelect+` WHERE r.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("paper", idString(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get paper: %w", err)
	}
	return p, nil
}

// CreatePaper inserts a paper authored by paper.AuthorID.
func (s *SQLiteStore) CreatePaper(ctx context.Context, paper model.ResearchPaper) (*model.ResearchPaper, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO research_papers (title, abstract, journal_conference, publication_date, pdf_link, looking_for_assistants, author_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		paper.Title, paper.Abstract, paper.JournalConference, nullString(paper.PublicationDate),
		nullString(paper.PDFLink), boolToInt(paper.LookingForAssistants), paper.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create paper: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetPaper(ctx, id)
}

// CitePaper adds a citation and returns the new count.
func (s *SQLiteStore) CitePaper(ctx context.Context, id int64) (int, error) {
	count, ok, err := s.increment(ctx, "research_papers", "citation_count", id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, internalErrors.NewNotFoundError("paper", idString(id))
	}
	return count, nil
}

// DeletePaper removes a paper.
func (s *SQLiteStore) DeletePaper(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "research_papers", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("paper", idString(id))
	}
	return nil
}

const achievementSelect = `
	SELECT a.id, a.title, a.description, COALESCE(a.date, ''), COALESCE(a.verified_by_dept, 0),
		COALESCE(a.image_url, ''), a.student_id, COALESCE(a.claps_count, 0), COALESCE(a.created_at, ''),
		u.name, COALESCE(u.avatar, '')
	FROM achievements a
	JOIN users u ON a.student_id = u.id`

func scanAchievement(row interface{ Scan(...any) error }) (*model.Achievement, error) {
	var a model.Achievement
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.VerifiedByDept,
		&a.ImageURL, &a.StudentID, &a.ClapsCount, &a.CreatedAt, &a.StudentName, &a.StudentAvatar)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAchievements returns every achievement, most recent first.
func (s *SQLiteStore) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, achievementSelect+` ORDER BY a.date DESC, a.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	achievements := make([]model.Achievement, 0)
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}

// GetAchievement returns one achievement.
func (s *SQLiteStore) GetAchievement(ctx context.Context, id int64) (*model.Achievement, error) {
	a, err := scanAchievement(s.db.QueryRowContext(ctx, achievementSelect+` WHERE a.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("achievement", idString(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}
	return a, nil
}

// CreateAchievement records an unverified achievement for achievement.StudentID.
func (s *SQLiteStore) CreateAchievement(ctx context.Context, achievement model.Achievement) (*model.Achievement, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO achievements (title, description, date, image_url, student_id) VALUES (?, ?, ?, ?, ?)`,
		achievement.Title, achievement.Description, nullString(achievement.Date),
		nullString(achievement.ImageURL), achievement.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetAchievement(ctx, id)
}

// CongratulateAchievement adds a clap and returns the new count.
func (s *SQLiteStore) CongratulateAchievement(ctx context.Context, id int64) (int, error) {
	claps, ok, err := s.increment(ctx, "achievements", "claps_count", id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, internalErrors.NewNotFoundError("achievement", idString(id))
	}
	return claps, nil
}

// DeleteAchievement removes an achievement.
func (s *SQLiteStore) DeleteAchievement(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "achievements", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("achievement", idString(id))
	}
	return nil
}

// Leaderboard returns the users with the most papers and the most achievements.
func (s *SQLiteStore) Leaderboard(ctx context.Context, limit int) (*model.Leaderboard, error) {
	if limit < 1 {
		limit = 3
	}

	researchers, err := s.leaders(ctx, "research_papers", "author_id", limit)
	if err != nil {
		return nil, err
	}
	achievers, err := s.leaders(ctx, "achievements", "student_id", limit)
	if err != nil {
		return nil, err
	}
	return &model.Leaderboard{Researchers: researchers, Achievers: achievers}, nil
}

func (s *SQLiteStore) leaders(ctx context.Context, table, userColumn string, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.id, u.name, COALESCE(u.avatar, ''), COALESCE(u.role, 'student'), COUNT(t.id) AS count
		FROM users u
		JOIN `+table+` t ON u.id = t.`+userColumn+`
		GROUP BY u.id
		ORDER BY count DESC, u.id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank %s: %w", table, err)
	}
	defer rows.Close()

	entries := make([]model.LeaderboardEntry, 0)
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Avatar, &e.Role, &e.Count); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
