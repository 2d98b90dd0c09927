package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/model"
)

const alumniColumns = `id, name, batch_year, COALESCE(branch, ''), COALESCE(company, ''), COALESCE(role, ''),
	COALESCE(avatar_url, ''), COALESCE(bio, ''), COALESCE(career_update, ''), COALESCE(linkedin_url, ''),
	COALESCE(email, ''), COALESCE(is_mentor, 0), COALESCE(created_at, '')`

func scanAlumni(row interface{ Scan(...any) error }) (*model.AlumniProfile, error) {
	var a model.AlumniProfile
	err := row.Scan(&a.ID, &a.Name, &a.BatchYear, &a.Branch, &a.Company, &a.Role,
		&a.AvatarURL, &a.Bio, &a.CareerUpdate, &a.LinkedInURL, &a.Email, &a.IsMentor, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAlumni returns every alumni profile, most recent batch first.
func (s *SQLiteStore) ListAlumni(ctx context.Context) ([]model.AlumniProfile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+alumniColumns+` FROM alumni_profiles ORDER BY batch_year DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list alumni: %w", err)
	}
	defer rows.Close()

	alumni := make([]model.AlumniProfile, 0)
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alumni: %w", err)
		}
		alumni = append(alumni, *a)
	}
	return alumni, rows.Err()
}

func (s *SQLiteStore) getAlumni(ctx context.Context, id int64) (*model.AlumniProfile, error) {
	a, err := scanAlumni(s.db.QueryRowContext(ctx, `SELECT `+alumniColumns+` FROM alumni_profiles WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, internalErrors.NewNotFoundError("alumni", idString(id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alumni: %w", err)
	}
	return a, nil
}

// CreateAlumni inserts a spotlight profile. New profiles are mentors by default.
func (s *SQLiteStore) CreateAlumni(ctx context.Context, profile model.AlumniProfile) (*model.AlumniProfile, error) {
	if profile.Branch == "" {
		profile.Branch = model.DefaultBranch
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO alumni_profiles (name, batch_year, branch, company, role, avatar_url, bio, career_update, linkedin_url, email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profile.Name, profile.BatchYear, profile.Branch, nullString(profile.Company), nullString(profile.Role),
		nullString(profile.AvatarURL), nullString(profile.Bio), nullString(profile.CareerUpdate),
		nullString(profile.LinkedInURL), nullString(profile.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to create alumni: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.getAlumni(ctx, id)
}

// DeleteAlumni removes a profile together with its requests, posts and answers.
func (s *SQLiteStore) DeleteAlumni(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "alumni_profiles", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("alumni", idString(id))
	}
	return nil
}

func (s *SQLiteStore) requireAlumni(ctx context.Context, id int64) error {
	ok, err := s.exists(ctx, "alumni_profiles", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("alumni", idString(id))
	}
	return nil
}

// CreateMentorshipRequest stores a pending request and returns its id.
func (s *SQLiteStore) CreateMentorshipRequest(ctx context.Context, request model.MentorshipRequest) (int64, error) {
	if err := s.requireAlumni(ctx, request.AlumniID); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO mentorship_requests (student_name, student_email, alumni_id, topic, message, scheduled_time)
		VALUES (?, ?, ?, ?, ?, ?)`,
		request.StudentName, request.StudentEmail, request.AlumniID, request.Topic, request.Message, request.ScheduledTime)
	if err != nil {
		return 0, fmt.Errorf("failed to create mentorship request: %w", err)
	}
	return res.LastInsertId()
}

// ListMentorshipRequests returns every request with its mentor's details, newest first.
func (s *SQLiteStore) ListMentorshipRequests(ctx context.Context) ([]model.MentorshipRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mr.id, mr.student_name, mr.student_email, mr.alumni_id, mr.topic, COALESCE(mr.message, ''),
			COALESCE(mr.scheduled_time, ''), COALESCE(mr.status, 'pending'), COALESCE(mr.created_at, ''),
			ap.name, COALESCE(ap.company, ''), COALESCE(ap.role, '')
		FROM mentorship_requests mr
		JOIN alumni_profiles ap ON mr.alumni_id = ap.id
		ORDER BY mr.created_at DESC, mr.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentorship requests: %w", err)
	}
	defer rows.Close()

	requests := make([]model.MentorshipRequest, 0)
	for rows.Next() {
		var r model.MentorshipRequest
		if err := rows.Scan(&r.ID, &r.StudentName, &r.StudentEmail, &r.AlumniID, &r.Topic, &r.Message,
			&r.ScheduledTime, &r.Status, &r.CreatedAt, &r.AlumniName, &r.Company, &r.Role); err != nil {
			return nil, fmt.Errorf("failed to scan mentorship request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

const industryPostSelect = `
	SELECT ip.id, ip.alumni_id, ip.title, ip.content, COALESCE(ip.tags, ''), COALESCE(ip.likes, 0),
		COALESCE(ip.created_at, ''), ap.name, COALESCE(ap.company, ''), COALESCE(ap.role, ''),
		COALESCE(ap.avatar_url, ''), ap.batch_year
	FROM industry_posts ip
	JOIN alumni_profiles ap ON ip.alumni_id = ap.id`

func scanIndustryPost(row interface{ Scan(...any) error }) (*model.IndustryPost, error) {
	var p model.IndustryPost
	err := row.Scan(&p.ID, &p.AlumniID, &p.Title, &p.Content, &p.Tags, &p.Likes,
		&p.CreatedAt, &p.AlumniName, &p.Company, &p.Role, &p.AvatarURL, &p.BatchYear)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListIndustryPosts returns the newsfeed, newest first. An empty tag or "All" disables the tag filter.
func (s *SQLiteStore) ListIndustryPosts(ctx context.Context, tag string) ([]model.IndustryPost, error) {
	query := industryPostSelect
	var args []any
	if tag != "" && tag != "All" {
		query += ` WHERE ip.tags = ?`
		args = append(args, tag)
	}
	query += ` ORDER BY ip.created_at DESC, ip.id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list industry posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.IndustryPost, 0)
	for rows.Next() {
		p, err := scanIndustryPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan industry post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// CreateIndustryPost publishes a post for an existing alumnus.
func (s *SQLiteStore) CreateIndustryPost(ctx context.Context, post model.IndustryPost) (*model.IndustryPost, error) {
	if err := s.requireAlumni(ctx, post.AlumniID); err != nil {
		return nil, err
	}
	if post.Tags == "" {
		post.Tags = model.DefaultIndustryTag
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO industry_posts (alumni_id, title, content, tags) VALUES (?, ?, ?, ?)`,
		post.AlumniID, post.Title, post.Content, post.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to create industry post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	p, err := scanIndustryPost(s.db.QueryRowContext(ctx, industryPostSelect+` WHERE ip.id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to load industry post: %w", err)
	}
	return p, nil
}

// DeleteIndustryPost removes a post.
func (s *SQLiteStore) DeleteIndustryPost(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "industry_posts", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("post", idString(id))
	}
	return nil
}

// LikeIndustryPost adds a like and returns the new count.
func (s *SQLiteStore) LikeIndustryPost(ctx context.Context, id int64) (int, error) {
	likes, ok, err := s.increment(ctx, "industry_posts", "likes", id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, internalErrors.NewNotFoundError("post", idString(id))
	}
	return likes, nil
}

const answerSelect = `
	SELECT qa.id, qa.question_id, qa.alumni_id, qa.answer, COALESCE(qa.created_at, ''),
		ap.name, COALESCE(ap.company, ''), COALESCE(ap.role, ''), COALESCE(ap.avatar_url, '')
	FROM qa_answers qa
	JOIN alumni_profiles ap ON qa.alumni_id = ap.id`

func scanAnswer(row interface{ Scan(...any) error }) (*model.Answer, error) {
	var a model.Answer
	err := row.Scan(&a.ID, &a.QuestionID, &a.AlumniID, &a.Answer, &a.CreatedAt,
		&a.AlumniName, &a.Company, &a.Role, &a.AvatarURL)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListQuestions returns every question, newest first, each with its answers oldest first.
func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]model.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, student_name, question, COALESCE(company_context, ''), COALESCE(created_at, '')
		FROM qa_questions
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]model.Question, 0)
	index := make(map[int64]int)
	for rows.Next() {
		q := model.Question{Answers: make([]model.Answer, 0)}
		if err := rows.Scan(&q.ID, &q.StudentName, &q.Question, &q.CompanyContext, &q.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The pool holds a single connection, so answers are read only after the questions rows are closed.
	rows, err = s.db.QueryContext(ctx, answerSelect+` ORDER BY qa.created_at ASC, qa.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		if i, ok := index[a.QuestionID]; ok {
			questions[i].Answers = append(questions[i].Answers, *a)
		}
	}
	return questions, rows.Err()
}

// CreateQuestion posts a question with no answers.
func (s *SQLiteStore) CreateQuestion(ctx context.Context, question model.Question) (*model.Question, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO qa_questions (student_name, question, company_context) VALUES (?, ?, ?)`,
		question.StudentName, question.Question, question.CompanyContext)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	q := model.Question{Answers: make([]model.Answer, 0)}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, student_name, question, COALESCE(company_context, ''), COALESCE(created_at, '')
		FROM qa_questions WHERE id = ?`, id).Scan(&q.ID, &q.StudentName, &q.Question, &q.CompanyContext, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	return &q, nil
}

// DeleteQuestion removes a question and its answers.
func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int64) error {
	ok, err := s.deleteByID(ctx, "qa_questions", id)
	if err != nil {
		return err
	}
	if !ok {
		return internalErrors.NewNotFoundError("question", idString(id))
	}
	return nil
}

// AnswerQuestion records an alumnus' answer to an existing question.
func (s *SQLiteStore) AnswerQuestion(ctx context.Context, answer model.Answer) (*model.Answer, error) {
	ok, err := s.exists(ctx, "qa_questions", answer.QuestionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, internalErrors.NewNotFoundError("question", idString(answer.QuestionID))
	}
	if err := s.requireAlumni(ctx, answer.AlumniID); err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO qa_answers (question_id, alumni_id, answer) VALUES (?, ?, ?)`,
		answer.QuestionID, answer.AlumniID, answer.Answer)
	if err != nil {
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	a, err := scanAnswer(s.db.QueryRowContext(ctx, answerSelect+` WHERE qa.id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to load answer: %w", err)
	}
	return a, nil
}
