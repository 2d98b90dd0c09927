package services

import (
	"context"

	"github.com/gcbaptista/campus-buzz/model"
)

// UserStore manages portal accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, update model.ProfileUpdate) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// CategoryStore manages news categories
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, update model.CategoryUpdate) (*model.Category, error)
	// DeleteCategory refuses to delete a category that still has articles.
	DeleteCategory(ctx context.Context, id int64) error
}

// NewsStore manages news articles
type NewsStore interface {
	ListNews(ctx context.Context, filter model.NewsFilter) (*model.NewsPage, error)
	ListPrioritizedNews(ctx context.Context, limit int) ([]model.News, error)
	ListCategoryNews(ctx context.Context, categoryID int64, page, limit int) (*model.NewsPage, error)
	// ViewNews looks an article up by numeric id or slug and counts the view.
	ViewNews(ctx context.Context, identifier string) (*model.News, error)
	GetNewsByID(ctx context.Context, id int64) (*model.News, error)
	CreateNews(ctx context.Context, news model.NewNews) (*model.News, error)
	UpdateNews(ctx context.Context, id int64, update model.NewsUpdate) (*model.News, error)
	DeleteNews(ctx context.Context, id int64) error
	NewsStats(ctx context.Context) (*model.NewsStats, error)
}

// AlumniStore manages the alumni network: spotlights, mentorship, industry posts and Q&A
type AlumniStore interface {
	ListAlumni(ctx context.Context) ([]model.AlumniProfile, error)
	CreateAlumni(ctx context.Context, profile model.AlumniProfile) (*model.AlumniProfile, error)
	DeleteAlumni(ctx context.Context, id int64) error

	CreateMentorshipRequest(ctx context.Context, request model.MentorshipRequest) (int64, error)
	ListMentorshipRequests(ctx context.Context) ([]model.MentorshipRequest, error)

	ListIndustryPosts(ctx context.Context, tag string) ([]model.IndustryPost, error)
	CreateIndustryPost(ctx context.Context, post model.IndustryPost) (*model.IndustryPost, error)
	DeleteIndustryPost(ctx context.Context, id int64) error
	LikeIndustryPost(ctx context.Context, id int64) (int, error)

	ListQuestions(ctx context.Context) ([]model.Question, error)
	CreateQuestion(ctx context.Context, question model.Question) (*model.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
	AnswerQuestion(ctx context.Context, answer model.Answer) (*model.Answer, error)
}

// ClubStore manages student clubs and their posts
type ClubStore interface {
	ListClubs(ctx context.Context, category string) ([]model.Club, error)
	// GetClub looks a club up by numeric id or slug and includes its posts.
	GetClub(ctx context.Context, identifier string) (*model.ClubWithPosts, error)
	CreateClub(ctx context.Context, club model.Club) (*model.Club, error)
	DeleteClub(ctx context.Context, id int64) error

	ListClubPosts(ctx context.Context, clubID int64, postType string) ([]model.ClubPost, error)
	ListAllClubPosts(ctx context.Context, filter model.ClubPostFilter) ([]model.ClubPost, error)
	CreateClubPost(ctx context.Context, post model.ClubPost) (*model.ClubPost, error)
	DeleteClubPost(ctx context.Context, id int64) error
	LikeClubPost(ctx context.Context, id int64) (int, error)
}

// ResearchStore manages faculty research papers and student achievements
type ResearchStore interface {
	ListPapers(ctx context.Context) ([]model.ResearchPaper, error)
	GetPaper(ctx context.Context, id int64) (*model.ResearchPaper, error)
	CreatePaper(ctx context.Context, paper model.ResearchPaper) (*model.ResearchPaper, error)
	CitePaper(ctx context.Context, id int64) (int, error)
	DeletePaper(ctx context.Context, id int64) error

	ListAchievements(ctx context.Context) ([]model.Achievement, error)
	GetAchievement(ctx context.Context, id int64) (*model.Achievement, error)
	CreateAchievement(ctx context.Context, achievement model.Achievement) (*model.Achievement, error)
	CongratulateAchievement(ctx context.Context, id int64) (int, error)
	DeleteAchievement(ctx context.Context, id int64) error

	Leaderboard(ctx context.Context, limit int) (*model.Leaderboard, error)
}

// Store combines every persistence concern the API needs
type Store interface {
	UserStore
	CategoryStore
	NewsStore
	AlumniStore
	ClubStore
	ResearchStore
	Ping(ctx context.Context) error
	Close() error
}
