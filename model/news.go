package model

// NewsStatus is the publication state of an article.
type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusArchived  NewsStatus = "archived"
)

// Valid reports whether s is a known status.
func (s NewsStatus) Valid() bool {
	switch s {
	case NewsStatusDraft, NewsStatusPublished, NewsStatusArchived:
		return true
	}
	return false
}

// News is an article together with the category and author details joined for display.
type News struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	CategoryID  int64      `json:"category_id"`
	Priority    int        `json:"priority"`
	AuthorID    int64      `json:"author_id"`
	ImageURL    string     `json:"image_url,omitempty"`
	IsPinned    bool       `json:"is_pinned"`
	Views       int        `json:"views"`
	Status      NewsStatus `json:"status"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`

	CategoryName  string `json:"category_name,omitempty"`
	CategorySlug  string `json:"category_slug,omitempty"`
	CategoryIcon  string `json:"category_icon,omitempty"`
	CategoryColor string `json:"category_color,omitempty"`
	AuthorName    string `json:"author_name,omitempty"`
	AuthorEmail   string `json:"author_email,omitempty"`
	AuthorRole    Role   `json:"author_role,omitempty"`
}

// NewNews holds the fields needed to insert an article. Priority must already be resolved.
type NewNews struct {
	Title       string
	Slug        string
	Description string
	Content     string
	CategoryID  int64
	Priority    int
	AuthorID    int64
	ImageURL    string
	IsPinned    bool
	Status      NewsStatus
}

// NewsUpdate carries the optional fields of an article update.
type NewsUpdate struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Content     *string     `json:"content"`
	CategoryID  *int64      `json:"category_id"`
	Priority    *int        `json:"priority"`
	ImageURL    *string     `json:"image_url"`
	IsPinned    *bool       `json:"is_pinned"`
	Status      *NewsStatus `json:"status"`
}

// IsEmpty reports whether the update changes nothing.
func (u NewsUpdate) IsEmpty() bool {
	return (u.Title == nil || *u.Title == "") &&
		(u.Description == nil || *u.Description == "") &&
		u.Content == nil &&
		(u.CategoryID == nil || *u.CategoryID == 0) &&
		(u.Priority == nil || *u.Priority == 0) &&
		u.ImageURL == nil &&
		u.IsPinned == nil &&
		(u.Status == nil || *u.Status == "")
}

// Sortable news columns.
var NewsSortColumns = []string{"created_at", "priority", "views", "title"}

// NewsFilter selects and orders a page of articles. Zero values mean "no filter".
type NewsFilter struct {
	CategorySlug string
	Search       string
	MinPriority  int
	Status       NewsStatus
	Page         int
	Limit        int
	SortBy       string
	Order        string // "ASC" or "DESC"
}

// Pagination describes the page returned by a listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the page count for total items.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// NewsPage is one page of articles.
type NewsPage struct {
	News       []News     `json:"news"`
	Pagination Pagination `json:"pagination"`
}

// CategoryNewsCount is the number of published articles in a category.
type CategoryNewsCount struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// RecentNews is the short form of an article used by the statistics view.
type RecentNews struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Views     int    `json:"views"`
	CreatedAt string `json:"created_at"`
}

// NewsStats summarizes the article collection for staff dashboards.
type NewsStats struct {
	TotalNews     int                 `json:"totalNews"`
	PublishedNews int                 `json:"publishedNews"`
	TotalViews    int                 `json:"totalViews"`
	ByCategory    []CategoryNewsCount `json:"byCategory"`
	ByPriority    map[int]int         `json:"byPriority"`
	RecentNews    []RecentNews        `json:"recentNews"`
}
