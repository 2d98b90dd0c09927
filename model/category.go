package model

// Category groups news articles, e.g. "academics" or "holidays".
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	CreatedAt   string `json:"created_at,omitempty"`
	NewsCount   int    `json:"news_count"` // Published articles, filled by listings only
}

// Defaults applied to new categories.
const (
	DefaultCategoryIcon  = "📰"
	DefaultCategoryColor = "#3b82f6"
)

// CategoryUpdate carries the optional fields of a category update.
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
}

// IsEmpty reports whether the update changes nothing.
func (u CategoryUpdate) IsEmpty() bool {
	return (u.Name == nil || *u.Name == "") &&
		u.Description == nil &&
		(u.Icon == nil || *u.Icon == "") &&
		(u.Color == nil || *u.Color == "")
}
