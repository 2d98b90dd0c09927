package model

// DefaultClubCategory is used when a club is created without a category.
const DefaultClubCategory = "Tech"

// Club is a student club.
type Club struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
	CoverURL     string `json:"cover_url"`
	FoundedYear  int    `json:"founded_year,omitempty"`
	MemberCount  int    `json:"member_count"`
	ContactEmail string `json:"contact_email"`
	InstagramURL string `json:"instagram_url"`
	CreatedAt    string `json:"created_at"`
}

// ClubWithPosts is a club with its posts, newest first.
type ClubWithPosts struct {
	Club
	Posts []ClubPost `json:"posts"`
}

// ClubPostType classifies a club post.
type ClubPostType string

const (
	ClubPostEvent        ClubPostType = "event"
	ClubPostAchievement  ClubPostType = "achievement"
	ClubPostAnnouncement ClubPostType = "announcement"
	ClubPostProject      ClubPostType = "project"
	ClubPostRecruitment  ClubPostType = "recruitment"
)

// Valid reports whether t is a known post type.
func (t ClubPostType) Valid() bool {
	switch t {
	case ClubPostEvent, ClubPostAchievement, ClubPostAnnouncement, ClubPostProject, ClubPostRecruitment:
		return true
	}
	return false
}

// ClubPost is a post published by a club.
type ClubPost struct {
	ID        int64        `json:"id"`
	ClubID    int64        `json:"club_id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	ImageURL  string       `json:"image_url,omitempty"`
	PostType  ClubPostType `json:"post_type"`
	Likes     int          `json:"likes"`
	CreatedAt string       `json:"created_at"`

	ClubName     string `json:"club_name,omitempty"`
	ClubCategory string `json:"category,omitempty"`
	ClubLogo     string `json:"club_logo,omitempty"`
}

// ClubPostFilter selects posts across clubs. Empty strings and "All" mean no filter.
type ClubPostFilter struct {
	Category string
	Type     string
	Limit    int
}
