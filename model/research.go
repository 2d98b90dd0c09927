package model

// ResearchPaper is a publication by a faculty member.
type ResearchPaper struct {
	ID                   int64  `json:"id"`
	Title                string `json:"title"`
	Abstract             string `json:"abstract"`
	JournalConference    string `json:"journal_conference"`
	PublicationDate      string `json:"publication_date"`
	PDFLink              string `json:"pdf_link"`
	CitationCount        int    `json:"citation_count"`
	LookingForAssistants bool   `json:"looking_for_assistants"`
	AuthorID             int64  `json:"author_id"`
	CreatedAt            string `json:"created_at"`
	AuthorName           string `json:"author_name,omitempty"`
	AuthorAvatar         string `json:"author_avatar,omitempty"`
}

// Achievement is a student accomplishment.
type Achievement struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	VerifiedByDept bool   `json:"verified_by_dept"`
	ImageURL       string `json:"image_url"`
	StudentID      int64  `json:"student_id"`
	ClapsCount     int    `json:"claps_count"`
	CreatedAt      string `json:"created_at"`
	StudentName    string `json:"student_name,omitempty"`
	StudentAvatar  string `json:"student_avatar,omitempty"`
}

// LeaderboardEntry is a user and how many papers or achievements they have.
type LeaderboardEntry struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   Role   `json:"role"`
	Count  int    `json:"count"`
}

// Leaderboard lists the top researchers and achievers.
type Leaderboard struct {
	Researchers []LeaderboardEntry `json:"researchers"`
	Achievers   []LeaderboardEntry `json:"achievers"`
}
