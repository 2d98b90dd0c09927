package model

// AlumniProfile is a graduate featured in the alumni spotlight.
type AlumniProfile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	BatchYear    int    `json:"batch_year"`
	Branch       string `json:"branch"`
	Company      string `json:"company"`
	Role         string `json:"role"`
	AvatarURL    string `json:"avatar_url"`
	Bio          string `json:"bio"`
	CareerUpdate string `json:"career_update"`
	LinkedInURL  string `json:"linkedin_url"`
	Email        string `json:"email"`
	IsMentor     bool   `json:"is_mentor"`
	CreatedAt    string `json:"created_at"`
}

// DefaultBranch is used when a profile is created without a branch.
const DefaultBranch = "CSE"

// MentorshipStatus tracks a mentorship request through its lifecycle.
type MentorshipStatus string

const (
	MentorshipPending   MentorshipStatus = "pending"
	MentorshipConfirmed MentorshipStatus = "confirmed"
	MentorshipCompleted MentorshipStatus = "completed"
	MentorshipCancelled MentorshipStatus = "cancelled"
)

// MentorshipRequest is a student's request for a chat with an alumnus.
type MentorshipRequest struct {
	ID            int64            `json:"id"`
	StudentName   string           `json:"student_name"`
	StudentEmail  string           `json:"student_email"`
	AlumniID      int64            `json:"alumni_id"`
	Topic         string           `json:"topic"`
	Message       string           `json:"message"`
	ScheduledTime string           `json:"scheduled_time"`
	Status        MentorshipStatus `json:"status"`
	CreatedAt     string           `json:"created_at"`

	AlumniName string `json:"alumni_name,omitempty"`
	Company    string `json:"company,omitempty"`
	Role       string `json:"role,omitempty"`
}

// DefaultIndustryTag is used when a post is created without tags.
const DefaultIndustryTag = "CSE"

// IndustryPost is an alumnus' post in the industry newsfeed.
type IndustryPost struct {
	ID        int64  `json:"id"`
	AlumniID  int64  `json:"alumni_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags"`
	Likes     int    `json:"likes"`
	CreatedAt string `json:"created_at"`

	AlumniName string `json:"alumni_name,omitempty"`
	Company    string `json:"company,omitempty"`
	Role       string `json:"role,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	BatchYear  int    `json:"batch_year,omitempty"`
}

// Question is a student question in the alumni Q&A, with its answers.
type Question struct {
	ID             int64    `json:"id"`
	StudentName    string   `json:"student_name"`
	Question       string   `json:"question"`
	CompanyContext string   `json:"company_context"`
	CreatedAt      string   `json:"created_at"`
	Answers        []Answer `json:"answers"`
}

// Answer is an alumnus' answer to a question.
type Answer struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	AlumniID   int64  `json:"alumni_id"`
	Answer     string `json:"answer"`
	CreatedAt  string `json:"created_at"`

	AlumniName string `json:"alumni_name,omitempty"`
	Company    string `json:"company,omitempty"`
	Role       string `json:"role,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}
