// Package api provides the HTTP handlers, middleware and request validation of the CAMPUS Buzz API.
package api

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/campus-buzz/internal/auth"
	"github.com/gcbaptista/campus-buzz/internal/ranking"
	"github.com/gcbaptista/campus-buzz/model"
)

// Pagination bounds for list endpoints.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

func (vr *ValidationResult) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		vr.AddError(field, field+" is required")
	}
}

func (vr *ValidationResult) requireID(field string, id int64) {
	if id <= 0 {
		vr.AddError(field, field+" is required and must be a positive integer")
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateNewsRequest is the body of POST /news. A zero priority is computed from the text.
type CreateNewsRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	CategoryID  int64            `json:"category_id"`
	Priority    int              `json:"priority"`
	ImageURL    string           `json:"image_url"`
	IsPinned    bool             `json:"is_pinned"`
	Status      model.NewsStatus `json:"status"`
}

// AnalyzeRequest is the body of POST /news/analyze.
type AnalyzeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// CategoryRequest is the body of POST /categories.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// ValidateRegisterRequest normalizes the email and defaults the role before checking the fields.
func ValidateRegisterRequest(req *RegisterRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Role == "" {
		req.Role = model.RoleStudent
	}

	if req.Email == "" {
		result.AddError("email", "email is required")
	} else if !emailPattern.MatchString(req.Email) {
		result.AddError("email", "Invalid email format")
	}

	if len(req.Password) < auth.MinPasswordLength {
		result.AddError("password", fmt.Sprintf("Password must be at least %d characters long", auth.MinPasswordLength))
	}

	result.require("name", req.Name)

	if !req.Role.Valid() {
		result.AddError("role", "Invalid role. Must be: admin, faculty, or student")
	}

	return result
}

// ValidateLoginRequest checks that both credentials are present.
func ValidateLoginRequest(req *LoginRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	result.require("email", req.Email)
	if req.Password == "" {
		result.AddError("password", "password is required")
	}

	return result
}

// ValidateProfileUpdate rejects an update that changes nothing.
func ValidateProfileUpdate(update *model.ProfileUpdate) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if update.IsEmpty() {
		result.AddError("request_body", "No fields to update")
	}
	return result
}

func validatePriority(result *ValidationResult, priority int) {
	if priority < ranking.MinPriority || priority > ranking.MaxPriority {
		result.AddError("priority", fmt.Sprintf("priority must be between %d and %d", ranking.MinPriority, ranking.MaxPriority))
	}
}

func validateStatus(result *ValidationResult, status model.NewsStatus) {
	if !status.Valid() {
		result.AddError("status", "status must be one of draft, published, archived")
	}
}

// ValidateCreateNewsRequest checks the required article fields and defaults the status.
func ValidateCreateNewsRequest(req *CreateNewsRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Status == "" {
		req.Status = model.NewsStatusPublished
	}

	result.require("title", req.Title)
	result.require("description", req.Description)
	result.requireID("category_id", req.CategoryID)

	if req.Priority != 0 {
		validatePriority(result, req.Priority)
	}
	validateStatus(result, req.Status)

	return result
}

// ValidateNewsUpdate checks the fields present in a partial article update.
func ValidateNewsUpdate(update *model.NewsUpdate) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if update.IsEmpty() {
		result.AddError("request_body", "No fields to update")
		return result
	}

	if update.Priority != nil && *update.Priority != 0 {
		validatePriority(result, *update.Priority)
	}
	if update.Status != nil && *update.Status != "" {
		validateStatus(result, *update.Status)
	}
	if update.CategoryID != nil && *update.CategoryID < 0 {
		result.AddError("category_id", "category_id must be a positive integer")
	}

	return result
}

// ValidateAnalyzeRequest requires some text to analyze.
func ValidateAnalyzeRequest(req *AnalyzeRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if strings.TrimSpace(req.Title+req.Description+req.Content) == "" {
		result.AddError("title", "at least one of title, description or content is required")
	}
	return result
}

// ValidateCategoryRequest requires a name.
func ValidateCategoryRequest(req *CategoryRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		result.AddError("name", "Category name is required")
	}
	return result
}

// ValidateCategoryUpdate rejects an update that changes nothing.
func ValidateCategoryUpdate(update *model.CategoryUpdate) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if update.IsEmpty() {
		result.AddError("request_body", "No fields to update")
	}
	return result
}

// ValidateAlumniProfile requires a name and a plausible batch year.
func ValidateAlumniProfile(profile *model.AlumniProfile) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.require("name", profile.Name)
	if profile.BatchYear < 1900 || profile.BatchYear > 2100 {
		result.AddError("batch_year", "batch_year is required and must be a valid year")
	}
	return result
}

// ValidateMentorshipRequest checks the fields a student must supply.
func ValidateMentorshipRequest(request *model.MentorshipRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.require("student_name", request.StudentName)
	result.require("student_email", request.StudentEmail)
	if request.StudentEmail != "" && !emailPattern.MatchString(strings.TrimSpace(request.StudentEmail)) {
		result.AddError("student_email", "Invalid email format")
	}
	result.requireID("alumni_id", request.AlumniID)
	result.require("topic", request.Topic)
	return result
}

// ValidateIndustryPost checks the fields of a new industry post.
func ValidateIndustryPost(post *model.IndustryPost) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.requireID("alumni_id", post.AlumniID)
	result.require("title", post.Title)
	result.require("content", post.Content)
	return result
}

// ValidateQuestion checks the fields of a new question.
func ValidateQuestion(question *model.Question) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.require("student_name", question.StudentName)
	result.require("question", question.Question)
	return result
}

// ValidateAnswer checks the fields of an answer.
func ValidateAnswer(answer *model.Answer) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.requireID("alumni_id", answer.AlumniID)
	result.require("answer", answer.Answer)
	return result
}

// ValidateClub requires a name; the slug is derived from it when missing.
func ValidateClub(club *model.Club) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.require("name", club.Name)
	if club.MemberCount < 0 {
		result.AddError("member_count", "member_count cannot be negative")
	}
	return result
}

// ValidateClubPost checks the fields of a new club post.
func ValidateClubPost(post *model.ClubPost) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.requireID("club_id", post.ClubID)
	result.require("title", post.Title)
	result.require("content", post.Content)
	if post.PostType != "" && !post.PostType.Valid() {
		result.AddError("post_type", "post_type must be one of event, achievement, announcement, project, recruitment")
	}
	return result
}

// ValidatePaper checks the fields of a new research paper.
func ValidatePaper(paper *model.ResearchPaper) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.require("title", paper.Title)
	result.require("abstract", paper.Abstract)
	result.require("journal_conference", paper.JournalConference)
	return result
}

// ValidateAchievement checks the fields of a new achievement.
func ValidateAchievement(achievement *model.Achievement) *ValidationResult {
	result := &ValidationResult{Valid: true}
	result.require("title", achievement.Title)
	result.require("description", achievement.Description)
	return result
}

// ValidatePagination validates pagination parameters
func ValidatePagination(page, pageSize int) (int, int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	// Set defaults
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize, result
}

// ParsePaginationQuery reads the page and limit query parameters.
func ParsePaginationQuery(c *gin.Context) (int, int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	page, err := queryInt(c, "page")
	if err != nil {
		result.AddError("page", "page must be an integer")
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		result.AddError("limit", "limit must be an integer")
	}
	if result.HasErrors() {
		return 0, 0, result
	}

	return ValidatePagination(page, limit)
}

// queryInt parses an optional integer query parameter; a missing one is zero.
func queryInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		result.AddError(name, name+" must be a positive integer")
	}
	return id, result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// ValidateJSONBinding validates JSON binding and returns a standardized error
func ValidateJSONBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(target); err != nil {
		result.AddError("request_body", "Invalid request body: "+err.Error())
	}

	return result
}
