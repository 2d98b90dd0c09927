package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcbaptista/campus-buzz/model"
)

// ListAlumniHandler returns the alumni spotlight profiles.
func (api *API) ListAlumniHandler(c *gin.Context) {
	alumni, err := api.store.ListAlumni(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "listing alumni", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", alumni)
}

// CreateAlumniHandler adds a spotlight profile.
// Request Body: model.AlumniProfile
func (api *API) CreateAlumniHandler(c *gin.Context) {
	var profile model.AlumniProfile
	if result := ValidateJSONBinding(c, &profile); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	profile.Name = strings.TrimSpace(profile.Name)
	if result := ValidateAlumniProfile(&profile); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	created, err := api.store.CreateAlumni(c.Request.Context(), profile)
	if err != nil {
		api.SendStoreError(c, "creating alumni profile", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Alumni profile created successfully", created)
}

// DeleteAlumniHandler removes a profile along with its mentorship requests, posts and answers.
func (api *API) DeleteAlumniHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.store.DeleteAlumni(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting alumni profile", err)
		return
	}

	api.requestLogger(c).Info("alumni profile deleted", zap.Int64("alumni_id", id))
	SendSuccess(c, http.StatusOK, "Alumni profile removed", nil)
}

// CreateMentorshipRequestHandler asks an alumnus for a mentoring session.
// Request Body: model.MentorshipRequest
func (api *API) CreateMentorshipRequestHandler(c *gin.Context) {
	var request model.MentorshipRequest
	if result := ValidateJSONBinding(c, &request); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateMentorshipRequest(&request); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	id, err := api.store.CreateMentorshipRequest(c.Request.Context(), request)
	if err != nil {
		api.SendStoreError(c, "creating mentorship request", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Mentorship request sent! The alumni will reach out soon.", gin.H{"id": id})
}

// ListMentorshipRequestsHandler returns every mentorship request with the mentor's details.
func (api *API) ListMentorshipRequestsHandler(c *gin.Context) {
	requests, err := api.store.ListMentorshipRequests(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "listing mentorship requests", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", requests)
}

// ListIndustryPostsHandler returns the industry newsfeed.
// Query: tag ("All" or empty for every post).
func (api *API) ListIndustryPostsHandler(c *gin.Context) {
	posts, err := api.store.ListIndustryPosts(c.Request.Context(), strings.TrimSpace(c.Query("tag")))
	if err != nil {
		api.SendStoreError(c, "listing industry posts", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", posts)
}

// CreateIndustryPostHandler publishes a post on behalf of an alumnus.
// Request Body: model.IndustryPost
func (api *API) CreateIndustryPostHandler(c *gin.Context) {
	var post model.IndustryPost
	if result := ValidateJSONBinding(c, &post); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateIndustryPost(&post); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	created, err := api.store.CreateIndustryPost(c.Request.Context(), post)
	if err != nil {
		api.SendStoreError(c, "creating industry post", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Post published!", created)
}

// DeleteIndustryPostHandler removes an industry post.
func (api *API) DeleteIndustryPostHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.store.DeleteIndustryPost(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting industry post", err)
		return
	}

	SendSuccess(c, http.StatusOK, "Post deleted", nil)
}

// LikeIndustryPostHandler adds a like and returns the new count.
func (api *API) LikeIndustryPostHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	likes, err := api.store.LikeIndustryPost(c.Request.Context(), id)
	if err != nil {
		api.SendStoreError(c, "liking industry post", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"likes": likes})
}

// ListQuestionsHandler returns every question with its answers.
func (api *API) ListQuestionsHandler(c *gin.Context) {
	questions, err := api.store.ListQuestions(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "listing questions", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", questions)
}

// CreateQuestionHandler posts a student question to the alumni.
// Request Body: model.Question
func (api *API) CreateQuestionHandler(c *gin.Context) {
	var question model.Question
	if result := ValidateJSONBinding(c, &question); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateQuestion(&question); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	created, err := api.store.CreateQuestion(c.Request.Context(), question)
	if err != nil {
		api.SendStoreError(c, "creating question", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Question posted!", created)
}

// DeleteQuestionHandler removes a question and its answers.
func (api *API) DeleteQuestionHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.store.DeleteQuestion(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting question", err)
		return
	}

	SendSuccess(c, http.StatusOK, "Question deleted", nil)
}

// AnswerQuestionHandler records an alumnus' answer.
// Request Body: model.Answer (question_id comes from the path)
func (api *API) AnswerQuestionHandler(c *gin.Context) {
	questionID, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var answer model.Answer
	if result := ValidateJSONBinding(c, &answer); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	answer.QuestionID = questionID
	if result := ValidateAnswer(&answer); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	created, err := api.store.AnswerQuestion(c.Request.Context(), answer)
	if err != nil {
		api.SendStoreError(c, "answering question", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Answer posted!", created)
}
