package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/internal/ranking"
	"github.com/gcbaptista/campus-buzz/internal/tokenizer"
	"github.com/gcbaptista/campus-buzz/model"
)

// PrioritizedNewsLimit is the size of the dashboard's priority feed.
const PrioritizedNewsLimit = 10

// allStatuses lets staff list articles regardless of status.
const allStatuses = "all"

// ListNewsHandler returns a filtered, sorted page of articles.
// Query: category, search, priority (minimum), status, page, limit, sort_by, order.
//
// Only staff may look past published articles.
func (api *API) ListNewsHandler(c *gin.Context) {
	page, limit, result := ParsePaginationQuery(c)
	minPriority, err := queryInt(c, "priority")
	if err != nil {
		result.AddError("priority", "priority must be an integer")
	}

	status := model.NewsStatusPublished
	if raw, ok := c.GetQuery("status"); ok {
		status = model.NewsStatus(strings.ToLower(strings.TrimSpace(raw)))
		if status != allStatuses && !status.Valid() {
			result.AddError("status", "status must be one of draft, published, archived, all")
		}
	}
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if user, ok := currentUser(c); !ok || !user.Role.IsStaff() {
		status = model.NewsStatusPublished
	}
	if status == allStatuses {
		status = ""
	}

	sortBy := c.Query("sort_by")
	if sortBy == "" {
		sortBy = c.Query("sortBy")
	}

	newsPage, err := api.store.ListNews(c.Request.Context(), model.NewsFilter{
		CategorySlug: c.Query("category"),
		Search:       strings.TrimSpace(c.Query("search")),
		MinPriority:  minPriority,
		Status:       status,
		Page:         page,
		Limit:        limit,
		SortBy:       sortBy,
		Order:        c.DefaultQuery("order", "DESC"),
	})
	if err != nil {
		api.SendStoreError(c, "listing news", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", newsPage)
}

// PrioritizedNewsHandler returns the most urgent published articles.
func (api *API) PrioritizedNewsHandler(c *gin.Context) {
	news, err := api.store.ListPrioritizedNews(c.Request.Context(), PrioritizedNewsLimit)
	if err != nil {
		api.SendStoreError(c, "listing prioritized news", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"news": news})
}

// NewsStatsHandler returns collection statistics for staff dashboards.
func (api *API) NewsStatsHandler(c *gin.Context) {
	stats, err := api.store.NewsStats(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "computing news statistics", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", stats)
}

// GetNewsHandler returns one article by numeric id or slug and counts the view.
func (api *API) GetNewsHandler(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))

	news, err := api.store.ViewNews(c.Request.Context(), identifier)
	if err != nil {
		if errors.Is(err, internalErrors.ErrNotFound) {
			SendNotFoundError(c, "News article not found")
			return
		}
		api.SendStoreError(c, "getting news", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"news": news})
}

// CreateNewsHandler publishes an article written by the authenticated staff member.
// Request Body: CreateNewsRequest
//
// When no priority is given, it is computed from the article's text.
func (api *API) CreateNewsHandler(c *gin.Context) {
	var req CreateNewsRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateCreateNewsRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	priority := req.Priority
	if priority == 0 {
		priority = ranking.ComputePriority(req.Title, req.Description, req.Content)
	}

	author, _ := currentUser(c)
	article := model.NewNews{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		CategoryID:  req.CategoryID,
		Priority:    priority,
		AuthorID:    author.ID,
		ImageURL:    req.ImageURL,
		IsPinned:    req.IsPinned,
		Status:      req.Status,
	}

	now := api.now()
	article.Slug = tokenizer.UniqueSlug(req.Title, now)
	news, err := api.store.CreateNews(c.Request.Context(), article)
	if errors.Is(err, internalErrors.ErrAlreadyExists) {
		// Same title within the same millisecond.
		article.Slug = tokenizer.UniqueSlug(req.Title, now.Add(time.Millisecond))
		news, err = api.store.CreateNews(c.Request.Context(), article)
	}
	if err != nil {
		api.SendStoreError(c, "creating news", err)
		return
	}

	api.requestLogger(c).Info("news created",
		zap.Int64("news_id", news.ID),
		zap.Int("priority", news.Priority),
		zap.Bool("priority_computed", req.Priority == 0),
	)
	SendSuccess(c, http.StatusCreated, "News article created successfully", gin.H{"news": news})
}

// UpdateNewsHandler applies a partial update to an article. Only its author or an admin may edit it.
// Request Body: model.NewsUpdate
func (api *API) UpdateNewsHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	var update model.NewsUpdate
	if result := ValidateJSONBinding(c, &update); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if !api.authorizeNewsChange(c, id, "edit") {
		return
	}

	if result := ValidateNewsUpdate(&update); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	news, err := api.store.UpdateNews(c.Request.Context(), id, update)
	if err != nil {
		api.SendStoreError(c, "updating news", err)
		return
	}

	SendSuccess(c, http.StatusOK, "News article updated successfully", gin.H{"news": news})
}

// DeleteNewsHandler removes an article. Only its author or an admin may delete it.
func (api *API) DeleteNewsHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if !api.authorizeNewsChange(c, id, "delete") {
		return
	}

	if err := api.store.DeleteNews(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting news", err)
		return
	}

	api.requestLogger(c).Info("news deleted", zap.Int64("news_id", id))
	SendSuccess(c, http.StatusOK, "News article deleted successfully", nil)
}

// authorizeNewsChange loads the article and checks that the caller may change
// it, writing the error response when not.
func (api *API) authorizeNewsChange(c *gin.Context, id int64, action string) bool {
	existing, err := api.store.GetNewsByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, internalErrors.ErrNotFound) {
			SendNotFoundError(c, "News article not found")
			return false
		}
		api.SendStoreError(c, "loading news", err)
		return false
	}

	user, _ := currentUser(c)
	if user.Role != model.RoleAdmin && existing.AuthorID != user.ID {
		SendError(c, http.StatusForbidden, ErrorCodeForbidden, "You can only "+action+" your own articles")
		return false
	}
	return true
}

// AnalysisResult is the response of the analyze endpoint.
type AnalysisResult struct {
	ranking.ScoreResult
	AnalysisID        string                     `json:"analysis_id"`
	SuggestedCategory ranking.CategorySuggestion `json:"suggested_category"`
	Category          *model.Category            `json:"category,omitempty"`
}

// AnalyzeNewsHandler scores draft text and suggests a category without storing anything.
// Request Body: AnalyzeRequest
func (api *API) AnalyzeNewsHandler(c *gin.Context) {
	var req AnalyzeRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateAnalyzeRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	score := ranking.Score(ranking.ScoringInput{Title: req.Title, Description: req.Description, Body: req.Content})
	suggestion := ranking.SuggestCategoryDetailed(req.Title + " " + req.Description + " " + req.Content)

	analysis := AnalysisResult{
		AnalysisID:        uuid.NewString(),
		ScoreResult:       score,
		SuggestedCategory: suggestion,
	}

	// The suggested slug may not exist in this deployment's categories.
	category, err := api.store.GetCategoryBySlug(c.Request.Context(), suggestion.CategorySlug)
	switch {
	case err == nil:
		analysis.Category = category
	case !errors.Is(err, internalErrors.ErrNotFound):
		api.SendStoreError(c, "analyzing news", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", analysis)
}
