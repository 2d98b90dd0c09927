package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
	"github.com/gcbaptista/campus-buzz/model"
)

// LeaderboardSize is how many researchers and achievers the leaderboard shows.
const LeaderboardSize = 3

// ListPapersHandler returns every research paper, newest first.
func (api *API) ListPapersHandler(c *gin.Context) {
	papers, err := api.store.ListPapers(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "listing papers", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", papers)
}

// CreatePaperHandler publishes a paper authored by the authenticated staff member.
// Request Body: model.ResearchPaper
func (api *API) CreatePaperHandler(c *gin.Context) {
	var paper model.ResearchPaper
	if result := ValidateJSONBinding(c, &paper); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidatePaper(&paper); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	author, _ := currentUser(c)
	paper.AuthorID = author.ID
	paper.CitationCount = 0

	created, err := api.store.CreatePaper(c.Request.Context(), paper)
	if err != nil {
		api.SendStoreError(c, "creating paper", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Paper published", created)
}

// CitePaperHandler adds a citation and returns the new count.
func (api *API) CitePaperHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	count, err := api.store.CitePaper(c.Request.Context(), id)
	if err != nil {
		api.SendStoreError(c, "citing paper", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"citation_count": count})
}

// DeletePaperHandler removes a paper. Only its author or an admin may delete it.
func (api *API) DeletePaperHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	paper, err := api.store.GetPaper(c.Request.Context(), id)
	if err != nil {
		api.SendStoreError(c, "loading paper", err)
		return
	}
	if err := authorizeOwner(c, paper.AuthorID, "delete this paper"); err != nil {
		api.SendStoreError(c, "deleting paper", err)
		return
	}

	if err := api.store.DeletePaper(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting paper", err)
		return
	}

	api.requestLogger(c).Info("paper deleted", zap.Int64("paper_id", id))
	SendSuccess(c, http.StatusOK, "Paper deleted successfully", nil)
}

// ListAchievementsHandler returns every student achievement, newest first.
func (api *API) ListAchievementsHandler(c *gin.Context) {
	achievements, err := api.store.ListAchievements(c.Request.Context())
	if err != nil {
		api.SendStoreError(c, "listing achievements", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", achievements)
}

// CreateAchievementHandler records an achievement for the authenticated user.
// Request Body: model.Achievement
func (api *API) CreateAchievementHandler(c *gin.Context) {
	var achievement model.Achievement
	if result := ValidateJSONBinding(c, &achievement); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateAchievement(&achievement); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	student, _ := currentUser(c)
	achievement.StudentID = student.ID

	created, err := api.store.CreateAchievement(c.Request.Context(), achievement)
	if err != nil {
		api.SendStoreError(c, "creating achievement", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Achievement shared", created)
}

// CongratulateAchievementHandler adds a clap and returns the new count.
func (api *API) CongratulateAchievementHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	claps, err := api.store.CongratulateAchievement(c.Request.Context(), id)
	if err != nil {
		api.SendStoreError(c, "congratulating achievement", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"claps_count": claps})
}

// DeleteAchievementHandler removes an achievement. Only its owner or an admin may delete it.
func (api *API) DeleteAchievementHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	achievement, err := api.store.GetAchievement(c.Request.Context(), id)
	if err != nil {
		api.SendStoreError(c, "loading achievement", err)
		return
	}
	if err := authorizeOwner(c, achievement.StudentID, "delete this achievement"); err != nil {
		api.SendStoreError(c, "deleting achievement", err)
		return
	}

	if err := api.store.DeleteAchievement(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting achievement", err)
		return
	}

	SendSuccess(c, http.StatusOK, "Achievement deleted successfully", nil)
}

// LeaderboardHandler returns the top researchers and achievers.
func (api *API) LeaderboardHandler(c *gin.Context) {
	leaderboard, err := api.store.Leaderboard(c.Request.Context(), LeaderboardSize)
	if err != nil {
		api.SendStoreError(c, "building leaderboard", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", leaderboard)
}

// authorizeOwner returns a forbidden error unless the caller owns the resource or is an admin.
func authorizeOwner(c *gin.Context, ownerID int64, action string) error {
	user, ok := currentUser(c)
	if !ok {
		return internalErrors.ErrUnauthorized
	}
	if user.Role == model.RoleAdmin || user.ID == ownerID {
		return nil
	}
	return internalErrors.NewForbiddenError(action)
}
