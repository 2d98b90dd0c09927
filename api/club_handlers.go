package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcbaptista/campus-buzz/internal/tokenizer"
	"github.com/gcbaptista/campus-buzz/model"
)

// ListClubsHandler returns the clubs, optionally of one category.
// Query: category ("All" or empty for every club).
func (api *API) ListClubsHandler(c *gin.Context) {
	clubs, err := api.store.ListClubs(c.Request.Context(), strings.TrimSpace(c.Query("category")))
	if err != nil {
		api.SendStoreError(c, "listing clubs", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", clubs)
}

// GetClubHandler returns a club by id or slug together with its posts.
func (api *API) GetClubHandler(c *gin.Context) {
	club, err := api.store.GetClub(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		api.SendStoreError(c, "getting club", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", club)
}

// CreateClubHandler registers a club. A missing slug is derived from the name.
// Request Body: model.Club
func (api *API) CreateClubHandler(c *gin.Context) {
	var club model.Club
	if result := ValidateJSONBinding(c, &club); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	club.Name = strings.TrimSpace(club.Name)
	if result := ValidateClub(&club); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	club.Slug = tokenizer.Slugify(club.Slug)
	if club.Slug == "" {
		club.Slug = tokenizer.Slugify(club.Name)
	}
	if club.Slug == "" {
		result := &ValidationResult{Valid: true}
		result.AddError("slug", "slug must contain at least one letter or digit")
		SendValidationError(c, result)
		return
	}

	created, err := api.store.CreateClub(c.Request.Context(), club)
	if err != nil {
		api.SendStoreError(c, "creating club", err)
		return
	}

	api.requestLogger(c).Info("club created", zap.String("slug", created.Slug))
	SendSuccess(c, http.StatusCreated, "Club created successfully", created)
}

// DeleteClubHandler removes a club and its posts.
func (api *API) DeleteClubHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.store.DeleteClub(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting club", err)
		return
	}

	api.requestLogger(c).Info("club deleted", zap.Int64("club_id", id))
	SendSuccess(c, http.StatusOK, "Club deleted", nil)
}

// ListClubPostsHandler returns one club's posts.
// Query: type (post type, "All" or empty for every type).
func (api *API) ListClubPostsHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "id")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	posts, err := api.store.ListClubPosts(c.Request.Context(), id, strings.TrimSpace(c.Query("type")))
	if err != nil {
		api.SendStoreError(c, "listing club posts", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", posts)
}

// ListAllClubPostsHandler returns the cross-club feed.
// Query: category, type, limit (default 50).
func (api *API) ListAllClubPostsHandler(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil || limit < 0 {
		result := &ValidationResult{Valid: true}
		result.AddError("limit", "limit must be a non-negative integer")
		SendValidationError(c, result)
		return
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	posts, err := api.store.ListAllClubPosts(c.Request.Context(), model.ClubPostFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Type:     strings.TrimSpace(c.Query("type")),
		Limit:    limit,
	})
	if err != nil {
		api.SendStoreError(c, "listing club posts", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", posts)
}

// CreateClubPostHandler publishes a post for a club.
// Request Body: model.ClubPost
func (api *API) CreateClubPostHandler(c *gin.Context) {
	var post model.ClubPost
	if result := ValidateJSONBinding(c, &post); result.HasErrors() {
		SendValidationError(c, result)
		return
	}
	if result := ValidateClubPost(&post); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	created, err := api.store.CreateClubPost(c.Request.Context(), post)
	if err != nil {
		api.SendStoreError(c, "creating club post", err)
		return
	}

	SendSuccess(c, http.StatusCreated, "Post published", created)
}

// DeleteClubPostHandler removes a club post.
func (api *API) DeleteClubPostHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "postId")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.store.DeleteClubPost(c.Request.Context(), id); err != nil {
		api.SendStoreError(c, "deleting club post", err)
		return
	}

	SendSuccess(c, http.StatusOK, "Post deleted", nil)
}

// LikeClubPostHandler adds a like and returns the new count.
func (api *API) LikeClubPostHandler(c *gin.Context) {
	id, result := ParseIDParam(c, "postId")
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	likes, err := api.store.LikeClubPost(c.Request.Context(), id)
	if err != nil {
		api.SendStoreError(c, "liking club post", err)
		return
	}

	SendSuccess(c, http.StatusOK, "", gin.H{"likes": likes})
}
