package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcbaptista/campus-buzz/internal/auth"
	"github.com/gcbaptista/campus-buzz/services"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "campus-buzz"

// Dependencies are the collaborators the handlers need.
type Dependencies struct {
	Store  services.Store
	Tokens *auth.TokenManager
	Hasher *auth.PasswordHasher
	Logger *zap.Logger
	// LoginLimiter throttles POST /auth/login per client IP. Nil disables throttling.
	LoginLimiter *RateLimiter
}

// API holds dependencies for API handlers.
type API struct {
	store        services.Store
	tokens       *auth.TokenManager
	hasher       *auth.PasswordHasher
	logger       *zap.Logger
	loginLimiter *RateLimiter
	now          func() time.Time
}

// NewAPI creates a new API handler structure.
func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		store:        deps.Store,
		tokens:       deps.Tokens,
		hasher:       deps.Hasher,
		logger:       logger,
		loginLimiter: deps.LoginLimiter,
		now:          time.Now,
	}
}

// requestLogger returns the API logger tagged with the current request id.
func (api *API) requestLogger(c *gin.Context) *zap.Logger {
	if id := requestIDFrom(c); id != "" {
		return api.logger.With(zap.String("request_id", id))
	}
	return api.logger
}

// SetupRoutes defines all the API routes under /api.
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	apiHandler := NewAPI(deps)
	authenticated := apiHandler.Authenticate()

	base := router.Group("/api")

	// Health check route
	base.GET("/health", apiHandler.HealthCheckHandler)

	// Authentication routes
	authRoutes := base.Group("/auth")
	{
		register := []gin.HandlerFunc{apiHandler.OptionalAuth(), apiHandler.RegisterHandler}
		authRoutes.POST("/register", register...)

		login := []gin.HandlerFunc{apiHandler.LoginHandler}
		if apiHandler.loginLimiter != nil {
			login = append([]gin.HandlerFunc{apiHandler.loginLimiter.Middleware()}, login...)
		}
		authRoutes.POST("/login", login...)

		authRoutes.GET("/profile", authenticated, apiHandler.GetProfileHandler)
		authRoutes.PUT("/profile", authenticated, apiHandler.UpdateProfileHandler)
		authRoutes.GET("/users", authenticated, RequireAdmin(), apiHandler.ListUsersHandler)
	}

	// News routes
	newsRoutes := base.Group("/news")
	{
		newsRoutes.GET("", apiHandler.OptionalAuth(), apiHandler.ListNewsHandler)
		newsRoutes.GET("/prioritized", apiHandler.PrioritizedNewsHandler)
		newsRoutes.GET("/stats", authenticated, RequireStaff(), apiHandler.NewsStatsHandler)
		newsRoutes.GET("/:identifier", apiHandler.GetNewsHandler)
		newsRoutes.POST("", authenticated, RequireStaff(), apiHandler.CreateNewsHandler)
		newsRoutes.POST("/analyze", authenticated, RequireStaff(), apiHandler.AnalyzeNewsHandler)
		newsRoutes.PUT("/:id", authenticated, RequireStaff(), apiHandler.UpdateNewsHandler)
		newsRoutes.DELETE("/:id", authenticated, RequireStaff(), apiHandler.DeleteNewsHandler)
	}

	// Category routes
	categoryRoutes := base.Group("/categories")
	{
		categoryRoutes.GET("", apiHandler.ListCategoriesHandler)
		categoryRoutes.GET("/:slug", apiHandler.GetCategoryHandler)
		categoryRoutes.POST("", authenticated, RequireAdmin(), apiHandler.CreateCategoryHandler)
		categoryRoutes.PUT("/:id", authenticated, RequireAdmin(), apiHandler.UpdateCategoryHandler)
		categoryRoutes.DELETE("/:id", authenticated, RequireAdmin(), apiHandler.DeleteCategoryHandler)
	}

	// Alumni network routes
	alumniRoutes := base.Group("/alumni")
	{
		alumniRoutes.GET("/spotlights", apiHandler.ListAlumniHandler)
		alumniRoutes.POST("/spotlights", apiHandler.CreateAlumniHandler)
		alumniRoutes.DELETE("/spotlights/:id", authenticated, RequireAdmin(), apiHandler.DeleteAlumniHandler)

		alumniRoutes.POST("/mentorship", apiHandler.CreateMentorshipRequestHandler)
		alumniRoutes.GET("/mentorship", authenticated, RequireStaff(), apiHandler.ListMentorshipRequestsHandler)

		alumniRoutes.GET("/industry-posts", apiHandler.ListIndustryPostsHandler)
		alumniRoutes.POST("/industry-posts", apiHandler.CreateIndustryPostHandler)
		alumniRoutes.DELETE("/industry-posts/:id", authenticated, RequireAdmin(), apiHandler.DeleteIndustryPostHandler)
		alumniRoutes.POST("/industry-posts/:id/like", apiHandler.LikeIndustryPostHandler)

		alumniRoutes.GET("/questions", apiHandler.ListQuestionsHandler)
		alumniRoutes.POST("/questions", apiHandler.CreateQuestionHandler)
		alumniRoutes.DELETE("/questions/:id", authenticated, RequireAdmin(), apiHandler.DeleteQuestionHandler)
		alumniRoutes.POST("/questions/:id/answer", apiHandler.AnswerQuestionHandler)
	}

	// Club routes
	clubRoutes := base.Group("/clubs")
	{
		clubRoutes.GET("", apiHandler.ListClubsHandler)
		clubRoutes.POST("", apiHandler.CreateClubHandler)
		clubRoutes.GET("/posts", apiHandler.ListAllClubPostsHandler)
		clubRoutes.POST("/posts/create", apiHandler.CreateClubPostHandler)
		clubRoutes.DELETE("/posts/:postId", authenticated, RequireAdmin(), apiHandler.DeleteClubPostHandler)
		clubRoutes.POST("/posts/:postId/like", apiHandler.LikeClubPostHandler)
		clubRoutes.GET("/:id", apiHandler.GetClubHandler)
		clubRoutes.GET("/:id/posts", apiHandler.ListClubPostsHandler)
		clubRoutes.DELETE("/:id", authenticated, RequireAdmin(), apiHandler.DeleteClubHandler)
	}

	// Research and achievement routes
	researchRoutes := base.Group("/research")
	{
		researchRoutes.GET("/papers", apiHandler.ListPapersHandler)
		researchRoutes.POST("/papers", authenticated, RequireStaff(), apiHandler.CreatePaperHandler)
		researchRoutes.POST("/papers/:id/cite", apiHandler.CitePaperHandler)
		researchRoutes.DELETE("/papers/:id", authenticated, apiHandler.DeletePaperHandler)

		researchRoutes.GET("/achievements", apiHandler.ListAchievementsHandler)
		researchRoutes.POST("/achievements", authenticated, apiHandler.CreateAchievementHandler)
		researchRoutes.POST("/achievements/:id/congratulate", authenticated, apiHandler.CongratulateAchievementHandler)
		researchRoutes.DELETE("/achievements/:id", authenticated, apiHandler.DeleteAchievementHandler)

		researchRoutes.GET("/leaderboard", apiHandler.LeaderboardHandler)
	}
}

// HealthCheckHandler reports whether the service and its database are reachable.
func (api *API) HealthCheckHandler(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	if err := api.store.Ping(c.Request.Context()); err != nil {
		api.requestLogger(c).Warn("health check failed", zap.Error(err))
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"success":   code == http.StatusOK,
		"status":    status,
		"service":   ServiceName,
		"timestamp": api.now().UTC().Format(time.RFC3339),
	})
}
