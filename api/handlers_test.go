package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/gcbaptista/campus-buzz/internal/auth"
	"github.com/gcbaptista/campus-buzz/internal/ranking"
	"github.com/gcbaptista/campus-buzz/model"
	"github.com/gcbaptista/campus-buzz/store"
)

const (
	adminEmail   = "admin@upes.ac.in"
	facultyEmail = "faculty@upes.ac.in"
	studentEmail = "student@upes.ac.in"

	testLoginBurst = 5
)

type testEnv struct {
	router *gin.Engine
	store  *store.SQLiteStore
	tokens *auth.TokenManager
}

// envelope is the common shape of success and error responses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    ErrorCode       `json:"code"`
	Details []ErrorDetail   `json:"details"`
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	s, err := store.Open(context.Background(), store.MemoryPath, store.Options{Seed: true, PasswordHasher: hasher})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret: "test-secret-0123456789",
		Issuer: "campus-buzz-test",
		TTL:    time.Hour,
	})

	router := gin.New()
	router.Use(RequestIDMiddleware())
	SetupRoutes(router, Dependencies{
		Store:        s,
		Tokens:       tokens,
		Hasher:       hasher,
		LoginLimiter: NewRateLimiter(rate.Limit(0.001), testLoginBurst),
	})

	return &testEnv{router: router, store: s, tokens: tokens}
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	user, err := e.store.GetUserByEmail(context.Background(), email)
	require.NoError(t, err)
	token, err := e.tokens.Issue(user.ID)
	require.NoError(t, err)
	return token
}

func (e *testEnv) newsIDBySlug(t *testing.T, slug string) int64 {
	t.Helper()
	page, err := e.store.ListNews(context.Background(), model.NewsFilter{Limit: 100})
	require.NoError(t, err)
	for _, n := range page.News {
		if n.Slug == slug {
			return n.ID
		}
	}
	t.Fatalf("news %q not seeded", slug)
	return 0
}

// do sends a request; body may be a raw string or any value to encode as JSON.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.True(t, env.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, target), string(env.Data))
}

func TestHealthCheckHandler(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, http.MethodGet, "/api/health", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, ServiceName, body["service"])
}

func TestRegisterHandler(t *testing.T) {
	env := setupTestRouter(t)
	adminToken := env.tokenFor(t, adminEmail)
	studentToken := env.tokenFor(t, studentEmail)

	tests := []struct {
		name           string
		body           interface{}
		token          string
		expectedStatus int
		expectedCode   ErrorCode
	}{
		{
			name:           "student self registration",
			body:           RegisterRequest{Email: "Asha@UPES.ac.in", Password: "secret1", Name: "Asha"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate email ignores case",
			body:           RegisterRequest{Email: "asha@upes.ac.in", Password: "secret1", Name: "Asha Again"},
			expectedStatus: http.StatusConflict,
			expectedCode:   ErrorCodeAlreadyExists,
		},
		{
			name:           "invalid JSON",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidationFailed,
		},
		{
			name:           "short password",
			body:           RegisterRequest{Email: "x@upes.ac.in", Password: "123", Name: "X"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidationFailed,
		},
		{
			name:           "faculty self registration refused",
			body:           RegisterRequest{Email: "prof@upes.ac.in", Password: "secret1", Name: "Prof", Role: model.RoleFaculty},
			expectedStatus: http.StatusForbidden,
			expectedCode:   ErrorCodeForbidden,
		},
		{
			name:           "student cannot create admins",
			body:           RegisterRequest{Email: "boss@upes.ac.in", Password: "secret1", Name: "Boss", Role: model.RoleAdmin},
			token:          studentToken,
			expectedStatus: http.StatusForbidden,
			expectedCode:   ErrorCodeForbidden,
		},
		{
			name:           "admin creates faculty",
			body:           RegisterRequest{Email: "prof@upes.ac.in", Password: "secret1", Name: "Prof", Role: model.RoleFaculty},
			token:          adminToken,
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/auth/register", tt.body, tt.token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedCode != "" {
				got := decodeEnvelope(t, w)
				assert.False(t, got.Success)
				assert.Equal(t, tt.expectedCode, got.Code)
				return
			}

			var payload struct {
				User  model.User `json:"user"`
				Token string     `json:"token"`
			}
			decodeData(t, w, &payload)
			assert.NotEmpty(t, payload.Token)
			assert.NotZero(t, payload.User.ID)
			assert.NotContains(t, w.Body.String(), "password")

			userID, err := env.tokens.Verify(payload.Token)
			require.NoError(t, err)
			assert.Equal(t, payload.User.ID, userID)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	env := setupTestRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: "FACULTY@upes.ac.in", Password: "faculty123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var payload struct {
			User  model.User `json:"user"`
			Token string     `json:"token"`
		}
		decodeData(t, w, &payload)
		assert.Equal(t, model.RoleFaculty, payload.User.Role)

		profile := env.do(t, http.MethodGet, "/api/auth/profile", nil, payload.Token)
		require.Equal(t, http.StatusOK, profile.Code)
		assert.Contains(t, profile.Body.String(), facultyEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: facultyEmail, Password: "nope"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, ErrorCodeUnauthorized, decodeEnvelope(t, w).Code)
	})

	t.Run("unknown email gets the same answer", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: "ghost@upes.ac.in", Password: "whatever"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Len(t, decodeEnvelope(t, w).Details, 2)
	})
}

func TestLoginHandler_RateLimited(t *testing.T) {
	env := setupTestRouter(t)

	for i := 0; i < testLoginBurst; i++ {
		w := env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: studentEmail, Password: "wrong"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d", i+1)
	}

	w := env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: studentEmail, Password: "student123"}, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, ErrorCodeRateLimited, decodeEnvelope(t, w).Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestAuthentication(t *testing.T) {
	env := setupTestRouter(t)

	expired := auth.NewTokenManager(auth.TokenConfig{Secret: "test-secret-0123456789", Issuer: "campus-buzz-test", TTL: -time.Minute})
	expiredToken, err := expired.Issue(1)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		path           string
		expectedStatus int
	}{
		{"no token", "", "/api/auth/profile", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", "/api/auth/profile", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", "/api/auth/profile", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, "/api/auth/profile", http.StatusUnauthorized},
		{"student profile", "Bearer " + env.tokenFor(t, studentEmail), "/api/auth/profile", http.StatusOK},
		{"student listing users", "Bearer " + env.tokenFor(t, studentEmail), "/api/auth/users", http.StatusForbidden},
		{"faculty listing users", "Bearer " + env.tokenFor(t, facultyEmail), "/api/auth/users", http.StatusForbidden},
		{"admin listing users", "Bearer " + env.tokenFor(t, adminEmail), "/api/auth/users", http.StatusOK},
		{"student stats", "Bearer " + env.tokenFor(t, studentEmail), "/api/news/stats", http.StatusForbidden},
		{"faculty stats", "Bearer " + env.tokenFor(t, facultyEmail), "/api/news/stats", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestAuthentication_DeletedUser(t *testing.T) {
	env := setupTestRouter(t)

	token, err := env.tokens.Issue(9999)
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/auth/profile", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	env := setupTestRouter(t)
	token := env.tokenFor(t, studentEmail)

	w := env.do(t, http.MethodPut, "/api/auth/profile", map[string]string{}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/auth/profile", map[string]string{"name": "Rahul K.", "avatar": "https://img/avatar.png"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payload struct {
		User model.User `json:"user"`
	}
	decodeData(t, w, &payload)
	assert.Equal(t, "Rahul K.", payload.User.Name)
	assert.Equal(t, "https://img/avatar.png", payload.User.Avatar)
}

func TestListNewsHandler(t *testing.T) {
	env := setupTestRouter(t)

	tests := []struct {
		name      string
		query     string
		wantTotal int
	}{
		{"all published", "", 6},
		{"by category", "?category=events", 2},
		{"minimum priority", "?priority=4", 3},
		{"search title", "?search=library", 1},
		{"unknown category", "?category=sports", 0},
		{"anonymous cannot see drafts", "?status=draft", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/news"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var page model.NewsPage
			decodeData(t, w, &page)
			assert.Equal(t, tt.wantTotal, page.Pagination.Total)
			assert.Len(t, page.News, min(tt.wantTotal, DefaultPageSize))
		})
	}

	t.Run("pinned first then sort column", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/news?sort_by=priority&order=asc&limit=2&page=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var page model.NewsPage
		decodeData(t, w, &page)
		assert.Equal(t, model.Pagination{Page: 2, Limit: 2, Total: 6, TotalPages: 3}, page.Pagination)
		require.Len(t, page.News, 2)
		assert.True(t, page.News[0].IsPinned)
	})

	t.Run("invalid page", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/news?page=abc", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrorCodeValidationFailed, decodeEnvelope(t, w).Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/news?status=hidden", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListNewsHandler_StaffSeesDrafts(t *testing.T) {
	env := setupTestRouter(t)
	faculty := env.tokenFor(t, facultyEmail)

	w := env.do(t, http.MethodPost, "/api/news", CreateNewsRequest{
		Title: "Draft circular", Description: "Not yet public", CategoryID: 3, Status: model.NewsStatusDraft,
	}, faculty)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var page model.NewsPage
	decodeData(t, env.do(t, http.MethodGet, "/api/news?status=draft", nil, faculty), &page)
	assert.Equal(t, 1, page.Pagination.Total)

	decodeData(t, env.do(t, http.MethodGet, "/api/news?status=all", nil, faculty), &page)
	assert.Equal(t, 7, page.Pagination.Total)

	decodeData(t, env.do(t, http.MethodGet, "/api/news", nil, ""), &page)
	assert.Equal(t, 6, page.Pagination.Total)
}

func TestPrioritizedNewsHandler(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, http.MethodGet, "/api/news/prioritized", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		News []model.News `json:"news"`
	}
	decodeData(t, w, &payload)
	require.Len(t, payload.News, 6)

	for i := 1; i < len(payload.News); i++ {
		prev, cur := payload.News[i-1], payload.News[i]
		if prev.IsPinned == cur.IsPinned {
			assert.GreaterOrEqual(t, prev.Priority, cur.Priority)
		} else {
			assert.True(t, prev.IsPinned, "pinned articles come first")
		}
	}
}

func TestGetNewsHandler(t *testing.T) {
	env := setupTestRouter(t)
	id := env.newsIDBySlug(t, "holi-holiday-2024")

	w := env.do(t, http.MethodGet, "/api/news/holi-holiday-2024", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		News model.News `json:"news"`
	}
	decodeData(t, w, &payload)
	assert.Equal(t, id, payload.News.ID)
	assert.Equal(t, 1, payload.News.Views)
	assert.Equal(t, adminEmail, payload.News.AuthorEmail)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/news/%d", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &payload)
	assert.Equal(t, 2, payload.News.Views)

	w = env.do(t, http.MethodGet, "/api/news/no-such-article", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	got := decodeEnvelope(t, w)
	assert.Equal(t, ErrorCodeNotFound, got.Code)
	assert.False(t, got.Success)
}

func TestCreateNewsHandler(t *testing.T) {
	env := setupTestRouter(t)
	faculty := env.tokenFor(t, facultyEmail)
	student := env.tokenFor(t, studentEmail)

	t.Run("students cannot publish", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/news", CreateNewsRequest{Title: "Hi", Description: "D", CategoryID: 1}, student)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("priority computed when omitted", func(t *testing.T) {
		req := CreateNewsRequest{
			Title:       "URGENT: Exam registration",
			Description: "Last date to register is 10/03/2024",
			Content:     "Late fee Rs. 500",
			CategoryID:  1,
		}
		w := env.do(t, http.MethodPost, "/api/news", req, faculty)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var payload struct {
			News model.News `json:"news"`
		}
		decodeData(t, w, &payload)
		assert.Equal(t, ranking.ComputePriority(req.Title, req.Description, req.Content), payload.News.Priority)
		assert.Equal(t, 5, payload.News.Priority)
		assert.True(t, strings.HasPrefix(payload.News.Slug, "urgent-exam-registration-"), payload.News.Slug)
		assert.Equal(t, model.NewsStatusPublished, payload.News.Status)
		assert.Equal(t, "Dr. Sharma", payload.News.AuthorName)
	})

	t.Run("explicit priority kept", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/news", CreateNewsRequest{
			Title: "URGENT exam", Description: "deadline", CategoryID: 1, Priority: 2,
		}, faculty)
		require.Equal(t, http.StatusCreated, w.Code)

		var payload struct {
			News model.News `json:"news"`
		}
		decodeData(t, w, &payload)
		assert.Equal(t, 2, payload.News.Priority)
	})

	t.Run("same title twice gets distinct slugs", func(t *testing.T) {
		req := CreateNewsRequest{Title: "Repeat", Description: "Twice", CategoryID: 2}
		first := env.do(t, http.MethodPost, "/api/news", req, faculty)
		second := env.do(t, http.MethodPost, "/api/news", req, faculty)
		require.Equal(t, http.StatusCreated, first.Code)
		require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
	})

	tests := []struct {
		name      string
		body      interface{}
		wantField string
	}{
		{"missing category", CreateNewsRequest{Title: "T", Description: "D"}, "category_id"},
		{"unknown category", CreateNewsRequest{Title: "T", Description: "D", CategoryID: 999}, "category_id"},
		{"priority out of range", CreateNewsRequest{Title: "T", Description: "D", CategoryID: 1, Priority: 9}, "priority"},
		{"missing title", CreateNewsRequest{Description: "D", CategoryID: 1}, "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/news", tt.body, faculty)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			got := decodeEnvelope(t, w)
			assert.Equal(t, ErrorCodeValidationFailed, got.Code)
			require.NotEmpty(t, got.Details)
			assert.Equal(t, tt.wantField, got.Details[0].Field)
		})
	}
}

func TestUpdateAndDeleteNewsHandlers(t *testing.T) {
	env := setupTestRouter(t)
	admin := env.tokenFor(t, adminEmail)
	faculty := env.tokenFor(t, facultyEmail)

	adminArticle := env.newsIDBySlug(t, "end-semester-exam-schedule-2024")
	facultyArticle := env.newsIDBySlug(t, "ml-workshop-fundamentals")

	tests := []struct {
		name           string
		method         string
		id             string
		body           interface{}
		token          string
		expectedStatus int
	}{
		{"faculty cannot edit admin article", http.MethodPut, fmt.Sprint(adminArticle), map[string]interface{}{"priority": 1}, faculty, http.StatusForbidden},
		{"faculty edits own article", http.MethodPut, fmt.Sprint(facultyArticle), map[string]interface{}{"priority": 5, "is_pinned": true}, faculty, http.StatusOK},
		{"empty update", http.MethodPut, fmt.Sprint(facultyArticle), map[string]interface{}{}, faculty, http.StatusBadRequest},
		{"unknown category", http.MethodPut, fmt.Sprint(facultyArticle), map[string]interface{}{"category_id": 999}, faculty, http.StatusBadRequest},
		{"missing article", http.MethodPut, "9999", map[string]interface{}{"title": "x"}, admin, http.StatusNotFound},
		{"non numeric id", http.MethodPut, "abc", map[string]interface{}{"title": "x"}, admin, http.StatusBadRequest},
		{"faculty cannot delete admin article", http.MethodDelete, fmt.Sprint(adminArticle), nil, faculty, http.StatusForbidden},
		{"admin deletes any article", http.MethodDelete, fmt.Sprint(facultyArticle), nil, admin, http.StatusOK},
		{"deleted article is gone", http.MethodDelete, fmt.Sprint(facultyArticle), nil, admin, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, tt.method, "/api/news/"+tt.id, tt.body, tt.token)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/news/%d", facultyArticle), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyzeNewsHandler(t *testing.T) {
	env := setupTestRouter(t)
	faculty := env.tokenFor(t, facultyEmail)

	t.Run("shouted deadline", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/news/analyze", AnalyzeRequest{Title: "DEADLINE"}, faculty)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result AnalysisResult
		decodeData(t, w, &result)
		assert.Equal(t, 4, result.PriorityLevel)
		assert.Equal(t, 7, result.RawScore)
		assert.Equal(t, []ranking.Signal{ranking.SignalDeadline, ranking.SignalTitleEmphasis}, result.Signals)
		assert.Equal(t, ranking.DefaultCategory, result.SuggestedCategory.CategorySlug)
		assert.NotEmpty(t, result.AnalysisID)
		require.NotNil(t, result.Category)
		assert.Equal(t, "Announcements", result.Category.Name)
	})

	t.Run("academic text", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/news/analyze", AnalyzeRequest{
			Title: "Exam schedule released", Description: "for the semester",
		}, faculty)
		require.Equal(t, http.StatusOK, w.Code)

		var result AnalysisResult
		decodeData(t, w, &result)
		assert.Equal(t, ranking.CategoryAcademics, result.SuggestedCategory.CategorySlug)
		assert.Equal(t, 2, result.SuggestedCategory.MatchCount)
		require.NotNil(t, result.Category)
		assert.Equal(t, ranking.CategoryAcademics, result.Category.Slug)
	})

	t.Run("nothing stored", func(t *testing.T) {
		page, err := env.store.ListNews(context.Background(), model.NewsFilter{})
		require.NoError(t, err)
		assert.Equal(t, 6, page.Pagination.Total)
	})

	t.Run("empty text", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/news/analyze", AnalyzeRequest{}, faculty)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("students refused", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/news/analyze", AnalyzeRequest{Title: "x"}, env.tokenFor(t, studentEmail))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCategoryHandlers(t *testing.T) {
	env := setupTestRouter(t)
	admin := env.tokenFor(t, adminEmail)
	faculty := env.tokenFor(t, facultyEmail)

	t.Run("list", func(t *testing.T) {
		var payload struct {
			Categories []model.Category `json:"categories"`
		}
		decodeData(t, env.do(t, http.MethodGet, "/api/categories", nil, ""), &payload)
		require.Len(t, payload.Categories, 5)
		assert.Equal(t, "Academics", payload.Categories[0].Name)
	})

	t.Run("get by slug with news", func(t *testing.T) {
		var payload struct {
			Category   model.Category   `json:"category"`
			News       []model.News     `json:"news"`
			Pagination model.Pagination `json:"pagination"`
		}
		decodeData(t, env.do(t, http.MethodGet, "/api/categories/events?limit=1", nil, ""), &payload)
		assert.Equal(t, "Events", payload.Category.Name)
		assert.Len(t, payload.News, 1)
		assert.Equal(t, 2, payload.Pagination.Total)
	})

	t.Run("missing slug", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/categories/sports", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	var created model.Category
	t.Run("create", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/categories", CategoryRequest{Name: "Sports & Games"}, admin)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var payload struct {
			Category model.Category `json:"category"`
		}
		decodeData(t, w, &payload)
		created = payload.Category
		assert.Equal(t, "sports-games", created.Slug)
		assert.Equal(t, model.DefaultCategoryIcon, created.Icon)
	})

	t.Run("duplicate", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/categories", CategoryRequest{Name: "Sports & Games"}, admin)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("faculty cannot create", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/categories", CategoryRequest{Name: "Clubs"}, faculty)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := env.do(t, http.MethodPut, fmt.Sprintf("/api/categories/%d", created.ID), map[string]string{"color": "#000000"}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "#000000")

		w = env.do(t, http.MethodPut, fmt.Sprintf("/api/categories/%d", created.ID), map[string]string{}, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete refused while articles remain", func(t *testing.T) {
		academics, err := env.store.GetCategoryBySlug(context.Background(), "academics")
		require.NoError(t, err)

		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/categories/%d", academics.ID), nil, admin)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrorCodeConflict, decodeEnvelope(t, w).Code)
	})

	t.Run("delete empty category", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/categories/%d", created.ID), nil, admin)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/categories/%d", created.ID), nil, admin)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAlumniHandlers(t *testing.T) {
	env := setupTestRouter(t)
	admin := env.tokenFor(t, adminEmail)

	var alumni []model.AlumniProfile
	decodeData(t, env.do(t, http.MethodGet, "/api/alumni/spotlights", nil, ""), &alumni)
	require.Len(t, alumni, 4)
	mentor := alumni[0]

	t.Run("create spotlight", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/alumni/spotlights", model.AlumniProfile{Name: "Kavya", BatchYear: 2019, Company: "Adobe"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created model.AlumniProfile
		decodeData(t, w, &created)
		assert.Equal(t, model.DefaultBranch, created.Branch)

		w = env.do(t, http.MethodPost, "/api/alumni/spotlights", model.AlumniProfile{Name: "No Year"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mentorship", func(t *testing.T) {
		request := model.MentorshipRequest{StudentName: "Rahul", StudentEmail: "rahul@upes.ac.in", AlumniID: mentor.ID, Topic: "System design"}
		w := env.do(t, http.MethodPost, "/api/alumni/mentorship", request, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		request.AlumniID = 9999
		w = env.do(t, http.MethodPost, "/api/alumni/mentorship", request, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = env.do(t, http.MethodGet, "/api/alumni/mentorship", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var requests []model.MentorshipRequest
		decodeData(t, env.do(t, http.MethodGet, "/api/alumni/mentorship", nil, admin), &requests)
		require.Len(t, requests, 1)
		assert.Equal(t, mentor.Name, requests[0].AlumniName)
		assert.Equal(t, model.MentorshipPending, requests[0].Status)
	})

	t.Run("industry posts", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/alumni/industry-posts", model.IndustryPost{AlumniID: mentor.ID, Title: "Hiring", Content: "We are hiring interns", Tags: "AI"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var post model.IndustryPost
		decodeData(t, w, &post)

		var filtered []model.IndustryPost
		decodeData(t, env.do(t, http.MethodGet, "/api/alumni/industry-posts?tag=AI", nil, ""), &filtered)
		for _, p := range filtered {
			assert.Equal(t, "AI", p.Tags)
		}

		var likes struct {
			Likes int `json:"likes"`
		}
		decodeData(t, env.do(t, http.MethodPost, fmt.Sprintf("/api/alumni/industry-posts/%d/like", post.ID), nil, ""), &likes)
		assert.Equal(t, 1, likes.Likes)

		w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/alumni/industry-posts/%d", post.ID), nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/alumni/industry-posts/%d", post.ID), nil, admin)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("questions and answers", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/alumni/questions", model.Question{StudentName: "Rahul", Question: "How to prepare for interviews?"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var question model.Question
		decodeData(t, w, &question)
		assert.Empty(t, question.Answers)

		w = env.do(t, http.MethodPost, fmt.Sprintf("/api/alumni/questions/%d/answer", question.ID), model.Answer{AlumniID: mentor.ID, Answer: "Practice daily"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = env.do(t, http.MethodPost, "/api/alumni/questions/9999/answer", model.Answer{AlumniID: mentor.ID, Answer: "?"}, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var questions []model.Question
		decodeData(t, env.do(t, http.MethodGet, "/api/alumni/questions", nil, ""), &questions)
		found := false
		for _, q := range questions {
			if q.ID == question.ID {
				found = true
				require.Len(t, q.Answers, 1)
				assert.Equal(t, "Practice daily", q.Answers[0].Answer)
			}
		}
		assert.True(t, found)
	})
}

func TestClubHandlers(t *testing.T) {
	env := setupTestRouter(t)
	admin := env.tokenFor(t, adminEmail)

	var tech []model.Club
	decodeData(t, env.do(t, http.MethodGet, "/api/clubs?category=Tech", nil, ""), &tech)
	require.Len(t, tech, 2)

	var club model.ClubWithPosts
	decodeData(t, env.do(t, http.MethodGet, "/api/clubs/codecraft", nil, ""), &club)
	assert.Equal(t, "CodeCraft", club.Name)

	w := env.do(t, http.MethodGet, "/api/clubs/no-such-club", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, "/api/clubs", model.Club{Name: "Chess Circle", Category: "Games"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var chess model.Club
	decodeData(t, w, &chess)
	assert.Equal(t, "chess-circle", chess.Slug)

	w = env.do(t, http.MethodPost, "/api/clubs", model.Club{Name: "Chess Circle"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPost, "/api/clubs/posts/create", model.ClubPost{ClubID: chess.ID, Title: "Blitz night", Content: "Friday 6pm", PostType: model.ClubPostEvent}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post model.ClubPost
	decodeData(t, w, &post)
	assert.Equal(t, "Chess Circle", post.ClubName)

	var clubPosts []model.ClubPost
	decodeData(t, env.do(t, http.MethodGet, fmt.Sprintf("/api/clubs/%d/posts?type=event", chess.ID), nil, ""), &clubPosts)
	require.Len(t, clubPosts, 1)

	var feed []model.ClubPost
	decodeData(t, env.do(t, http.MethodGet, "/api/clubs/posts?limit=2", nil, ""), &feed)
	assert.Len(t, feed, 2)

	var likes struct {
		Likes int `json:"likes"`
	}
	decodeData(t, env.do(t, http.MethodPost, fmt.Sprintf("/api/clubs/posts/%d/like", post.ID), nil, ""), &likes)
	assert.Equal(t, 1, likes.Likes)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/clubs/posts/%d", post.ID), nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/clubs/%d", chess.ID), nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/clubs/%d", chess.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResearchHandlers(t *testing.T) {
	env := setupTestRouter(t)
	admin := env.tokenFor(t, adminEmail)
	faculty := env.tokenFor(t, facultyEmail)
	student := env.tokenFor(t, studentEmail)

	paper := model.ResearchPaper{Title: "Graph ranking", Abstract: "We rank graphs.", JournalConference: "ICML"}

	w := env.do(t, http.MethodPost, "/api/research/papers", paper, student)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/research/papers", paper, faculty)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.ResearchPaper
	decodeData(t, w, &created)
	assert.Equal(t, "Dr. Sharma", created.AuthorName)

	var cited struct {
		CitationCount int `json:"citation_count"`
	}
	decodeData(t, env.do(t, http.MethodPost, fmt.Sprintf("/api/research/papers/%d/cite", created.ID), nil, ""), &cited)
	assert.Equal(t, 1, cited.CitationCount)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/research/papers/%d", created.ID), nil, student)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/research/papers/%d", created.ID), nil, faculty)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/research/achievements", model.Achievement{Title: "Hackathon win", Description: "First place"}, student)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var achievement model.Achievement
	decodeData(t, w, &achievement)
	assert.Equal(t, "Rahul Kumar", achievement.StudentName)
	assert.False(t, achievement.VerifiedByDept)

	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/research/achievements/%d/congratulate", achievement.ID), nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var claps struct {
		ClapsCount int `json:"claps_count"`
	}
	decodeData(t, env.do(t, http.MethodPost, fmt.Sprintf("/api/research/achievements/%d/congratulate", achievement.ID), nil, faculty), &claps)
	assert.Equal(t, 1, claps.ClapsCount)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/research/achievements/%d", achievement.ID), nil, faculty)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/research/achievements/%d", achievement.ID), nil, admin)
	assert.Equal(t, http.StatusOK, w.Code)

	var leaderboard model.Leaderboard
	decodeData(t, env.do(t, http.MethodGet, "/api/research/leaderboard", nil, ""), &leaderboard)
	require.NotEmpty(t, leaderboard.Researchers)
	assert.Equal(t, "Dr. Sharma", leaderboard.Researchers[0].Name)
	assert.LessOrEqual(t, len(leaderboard.Achievers), LeaderboardSize)
}
