package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fitlog-be/internal/models"
	"fitlog-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserService struct {
	createFn func(req *models.CreateUserRequest) (*models.UserResponse, error)
	listFn   func() ([]*models.UserResponse, error)
}

func (m *mockUserService) CreateUser(req *models.CreateUserRequest) (*models.UserResponse, error) {
	if m.createFn != nil {
		return m.createFn(req)
	}
	return &models.UserResponse{ID: "u1", Username: req.Username}, nil
}

func (m *mockUserService) ListUsers() ([]*models.UserResponse, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []*models.UserResponse{}, nil
}

type mockExerciseService struct {
	addFn    func(req *models.AddExerciseRequest) (*models.AddExerciseResponse, error)
	getLogFn func(userID, from, to string, limit int) (*models.LogResponse, error)
}

func (m *mockExerciseService) AddExercise(req *models.AddExerciseRequest) (*models.AddExerciseResponse, error) {
	if m.addFn != nil {
		return m.addFn(req)
	}
	return &models.AddExerciseResponse{ID: req.UserID, Username: "alice", Description: req.Description}, nil
}

func (m *mockExerciseService) GetLog(userID, from, to string, limit int) (*models.LogResponse, error) {
	if m.getLogFn != nil {
		return m.getLogFn(userID, from, to, limit)
	}
	return &models.LogResponse{ID: userID, Log: []models.LogEntry{}}, nil
}

func newTestRouter(us service.UserService, es service.ExerciseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	uc := NewUserController(us)
	ec := NewExerciseController(es)

	api := router.Group("/api/exercise")
	{
		api.POST("/new-user", uc.CreateUser)
		api.GET("/users", uc.ListUsers)
		api.POST("/add", ec.AddExercise)
		api.GET("/log", ec.GetLog)
	}
	router.NoRoute(NotFound)

	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUserEndpoint(t *testing.T) {
	t.Run("form submission", func(t *testing.T) {
		var gotUsername string
		router := newTestRouter(&mockUserService{
			createFn: func(req *models.CreateUserRequest) (*models.UserResponse, error) {
				gotUsername = req.Username
				return &models.UserResponse{ID: "u1", Username: req.Username}, nil
			},
		}, &mockExerciseService{})

		w := postForm(router, "/api/exercise/new-user", url.Values{"username": {"alice"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", gotUsername)
		assert.JSONEq(t, `{"_id":"u1","username":"alice"}`, w.Body.String())
	})

	t.Run("json submission", func(t *testing.T) {
		router := newTestRouter(&mockUserService{}, &mockExerciseService{})

		req := httptest.NewRequest(http.MethodPost, "/api/exercise/new-user", strings.NewReader(`{"username":"bob"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"_id":"u1","username":"bob"}`, w.Body.String())
	})

	t.Run("validation error renders as plain text 400", func(t *testing.T) {
		router := newTestRouter(&mockUserService{
			createFn: func(req *models.CreateUserRequest) (*models.UserResponse, error) {
				return nil, &service.ValidationError{Field: "username", Message: "username is required"}
			},
		}, &mockExerciseService{})

		w := postForm(router, "/api/exercise/new-user", url.Values{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "username is required", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	})

	t.Run("store failure renders as plain text 500", func(t *testing.T) {
		router := newTestRouter(&mockUserService{
			createFn: func(req *models.CreateUserRequest) (*models.UserResponse, error) {
				return nil, errors.New("connection refused")
			},
		}, &mockExerciseService{})

		w := postForm(router, "/api/exercise/new-user", url.Values{"username": {"alice"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", w.Body.String())
	})
}

func TestListUsersEndpoint(t *testing.T) {
	router := newTestRouter(&mockUserService{
		listFn: func() ([]*models.UserResponse, error) {
			return []*models.UserResponse{
				{ID: "u1", Username: "alice"},
				{ID: "u2", Username: "bob"},
			}, nil
		},
	}, &mockExerciseService{})

	req := httptest.NewRequest(http.MethodGet, "/api/exercise/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"u1","username":"alice"},{"_id":"u2","username":"bob"}]`, w.Body.String())
}

func TestAddExerciseEndpoint(t *testing.T) {
	t.Run("form submission", func(t *testing.T) {
		var gotReq *models.AddExerciseRequest
		router := newTestRouter(&mockUserService{}, &mockExerciseService{
			addFn: func(req *models.AddExerciseRequest) (*models.AddExerciseResponse, error) {
				gotReq = req
				return &models.AddExerciseResponse{
					ID:          req.UserID,
					Username:    "alice",
					Description: req.Description,
					Duration:    *req.Duration,
					Date:        "Mon Jan 01 2024",
				}, nil
			},
		})

		w := postForm(router, "/api/exercise/add", url.Values{
			"userId":      {"u1"},
			"description": {"run"},
			"duration":    {"30"},
			"date":        {"2024-01-01"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, gotReq)
		assert.Equal(t, "u1", gotReq.UserID)
		assert.Equal(t, "run", gotReq.Description)
		require.NotNil(t, gotReq.Duration)
		assert.Equal(t, 30.0, *gotReq.Duration)
		assert.Equal(t, "2024-01-01", gotReq.Date)
		assert.JSONEq(t, `{"_id":"u1","username":"alice","description":"run","duration":30,"date":"Mon Jan 01 2024"}`, w.Body.String())
	})

	t.Run("missing duration is a 400", func(t *testing.T) {
		router := newTestRouter(&mockUserService{}, &mockExerciseService{
			addFn: func(req *models.AddExerciseRequest) (*models.AddExerciseResponse, error) {
				return nil, &service.ValidationError{Field: "duration", Message: "duration is required"}
			},
		})

		w := postForm(router, "/api/exercise/add", url.Values{
			"userId":      {"u1"},
			"description": {"run"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "duration is required", w.Body.String())
	})
}

func TestGetLogEndpoint(t *testing.T) {
	t.Run("query parameters are forwarded", func(t *testing.T) {
		var gotUserID, gotFrom, gotTo string
		var gotLimit int
		router := newTestRouter(&mockUserService{}, &mockExerciseService{
			getLogFn: func(userID, from, to string, limit int) (*models.LogResponse, error) {
				gotUserID, gotFrom, gotTo, gotLimit = userID, from, to, limit
				return &models.LogResponse{ID: userID, Limit: limit, Log: []models.LogEntry{}}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/exercise/log?userId=u1&from=2024-01-01&to=2024-02-01&limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", gotUserID)
		assert.Equal(t, "2024-01-01", gotFrom)
		assert.Equal(t, "2024-02-01", gotTo)
		assert.Equal(t, 5, gotLimit)
	})

	t.Run("malformed limit coerces to 0", func(t *testing.T) {
		var gotLimit int
		router := newTestRouter(&mockUserService{}, &mockExerciseService{
			getLogFn: func(userID, from, to string, limit int) (*models.LogResponse, error) {
				gotLimit = limit
				return &models.LogResponse{ID: userID, Log: []models.LogEntry{}}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/exercise/log?userId=u1&limit=abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, gotLimit)
	})

	t.Run("envelope shape", func(t *testing.T) {
		from := "Mon Jan 01 2024"
		router := newTestRouter(&mockUserService{}, &mockExerciseService{
			getLogFn: func(userID, _, _ string, limit int) (*models.LogResponse, error) {
				return &models.LogResponse{
					ID:       userID,
					Username: "alice",
					From:     &from,
					Limit:    0,
					Count:    1,
					Log: []models.LogEntry{
						{Description: "run", Duration: 30, Date: "Tue Jan 02 2024"},
					},
				}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/exercise/log?userId=u1&from=2024-01-01", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"_id": "u1",
			"username": "alice",
			"from": "Mon Jan 01 2024",
			"limit": 0,
			"count": 1,
			"log": [{"description":"run","duration":30,"date":"Tue Jan 02 2024"}]
		}`, w.Body.String())
	})
}

func TestUnmatchedRoute(t *testing.T) {
	router := newTestRouter(&mockUserService{}, &mockExerciseService{})

	req := httptest.NewRequest(http.MethodGet, "/api/exercise/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", w.Body.String())
}
