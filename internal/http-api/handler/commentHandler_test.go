package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/handler"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/http-api/service"
	"moviehub/internal/moderation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(ctx context.Context, movieID int64, author, text string) (*dto.CommentResponse, error) {
	args := m.Called(ctx, movieID, author, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) GetMovieComments(ctx context.Context, movieID int64) ([]dto.CommentResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

// --- SETUP ---

func setupCommentRouter(mockService *MockCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewCommentHandler(mockService)

	rg := r.Group("/api")
	h.RegisterRoutes(rg)
	return r
}

func postComment(r *gin.Engine, movieID string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/movies/"+movieID+"/comments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- TESTS ---

func TestCommentHandler_Create(t *testing.T) {
	mockService := new(MockCommentService)
	r := setupCommentRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		created := &dto.CommentResponse{
			ID:        "7d1e2c9a-0000-0000-0000-000000000000",
			Author:    "alice",
			Text:      "great movie",
			CreatedAt: time.Now().UTC(),
		}
		mockService.On("CreateComment", mock.Anything, int64(42), "alice", "great movie").
			Return(created, nil).Once()

		w := postComment(r, "42", dto.CreateCommentDTO{Author: "alice", Text: "great movie"})

		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, true, response["success"])
		comment := response["comment"].(map[string]interface{})
		assert.Equal(t, created.ID, comment["id"])
		assert.Equal(t, "alice", comment["author"])
	})

	t.Run("InvalidMovieID", func(t *testing.T) {
		w := postComment(r, "abc", dto.CreateCommentDTO{Text: "hello"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateComment")
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		mockService.On("CreateComment", mock.Anything, int64(42), "", "").
			Return(nil, service.ErrValidation).Once()

		w := postComment(r, "42", dto.CreateCommentDTO{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, false, response["success"])
	})

	t.Run("MovieNotFound", func(t *testing.T) {
		mockService.On("CreateComment", mock.Anything, int64(99), "", "hello").
			Return(nil, service.ErrMovieNotFound).Once()

		w := postComment(r, "99", dto.CreateCommentDTO{Text: "hello"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ModerationRejected", func(t *testing.T) {
		mockService.On("CreateComment", mock.Anything, int64(42), "", "nasty").
			Return(nil, &service.RejectedError{Reason: "hate", Message: "Comment flagged by moderation system"}).Once()

		w := postComment(r, "42", dto.CreateCommentDTO{Text: "nasty"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, false, response["success"])
		assert.Equal(t, "hate", response["reason"])
		assert.Equal(t, "Comment flagged by moderation system", response["error"])
	})

	t.Run("ClassifierUnavailable", func(t *testing.T) {
		mockService.On("CreateComment", mock.Anything, int64(42), "", "hello").
			Return(nil, moderation.ErrUnavailable).Once()

		w := postComment(r, "42", dto.CreateCommentDTO{Text: "hello"})

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("StoreWriteFailureIsNotSwallowed", func(t *testing.T) {
		mockService.On("CreateComment", mock.Anything, int64(42), "", "hello").
			Return(nil, assert.AnError).Once()

		w := postComment(r, "42", dto.CreateCommentDTO{Text: "hello"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var response map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, false, response["success"])
	})
}

func TestCommentHandler_ListByMovie(t *testing.T) {
	mockService := new(MockCommentService)
	r := setupCommentRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		now := time.Now().UTC()
		mockService.On("GetMovieComments", mock.Anything, int64(42)).Return([]dto.CommentResponse{
			{ID: "c2", Author: "bob", Text: "later", CreatedAt: now},
			{ID: "c1", Author: "alice", Text: "earlier", CreatedAt: now.Add(-time.Hour)},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/movies/42/comments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string][]dto.CommentResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response["comments"], 2)
		assert.Equal(t, "c2", response["comments"][0].ID)
	})

	t.Run("StoreUnavailableDegradesToEmpty", func(t *testing.T) {
		mockService.On("GetMovieComments", mock.Anything, int64(42)).
			Return(nil, repository.ErrStoreUnavailable).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/movies/42/comments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string][]dto.CommentResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Empty(t, response["comments"])
	})
}
