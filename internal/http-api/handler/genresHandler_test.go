package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/internal/http-api/handler"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) Counts(ctx context.Context, yearFrom, yearTo string) ([]models.GenreCount, error) {
	args := m.Called(ctx, yearFrom, yearTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GenreCount), args.Error(1)
}

func setupGenreRouter(mockService *MockGenreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	h := handler.NewGenreHandler(mockService)
	h.RegisterRoutes(r.Group("/api/genres"))
	return r
}

func TestGenreHandler_List(t *testing.T) {
	mockService := new(MockGenreService)
	r := setupGenreRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.On("Counts", mock.Anything, "1990", "2000").Return([]models.GenreCount{
			{Name: "Action", Count: 12},
			{Name: "Drama", Count: 30},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/genres?yearFrom=1990&yearTo=2000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "Action", response[0]["genre"])
		assert.Equal(t, float64(12), response[0]["count"])
	})

	t.Run("StoreUnavailableDegradesToEmpty", func(t *testing.T) {
		mockService.On("Counts", mock.Anything, "", "").
			Return(nil, repository.ErrStoreUnavailable).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/genres", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Empty(t, response)
	})
}
