//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gamestore/internal/domain/user"
	"gamestore/internal/handler/api"
	resdto "gamestore/internal/handler/dto/response"
	"gamestore/internal/usecase/queries"
	"gamestore/tests/common/httptest"
	queriesmock "gamestore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatisticsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockStatisticsQueries
	handler     *api.StatisticsHandler
}

func (s *StatisticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockStatisticsQueries(s.mockCtrl)
	s.handler = api.NewStatisticsHandler(s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.GET("/statistics/platform", authMiddleware, s.handler.GetPlatformStatistics)
	s.router.GET("/statistics/user/:id", authMiddleware, s.handler.GetUserStatistics)
}

func (s *StatisticsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatisticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(StatisticsHandlerTestSuite))
}

func (s *StatisticsHandlerTestSuite) TestGetPlatformStatistics() {
	url := "/statistics/platform"

	s.Run("success: returns the catalog aggregates", func() {
		view := &queries.PlatformStatsView{
			GeneratedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			TotalGames:   2,
			TotalValue:   decimal.RequireFromString("34.98"),
			AveragePrice: decimal.RequireFromString("17.49"),
			GamesByCategory: []queries.CategoryCount{
				{Category: "adventure", Count: 2},
			},
		}
		s.mockQueries.EXPECT().Platform(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PlatformStatisticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.TotalGames)
		s.Equal("34.98", response.TotalValue)
		s.Equal("17.49", response.AveragePrice)
		s.Len(response.GamesByCategory, 1)
		s.Equal("adventure", response.GamesByCategory[0].Category)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Platform(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *StatisticsHandlerTestSuite) TestGetUserStatistics() {
	userID := uuid.New()
	url := "/statistics/user/" + userID.String()

	s.Run("success: returns the user's library stats", func() {
		view := &queries.UserStatsView{
			GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			UserID:      userID,
			TotalGames:  1,
			Games:       []*queries.GameView{gameView("Hollow Knight")},
		}
		s.mockQueries.EXPECT().User(gomock.Any(), userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserStatisticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(userID, response.UserID)
		s.Equal(1, response.TotalGames)
		s.Len(response.Games, 1)
		s.Equal("Hollow Knight", response.Games[0].Name)
	})

	s.Run("success: empty library yields a zero count", func() {
		view := &queries.UserStatsView{
			GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			UserID:      userID,
			TotalGames:  0,
		}
		s.mockQueries.EXPECT().User(gomock.Any(), userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserStatisticsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.TotalGames)
		s.Empty(response.Games)
	})

	s.Run("error: 400 Bad Request on malformed user ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/statistics/user/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
