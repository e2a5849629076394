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
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"
	"gamestore/tests/common/httptest"
	commandsmock "gamestore/tests/mock/commands"
	queriesmock "gamestore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGameCommands
	mockQueries  *queriesmock.MockGameQueries
	handler      *api.GameHandler
}

func (s *GameHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGameCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGameQueries(s.mockCtrl)
	s.handler = api.NewGameHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/games", authMiddleware, s.handler.ListGames)
	s.router.GET("/games/:name", authMiddleware, s.handler.GetGame)
	s.router.POST("/games", authMiddleware, s.handler.RegisterGame)
	s.router.PUT("/games/:name", authMiddleware, s.handler.UpdateGame)
	s.router.DELETE("/games/:name", authMiddleware, s.handler.DeactivateGame)
}

func (s *GameHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameHandlerSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}

func gameView(name string) *queries.GameView {
	return &queries.GameView{
		ID:          uuid.New(),
		Name:        name,
		Description: "A metroidvania set in a fallen kingdom",
		Price:       decimal.RequireFromString("14.99"),
		Category:    "adventure",
		Active:      true,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *GameHandlerTestSuite) TestRegisterGame() {
	url := "/games"
	reqBody := map[string]any{
		"name":        "Hollow Knight",
		"description": "A metroidvania set in a fallen kingdom",
		"price":       "14.99",
		"category":    "adventure",
	}

	s.Run("success: returns 201 Created with the registered game", func() {
		view := gameView("Hollow Knight")
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.GameResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Hollow Knight", response.Name)
		s.Equal("14.99", response.Price)
		s.True(response.Active)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		testCases := []string{"name", "description", "price", "category"}
		for _, field := range testCases {
			s.Run("missing "+field, func() {
				body := map[string]any{}
				for k, v := range reqBody {
					if k != field {
						body[k] = v
					}
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate name",
				commandsError:  commands.ErrGameAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already registered",
			},
			{
				name:           "invalid attributes",
				commandsError:  commands.ErrGameValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid game attributes",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *GameHandlerTestSuite) TestUpdateGame() {
	url := "/games/Hollow%20Knight"
	reqBody := map[string]any{
		"name":        "Hollow Knight: Voidheart Edition",
		"description": "The definitive edition",
		"price":       "19.99",
		"category":    "adventure",
	}

	s.Run("success: returns 200 OK with the updated game", func() {
		view := gameView("Hollow Knight: Voidheart Edition")
		s.mockCommands.EXPECT().Update(gomock.Any(), "Hollow Knight", gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.GameResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Hollow Knight: Voidheart Edition", response.Name)
	})

	s.Run("error: 404 Not Found for unknown game", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "Hollow Knight", gomock.Any()).
			Return(nil, queries.ErrGameNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Game not found")
	})

	s.Run("error: 400 Bad Request on invalid attributes", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "Hollow Knight", gomock.Any()).
			Return(nil, commands.ErrGameValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid game attributes")
	})

	s.Run("error: 409 Conflict when renaming onto an existing game", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), "Hollow Knight", gomock.Any()).
			Return(nil, commands.ErrGameAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})
}

func (s *GameHandlerTestSuite) TestDeactivateGame() {
	url := "/games/Hollow%20Knight"

	s.Run("success: returns 200 OK with the deactivated game", func() {
		view := gameView("Hollow Knight")
		view.Active = false
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), "Hollow Knight").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var response resdto.GameResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Active)
	})

	s.Run("error: 404 Not Found for unknown game", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), "Hollow Knight").
			Return(nil, queries.ErrGameNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Game not found")
	})
}

func (s *GameHandlerTestSuite) TestListGames() {
	url := "/games"

	s.Run("success: returns the active catalog", func() {
		views := []*queries.GameView{gameView("Hollow Knight"), gameView("Celeste")}
		s.mockQueries.EXPECT().ListActive(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.GameResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Hollow Knight", response[0].Name)
	})

	s.Run("error: 404 Not Found when the catalog is empty", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).
			Return(nil, queries.ErrNoGamesAvailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No games available")
	})
}

func (s *GameHandlerTestSuite) TestGetGame() {
	url := "/games/Celeste"

	s.Run("success: returns the game by name", func() {
		s.mockQueries.EXPECT().GetByName(gomock.Any(), "Celeste").
			Return(gameView("Celeste"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.GameResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Celeste", response.Name)
	})

	s.Run("error: 404 Not Found for unknown game", func() {
		s.mockQueries.EXPECT().GetByName(gomock.Any(), "Celeste").
			Return(nil, queries.ErrGameNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Game not found")
	})
}
