//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gamestore/internal/domain/user"
	"gamestore/internal/handler/api"
	resdto "gamestore/internal/handler/dto/response"
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"
	"gamestore/tests/common/httptest"
	commandsmock "gamestore/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	handler      *api.PurchaseHandler
	userID       uuid.UUID
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/purchases", authMiddleware, s.handler.Purchase)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestPurchase() {
	url := "/purchases"
	reqBody := map[string]any{"game_name": "Hollow Knight"}

	s.Run("success: returns 202 Accepted with receipt", func() {
		gameID := uuid.New()
		s.mockCommands.EXPECT().Purchase(gomock.Any(), "Hollow Knight", s.userID).
			Return(&commands.PurchaseReceipt{UserID: s.userID, GameID: gameID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal(s.userID, response.UserID)
		s.Equal(gameID, response.GameID)
		s.Equal("accepted", response.Status)
	})

	s.Run("error: 400 Bad Request when game_name is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
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
				name:           "invalid purchase argument",
				commandsError:  commands.ErrInvalidPurchaseArgument,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid purchase request",
			},
			{
				name:           "game not found",
				commandsError:  queries.ErrGameNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Game not found",
			},
			{
				name:           "already owned",
				commandsError:  commands.ErrAlreadyOwned,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Game already owned",
			},
			{
				name:           "insufficient funds",
				commandsError:  commands.ErrInsufficientFunds,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Insufficient funds",
			},
			{
				name:           "unsettleable price",
				commandsError:  commands.ErrInvalidResolvedPrice,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "cannot be settled",
			},
			{
				name:           "wallet unavailable",
				commandsError:  commands.ErrWalletUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "temporarily unavailable",
			},
			{
				name:           "settlement unavailable",
				commandsError:  commands.ErrSettlementUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "temporarily unavailable",
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
				s.mockCommands.EXPECT().Purchase(gomock.Any(), "Hollow Knight", s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
