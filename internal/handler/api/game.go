package api

import (
	"errors"
	"net/http"

	reqdto "gamestore/internal/handler/dto/request"
	resdto "gamestore/internal/handler/dto/response"
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameCommands commands.GameCommands
	gameQueries  queries.GameQueries
}

func NewGameHandler(gameCommands commands.GameCommands, gameQueries queries.GameQueries) *GameHandler {
	return &GameHandler{
		gameCommands: gameCommands,
		gameQueries:  gameQueries,
	}
}

// @Summary Register game
// @Description Register a new game in the catalog
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterGameRequest true "Game registration request"
// @Success 201 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games [post]
func (h *GameHandler) RegisterGame(c *gin.Context) {
	var req reqdto.RegisterGameRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.gameCommands.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGameAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Game already registered",
			})
		case errors.Is(err, commands.ErrGameValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid game attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGameView(view))
}

// @Summary Update game
// @Description Update an active game identified by its current name
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Current game name"
// @Param request body reqdto.UpdateGameRequest true "Game update request"
// @Success 200 {object} resdto.GameResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/{name} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	name := c.Param("name")

	var req reqdto.UpdateGameRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.gameCommands.Update(c.Request.Context(), name, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		case errors.Is(err, commands.ErrGameAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Game already registered",
			})
		case errors.Is(err, commands.ErrGameValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid game attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameView(view))
}

// @Summary Deactivate game
// @Description Deactivate a game so it disappears from the storefront
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param name path string true "Game name"
// @Success 200 {object} resdto.GameResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{name} [delete]
func (h *GameHandler) DeactivateGame(c *gin.Context) {
	name := c.Param("name")

	view, err := h.gameCommands.Deactivate(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameView(view))
}

// @Summary List games
// @Description List all active games in the catalog
// @Tags games
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GameResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	views, err := h.gameQueries.ListActive(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoGamesAvailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No games available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameViews(views))
}

// @Summary Get game
// @Description Get an active game by name
// @Tags games
// @Produce json
// @Security BearerAuth
// @Param name path string true "Game name"
// @Success 200 {object} resdto.GameResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /games/{name} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	name := c.Param("name")

	view, err := h.gameQueries.GetByName(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromGameView(view))
}
