package api

import (
	"errors"
	"net/http"

	resdto "gamestore/internal/handler/dto/response"
	"gamestore/internal/handler/middleware"
	"gamestore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	libraryQueries queries.LibraryQueries
}

func NewLibraryHandler(libraryQueries queries.LibraryQueries) *LibraryHandler {
	return &LibraryHandler{
		libraryQueries: libraryQueries,
	}
}

// @Summary Get library
// @Description List the games owned by the current user
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.LibraryResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /library [get]
func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.libraryQueries.GamesOwnedBy(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEmptyLibrary):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Library is empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLibraryViews(views))
}
