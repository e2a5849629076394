package api

import (
	"net/http"

	resdto "gamestore/internal/handler/dto/response"
	"gamestore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatisticsHandler struct {
	statisticsQueries queries.StatisticsQueries
}

func NewStatisticsHandler(statisticsQueries queries.StatisticsQueries) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsQueries: statisticsQueries,
	}
}

// @Summary Platform statistics
// @Description Aggregate statistics over the active catalog
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PlatformStatisticsResponse
// @Failure 401 {object} map[string]string
// @Router /statistics/platform [get]
func (h *StatisticsHandler) GetPlatformStatistics(c *gin.Context) {
	view, err := h.statisticsQueries.Platform(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlatformStatsView(view))
}

// @Summary User statistics
// @Description Library statistics for a given user
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserStatisticsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /statistics/user/{id} [get]
func (h *StatisticsHandler) GetUserStatistics(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	view, err := h.statisticsQueries.User(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserStatsView(view))
}
