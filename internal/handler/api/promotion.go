package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "gamestore/internal/handler/dto/request"
	resdto "gamestore/internal/handler/dto/response"
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionCommands commands.PromotionCommands
	promotionQueries  queries.PromotionQueries
}

func NewPromotionHandler(promotionCommands commands.PromotionCommands, promotionQueries queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{
		promotionCommands: promotionCommands,
		promotionQueries:  promotionQueries,
	}
}

// @Summary Create promotion
// @Description Create a promotion window with a flat discounted price
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Promotion request"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /promotions [post]
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.promotionCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPromotionValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid promotion attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPromotionView(view))
}

// @Summary Get active promotion
// @Description Get the promotion currently in effect, if any
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PromotionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promotions/active [get]
func (h *PromotionHandler) GetActivePromotion(c *gin.Context) {
	view, err := h.promotionQueries.Active(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoActivePromotion):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active promotion",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}

// @Summary Delete promotion
// @Description Remove a promotion by ID
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Promotion ID"
// @Success 204 {object} nil
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID format",
		})
		return
	}

	if err := h.promotionCommands.Remove(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrPromotionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Promotion not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
