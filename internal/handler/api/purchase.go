package api

import (
	"errors"
	"net/http"

	reqdto "gamestore/internal/handler/dto/request"
	resdto "gamestore/internal/handler/dto/response"
	"gamestore/internal/handler/middleware"
	"gamestore/internal/usecase/commands"
	"gamestore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
}

func NewPurchaseHandler(purchaseCommands commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
	}
}

// @Summary Purchase game
// @Description Buy a game by name; settlement completes asynchronously
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 202 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.purchaseCommands.Purchase(c.Request.Context(), req.GameName, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPurchaseArgument):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid purchase request",
			})
		case errors.Is(err, queries.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Game not found",
			})
		case errors.Is(err, commands.ErrAlreadyOwned):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Game already owned",
			})
		case errors.Is(err, commands.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Insufficient funds",
			})
		case errors.Is(err, commands.ErrInvalidResolvedPrice):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Game price cannot be settled",
			})
		case errors.Is(err, commands.ErrWalletUnavailable),
			errors.Is(err, commands.ErrSettlementUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromPurchaseReceipt(receipt))
}
