package response

import (
	"gamestore/internal/usecase/commands"

	"github.com/google/uuid"
)

// PurchaseResponse reports acceptance of the purchase: settlement and the
// library grant complete asynchronously.
type PurchaseResponse struct {
	UserID uuid.UUID `json:"user_id"`
	GameID uuid.UUID `json:"game_id"`
	Status string    `json:"status"`
}

func FromPurchaseReceipt(r *commands.PurchaseReceipt) *PurchaseResponse {
	return &PurchaseResponse{
		UserID: r.UserID,
		GameID: r.GameID,
		Status: "accepted",
	}
}
