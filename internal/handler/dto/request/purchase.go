package request

type PurchaseRequest struct {
	GameName string `json:"game_name" binding:"required"`
}
