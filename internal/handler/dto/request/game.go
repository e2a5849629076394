package request

import (
	"strings"

	"gamestore/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// Price is a pointer so a missing field fails required validation; a plain
// decimal.Decimal would silently bind as zero.
type RegisterGameRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"required"`
}

func (r RegisterGameRequest) ToParams() commands.GameParams {
	return commands.GameParams{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       *r.Price,
		Category:    strings.TrimSpace(r.Category),
	}
}

type UpdateGameRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"required"`
}

func (r UpdateGameRequest) ToParams() commands.GameParams {
	return commands.GameParams{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       *r.Price,
		Category:    strings.TrimSpace(r.Category),
	}
}
