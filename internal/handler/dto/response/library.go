package response

import (
	"gamestore/internal/usecase/queries"
)

type LibraryResponse struct {
	Games []*GameResponse `json:"games"`
}

func FromLibraryViews(views []*queries.GameView) *LibraryResponse {
	return &LibraryResponse{Games: FromGameViews(views)}
}
