package handler

import "gameforge/internal/models"

type createGameRequest struct {
	Genre               models.Genre    `json:"genre" binding:"required"`
	Ambiance            models.Ambiance `json:"ambiance" binding:"required"`
	Keywords            string          `json:"keywords" binding:"required"`
	References          string          `json:"references"`
	HasDynamicNarrative bool            `json:"has_dynamic_narrative"`
}

func (r createGameRequest) toModel() models.CreateGameRequest {
	return models.CreateGameRequest{
		Genre:               r.Genre,
		Ambiance:            r.Ambiance,
		Keywords:            r.Keywords,
		References:          r.References,
		HasDynamicNarrative: r.HasDynamicNarrative,
	}
}

type listGamesQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

type narrativeModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type favoriteResponse struct {
	GameID     string `json:"game_id"`
	IsFavorite bool   `json:"is_favorite"`
}

type choicesResponse struct {
	Choices []*models.NarrativeChoiceOption `json:"choices"`
}

type optionsResponse struct {
	Genres    []models.Genre    `json:"genres"`
	Ambiances []models.Ambiance `json:"ambiances"`
}
