package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) toggleFavorite(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	state, err := h.favorites.ToggleFavorite(c.Request.Context(), userID, gameID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, favoriteResponse{GameID: gameID.String(), IsFavorite: state})
}

func (h *Handler) listFavorites(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	games, err := h.favorites.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}
