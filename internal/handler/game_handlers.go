package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"gameforge/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listGames(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var q listGamesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "Invalid pagination parameters"})
		return
	}
	games, err := h.games.ListGames(c.Request.Context(), userID, q.Limit, q.Offset)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *Handler) createGame(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "Invalid request body: " + err.Error()})
		return
	}
	details, err := h.games.CreateGame(c.Request.Context(), userID, req.toModel())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, details)
}

func (h *Handler) createRandomGame(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	details, err := h.games.CreateRandomGame(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, details)
}

func (h *Handler) getGame(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	details, err := h.games.GetGame(c.Request.Context(), userID, gameID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) setNarrativeMode(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req narrativeModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "Invalid request body: " + err.Error()})
		return
	}
	game, err := h.games.SetDynamicNarrative(c.Request.Context(), userID, gameID, *req.Enabled)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *Handler) exportPDF(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	// Buffered so a failure can still be reported as JSON.
	var buf bytes.Buffer
	filename, err := h.export.ExportGamePDF(c.Request.Context(), userID, gameID, &buf)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// Options lists the accepted genres and ambiances. It needs no authentication.
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, optionsResponse{Genres: models.Genres, Ambiances: models.Ambiances})
}
