package handler

import (
	"errors"
	"net/http"

	"gameforge/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) viewNarrative(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	state, err := h.narrative.ViewState(c.Request.Context(), userID, gameID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) regenerateChoices(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	choices, err := h.narrative.RegenerateChoices(c.Request.Context(), userID, gameID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, choicesResponse{Choices: choices})
}

func (h *Handler) commitChoice(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	gameID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	optionID, ok := parseUUIDParam(c, "choice_id")
	if !ok {
		return
	}
	result, err := h.narrative.CommitChoice(c.Request.Context(), userID, gameID, optionID)
	if err != nil {
		// A result means the choice is recorded; only the act text is stale.
		if result != nil {
			h.logger.Warn("Choice committed without rewrite",
				zap.Stringer("gameID", gameID),
				zap.Bool("generatorUnavailable", errors.Is(err, service.ErrGeneratorUnavailable)),
				zap.Error(err))
			c.JSON(http.StatusOK, result)
			return
		}
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
