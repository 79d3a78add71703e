package handler

import (
	"errors"
	"net/http"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"
	"gameforge/internal/service"
	"gameforge/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIError is the JSON body of every error response.
type APIError struct {
	Message string `json:"message"`
}

// Handler serves the game API.
type Handler struct {
	games     interfaces.GameService
	narrative interfaces.NarrativeService
	favorites interfaces.FavoriteService
	export    interfaces.ExportService
	logger    *zap.Logger
}

func NewHandler(
	games interfaces.GameService,
	narrative interfaces.NarrativeService,
	favorites interfaces.FavoriteService,
	export interfaces.ExportService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		games:     games,
		narrative: narrative,
		favorites: favorites,
		export:    export,
		logger:    logger.Named("Handler"),
	}
}

// RegisterRoutes mounts /api/v1 behind auth. aiLimit guards the routes that
// call a generator and may be nil.
func (h *Handler) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc, aiLimit gin.HandlerFunc) {
	if aiLimit == nil {
		aiLimit = func(c *gin.Context) { c.Next() }
	}
	api := r.Group("/api/v1", auth)

	api.GET("/games", h.listGames)
	api.POST("/games", aiLimit, h.createGame)
	api.POST("/games/random", aiLimit, h.createRandomGame)
	api.GET("/games/:id", h.getGame)
	api.PATCH("/games/:id/narrative-mode", h.setNarrativeMode)
	api.POST("/games/:id/favorite", h.toggleFavorite)
	api.GET("/games/:id/export.pdf", h.exportPDF)
	api.GET("/favorites", h.listFavorites)

	api.GET("/games/:id/narrative", h.viewNarrative)
	api.POST("/games/:id/narrative/choices", aiLimit, h.regenerateChoices)
	api.POST("/games/:id/narrative/choices/:choice_id/select", aiLimit, h.commitChoice)
}

func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var status int
	var msg string
	switch {
	case errors.Is(err, service.ErrNarrativeDisabled):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrChoiceNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrNotFound):
		status, msg = http.StatusNotFound, "Resource not found or access denied"
	case errors.Is(err, service.ErrGeneratorUnavailable):
		status, msg = http.StatusServiceUnavailable, "Content generator is unavailable, please retry"
	case errors.Is(err, models.ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrForbidden):
		status, msg = http.StatusForbidden, "Forbidden"
	case errors.Is(err, models.ErrAlreadyExists):
		status, msg = http.StatusConflict, err.Error()
	default:
		// Includes ErrInvalidLedgerState, already logged by the service.
		h.logger.Error("Unhandled service error", zap.String("path", c.FullPath()), zap.Error(err))
		status, msg = http.StatusInternalServerError, "Internal server error"
	}
	c.AbortWithStatusJSON(status, APIError{Message: msg})
}

func (h *Handler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{Message: "Unauthorized"})
	}
	return id, ok
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
