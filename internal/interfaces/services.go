package interfaces

import (
	"context"
	"io"

	"gameforge/internal/models"

	"github.com/google/uuid"
)

// NarrativeService drives the dynamic narrative of a game.
type NarrativeService interface {
	ViewState(ctx context.Context, ownerID, gameID uuid.UUID) (*models.NarrativeState, error)
	RegenerateChoices(ctx context.Context, ownerID, gameID uuid.UUID) ([]*models.NarrativeChoiceOption, error)
	// CommitChoice may return a non-nil result together with an error when the
	// choice was recorded but the act rewrite failed.
	CommitChoice(ctx context.Context, ownerID, gameID, optionID uuid.UUID) (*models.CommitResult, error)
}

// GameService manages game concepts.
type GameService interface {
	CreateGame(ctx context.Context, ownerID uuid.UUID, req models.CreateGameRequest) (*models.GameDetails, error)
	CreateRandomGame(ctx context.Context, ownerID uuid.UUID) (*models.GameDetails, error)
	GetGame(ctx context.Context, ownerID, gameID uuid.UUID) (*models.GameDetails, error)
	ListGames(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.GameSummary, error)
	SetDynamicNarrative(ctx context.Context, ownerID, gameID uuid.UUID, enabled bool) (*models.Game, error)
}

// FavoriteService manages per-user favorites.
type FavoriteService interface {
	// ToggleFavorite returns the favorite state after the toggle.
	ToggleFavorite(ctx context.Context, userID, gameID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Game, error)
}

// ExportService renders games to documents.
type ExportService interface {
	// ExportGamePDF writes the PDF to w and returns a download file name.
	ExportGamePDF(ctx context.Context, ownerID, gameID uuid.UUID, w io.Writer) (string, error)
}

// ImageTaskHandler processes one image task from the queue.
type ImageTaskHandler interface {
	HandleImageTask(ctx context.Context, task models.ImageTask) error
}
