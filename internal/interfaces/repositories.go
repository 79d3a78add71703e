package interfaces

import (
	"context"

	"gameforge/internal/models"

	"github.com/google/uuid"
)

// GameRepository persists games.
type GameRepository interface {
	Create(ctx context.Context, querier DBTX, game *models.Game) error
	GetByID(ctx context.Context, querier DBTX, id uuid.UUID) (*models.Game, error)
	// GetByIDForUpdate locks the game row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, querier DBTX, id uuid.UUID) (*models.Game, error)
	ListByOwner(ctx context.Context, querier DBTX, ownerID uuid.UUID, limit, offset int) ([]*models.Game, error)
	UpdateActText(ctx context.Context, querier DBTX, id uuid.UUID, act int, text string) error
	SetDynamicNarrative(ctx context.Context, querier DBTX, id uuid.UUID, enabled bool) error
}

// CharacterRepository persists game characters.
type CharacterRepository interface {
	Create(ctx context.Context, querier DBTX, character *models.Character) error
	ListByGame(ctx context.Context, querier DBTX, gameID uuid.UUID) ([]*models.Character, error)
	UpdateImagePath(ctx context.Context, querier DBTX, id uuid.UUID, imagePath string) error
}

// LocationRepository persists game locations.
type LocationRepository interface {
	Create(ctx context.Context, querier DBTX, location *models.Location) error
	ListByGame(ctx context.Context, querier DBTX, gameID uuid.UUID) ([]*models.Location, error)
	UpdateImagePath(ctx context.Context, querier DBTX, id uuid.UUID, imagePath string) error
}

// NarrativeHistoryRepository is the append-only ledger of committed choices.
type NarrativeHistoryRepository interface {
	Append(ctx context.Context, querier DBTX, entry *models.NarrativeHistoryEntry) error
	// ListByGame returns entries oldest first.
	ListByGame(ctx context.Context, querier DBTX, gameID uuid.UUID) ([]*models.NarrativeHistoryEntry, error)
}

// NarrativeChoiceRepository stores pending choice batches.
type NarrativeChoiceRepository interface {
	ListByGameAndAct(ctx context.Context, querier DBTX, gameID uuid.UUID, act int) ([]*models.NarrativeChoiceOption, error)
	// GetForGame returns models.ErrNotFound when the option does not exist or
	// belongs to another game.
	GetForGame(ctx context.Context, querier DBTX, gameID, optionID uuid.UUID) (*models.NarrativeChoiceOption, error)
	DeleteByGameAndAct(ctx context.Context, querier DBTX, gameID uuid.UUID, act int) (int64, error)
	CreateBatch(ctx context.Context, querier DBTX, options []*models.NarrativeChoiceOption) error
}

// FavoriteRepository stores per-user favorite games.
type FavoriteRepository interface {
	// Add returns models.ErrAlreadyExists for a duplicate and
	// models.ErrNotFound when the game does not exist.
	Add(ctx context.Context, userID, gameID uuid.UUID) error
	// Remove returns models.ErrNotFound when there was nothing to remove.
	Remove(ctx context.Context, userID, gameID uuid.UUID) error
	Exists(ctx context.Context, userID, gameID uuid.UUID) (bool, error)
	FavoritedAmong(ctx context.Context, userID uuid.UUID, gameIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	// ListGames returns favorited games, most recently favorited first.
	ListGames(ctx context.Context, userID uuid.UUID) ([]*models.Game, error)
}
