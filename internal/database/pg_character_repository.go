package database

import (
	"context"
	"fmt"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	createCharacterQuery = `
        INSERT INTO characters (id, game_id, name, role, background, abilities, image_path)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	listCharactersByGameQuery = `
        SELECT id, game_id, name, role, background, abilities, image_path
        FROM characters WHERE game_id = $1 ORDER BY created_at, name`
	updateCharacterImageQuery = `UPDATE characters SET image_path = $2 WHERE id = $1`
)

type pgCharacterRepository struct {
	logger *zap.Logger
}

var _ interfaces.CharacterRepository = (*pgCharacterRepository)(nil)

// NewPgCharacterRepository creates the PostgreSQL character repository.
func NewPgCharacterRepository(logger *zap.Logger) interfaces.CharacterRepository {
	return &pgCharacterRepository{logger: logger.Named("PgCharacterRepo")}
}

func (r *pgCharacterRepository) Create(ctx context.Context, querier interfaces.DBTX, character *models.Character) error {
	if character.ID == uuid.Nil {
		character.ID = uuid.New()
	}
	logFields := []zap.Field{zap.Stringer("characterID", character.ID), zap.Stringer("gameID", character.GameID)}

	_, err := querier.Exec(ctx, createCharacterQuery,
		character.ID, character.GameID, character.Name, character.Role,
		character.Background, character.Abilities, character.ImagePath,
	)
	if err != nil {
		r.logger.Error("Failed to create character", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to create character: %w", err)
	}
	r.logger.Debug("Character created", logFields...)
	return nil
}

func (r *pgCharacterRepository) ListByGame(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID) ([]*models.Character, error) {
	characters := make([]*models.Character, 0)
	if err := pgxscan.Select(ctx, querier, &characters, listCharactersByGameQuery, gameID); err != nil {
		r.logger.Error("Failed to list characters", zap.Stringer("gameID", gameID), zap.Error(err))
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

func (r *pgCharacterRepository) UpdateImagePath(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, imagePath string) error {
	tag, err := querier.Exec(ctx, updateCharacterImageQuery, id, imagePath)
	if err != nil {
		r.logger.Error("Failed to update character image", zap.Stringer("characterID", id), zap.Error(err))
		return fmt.Errorf("failed to update character image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Warn("Character not found for image update", zap.Stringer("characterID", id))
		return models.ErrNotFound
	}
	return nil
}
