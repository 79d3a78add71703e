package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	gameColumns = `id, owner_id, title, genre, ambiance, keywords, references_text, universe_description,
        story_act1, story_act2, story_act3, has_dynamic_narrative, created_at, updated_at`

	createGameQuery = `
        INSERT INTO games (id, owner_id, title, genre, ambiance, keywords, references_text, universe_description,
            story_act1, story_act2, story_act3, has_dynamic_narrative, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`
	getGameByIDQuery          = `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	getGameByIDForUpdateQuery = `SELECT ` + gameColumns + ` FROM games WHERE id = $1 FOR UPDATE`
	listGamesByOwnerQuery     = `SELECT ` + gameColumns + ` FROM games WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	setDynamicNarrativeQuery  = `UPDATE games SET has_dynamic_narrative = $2 WHERE id = $1`
)

// updateActTextQueries is indexed by act number.
var updateActTextQueries = map[int]string{
	1: `UPDATE games SET story_act1 = $2 WHERE id = $1`,
	2: `UPDATE games SET story_act2 = $2 WHERE id = $1`,
	3: `UPDATE games SET story_act3 = $2 WHERE id = $1`,
}

type pgGameRepository struct {
	logger *zap.Logger
}

var _ interfaces.GameRepository = (*pgGameRepository)(nil)

// NewPgGameRepository creates the PostgreSQL game repository.
func NewPgGameRepository(logger *zap.Logger) interfaces.GameRepository {
	return &pgGameRepository{logger: logger.Named("PgGameRepo")}
}

func (r *pgGameRepository) Create(ctx context.Context, querier interfaces.DBTX, game *models.Game) error {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now().UTC()
	}
	game.UpdatedAt = game.CreatedAt
	logFields := []zap.Field{zap.Stringer("gameID", game.ID), zap.Stringer("ownerID", game.OwnerID)}
	r.logger.Debug("Creating game", logFields...)

	_, err := querier.Exec(ctx, createGameQuery,
		game.ID, game.OwnerID, game.Title, game.Genre, game.Ambiance, game.Keywords, game.References,
		game.UniverseDescription, game.StoryAct1, game.StoryAct2, game.StoryAct3, game.HasDynamicNarrative,
		game.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create game", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to create game: %w", err)
	}

	r.logger.Info("Game created", logFields...)
	return nil
}

func (r *pgGameRepository) GetByID(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Game, error) {
	return r.get(ctx, querier, getGameByIDQuery, id)
}

func (r *pgGameRepository) GetByIDForUpdate(ctx context.Context, querier interfaces.DBTX, id uuid.UUID) (*models.Game, error) {
	return r.get(ctx, querier, getGameByIDForUpdateQuery, id)
}

func (r *pgGameRepository) get(ctx context.Context, querier interfaces.DBTX, query string, id uuid.UUID) (*models.Game, error) {
	var game models.Game
	if err := pgxscan.Get(ctx, querier, &game, query, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Game not found", zap.Stringer("gameID", id))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get game", zap.Stringer("gameID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}
	return &game, nil
}

func (r *pgGameRepository) ListByOwner(ctx context.Context, querier interfaces.DBTX, ownerID uuid.UUID, limit, offset int) ([]*models.Game, error) {
	logFields := []zap.Field{zap.Stringer("ownerID", ownerID), zap.Int("limit", limit), zap.Int("offset", offset)}

	games := make([]*models.Game, 0)
	if err := pgxscan.Select(ctx, querier, &games, listGamesByOwnerQuery, ownerID, limit, offset); err != nil {
		r.logger.Error("Failed to list games", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	r.logger.Debug("Games listed", append(logFields, zap.Int("count", len(games)))...)
	return games, nil
}

func (r *pgGameRepository) UpdateActText(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, act int, text string) error {
	query, ok := updateActTextQueries[act]
	if !ok {
		return fmt.Errorf("%w: act %d out of range", models.ErrInvalidInput, act)
	}
	logFields := []zap.Field{zap.Stringer("gameID", id), zap.Int("act", act)}

	tag, err := querier.Exec(ctx, query, id, text)
	if err != nil {
		r.logger.Error("Failed to update act text", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to update act %d text: %w", act, err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Warn("Game not found for act text update", logFields...)
		return models.ErrNotFound
	}

	r.logger.Info("Act text updated", logFields...)
	return nil
}

func (r *pgGameRepository) SetDynamicNarrative(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, enabled bool) error {
	logFields := []zap.Field{zap.Stringer("gameID", id), zap.Bool("enabled", enabled)}

	tag, err := querier.Exec(ctx, setDynamicNarrativeQuery, id, enabled)
	if err != nil {
		r.logger.Error("Failed to set dynamic narrative flag", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to set dynamic narrative flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Info("Dynamic narrative flag updated", logFields...)
	return nil
}
