package database

import (
	"context"
	"errors"
	"fmt"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const (
	addFavoriteQuery      = `INSERT INTO favorites (user_id, game_id) VALUES ($1, $2)`
	removeFavoriteQuery   = `DELETE FROM favorites WHERE user_id = $1 AND game_id = $2`
	existsFavoriteQuery   = `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND game_id = $2)`
	favoritedAmongQuery   = `SELECT game_id FROM favorites WHERE user_id = $1 AND game_id = ANY($2::uuid[])`
	listFavoriteGameQuery = `
        SELECT g.id, g.owner_id, g.title, g.genre, g.ambiance, g.keywords, g.references_text, g.universe_description,
            g.story_act1, g.story_act2, g.story_act3, g.has_dynamic_narrative, g.created_at, g.updated_at
        FROM favorites f
        JOIN games g ON g.id = f.game_id
        WHERE f.user_id = $1
        ORDER BY f.created_at DESC`
)

type pgFavoriteRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

var _ interfaces.FavoriteRepository = (*pgFavoriteRepository)(nil)

// NewPgFavoriteRepository creates the PostgreSQL favorites repository.
func NewPgFavoriteRepository(db *pgxpool.Pool, logger *zap.Logger) interfaces.FavoriteRepository {
	return &pgFavoriteRepository{db: db, logger: logger.Named("PgFavoriteRepo")}
}

func (r *pgFavoriteRepository) Add(ctx context.Context, userID, gameID uuid.UUID) error {
	logFields := []zap.Field{zap.Stringer("userID", userID), zap.Stringer("gameID", gameID)}
	_, err := r.db.Exec(ctx, addFavoriteQuery, userID, gameID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				r.logger.Debug("Favorite already exists", logFields...)
				return models.ErrAlreadyExists
			case pgForeignKeyViolation:
				r.logger.Warn("Favorite refers to a missing game", logFields...)
				return models.ErrNotFound
			}
		}
		r.logger.Error("Failed to add favorite", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	r.logger.Info("Favorite added", logFields...)
	return nil
}

func (r *pgFavoriteRepository) Remove(ctx context.Context, userID, gameID uuid.UUID) error {
	logFields := []zap.Field{zap.Stringer("userID", userID), zap.Stringer("gameID", gameID)}
	tag, err := r.db.Exec(ctx, removeFavoriteQuery, userID, gameID)
	if err != nil {
		r.logger.Error("Failed to remove favorite", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	r.logger.Info("Favorite removed", logFields...)
	return nil
}

func (r *pgFavoriteRepository) Exists(ctx context.Context, userID, gameID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsFavoriteQuery, userID, gameID).Scan(&exists); err != nil {
		r.logger.Error("Failed to check favorite",
			zap.Stringer("userID", userID), zap.Stringer("gameID", gameID), zap.Error(err))
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// FavoritedAmong reports which of gameIDs the user has favorited.
// Games that are not favorites are absent from the map.
func (r *pgFavoriteRepository) FavoritedAmong(ctx context.Context, userID uuid.UUID, gameIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	result := make(map[uuid.UUID]bool, len(gameIDs))
	if len(gameIDs) == 0 {
		return result, nil
	}
	ids := make([]string, len(gameIDs))
	for i, id := range gameIDs {
		ids[i] = id.String()
	}

	var favorited []uuid.UUID
	if err := pgxscan.Select(ctx, r.db, &favorited, favoritedAmongQuery, userID, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to query favorites", zap.Stringer("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	for _, id := range favorited {
		result[id] = true
	}
	return result, nil
}

func (r *pgFavoriteRepository) ListGames(ctx context.Context, userID uuid.UUID) ([]*models.Game, error) {
	games := make([]*models.Game, 0)
	if err := pgxscan.Select(ctx, r.db, &games, listFavoriteGameQuery, userID); err != nil {
		r.logger.Error("Failed to list favorite games", zap.Stringer("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to list favorite games: %w", err)
	}
	return games, nil
}
