package service

import (
	"context"
	"errors"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type favoriteServiceImpl struct {
	db        interfaces.DBTX
	games     interfaces.GameRepository
	favorites interfaces.FavoriteRepository
	logger    *zap.Logger
}

var _ interfaces.FavoriteService = (*favoriteServiceImpl)(nil)

func NewFavoriteService(db interfaces.DBTX, games interfaces.GameRepository, favorites interfaces.FavoriteRepository, logger *zap.Logger) interfaces.FavoriteService {
	return &favoriteServiceImpl{
		db:        db,
		games:     games,
		favorites: favorites,
		logger:    logger.Named("FavoriteService"),
	}
}

// ToggleFavorite flips the favorite mark of one of the user's games.
func (s *favoriteServiceImpl) ToggleFavorite(ctx context.Context, userID, gameID uuid.UUID) (bool, error) {
	logFields := []zap.Field{zap.Stringer("userID", userID), zap.Stringer("gameID", gameID)}

	game, err := s.games.GetByID(ctx, s.db, gameID)
	if err != nil {
		return false, err
	}
	if game.OwnerID != userID {
		return false, models.ErrNotFound
	}

	exists, err := s.favorites.Exists(ctx, userID, gameID)
	if err != nil {
		return false, err
	}
	if exists {
		err = s.favorites.Remove(ctx, userID, gameID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return true, err
		}
		s.logger.Info("Game removed from favorites", logFields...)
		return false, nil
	}

	err = s.favorites.Add(ctx, userID, gameID)
	if err != nil && !errors.Is(err, models.ErrAlreadyExists) {
		return false, err
	}
	s.logger.Info("Game added to favorites", logFields...)
	return true, nil
}

func (s *favoriteServiceImpl) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Game, error) {
	return s.favorites.ListGames(ctx, userID)
}
