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
	createLocationQuery = `
        INSERT INTO locations (id, game_id, name, description, image_path)
        VALUES ($1, $2, $3, $4, $5)`
	listLocationsByGameQuery = `
        SELECT id, game_id, name, description, image_path
        FROM locations WHERE game_id = $1 ORDER BY created_at, name`
	updateLocationImageQuery = `UPDATE locations SET image_path = $2 WHERE id = $1`
)

type pgLocationRepository struct {
	logger *zap.Logger
}

var _ interfaces.LocationRepository = (*pgLocationRepository)(nil)

// NewPgLocationRepository creates the PostgreSQL location repository.
func NewPgLocationRepository(logger *zap.Logger) interfaces.LocationRepository {
	return &pgLocationRepository{logger: logger.Named("PgLocationRepo")}
}

func (r *pgLocationRepository) Create(ctx context.Context, querier interfaces.DBTX, location *models.Location) error {
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	logFields := []zap.Field{zap.Stringer("locationID", location.ID), zap.Stringer("gameID", location.GameID)}

	_, err := querier.Exec(ctx, createLocationQuery,
		location.ID, location.GameID, location.Name, location.Description, location.ImagePath,
	)
	if err != nil {
		r.logger.Error("Failed to create location", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to create location: %w", err)
	}
	r.logger.Debug("Location created", logFields...)
	return nil
}

func (r *pgLocationRepository) ListByGame(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID) ([]*models.Location, error) {
	locations := make([]*models.Location, 0)
	if err := pgxscan.Select(ctx, querier, &locations, listLocationsByGameQuery, gameID); err != nil {
		r.logger.Error("Failed to list locations", zap.Stringer("gameID", gameID), zap.Error(err))
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (r *pgLocationRepository) UpdateImagePath(ctx context.Context, querier interfaces.DBTX, id uuid.UUID, imagePath string) error {
	tag, err := querier.Exec(ctx, updateLocationImageQuery, id, imagePath)
	if err != nil {
		r.logger.Error("Failed to update location image", zap.Stringer("locationID", id), zap.Error(err))
		return fmt.Errorf("failed to update location image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Warn("Location not found for image update", zap.Stringer("locationID", id))
		return models.ErrNotFound
	}
	return nil
}
