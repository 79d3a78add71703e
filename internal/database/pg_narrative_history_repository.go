package database

import (
	"context"
	"fmt"
	"time"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	appendHistoryQuery = `
        INSERT INTO narrative_history (id, game_id, act, choice_text, outcome_description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`
	listHistoryByGameQuery = `
        SELECT id, game_id, act, choice_text, outcome_description, created_at
        FROM narrative_history WHERE game_id = $1
        ORDER BY created_at, seq`
)

type pgNarrativeHistoryRepository struct {
	logger *zap.Logger
}

var _ interfaces.NarrativeHistoryRepository = (*pgNarrativeHistoryRepository)(nil)

// NewPgNarrativeHistoryRepository creates the PostgreSQL narrative ledger repository.
func NewPgNarrativeHistoryRepository(logger *zap.Logger) interfaces.NarrativeHistoryRepository {
	return &pgNarrativeHistoryRepository{logger: logger.Named("PgNarrativeHistoryRepo")}
}

// Append inserts entry. CreatedAt is assigned by the database.
func (r *pgNarrativeHistoryRepository) Append(ctx context.Context, querier interfaces.DBTX, entry *models.NarrativeHistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	logFields := []zap.Field{
		zap.Stringer("entryID", entry.ID),
		zap.Stringer("gameID", entry.GameID),
		zap.Int("act", entry.Act),
	}

	var createdAt time.Time
	err := querier.QueryRow(ctx, appendHistoryQuery,
		entry.ID, entry.GameID, entry.Act, entry.ChoiceText, entry.OutcomeDescription,
	).Scan(&createdAt)
	if err != nil {
		r.logger.Error("Failed to append narrative history", append(logFields, zap.Error(err))...)
		return fmt.Errorf("failed to append narrative history: %w", err)
	}
	entry.CreatedAt = createdAt

	r.logger.Info("Narrative history entry appended", logFields...)
	return nil
}

func (r *pgNarrativeHistoryRepository) ListByGame(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID) ([]*models.NarrativeHistoryEntry, error) {
	entries := make([]*models.NarrativeHistoryEntry, 0)
	if err := pgxscan.Select(ctx, querier, &entries, listHistoryByGameQuery, gameID); err != nil {
		r.logger.Error("Failed to list narrative history", zap.Stringer("gameID", gameID), zap.Error(err))
		return nil, fmt.Errorf("failed to list narrative history: %w", err)
	}
	return entries, nil
}
