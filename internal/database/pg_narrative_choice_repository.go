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
	choiceColumns = `id, game_id, act, choice_text, outcome_description, created_at`

	listChoicesByGameAndActQuery = `SELECT ` + choiceColumns + `
        FROM narrative_choices WHERE game_id = $1 AND act = $2
        ORDER BY position, created_at`
	getChoiceForGameQuery = `SELECT ` + choiceColumns + `
        FROM narrative_choices WHERE id = $1 AND game_id = $2`
	deleteChoicesByGameAndActQuery = `DELETE FROM narrative_choices WHERE game_id = $1 AND act = $2`
	insertChoiceQuery              = `
        INSERT INTO narrative_choices (id, game_id, act, choice_text, outcome_description, created_at, position)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

type pgNarrativeChoiceRepository struct {
	logger *zap.Logger
}

var _ interfaces.NarrativeChoiceRepository = (*pgNarrativeChoiceRepository)(nil)

// NewPgNarrativeChoiceRepository creates the PostgreSQL pending choice repository.
func NewPgNarrativeChoiceRepository(logger *zap.Logger) interfaces.NarrativeChoiceRepository {
	return &pgNarrativeChoiceRepository{logger: logger.Named("PgNarrativeChoiceRepo")}
}

func (r *pgNarrativeChoiceRepository) ListByGameAndAct(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID, act int) ([]*models.NarrativeChoiceOption, error) {
	options := make([]*models.NarrativeChoiceOption, 0)
	if err := pgxscan.Select(ctx, querier, &options, listChoicesByGameAndActQuery, gameID, act); err != nil {
		r.logger.Error("Failed to list narrative choices",
			zap.Stringer("gameID", gameID), zap.Int("act", act), zap.Error(err))
		return nil, fmt.Errorf("failed to list narrative choices: %w", err)
	}
	return options, nil
}

func (r *pgNarrativeChoiceRepository) GetForGame(ctx context.Context, querier interfaces.DBTX, gameID, optionID uuid.UUID) (*models.NarrativeChoiceOption, error) {
	option := &models.NarrativeChoiceOption{}
	err := pgxscan.Get(ctx, querier, option, getChoiceForGameQuery, optionID, gameID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Narrative choice not found for game",
				zap.Stringer("gameID", gameID), zap.Stringer("optionID", optionID))
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get narrative choice",
			zap.Stringer("gameID", gameID), zap.Stringer("optionID", optionID), zap.Error(err))
		return nil, fmt.Errorf("failed to get narrative choice: %w", err)
	}
	return option, nil
}

func (r *pgNarrativeChoiceRepository) DeleteByGameAndAct(ctx context.Context, querier interfaces.DBTX, gameID uuid.UUID, act int) (int64, error) {
	tag, err := querier.Exec(ctx, deleteChoicesByGameAndActQuery, gameID, act)
	if err != nil {
		r.logger.Error("Failed to delete narrative choices",
			zap.Stringer("gameID", gameID), zap.Int("act", act), zap.Error(err))
		return 0, fmt.Errorf("failed to delete narrative choices: %w", err)
	}
	r.logger.Debug("Narrative choices deleted",
		zap.Stringer("gameID", gameID), zap.Int("act", act), zap.Int64("count", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

// CreateBatch inserts options in order. Position follows slice order so
// listings come back in the order the generator proposed them.
func (r *pgNarrativeChoiceRepository) CreateBatch(ctx context.Context, querier interfaces.DBTX, options []*models.NarrativeChoiceOption) error {
	now := time.Now().UTC()
	for i, opt := range options {
		if opt.ID == uuid.Nil {
			opt.ID = uuid.New()
		}
		if opt.CreatedAt.IsZero() {
			opt.CreatedAt = now
		}
		_, err := querier.Exec(ctx, insertChoiceQuery,
			opt.ID, opt.GameID, opt.Act, opt.ChoiceText, opt.OutcomeDescription, opt.CreatedAt, i,
		)
		if err != nil {
			r.logger.Error("Failed to insert narrative choice",
				zap.Stringer("gameID", opt.GameID), zap.Int("act", opt.Act), zap.Int("position", i), zap.Error(err))
			return fmt.Errorf("failed to insert narrative choice: %w", err)
		}
	}
	return nil
}
