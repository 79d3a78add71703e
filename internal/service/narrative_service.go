package service

import (
	"context"
	"errors"
	"fmt"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChoicesPerBatch is the number of options offered for an act.
const ChoicesPerBatch = 3

type narrativeServiceImpl struct {
	db        interfaces.DBTX
	txManager interfaces.TxManager
	games     interfaces.GameRepository
	history   interfaces.NarrativeHistoryRepository
	choices   interfaces.NarrativeChoiceRepository
	generator interfaces.ContentGenerator
	locker    interfaces.GameLocker
	notifier  interfaces.ClientNotifier
	logger    *zap.Logger
}

var _ interfaces.NarrativeService = (*narrativeServiceImpl)(nil)

// NewNarrativeService creates the narrative orchestrator. notifier may be nil.
func NewNarrativeService(
	db interfaces.DBTX,
	txManager interfaces.TxManager,
	games interfaces.GameRepository,
	history interfaces.NarrativeHistoryRepository,
	choices interfaces.NarrativeChoiceRepository,
	generator interfaces.ContentGenerator,
	locker interfaces.GameLocker,
	notifier interfaces.ClientNotifier,
	logger *zap.Logger,
) interfaces.NarrativeService {
	return &narrativeServiceImpl{
		db:        db,
		txManager: txManager,
		games:     games,
		history:   history,
		choices:   choices,
		generator: generator,
		locker:    locker,
		notifier:  notifier,
		logger:    logger.Named("NarrativeService"),
	}
}

func (s *narrativeServiceImpl) ViewState(ctx context.Context, ownerID, gameID uuid.UUID) (state *models.NarrativeState, err error) {
	defer func() { observeNarrative(opView, err) }()
	logFields := []zap.Field{zap.Stringer("gameID", gameID), zap.Stringer("ownerID", ownerID)}

	if _, err = s.loadNarrativeGame(ctx, s.db, ownerID, gameID); err != nil {
		return nil, err
	}
	history, err := s.history.ListByGame(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}
	resolution, err := s.resolve(gameID, history)
	if err != nil {
		return nil, err
	}
	options, err := s.choices.ListByGameAndAct(ctx, s.db, gameID, resolution.Act)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Narrative state viewed", append(logFields,
		zap.Int("act", resolution.Act), zap.Int("pending", len(options)), zap.Int("history", len(history)))...)
	return &models.NarrativeState{
		GameID:         gameID,
		Act:            resolution.Act,
		ActName:        resolution.Name,
		PendingOptions: options,
		History:        history,
	}, nil
}

func (s *narrativeServiceImpl) RegenerateChoices(ctx context.Context, ownerID, gameID uuid.UUID) (options []*models.NarrativeChoiceOption, err error) {
	defer func() { observeNarrative(opRegenerate, err) }()
	logFields := []zap.Field{zap.Stringer("gameID", gameID), zap.Stringer("ownerID", ownerID)}

	release, err := s.locker.Acquire(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock game: %w", err)
	}
	defer release()

	game, err := s.loadNarrativeGame(ctx, s.db, ownerID, gameID)
	if err != nil {
		return nil, err
	}
	history, err := s.history.ListByGame(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}
	resolution, err := s.resolve(gameID, history)
	if err != nil {
		return nil, err
	}
	logFields = append(logFields, zap.Int("act", resolution.Act))

	nc := models.NewNarrativeContext(game, resolution.Act, history)
	proposed, err := s.generator.ProposeChoices(ctx, nc, ChoicesPerBatch)
	if err != nil {
		s.logger.Warn("Choice generation failed, keeping existing options", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("%w: %v", ErrGeneratorUnavailable, err)
	}
	if len(proposed) != ChoicesPerBatch {
		s.logger.Warn("Generator returned wrong number of choices, keeping existing options",
			append(logFields, zap.Int("count", len(proposed)))...)
		return nil, fmt.Errorf("%w: got %d choices, want %d", ErrGeneratorUnavailable, len(proposed), ChoicesPerBatch)
	}

	options = make([]*models.NarrativeChoiceOption, 0, len(proposed))
	for _, p := range proposed {
		options = append(options, &models.NarrativeChoiceOption{
			GameID:             gameID,
			Act:                resolution.Act,
			ChoiceText:         p.ChoiceText,
			OutcomeDescription: p.OutcomeDescription,
		})
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context, tx interfaces.DBTX) error {
		// The row lock serializes replacements even if the game lock expired
		// during generation.
		if _, err := s.loadNarrativeGameForUpdate(ctx, tx, ownerID, gameID); err != nil {
			return err
		}
		removed, err := s.choices.DeleteByGameAndAct(ctx, tx, gameID, resolution.Act)
		if err != nil {
			return err
		}
		s.logger.Debug("Previous choice batch removed", append(logFields, zap.Int64("removed", removed))...)
		return s.choices.CreateBatch(ctx, tx, options)
	})
	if err != nil {
		s.logger.Error("Failed to replace choice batch", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to replace choices: %w", err)
	}

	s.logger.Info("Choice batch regenerated", logFields...)
	return options, nil
}

// CommitChoice records the chosen option, clears its batch, then rewrites the
// act. The ledger write is committed before the rewrite runs and stays even
// when the rewrite fails. In that case the result is still returned, with
// RewriteApplied false and an error wrapping ErrRewriteNotApplied. A generator
// failure also wraps ErrGeneratorUnavailable.
func (s *narrativeServiceImpl) CommitChoice(ctx context.Context, ownerID, gameID, optionID uuid.UUID) (result *models.CommitResult, err error) {
	defer func() { observeNarrative(opCommit, err) }()
	logFields := []zap.Field{
		zap.Stringer("gameID", gameID),
		zap.Stringer("ownerID", ownerID),
		zap.Stringer("optionID", optionID),
	}

	release, err := s.locker.Acquire(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock game: %w", err)
	}
	defer release()

	var (
		game    *models.Game
		entry   *models.NarrativeHistoryEntry
		history []*models.NarrativeHistoryEntry
	)
	err = s.txManager.WithTx(ctx, func(ctx context.Context, tx interfaces.DBTX) error {
		var err error
		if game, err = s.loadNarrativeGameForUpdate(ctx, tx, ownerID, gameID); err != nil {
			return err
		}
		option, err := s.choices.GetForGame(ctx, tx, gameID, optionID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return ErrChoiceNotFound
			}
			return err
		}

		entry = &models.NarrativeHistoryEntry{
			GameID:             gameID,
			Act:                option.Act,
			ChoiceText:         option.ChoiceText,
			OutcomeDescription: option.OutcomeDescription,
		}
		if err := s.history.Append(ctx, tx, entry); err != nil {
			return err
		}
		if _, err := s.choices.DeleteByGameAndAct(ctx, tx, gameID, option.Act); err != nil {
			return err
		}
		history, err = s.history.ListByGame(ctx, tx, gameID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrChoiceNotFound) {
			s.logger.Warn("Commit of unknown or foreign choice", logFields...)
		} else if !errors.Is(err, models.ErrNotFound) && !errors.Is(err, ErrNarrativeDisabled) {
			s.logger.Error("Failed to commit choice", append(logFields, zap.Error(err))...)
		}
		return nil, err
	}
	logFields = append(logFields, zap.Stringer("entryID", entry.ID), zap.Int("act", entry.Act))
	s.logger.Info("Narrative choice committed", logFields...)

	resolution, err := s.resolve(gameID, history)
	if err != nil {
		return nil, err
	}
	result = &models.CommitResult{
		Game:    game,
		Entry:   entry,
		Act:     resolution.Act,
		ActName: resolution.Name,
	}
	defer s.notifyUpdated(ownerID, result)

	nc := models.NewNarrativeContext(game, entry.Act, history)
	text, err := s.generator.RewriteAct(ctx, nc, entry.Act)
	if err != nil {
		s.logger.Warn("Act rewrite failed, choice stays committed", append(logFields, zap.Error(err))...)
		return result, fmt.Errorf("%w: %w: %v", ErrRewriteNotApplied, ErrGeneratorUnavailable, err)
	}
	if err := s.games.UpdateActText(ctx, s.db, gameID, entry.Act, text); err != nil {
		s.logger.Error("Failed to store rewritten act, choice stays committed", append(logFields, zap.Error(err))...)
		return result, fmt.Errorf("%w: failed to store rewritten act: %w", ErrRewriteNotApplied, err)
	}
	game.SetActText(entry.Act, text)
	result.RewriteApplied = true

	s.logger.Info("Act rewritten", logFields...)
	return result, nil
}

func (s *narrativeServiceImpl) notifyUpdated(ownerID uuid.UUID, result *models.CommitResult) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyUser(ownerID, models.EventNarrativeUpdated, map[string]interface{}{
		"game_id":         result.Game.ID,
		"act":             result.Act,
		"act_name":        result.ActName,
		"rewrite_applied": result.RewriteApplied,
	})
}

// resolve wraps ResolveAct and logs an undefined ledger loudly.
func (s *narrativeServiceImpl) resolve(gameID uuid.UUID, history []*models.NarrativeHistoryEntry) (ActResolution, error) {
	resolution, err := ResolveAct(history)
	if err != nil {
		s.logger.Error("Narrative ledger in undefined state",
			zap.Stringer("gameID", gameID),
			zap.Ints("acts", ledgerActs(history)),
			zap.Int("entries", len(history)),
			zap.Error(err))
		return ActResolution{}, err
	}
	return resolution, nil
}

func (s *narrativeServiceImpl) loadNarrativeGame(ctx context.Context, q interfaces.DBTX, ownerID, gameID uuid.UUID) (*models.Game, error) {
	game, err := s.games.GetByID(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	return checkNarrativeGame(game, ownerID)
}

func (s *narrativeServiceImpl) loadNarrativeGameForUpdate(ctx context.Context, q interfaces.DBTX, ownerID, gameID uuid.UUID) (*models.Game, error) {
	game, err := s.games.GetByIDForUpdate(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	return checkNarrativeGame(game, ownerID)
}

func checkNarrativeGame(game *models.Game, ownerID uuid.UUID) (*models.Game, error) {
	if game.OwnerID != ownerID {
		return nil, models.ErrNotFound
	}
	if !game.HasDynamicNarrative {
		return nil, ErrNarrativeDisabled
	}
	return game, nil
}
