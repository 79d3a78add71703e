package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Titles used when the concept comes back without one.
const (
	DefaultGameTitle   = "Untitled Game"
	DefaultRandomTitle = "Random Game"
	randomGameKeywords = "adventure, mystery, magic"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type gameServiceImpl struct {
	db         interfaces.DBTX
	txManager  interfaces.TxManager
	games      interfaces.GameRepository
	characters interfaces.CharacterRepository
	locations  interfaces.LocationRepository
	favorites  interfaces.FavoriteRepository
	concepts   interfaces.ConceptGenerator
	publisher  interfaces.ImageTaskPublisher
	logger     *zap.Logger
}

var _ interfaces.GameService = (*gameServiceImpl)(nil)

// NewGameService creates the game service. A nil publisher disables image generation.
func NewGameService(
	db interfaces.DBTX,
	txManager interfaces.TxManager,
	games interfaces.GameRepository,
	characters interfaces.CharacterRepository,
	locations interfaces.LocationRepository,
	favorites interfaces.FavoriteRepository,
	concepts interfaces.ConceptGenerator,
	publisher interfaces.ImageTaskPublisher,
	logger *zap.Logger,
) interfaces.GameService {
	return &gameServiceImpl{
		db:         db,
		txManager:  txManager,
		games:      games,
		characters: characters,
		locations:  locations,
		favorites:  favorites,
		concepts:   concepts,
		publisher:  publisher,
		logger:     logger.Named("GameService"),
	}
}

func validateCreateRequest(req *models.CreateGameRequest) error {
	req.Keywords = strings.TrimSpace(req.Keywords)
	req.References = strings.TrimSpace(req.References)
	switch {
	case !req.Genre.Valid():
		return fmt.Errorf("%w: unknown genre '%s'", ErrInvalidInput, req.Genre)
	case !req.Ambiance.Valid():
		return fmt.Errorf("%w: unknown ambiance '%s'", ErrInvalidInput, req.Ambiance)
	case req.Keywords == "":
		return fmt.Errorf("%w: keywords are required", ErrInvalidInput)
	case utf8.RuneCountInString(req.Keywords) > models.MaxKeywordsLength:
		return fmt.Errorf("%w: keywords longer than %d characters", ErrInvalidInput, models.MaxKeywordsLength)
	case utf8.RuneCountInString(req.References) > models.MaxReferencesLength:
		return fmt.Errorf("%w: references longer than %d characters", ErrInvalidInput, models.MaxReferencesLength)
	}
	return nil
}

func (s *gameServiceImpl) CreateGame(ctx context.Context, ownerID uuid.UUID, req models.CreateGameRequest) (*models.GameDetails, error) {
	if err := validateCreateRequest(&req); err != nil {
		s.logger.Debug("Rejected game request", zap.Stringer("ownerID", ownerID), zap.Error(err))
		return nil, err
	}
	details, err := s.create(ctx, ownerID, req, DefaultGameTitle)
	if err == nil {
		gamesCreatedTotal.WithLabelValues("custom").Inc()
	}
	return details, err
}

func (s *gameServiceImpl) CreateRandomGame(ctx context.Context, ownerID uuid.UUID) (*models.GameDetails, error) {
	req := models.CreateGameRequest{
		Genre:    models.Genres[0],
		Ambiance: models.Ambiances[0],
		Keywords: randomGameKeywords,
	}
	details, err := s.create(ctx, ownerID, req, DefaultRandomTitle)
	if err == nil {
		gamesCreatedTotal.WithLabelValues("random").Inc()
	}
	return details, err
}

func (s *gameServiceImpl) create(ctx context.Context, ownerID uuid.UUID, req models.CreateGameRequest, defaultTitle string) (*models.GameDetails, error) {
	logFields := []zap.Field{
		zap.Stringer("ownerID", ownerID),
		zap.String("genre", string(req.Genre)),
		zap.String("ambiance", string(req.Ambiance)),
	}
	s.logger.Info("Generating game concept", logFields...)

	concept := s.concepts.GenerateConcept(ctx, models.ConceptRequest{
		Genre:      req.Genre,
		Ambiance:   req.Ambiance,
		Keywords:   req.Keywords,
		References: req.References,
	})

	title := strings.TrimSpace(concept.Title)
	if title == "" {
		title = defaultTitle
	}
	game := &models.Game{
		ID:                  uuid.New(),
		OwnerID:             ownerID,
		Title:               title,
		Genre:               req.Genre,
		Ambiance:            req.Ambiance,
		Keywords:            req.Keywords,
		References:          req.References,
		UniverseDescription: concept.UniverseDescription,
		StoryAct1:           concept.StoryAct1,
		StoryAct2:           concept.StoryAct2,
		StoryAct3:           concept.StoryAct3,
		HasDynamicNarrative: req.HasDynamicNarrative,
	}
	details := &models.GameDetails{
		Game:       game,
		Characters: make([]*models.Character, 0, len(concept.Characters)),
		Locations:  make([]*models.Location, 0, len(concept.Locations)),
	}
	for _, c := range concept.Characters {
		details.Characters = append(details.Characters, &models.Character{
			ID:         uuid.New(),
			GameID:     game.ID,
			Name:       c.Name,
			Role:       c.Role,
			Background: c.Background,
			Abilities:  c.Abilities,
		})
	}
	for _, l := range concept.Locations {
		details.Locations = append(details.Locations, &models.Location{
			ID:          uuid.New(),
			GameID:      game.ID,
			Name:        l.Name,
			Description: l.Description,
		})
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context, tx interfaces.DBTX) error {
		if err := s.games.Create(ctx, tx, game); err != nil {
			return err
		}
		for _, c := range details.Characters {
			if err := s.characters.Create(ctx, tx, c); err != nil {
				return err
			}
		}
		for _, l := range details.Locations {
			if err := s.locations.Create(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to persist game", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to persist game: %w", err)
	}

	logFields = append(logFields, zap.Stringer("gameID", game.ID))
	s.logger.Info("Game created", append(logFields,
		zap.Int("characters", len(details.Characters)), zap.Int("locations", len(details.Locations)))...)

	s.enqueueImages(ctx, details)
	return details, nil
}

// enqueueImages publishes one task per character and location. Publish
// failures only cost the illustration, never the game.
func (s *gameServiceImpl) enqueueImages(ctx context.Context, details *models.GameDetails) {
	if s.publisher == nil {
		return
	}
	game := details.Game
	tasks := make([]models.ImageTask, 0, len(details.Characters)+len(details.Locations))
	for _, c := range details.Characters {
		tasks = append(tasks, models.ImageTask{
			TaskID:    uuid.NewString(),
			OwnerID:   game.OwnerID,
			GameID:    game.ID,
			Subject:   models.ImageSubjectCharacter,
			SubjectID: c.ID,
			Name:      c.Name,
			Prompt:    CharacterImagePrompt(game, c),
		})
	}
	for _, l := range details.Locations {
		tasks = append(tasks, models.ImageTask{
			TaskID:    uuid.NewString(),
			OwnerID:   game.OwnerID,
			GameID:    game.ID,
			Subject:   models.ImageSubjectLocation,
			SubjectID: l.ID,
			Name:      l.Name,
			Prompt:    LocationImagePrompt(game, l),
		})
	}
	for _, task := range tasks {
		if err := s.publisher.PublishImageTask(ctx, task); err != nil {
			s.logger.Warn("Failed to enqueue image task",
				zap.Stringer("gameID", game.ID), zap.String("subject", string(task.Subject)),
				zap.Stringer("subjectID", task.SubjectID), zap.Error(err))
		}
	}
}

// CharacterImagePrompt describes a character portrait.
func CharacterImagePrompt(game *models.Game, c *models.Character) string {
	return fmt.Sprintf("Portrait of %s, a %s from a %s game with %s ambiance.",
		c.Name, c.Role, game.GenreName(), game.AmbianceName())
}

// LocationImagePrompt describes a location illustration.
func LocationImagePrompt(game *models.Game, l *models.Location) string {
	return fmt.Sprintf("%s from a %s game with %s ambiance, %s.",
		l.Name, game.GenreName(), game.AmbianceName(), game.Title)
}

func (s *gameServiceImpl) getOwnedGame(ctx context.Context, ownerID, gameID uuid.UUID) (*models.Game, error) {
	game, err := s.games.GetByID(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}
	if game.OwnerID != ownerID {
		s.logger.Warn("Access to foreign game", zap.Stringer("gameID", gameID), zap.Stringer("userID", ownerID))
		return nil, models.ErrNotFound
	}
	return game, nil
}

func (s *gameServiceImpl) GetGame(ctx context.Context, ownerID, gameID uuid.UUID) (*models.GameDetails, error) {
	game, err := s.getOwnedGame(ctx, ownerID, gameID)
	if err != nil {
		return nil, err
	}
	characters, err := s.characters.ListByGame(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.ListByGame(ctx, s.db, gameID)
	if err != nil {
		return nil, err
	}
	return &models.GameDetails{Game: game, Characters: characters, Locations: locations}, nil
}

func (s *gameServiceImpl) ListGames(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.GameSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	games, err := s.games.ListByOwner(ctx, s.db, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	favorited, err := s.favorites.FavoritedAmong(ctx, ownerID, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.GameSummary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, &models.GameSummary{Game: g, IsFavorite: favorited[g.ID]})
	}
	return summaries, nil
}

func (s *gameServiceImpl) SetDynamicNarrative(ctx context.Context, ownerID, gameID uuid.UUID, enabled bool) (*models.Game, error) {
	game, err := s.getOwnedGame(ctx, ownerID, gameID)
	if err != nil {
		return nil, err
	}
	if game.HasDynamicNarrative == enabled {
		return game, nil
	}
	if err := s.games.SetDynamicNarrative(ctx, s.db, gameID, enabled); err != nil {
		return nil, err
	}
	game.HasDynamicNarrative = enabled
	s.logger.Info("Dynamic narrative toggled", zap.Stringer("gameID", gameID), zap.Bool("enabled", enabled))
	return game, nil
}
