//go:build integration

package database_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gameforge/internal/database"
	"gameforge/internal/database/migrations"
	"gameforge/internal/interfaces"
	"gameforge/internal/lock"
	"gameforge/internal/mocks"
	"gameforge/internal/models"
	"gameforge/internal/service"
	pgdb "gameforge/pkg/database"
	"gameforge/pkg/migration"

	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *pgdb.Database

	games     interfaces.GameRepository
	chars     interfaces.CharacterRepository
	locs      interfaces.LocationRepository
	history   interfaces.NarrativeHistoryRepository
	choices   interfaces.NarrativeChoiceRepository
	favorites interfaces.FavoriteRepository
}

func TestPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		t.Skipf("docker client unavailable: %v", err)
	}
	defer cli.Close()
	if _, err := cli.Ping(context.Background()); err != nil {
		t.Skipf("docker daemon unavailable: %v", err)
	}
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("gameforge"),
		postgres.WithUsername("gameforge"),
		postgres.WithPassword("gameforge"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	logger := zap.NewNop()
	s.db, err = pgdb.Connect(ctx, pgdb.Config{DSN: dsn, MaxRetries: 5, RetryDelay: time.Second}, logger)
	s.Require().NoError(err)
	s.Require().NoError(migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, s.db.Pool, logger).Up())

	s.games = database.NewPgGameRepository(logger)
	s.chars = database.NewPgCharacterRepository(logger)
	s.locs = database.NewPgLocationRepository(logger)
	s.history = database.NewPgNarrativeHistoryRepository(logger)
	s.choices = database.NewPgNarrativeChoiceRepository(logger)
	s.favorites = database.NewPgFavoriteRepository(s.db.Pool, logger)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, err := s.db.Pool.Exec(context.Background(),
		`TRUNCATE games, characters, locations, favorites, narrative_history, narrative_choices CASCADE`)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) newGame(ownerID uuid.UUID, title string, dynamic bool) *models.Game {
	game := &models.Game{
		OwnerID:             ownerID,
		Title:               title,
		Genre:               models.Genres[0],
		Ambiance:            models.Ambiances[0],
		Keywords:            "ruins, survival",
		StoryAct1:           "Act one",
		StoryAct2:           "Act two",
		StoryAct3:           "Act three",
		HasDynamicNarrative: dynamic,
	}
	s.Require().NoError(s.games.Create(context.Background(), s.db.Pool, game))
	return game
}

func (s *PostgresIntegrationSuite) TestMigrationsRerunIsNoop() {
	migrator := migration.NewMigrator(migration.Config{MigrationsFS: migrations.FS}, s.db.Pool, zap.NewNop())
	s.Require().NoError(migrator.Up())

	var dirty bool
	s.Require().NoError(s.db.Pool.QueryRow(context.Background(), "SELECT dirty FROM schema_migrations").Scan(&dirty))
	s.False(dirty)
}

func (s *PostgresIntegrationSuite) TestGameRepository() {
	ctx := context.Background()
	owner := uuid.New()
	older := s.newGame(owner, "Older", false)
	time.Sleep(10 * time.Millisecond)
	newer := s.newGame(owner, "Newer", true)
	s.newGame(uuid.New(), "Someone else", false)

	got, err := s.games.GetByID(ctx, s.db.Pool, older.ID)
	s.Require().NoError(err)
	s.Equal("Older", got.Title)
	s.Equal(models.Genres[0], got.Genre)

	list, err := s.games.ListByOwner(ctx, s.db.Pool, owner, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(newer.ID, list[0].ID)

	s.Require().NoError(s.games.UpdateActText(ctx, s.db.Pool, older.ID, 2, "Rewritten"))
	got, err = s.games.GetByID(ctx, s.db.Pool, older.ID)
	s.Require().NoError(err)
	s.Equal("Rewritten", got.StoryAct2)
	s.Equal("Act one", got.StoryAct1)

	s.Require().NoError(s.games.SetDynamicNarrative(ctx, s.db.Pool, older.ID, true))

	_, err = s.games.GetByID(ctx, s.db.Pool, uuid.New())
	s.ErrorIs(err, models.ErrNotFound)
	s.ErrorIs(s.games.UpdateActText(ctx, s.db.Pool, uuid.New(), 1, "x"), models.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestCharactersAndLocations() {
	ctx := context.Background()
	game := s.newGame(uuid.New(), "Cast", false)

	hero := &models.Character{GameID: game.ID, Name: "Héros", Role: "Protagoniste"}
	s.Require().NoError(s.chars.Create(ctx, s.db.Pool, hero))
	place := &models.Location{GameID: game.ID, Name: "Monde initial"}
	s.Require().NoError(s.locs.Create(ctx, s.db.Pool, place))

	s.Require().NoError(s.chars.UpdateImagePath(ctx, s.db.Pool, hero.ID, "characters/character_Heros.jpg"))
	s.ErrorIs(s.locs.UpdateImagePath(ctx, s.db.Pool, uuid.New(), "locations/x.jpg"), models.ErrNotFound)

	chars, err := s.chars.ListByGame(ctx, s.db.Pool, game.ID)
	s.Require().NoError(err)
	s.Require().Len(chars, 1)
	s.Require().NotNil(chars[0].ImagePath)
	s.Equal("characters/character_Heros.jpg", *chars[0].ImagePath)

	locs, err := s.locs.ListByGame(ctx, s.db.Pool, game.ID)
	s.Require().NoError(err)
	s.Require().Len(locs, 1)
	s.Nil(locs[0].ImagePath)
}

func (s *PostgresIntegrationSuite) TestFavorites() {
	ctx := context.Background()
	user := uuid.New()
	a := s.newGame(uuid.New(), "A", false)
	b := s.newGame(uuid.New(), "B", false)

	s.Require().NoError(s.favorites.Add(ctx, user, a.ID))
	time.Sleep(10 * time.Millisecond)
	s.Require().NoError(s.favorites.Add(ctx, user, b.ID))
	s.ErrorIs(s.favorites.Add(ctx, user, a.ID), models.ErrAlreadyExists)
	s.ErrorIs(s.favorites.Add(ctx, user, uuid.New()), models.ErrNotFound)

	among, err := s.favorites.FavoritedAmong(ctx, user, []uuid.UUID{a.ID, uuid.New()})
	s.Require().NoError(err)
	s.Equal(map[uuid.UUID]bool{a.ID: true}, among)

	list, err := s.favorites.ListGames(ctx, user)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(b.ID, list[0].ID)

	s.Require().NoError(s.favorites.Remove(ctx, user, a.ID))
	exists, err := s.favorites.Exists(ctx, user, a.ID)
	s.Require().NoError(err)
	s.False(exists)
	s.ErrorIs(s.favorites.Remove(ctx, user, a.ID), models.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestNarrativeRepositories() {
	ctx := context.Background()
	game := s.newGame(uuid.New(), "Ledger", true)

	for _, text := range []string{"first", "second"} {
		s.Require().NoError(s.history.Append(ctx, s.db.Pool, &models.NarrativeHistoryEntry{
			GameID: game.ID, Act: 1, ChoiceText: text,
		}))
	}
	history, err := s.history.ListByGame(ctx, s.db.Pool, game.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("first", history[0].ChoiceText)
	s.Equal("second", history[1].ChoiceText)

	batch := []*models.NarrativeChoiceOption{
		{GameID: game.ID, Act: 2, ChoiceText: "a"},
		{GameID: game.ID, Act: 2, ChoiceText: "b"},
		{GameID: game.ID, Act: 2, ChoiceText: "c"},
	}
	s.Require().NoError(s.choices.CreateBatch(ctx, s.db.Pool, batch))

	pending, err := s.choices.ListByGameAndAct(ctx, s.db.Pool, game.ID, 2)
	s.Require().NoError(err)
	s.Require().Len(pending, 3)
	s.Equal("a", pending[0].ChoiceText)

	other := s.newGame(uuid.New(), "Other", true)
	_, err = s.choices.GetForGame(ctx, s.db.Pool, other.ID, pending[0].ID)
	s.ErrorIs(err, models.ErrNotFound)

	removed, err := s.choices.DeleteByGameAndAct(ctx, s.db.Pool, game.ID, 2)
	s.Require().NoError(err)
	s.EqualValues(3, removed)
}

func (s *PostgresIntegrationSuite) narrativeService(gen interfaces.ContentGenerator) interfaces.NarrativeService {
	return service.NewNarrativeService(s.db.Pool, s.db, s.games, s.history, s.choices, gen,
		lock.NewMemoryLocker(), nil, zap.NewNop())
}

func (s *PostgresIntegrationSuite) TestNarrativeFlow() {
	ctx := context.Background()
	owner := uuid.New()
	game := s.newGame(owner, "Flow", true)

	gen := mocks.NewMockContentGenerator(s.T())
	gen.On("ProposeChoices", mock.Anything, mock.Anything, service.ChoicesPerBatch).Return([]models.ProposedChoice{
		{ChoiceText: "North", OutcomeDescription: "Cold"},
		{ChoiceText: "South", OutcomeDescription: "Warm"},
		{ChoiceText: "Stay", OutcomeDescription: "Quiet"},
	}, nil)
	gen.On("RewriteAct", mock.Anything, mock.Anything, 1).Return("Act one, rewritten", nil).Once()
	gen.On("RewriteAct", mock.Anything, mock.Anything, 2).Return("", errors.New("backend down")).Once()
	svc := s.narrativeService(gen)

	state, err := svc.ViewState(ctx, owner, game.ID)
	s.Require().NoError(err)
	s.Equal(1, state.Act)
	s.Empty(state.PendingOptions)

	options, err := svc.RegenerateChoices(ctx, owner, game.ID)
	s.Require().NoError(err)
	s.Require().Len(options, 3)

	result, err := svc.CommitChoice(ctx, owner, game.ID, options[0].ID)
	s.Require().NoError(err)
	s.True(result.RewriteApplied)
	s.Equal(2, result.Act)

	stored, err := s.games.GetByID(ctx, s.db.Pool, game.ID)
	s.Require().NoError(err)
	s.Equal("Act one, rewritten", stored.StoryAct1)

	// The committed batch is gone; a stale option id no longer commits.
	_, err = svc.CommitChoice(ctx, owner, game.ID, options[1].ID)
	s.ErrorIs(err, service.ErrChoiceNotFound)

	options, err = svc.RegenerateChoices(ctx, owner, game.ID)
	s.Require().NoError(err)
	s.Equal(2, options[0].Act)

	result, err = svc.CommitChoice(ctx, owner, game.ID, options[2].ID)
	s.ErrorIs(err, service.ErrGeneratorUnavailable)
	s.Require().NotNil(result)
	s.False(result.RewriteApplied)
	s.Equal(3, result.Act)

	state, err = svc.ViewState(ctx, owner, game.ID)
	s.Require().NoError(err)
	s.Equal(3, state.Act)
	s.Len(state.History, 2)
}

func (s *PostgresIntegrationSuite) TestConcurrentCommitsOnSameBatch() {
	ctx := context.Background()
	owner := uuid.New()
	game := s.newGame(owner, "Race", true)

	gen := mocks.NewMockContentGenerator(s.T())
	gen.On("ProposeChoices", mock.Anything, mock.Anything, service.ChoicesPerBatch).Return([]models.ProposedChoice{
		{ChoiceText: "A"}, {ChoiceText: "B"}, {ChoiceText: "C"},
	}, nil).Once()
	gen.On("RewriteAct", mock.Anything, mock.Anything, 1).Return("done", nil).Once()
	svc := s.narrativeService(gen)

	options, err := svc.RegenerateChoices(ctx, owner, game.ID)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, len(options))
	for i, opt := range options {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			_, errs[i] = svc.CommitChoice(ctx, owner, game.ID, id)
		}(i, opt.ID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, service.ErrChoiceNotFound)
	}
	s.Equal(1, succeeded)

	history, err := s.history.ListByGame(ctx, s.db.Pool, game.ID)
	s.Require().NoError(err)
	s.Len(history, 1)
}

// lapsedLocker grants every request, as if the previous holder's lock had expired.
type lapsedLocker struct{}

func (lapsedLocker) Acquire(context.Context, uuid.UUID) (func(), error) { return func() {}, nil }

func (s *PostgresIntegrationSuite) TestConcurrentRegenerateKeepsOneBatch() {
	ctx := context.Background()
	owner := uuid.New()
	game := s.newGame(owner, "Overlap", true)

	// Both generations finish before either replacement transaction starts.
	var generating sync.WaitGroup
	generating.Add(2)
	gen := mocks.NewMockContentGenerator(s.T())
	gen.On("ProposeChoices", mock.Anything, mock.Anything, service.ChoicesPerBatch).
		Run(func(mock.Arguments) {
			generating.Done()
			generating.Wait()
		}).
		Return([]models.ProposedChoice{{ChoiceText: "A"}, {ChoiceText: "B"}, {ChoiceText: "C"}}, nil).Twice()
	svc := service.NewNarrativeService(s.db.Pool, s.db, s.games, s.history, s.choices, gen,
		lapsedLocker{}, nil, zap.NewNop())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.RegenerateChoices(ctx, owner, game.ID)
		}(i)
	}
	wg.Wait()
	s.Require().NoError(errs[0])
	s.Require().NoError(errs[1])

	pending, err := s.choices.ListByGameAndAct(ctx, s.db.Pool, game.ID, 1)
	s.Require().NoError(err)
	s.Len(pending, service.ChoicesPerBatch)
}

func (s *PostgresIntegrationSuite) TestNarrativeDisabledAndForeignOwner() {
	ctx := context.Background()
	owner := uuid.New()
	static := s.newGame(owner, "Static", false)
	svc := s.narrativeService(mocks.NewMockContentGenerator(s.T()))

	_, err := svc.ViewState(ctx, owner, static.ID)
	s.ErrorIs(err, service.ErrNarrativeDisabled)

	_, err = svc.ViewState(ctx, uuid.New(), static.ID)
	s.ErrorIs(err, models.ErrNotFound)
}
