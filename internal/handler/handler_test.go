package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gameforge/internal/mocks"
	"gameforge/internal/models"
	"gameforge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type handlerFixture struct {
	games     *mocks.MockGameService
	narrative *mocks.MockNarrativeService
	favorites *mocks.MockFavoriteService
	export    *mocks.MockExportService
	router    *gin.Engine
	userID    uuid.UUID
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &handlerFixture{
		games:     mocks.NewMockGameService(t),
		narrative: mocks.NewMockNarrativeService(t),
		favorites: mocks.NewMockFavoriteService(t),
		export:    mocks.NewMockExportService(t),
		router:    gin.New(),
		userID:    uuid.New(),
	}
	h := NewHandler(f.games, f.narrative, f.favorites, f.export, zap.NewNop())
	auth := func(c *gin.Context) {
		c.Set("user_id", f.userID)
		c.Next()
	}
	h.RegisterRoutes(f.router, auth, nil)
	f.router.GET("/api/v1/options", h.Options)
	return f
}

func (f *handlerFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr.Message
}

func TestHandler_ServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"disabled", service.ErrNarrativeDisabled, http.StatusConflict},
		{"choice not found", service.ErrChoiceNotFound, http.StatusNotFound},
		{"not found", fmt.Errorf("get game: %w", models.ErrNotFound), http.StatusNotFound},
		{"generator", fmt.Errorf("choices: %w", service.ErrGeneratorUnavailable), http.StatusServiceUnavailable},
		{"invalid input", fmt.Errorf("%w: genre", models.ErrInvalidInput), http.StatusBadRequest},
		{"forbidden", models.ErrForbidden, http.StatusForbidden},
		{"ledger", service.ErrInvalidLedgerState, http.StatusInternalServerError},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			gameID := uuid.New()
			f.narrative.On("ViewState", mock.Anything, f.userID, gameID).Return(nil, tt.err).Once()

			w := f.do(http.MethodGet, "/api/v1/games/"+gameID.String()+"/narrative", nil)

			assert.Equal(t, tt.status, w.Code)
			msg := decodeError(t, w)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", msg)
			}
		})
	}
}

func TestHandler_InvalidGameID(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodGet, "/api/v1/games/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", decodeError(t, w))
}

func TestHandler_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(mocks.NewMockGameService(t), mocks.NewMockNarrativeService(t),
		mocks.NewMockFavoriteService(t), mocks.NewMockExportService(t), zap.NewNop())
	h.RegisterRoutes(router, func(c *gin.Context) { c.Next() }, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/games", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateGame(t *testing.T) {
	f := newHandlerFixture(t)
	details := &models.GameDetails{Game: &models.Game{ID: uuid.New(), Title: "Ashfall"}}
	f.games.On("CreateGame", mock.Anything, f.userID, models.CreateGameRequest{
		Genre:               models.Genre("rpg"),
		Ambiance:            models.Ambiance("post_apocalyptic"),
		Keywords:            "ruins, survival",
		HasDynamicNarrative: true,
	}).Return(details, nil).Once()

	w := f.do(http.MethodPost, "/api/v1/games", map[string]any{
		"genre":                 "rpg",
		"ambiance":              "post_apocalyptic",
		"keywords":              "ruins, survival",
		"has_dynamic_narrative": true,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.GameDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ashfall", got.Game.Title)
}

func TestHandler_CreateGame_MissingFields(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodPost, "/api/v1/games", map[string]any{"genre": "rpg"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.games.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_CreateRandomGame(t *testing.T) {
	f := newHandlerFixture(t)
	f.games.On("CreateRandomGame", mock.Anything, f.userID).
		Return(&models.GameDetails{Game: &models.Game{Title: "Random Game"}}, nil).Once()

	w := f.do(http.MethodPost, "/api/v1/games/random", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ListGames_Pagination(t *testing.T) {
	f := newHandlerFixture(t)
	f.games.On("ListGames", mock.Anything, f.userID, 5, 10).
		Return([]*models.GameSummary{{Game: &models.Game{Title: "A"}, IsFavorite: true}}, nil).Once()

	w := f.do(http.MethodGet, "/api/v1/games?limit=5&offset=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_favorite":true`)
}

func TestHandler_ListGames_BadQuery(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodGet, "/api/v1/games?limit=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetNarrativeMode(t *testing.T) {
	f := newHandlerFixture(t)
	gameID := uuid.New()
	f.games.On("SetDynamicNarrative", mock.Anything, f.userID, gameID, false).
		Return(&models.Game{ID: gameID}, nil).Once()

	w := f.do(http.MethodPatch, "/api/v1/games/"+gameID.String()+"/narrative-mode", map[string]any{"enabled": false})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPatch, "/api/v1/games/"+gameID.String()+"/narrative-mode", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ToggleFavorite(t *testing.T) {
	f := newHandlerFixture(t)
	gameID := uuid.New()
	f.favorites.On("ToggleFavorite", mock.Anything, f.userID, gameID).Return(true, nil).Once()

	w := f.do(http.MethodPost, "/api/v1/games/"+gameID.String()+"/favorite", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got favoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, gameID.String(), got.GameID)
	assert.True(t, got.IsFavorite)
}

func TestHandler_ListFavorites(t *testing.T) {
	f := newHandlerFixture(t)
	f.favorites.On("ListFavorites", mock.Anything, f.userID).Return([]*models.Game{{Title: "Fav"}}, nil).Once()

	w := f.do(http.MethodGet, "/api/v1/favorites", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fav")
}

func TestHandler_ExportPDF(t *testing.T) {
	f := newHandlerFixture(t)
	gameID := uuid.New()
	f.export.On("ExportGamePDF", mock.Anything, f.userID, gameID, mock.Anything).
		Return(func(_ context.Context, _, _ uuid.UUID, w io.Writer) string {
			_, _ = w.Write([]byte("%PDF-1.3 test"))
			return "Ashfall.pdf"
		}, nil).Once()

	w := f.do(http.MethodGet, "/api/v1/games/"+gameID.String()+"/export.pdf", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Ashfall.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 test", w.Body.String())
}

func TestHandler_ExportPDF_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	gameID := uuid.New()
	f.export.On("ExportGamePDF", mock.Anything, f.userID, gameID, mock.Anything).
		Return("", models.ErrNotFound).Once()

	w := f.do(http.MethodGet, "/api/v1/games/"+gameID.String()+"/export.pdf", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestHandler_RegenerateChoices(t *testing.T) {
	f := newHandlerFixture(t)
	gameID := uuid.New()
	choices := []*models.NarrativeChoiceOption{{ID: uuid.New(), GameID: gameID, ChoiceText: "Go north"}}
	f.narrative.On("RegenerateChoices", mock.Anything, f.userID, gameID).Return(choices, nil).Once()

	w := f.do(http.MethodPost, "/api/v1/games/"+gameID.String()+"/narrative/choices", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go north")
}

func TestHandler_CommitChoice(t *testing.T) {
	gameID := uuid.New()
	optionID := uuid.New()
	path := "/api/v1/games/" + gameID.String() + "/narrative/choices/" + optionID.String() + "/select"

	t.Run("rewrite applied", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.narrative.On("CommitChoice", mock.Anything, f.userID, gameID, optionID).
			Return(&models.CommitResult{Act: 2, ActName: models.ActNameDevelopment, RewriteApplied: true}, nil).Once()

		w := f.do(http.MethodPost, path, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var got models.CommitResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.RewriteApplied)
		assert.Equal(t, 2, got.Act)
	})

	t.Run("rewrite failed but choice recorded", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.narrative.On("CommitChoice", mock.Anything, f.userID, gameID, optionID).
			Return(&models.CommitResult{Act: 2, RewriteApplied: false},
				fmt.Errorf("rewrite act: %w", service.ErrGeneratorUnavailable)).Once()

		w := f.do(http.MethodPost, path, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"rewrite_applied":false`)
	})

	t.Run("rewrite not stored but choice recorded", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.narrative.On("CommitChoice", mock.Anything, f.userID, gameID, optionID).
			Return(&models.CommitResult{Act: 2, RewriteApplied: false},
				fmt.Errorf("%w: failed to store rewritten act: %w", service.ErrRewriteNotApplied, assert.AnError)).Once()

		w := f.do(http.MethodPost, path, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var got models.CommitResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.False(t, got.RewriteApplied)
		assert.Equal(t, 2, got.Act)
	})

	t.Run("choice not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.narrative.On("CommitChoice", mock.Anything, f.userID, gameID, optionID).
			Return(nil, service.ErrChoiceNotFound).Once()

		w := f.do(http.MethodPost, path, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad choice id", func(t *testing.T) {
		f := newHandlerFixture(t)

		w := f.do(http.MethodPost, "/api/v1/games/"+gameID.String()+"/narrative/choices/xyz/select", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid choice_id", decodeError(t, w))
	})
}

func TestHandler_Options(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.do(http.MethodGet, "/api/v1/options", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got optionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.Genres, got.Genres)
	assert.Equal(t, models.Ambiances, got.Ambiances)
}
