package ai_test

import (
	"context"
	"strings"
	"testing"

	"gameforge/internal/mocks"
	"gameforge/internal/models"
	"gameforge/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConceptWriter(t *testing.T) (*ai.ConceptWriter, *mocks.MockAIClient) {
	prompts, err := ai.DefaultPrompts()
	require.NoError(t, err)
	client := mocks.NewMockAIClient(t)
	return ai.NewConceptWriter(client, prompts, ai.GenerationParams{}, zap.NewNop()), client
}

var conceptRequest = models.ConceptRequest{
	Genre:    models.GenreMetroidvania,
	Ambiance: models.AmbianceCyberpunk,
	Keywords: "neon, grappling hook",
}

func TestGenerateConcept(t *testing.T) {
	w, client := newConceptWriter(t)
	answer := `Voici: {
		"title": "  Neon Drift  ",
		"universe_description": "A vertical city.",
		"story_act1": "One", "story_act2": "Two", "story_act3": "Three",
		"characters": [{"name": "", "role": "", "background": "Unknown"}, {"name": "Kai", "role": "Courier"}],
		"locations": [{"name": " ", "description": "Rooftops"}]
	}`
	client.On("GenerateText", mock.Anything, mock.Anything,
		mock.MatchedBy(func(in string) bool {
			return strings.Contains(in, "Genre: Metroidvania") && strings.Contains(in, "Ambiance: Cyberpunk")
		}), mock.Anything).
		Return(answer, ai.UsageInfo{}, nil)

	concept := w.GenerateConcept(context.Background(), conceptRequest)

	assert.Equal(t, "Neon Drift", concept.Title)
	require.Len(t, concept.Characters, 2)
	assert.Equal(t, ai.DefaultCharacterName, concept.Characters[0].Name)
	assert.Equal(t, ai.DefaultCharacterRole, concept.Characters[0].Role)
	assert.Equal(t, "Kai", concept.Characters[1].Name)
	require.Len(t, concept.Locations, 1)
	assert.Equal(t, ai.DefaultLocationName, concept.Locations[0].Name)
}

func TestGenerateConcept_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		err    error
	}{
		{"client error", "", ai.ErrAIGenerationFailed},
		{"no json", "I cannot do that.", nil},
		{"broken json", `{"title": }`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, client := newConceptWriter(t)
			client.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(tt.answer, ai.UsageInfo{}, tt.err)

			concept := w.GenerateConcept(context.Background(), conceptRequest)
			assert.Equal(t, ai.FallbackConcept(), concept)
		})
	}
}

func TestGenerateConcept_LongTitleTruncated(t *testing.T) {
	w, client := newConceptWriter(t)
	client.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(`{"title": "`+strings.Repeat("a", 150)+`"}`, ai.UsageInfo{}, nil)

	concept := w.GenerateConcept(context.Background(), conceptRequest)
	assert.Len(t, concept.Title, models.MaxTitleLength)
}
