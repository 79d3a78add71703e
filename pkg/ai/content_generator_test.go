package ai_test

import (
	"context"
	"errors"
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

func newGenerator(t *testing.T) (*ai.NarrativeGenerator, *mocks.MockAIClient) {
	prompts, err := ai.DefaultPrompts()
	require.NoError(t, err)
	client := mocks.NewMockAIClient(t)
	return ai.NewNarrativeGenerator(client, prompts, ai.GenerationParams{}, zap.NewNop()), client
}

func narrativeContext() models.NarrativeContext {
	return models.NarrativeContext{
		Title:               "Ashfall",
		Genre:               "RPG",
		Ambiance:            "Post-Apocalyptic",
		UniverseDescription: "Dust everywhere.",
		Acts:                []string{"The city falls.", "The caravan leaves."},
		History: []models.HistoryItem{
			{Act: 1, ChoiceText: "Flee north", OutcomeDescription: "The group survives."},
		},
	}
}

func TestProposeChoices(t *testing.T) {
	gen, client := newGenerator(t)
	answer := "```json\n{\"choices\": [" +
		"{\"choice_text\": \"  Follow the river \", \"outcome_description\": \"Water.\"}," +
		"{\"choice_text\": \"   \", \"outcome_description\": \"blank\"}," +
		"{\"choice_text\": \"" + strings.Repeat("é", 250) + "\", \"outcome_description\": \"Long.\"}," +
		"{\"choice_text\": \"Trade with raiders\", \"outcome_description\": \"Risky.\"}," +
		"{\"choice_text\": \"Extra\", \"outcome_description\": \"Ignored.\"}" +
		"]}\n```"
	client.On("GenerateText", mock.Anything, mock.Anything,
		mock.MatchedBy(func(in string) bool {
			return strings.Contains(in, "Propose exactement 3 choix pour l'acte 2") &&
				strings.Contains(in, "Acte 1: Flee north -> The group survives.")
		}), ai.GenerationParams{}).
		Return(answer, ai.UsageInfo{}, nil)

	choices, err := gen.ProposeChoices(context.Background(), narrativeContext(), 3)

	require.NoError(t, err)
	require.Len(t, choices, 3)
	assert.Equal(t, "Follow the river", choices[0].ChoiceText)
	assert.Equal(t, []rune(strings.Repeat("é", 200)), []rune(choices[1].ChoiceText))
	assert.Equal(t, "Trade with raiders", choices[2].ChoiceText)
}

func TestProposeChoices_TooFew(t *testing.T) {
	gen, client := newGenerator(t)
	client.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(`{"choices": [{"choice_text": "Only one"}]}`, ai.UsageInfo{}, nil)

	_, err := gen.ProposeChoices(context.Background(), narrativeContext(), 3)
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)
}

func TestProposeChoices_ClientError(t *testing.T) {
	gen, client := newGenerator(t)
	client.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", ai.UsageInfo{}, ai.ErrAIGenerationFailed)

	_, err := gen.ProposeChoices(context.Background(), narrativeContext(), 3)
	assert.ErrorIs(t, err, ai.ErrAIGenerationFailed)
}

func TestRewriteAct(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		want    string
		wantErr error
	}{
		{"json", `{"act_text": "  The caravan turns back. "}`, "The caravan turns back.", nil},
		{"plain text", "The caravan turns back.", "The caravan turns back.", nil},
		{"empty", `{"act_text": ""}`, "", ai.ErrMalformedResponse},
		{"broken json", `{"act_text": }`, "", ai.ErrMalformedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, client := newGenerator(t)
			client.On("GenerateText", mock.Anything, mock.Anything,
				mock.MatchedBy(func(in string) bool { return strings.Contains(in, "l'acte 2") }), mock.Anything).
				Return(tt.answer, ai.UsageInfo{}, nil)

			text, err := gen.RewriteAct(context.Background(), narrativeContext(), 2)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestRewriteAct_ClientError(t *testing.T) {
	gen, client := newGenerator(t)
	client.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", ai.UsageInfo{}, errors.New("timeout"))

	_, err := gen.RewriteAct(context.Background(), narrativeContext(), 1)
	assert.Error(t, err)
}
