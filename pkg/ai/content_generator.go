package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"go.uber.org/zap"
)

// NarrativeGenerator proposes narrative choices and rewrites acts with an AIClient.
type NarrativeGenerator struct {
	client  AIClient
	prompts *PromptSet
	params  GenerationParams
	logger  *zap.Logger
}

var _ interfaces.ContentGenerator = (*NarrativeGenerator)(nil)

func NewNarrativeGenerator(client AIClient, prompts *PromptSet, params GenerationParams, logger *zap.Logger) *NarrativeGenerator {
	return &NarrativeGenerator{
		client:  client,
		prompts: prompts,
		params:  params,
		logger:  logger.Named("NarrativeGenerator"),
	}
}

type narrativePromptData struct {
	Title               string
	Genre               string
	Ambiance            string
	UniverseDescription string
	Story               string
	History             []models.HistoryItem
	Act                 int
	Count               int
	MaxChoiceLength     int
}

func newNarrativePromptData(nc models.NarrativeContext, act, count int) narrativePromptData {
	return narrativePromptData{
		Title:               nc.Title,
		Genre:               nc.Genre,
		Ambiance:            nc.Ambiance,
		UniverseDescription: nc.UniverseDescription,
		Story:               nc.StoryText(),
		History:             nc.History,
		Act:                 act,
		Count:               count,
		MaxChoiceLength:     models.MaxChoiceTextLength,
	}
}

type choicesResponse struct {
	Choices []models.ProposedChoice `json:"choices"`
}

// ProposeChoices asks for count choices for the last act in nc.Acts.
// Blank entries are dropped and overlong texts truncated; fewer than count
// usable entries is an error.
func (g *NarrativeGenerator) ProposeChoices(ctx context.Context, nc models.NarrativeContext, count int) ([]models.ProposedChoice, error) {
	act := len(nc.Acts)
	userInput, err := render(g.prompts.choices, newNarrativePromptData(nc, act, count))
	if err != nil {
		return nil, err
	}

	text, _, err := g.client.GenerateText(ctx, g.prompts.Choices.System, userInput, g.params)
	if err != nil {
		return nil, err
	}

	var resp choicesResponse
	if err := DecodeJSON(text, &resp); err != nil {
		g.logger.Warn("Malformed choices answer", zap.String("title", nc.Title), zap.Error(err))
		return nil, err
	}

	choices := make([]models.ProposedChoice, 0, count)
	for _, c := range resp.Choices {
		c.ChoiceText = truncateRunes(strings.TrimSpace(c.ChoiceText), models.MaxChoiceTextLength)
		c.OutcomeDescription = strings.TrimSpace(c.OutcomeDescription)
		if c.ChoiceText == "" {
			continue
		}
		choices = append(choices, c)
		if len(choices) == count {
			break
		}
	}
	if len(choices) < count {
		g.logger.Warn("Not enough usable choices",
			zap.Int("wanted", count), zap.Int("got", len(choices)), zap.Int("act", act))
		return nil, fmt.Errorf("%w: %d usable choices, want %d", ErrMalformedResponse, len(choices), count)
	}
	return choices, nil
}

type rewriteResponse struct {
	ActText string `json:"act_text"`
}

// RewriteAct returns new text for act. An answer without a JSON object is
// taken as the act text itself.
func (g *NarrativeGenerator) RewriteAct(ctx context.Context, nc models.NarrativeContext, act int) (string, error) {
	userInput, err := render(g.prompts.rewrite, newNarrativePromptData(nc, act, 0))
	if err != nil {
		return "", err
	}

	text, _, err := g.client.GenerateText(ctx, g.prompts.Rewrite.System, userInput, g.params)
	if err != nil {
		return "", err
	}

	var resp rewriteResponse
	err = DecodeJSON(text, &resp)
	switch {
	case errors.Is(err, ErrNoJSON):
		resp.ActText = text
	case err != nil:
		g.logger.Warn("Malformed rewrite answer", zap.Int("act", act), zap.Error(err))
		return "", err
	}

	actText := strings.TrimSpace(resp.ActText)
	if actText == "" {
		return "", fmt.Errorf("%w: empty act text", ErrMalformedResponse)
	}
	return actText, nil
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
