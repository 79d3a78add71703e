package ai

import (
	"context"
	"strings"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"go.uber.org/zap"
)

// Placeholders for fields a model left empty. An empty title is left to the
// caller, which knows how the game was requested.
const (
	DefaultCharacterName = "Unknown Character"
	DefaultCharacterRole = "Unknown Role"
	DefaultLocationName  = "Unknown Location"
)

// FallbackConcept is served whenever the model cannot produce a concept.
func FallbackConcept() *models.GameConcept {
	return &models.GameConcept{
		Title:               "Nouveau Jeu",
		UniverseDescription: "Un univers mystérieux à explorer.",
		StoryAct1:           "Le début de l'aventure...",
		StoryAct2:           "Le coeur de l'histoire...",
		StoryAct3:           "La conclusion épique...",
		Characters: []models.ConceptCharacter{{
			Name:       "Héros",
			Role:       "Protagoniste principal",
			Background: "Origine inconnue",
			Abilities:  "Détermination et courage",
		}},
		Locations: []models.ConceptLocation{{
			Name:        "Monde initial",
			Description: "Le point de départ de l'aventure",
		}},
	}
}

// ConceptWriter generates whole game concepts with an AIClient.
type ConceptWriter struct {
	client  AIClient
	prompts *PromptSet
	params  GenerationParams
	logger  *zap.Logger
}

var _ interfaces.ConceptGenerator = (*ConceptWriter)(nil)

func NewConceptWriter(client AIClient, prompts *PromptSet, params GenerationParams, logger *zap.Logger) *ConceptWriter {
	return &ConceptWriter{
		client:  client,
		prompts: prompts,
		params:  params,
		logger:  logger.Named("ConceptWriter"),
	}
}

func (w *ConceptWriter) GenerateConcept(ctx context.Context, req models.ConceptRequest) *models.GameConcept {
	userInput, err := render(w.prompts.concept, struct {
		Genre, Ambiance, Keywords, References string
	}{
		Genre:      req.Genre.DisplayName(),
		Ambiance:   req.Ambiance.DisplayName(),
		Keywords:   req.Keywords,
		References: req.References,
	})
	if err != nil {
		w.logger.Error("Failed to render concept prompt", zap.Error(err))
		return FallbackConcept()
	}

	text, _, err := w.client.GenerateText(ctx, w.prompts.Concept.System, userInput, w.params)
	if err != nil {
		w.logger.Warn("Concept generation failed, using fallback", zap.Error(err))
		return FallbackConcept()
	}

	concept := &models.GameConcept{}
	if err := DecodeJSON(text, concept); err != nil {
		w.logger.Warn("Malformed concept answer, using fallback", zap.Error(err))
		return FallbackConcept()
	}
	normalizeConcept(concept)
	return concept
}

// normalizeConcept fills blanks with placeholders and enforces column limits.
func normalizeConcept(c *models.GameConcept) {
	c.Title = truncateRunes(strings.TrimSpace(c.Title), models.MaxTitleLength)
	for i := range c.Characters {
		c.Characters[i].Name = truncateRunes(orDefault(c.Characters[i].Name, DefaultCharacterName), 100)
		c.Characters[i].Role = truncateRunes(orDefault(c.Characters[i].Role, DefaultCharacterRole), 100)
	}
	for i := range c.Locations {
		c.Locations[i].Name = truncateRunes(orDefault(c.Locations[i].Name, DefaultLocationName), 100)
	}
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
