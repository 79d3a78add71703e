package interfaces

import (
	"context"

	"gameforge/internal/models"
)

// ContentGenerator produces narrative choices and rewritten act text.
// Implementations own their timeouts; callers impose none.
type ContentGenerator interface {
	ProposeChoices(ctx context.Context, nc models.NarrativeContext, count int) ([]models.ProposedChoice, error)
	RewriteAct(ctx context.Context, nc models.NarrativeContext, act int) (string, error)
}

// ConceptGenerator produces a full game concept. It always returns a usable
// concept; a fallback is used when the backend fails.
type ConceptGenerator interface {
	GenerateConcept(ctx context.Context, req models.ConceptRequest) *models.GameConcept
}

// ImageGenerator turns a prompt into a downloadable image URL.
type ImageGenerator interface {
	GenerateImageURL(ctx context.Context, prompt string) (string, error)
}

// ImageStore downloads an image and stores it under a media subfolder,
// returning the relative path "<subfolder>/<file>".
type ImageStore interface {
	DownloadAndSave(ctx context.Context, url, filename, subfolder string) (string, error)
}
