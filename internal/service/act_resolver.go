package service

import (
	"fmt"

	"gameforge/internal/models"
)

// NarrativePhase is the state of a game's narrative state machine.
type NarrativePhase string

const (
	PhaseIntro      NarrativePhase = "INTRO"
	PhaseDeveloping NarrativePhase = "DEVELOPING"
	PhaseConcluding NarrativePhase = "CONCLUDING"
)

// ActResolution is where a ledger puts a game.
type ActResolution struct {
	Act   int
	Name  string
	Phase NarrativePhase
}

// ResolveAct derives the current act from the committed history alone.
// Only the presence of act 1 and act 2 entries matters. A non-empty ledger
// with neither is an ErrInvalidLedgerState.
func ResolveAct(history []*models.NarrativeHistoryEntry) (ActResolution, error) {
	if len(history) == 0 {
		return ActResolution{Act: 1, Name: models.ActNameIntroduction, Phase: PhaseIntro}, nil
	}

	var hasAct1, hasAct2 bool
	for _, entry := range history {
		switch entry.Act {
		case 1:
			hasAct1 = true
		case 2:
			hasAct2 = true
		}
	}

	switch {
	case hasAct2:
		return ActResolution{Act: 3, Name: models.ActNameConclusion, Phase: PhaseConcluding}, nil
	case hasAct1:
		return ActResolution{Act: 2, Name: models.ActNameDevelopment, Phase: PhaseDeveloping}, nil
	default:
		return ActResolution{}, fmt.Errorf("%w: %d entries without act 1 or act 2", ErrInvalidLedgerState, len(history))
	}
}

// ledgerActs lists the distinct acts present in history, for logging.
func ledgerActs(history []*models.NarrativeHistoryEntry) []int {
	seen := make(map[int]bool, 3)
	acts := make([]int, 0, 3)
	for _, entry := range history {
		if !seen[entry.Act] {
			seen[entry.Act] = true
			acts = append(acts, entry.Act)
		}
	}
	return acts
}
