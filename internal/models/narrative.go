package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxChoiceTextLength bounds NarrativeChoiceOption.ChoiceText and
// NarrativeHistoryEntry.ChoiceText.
const MaxChoiceTextLength = 200

// NarrativeHistoryEntry is a committed narrative choice. Entries are append-only.
type NarrativeHistoryEntry struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	GameID             uuid.UUID `json:"game_id" db:"game_id"`
	Act                int       `json:"act" db:"act"`
	ChoiceText         string    `json:"choice_text" db:"choice_text"`
	OutcomeDescription string    `json:"outcome_description" db:"outcome_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// NarrativeChoiceOption is a pending, not yet chosen option for one act of a game.
type NarrativeChoiceOption struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	GameID             uuid.UUID `json:"game_id" db:"game_id"`
	Act                int       `json:"act" db:"act"`
	ChoiceText         string    `json:"choice_text" db:"choice_text"`
	OutcomeDescription string    `json:"outcome_description" db:"outcome_description"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// ProposedChoice is a candidate choice returned by a content generator.
type ProposedChoice struct {
	ChoiceText         string `json:"choice_text"`
	OutcomeDescription string `json:"outcome_description"`
}

// HistoryItem is the (act, choice, outcome) triple handed to generators.
type HistoryItem struct {
	Act                int    `json:"act"`
	ChoiceText         string `json:"choice_text"`
	OutcomeDescription string `json:"outcome_description"`
}

// NarrativeContext is everything a content generator may use to propose
// choices or rewrite an act.
type NarrativeContext struct {
	Title               string
	Genre               string
	Ambiance            string
	UniverseDescription string
	// Acts holds the act texts from act 1 up to and including the relevant act.
	Acts    []string
	History []HistoryItem
}

// StoryText concatenates Acts with act headings.
func (nc NarrativeContext) StoryText() string {
	var sb strings.Builder
	for i, text := range nc.Acts {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Acte %d: %s", i+1, text)
	}
	return sb.String()
}

// NewNarrativeContext builds the generator context for game up to act
// (inclusive) with the given history, oldest entry first.
func NewNarrativeContext(game *Game, act int, history []*NarrativeHistoryEntry) NarrativeContext {
	if act < 1 {
		act = 1
	}
	if act > 3 {
		act = 3
	}
	acts := make([]string, 0, act)
	for i := 1; i <= act; i++ {
		acts = append(acts, game.ActText(i))
	}
	items := make([]HistoryItem, 0, len(history))
	for _, h := range history {
		items = append(items, HistoryItem{
			Act:                h.Act,
			ChoiceText:         h.ChoiceText,
			OutcomeDescription: h.OutcomeDescription,
		})
	}
	return NarrativeContext{
		Title:               game.Title,
		Genre:               game.GenreName(),
		Ambiance:            game.AmbianceName(),
		UniverseDescription: game.UniverseDescription,
		Acts:                acts,
		History:             items,
	}
}

// Act names.
const (
	ActNameIntroduction = "Introduction"
	ActNameDevelopment  = "Développement"
	ActNameConclusion   = "Conclusion"
)

// NarrativeState is the read-only view of a game's narrative progression.
type NarrativeState struct {
	GameID         uuid.UUID                `json:"game_id"`
	Act            int                      `json:"act"`
	ActName        string                   `json:"act_name"`
	PendingOptions []*NarrativeChoiceOption `json:"pending_options"`
	History        []*NarrativeHistoryEntry `json:"history"`
}

// CommitResult is the outcome of committing a narrative choice. RewriteApplied
// is false when the ledger entry was stored but the act text was not rewritten.
type CommitResult struct {
	Game           *Game                  `json:"game"`
	Entry          *NarrativeHistoryEntry `json:"entry"`
	Act            int                    `json:"act"`
	ActName        string                 `json:"act_name"`
	RewriteApplied bool                   `json:"rewrite_applied"`
}
