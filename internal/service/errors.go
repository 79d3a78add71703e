package service

import (
	"errors"

	"gameforge/internal/models"
)

var (
	ErrNarrativeDisabled    = errors.New("dynamic narrative is disabled for this game")
	ErrInvalidLedgerState   = errors.New("narrative history is in an undefined state")
	ErrChoiceNotFound       = errors.New("narrative choice not found for this game")
	ErrGeneratorUnavailable = errors.New("content generator unavailable")
	// ErrRewriteNotApplied accompanies a committed choice whose act text
	// could not be rewritten or stored.
	ErrRewriteNotApplied = errors.New("act rewrite not applied")

	// ErrInvalidInput aliases the model sentinel so handlers need one check.
	ErrInvalidInput = models.ErrInvalidInput
)
