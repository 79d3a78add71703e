package service

import (
	"testing"

	"gameforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(acts ...int) []*models.NarrativeHistoryEntry {
	list := make([]*models.NarrativeHistoryEntry, 0, len(acts))
	for _, act := range acts {
		list = append(list, &models.NarrativeHistoryEntry{Act: act, ChoiceText: "choice"})
	}
	return list
}

func TestResolveAct(t *testing.T) {
	tests := []struct {
		name      string
		acts      []int
		wantAct   int
		wantName  string
		wantPhase NarrativePhase
	}{
		{"empty ledger", nil, 1, "Introduction", PhaseIntro},
		{"one act 1 entry", []int{1}, 2, "Développement", PhaseDeveloping},
		{"several act 1 entries", []int{1, 1, 1}, 2, "Développement", PhaseDeveloping},
		{"act 1 then act 2", []int{1, 2}, 3, "Conclusion", PhaseConcluding},
		{"act 3 refinements", []int{1, 2, 3, 3}, 3, "Conclusion", PhaseConcluding},
		{"late act 1 entry after act 2", []int{1, 2, 1}, 3, "Conclusion", PhaseConcluding},
		{"act 2 without act 1", []int{2}, 3, "Conclusion", PhaseConcluding},
		{"act 1 and act 3 without act 2", []int{1, 3}, 2, "Développement", PhaseDeveloping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAct(entries(tt.acts...))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAct, got.Act)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantPhase, got.Phase)
		})
	}
}

func TestResolveAct_UndefinedLedger(t *testing.T) {
	for _, acts := range [][]int{{3}, {3, 3}, {0}, {4}} {
		_, err := ResolveAct(entries(acts...))
		assert.ErrorIs(t, err, ErrInvalidLedgerState, "acts %v", acts)
	}
}

func TestResolveAct_NeverRegresses(t *testing.T) {
	sequences := [][]int{
		{1, 1, 2, 3, 3},
		{1, 2, 1, 3},
		{1, 3, 2, 1},
		{2, 1, 3},
	}
	for _, seq := range sequences {
		last := 0
		for i := 1; i <= len(seq); i++ {
			got, err := ResolveAct(entries(seq[:i]...))
			require.NoError(t, err, "prefix %v", seq[:i])
			assert.GreaterOrEqual(t, got.Act, last, "prefix %v", seq[:i])
			last = got.Act
		}
	}
}

func TestLedgerActs(t *testing.T) {
	assert.Equal(t, []int{3, 1}, ledgerActs(entries(3, 1, 3)))
	assert.Empty(t, ledgerActs(nil))
}
