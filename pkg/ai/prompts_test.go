package ai_test

import (
	"testing"

	"gameforge/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrompts(t *testing.T) {
	ps, err := ai.DefaultPrompts()
	require.NoError(t, err)
	assert.NotEmpty(t, ps.Concept.System)
	assert.Contains(t, ps.Choices.User, "{{.Count}}")
	assert.Contains(t, ps.Rewrite.User, "act_text")
}

func TestParsePrompts_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "concept: [unclosed"},
		{"missing section", "concept:\n  system: s\n  user: u\nchoices:\n  system: s\n  user: u\n"},
		{"bad template", "concept:\n  system: s\n  user: '{{.Genre'\nchoices:\n  system: s\n  user: u\nrewrite:\n  system: s\n  user: u\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ai.ParsePrompts([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
