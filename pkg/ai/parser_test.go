package ai_test

import (
	"testing"

	"gameforge/pkg/ai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	raw, err := ai.ExtractJSON("Voici le concept:\n```json\n{\"a\": {\"b\": 1}}\n```\nBon jeu!")
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, raw)

	_, err = ai.ExtractJSON("no object here")
	assert.ErrorIs(t, err, ai.ErrNoJSON)
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)

	_, err = ai.ExtractJSON("} backwards {")
	assert.ErrorIs(t, err, ai.ErrNoJSON)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		ActText string `json:"act_text"`
	}
	require.NoError(t, ai.DecodeJSON(`Sure! {"act_text": "Le roi tombe."}`, &v))
	assert.Equal(t, "Le roi tombe.", v.ActText)

	err := ai.DecodeJSON(`{"act_text": "unterminated}`, &v)
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)
	assert.NotErrorIs(t, err, ai.ErrNoJSON)
}
