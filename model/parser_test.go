package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFencedBlock(t *testing.T) {
	inner, ok := ExtractFencedBlock("```json\n{\"a\": 1}\n```")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, inner)

	inner, ok = ExtractFencedBlock("prefix\n```\n{\"a\": 1}\n```\nsuffix")
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, inner)

	_, ok = ExtractFencedBlock(`{"a": 1}`)
	assert.False(t, ok)
}

func TestDecodeStructuredRoundTrip(t *testing.T) {
	jsonText := `{"duration": "12 months", "penalties": ["late fee"]}`

	var plain map[string]any
	require.NoError(t, DecodeStructured(jsonText, &plain))

	var fenced map[string]any
	require.NoError(t, DecodeStructured("```json\n"+jsonText+"\n```", &fenced))

	// A fenced reply decodes to the same value as the bare JSON.
	assert.Equal(t, plain, fenced)
}

func TestDecodeStructuredUntaggedFence(t *testing.T) {
	var out map[string]any
	require.NoError(t, DecodeStructured("```\n{\"x\": true}\n```", &out))
	assert.Equal(t, true, out["x"])
}

func TestDecodeStructuredMalformed(t *testing.T) {
	var out map[string]any
	err := DecodeStructured("I could not produce JSON, sorry.", &out)

	var malformed *MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Raw, "sorry")
}

func TestDecodeStructuredMalformedInsideFence(t *testing.T) {
	var out map[string]any
	err := DecodeStructured("```json\nnot json at all\n```", &out)

	var malformed *MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}
