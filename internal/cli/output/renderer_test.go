package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := map[string]OutputMode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"text":     ModeText,
		"TEXT":     ModeText,
		"markdown": ModeMarkdown,
		"md":       ModeMarkdown,
		"json":     ModeJSON,
		" json ":   ModeJSON,
		"html":     ModeAuto,
	}
	for in, want := range tests {
		assert.Equal(t, want, Mode(in), "Mode(%q)", in)
	}
}

func TestEffectiveMode(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, true, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRendererWithTTY(&out, &errOut, false, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRendererWithTTY(&out, &errOut, true, ModeJSON).EffectiveMode())
	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, false, ModeText).EffectiveMode())
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_ErrorIsPlainWhenPiped(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Error("Word goto is banned!")
	assert.Equal(t, "Word goto is banned!\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestRenderer_Success(t *testing.T) {
	var out, errOut bytes.Buffer

	NewRendererWithTTY(&out, &errOut, false, ModeMarkdown).Success("done")
	assert.Equal(t, "**done**\n", out.String())

	out.Reset()
	NewRendererWithTTY(&out, &errOut, false, ModeText).Success("done")
	assert.Contains(t, out.String(), "done")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestRenderer_JSON(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeJSON)

	require.NoError(t, r.JSON(CheckResult{File: "a.py", Status: "clean", TokenCount: 3}))
	assert.JSONEq(t, `{"file":"a.py","status":"clean","token_count":3}`, out.String())
}
