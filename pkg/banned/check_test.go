package banned

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		delims   []string
		banned   []string
		wantWord string // empty means clean
	}{
		{
			name:   "no banned words is always clean",
			text:   "eval(exec(system))",
			delims: DefaultDelimiters(),
			banned: nil,
		},
		{
			name:   "substring of a larger token is not a match",
			text:   "evaluate(x)",
			delims: DefaultDelimiters(),
			banned: []string{"eval"},
		},
		{
			name:     "call through a module",
			text:     "import os\nos.system('rm -rf /')",
			delims:   DefaultDelimiters(),
			banned:   []string{"system"},
			wantWord: "system",
		},
		{
			name:     "custom delimiter can be banned",
			text:     "a#b#c",
			delims:   []string{"#"},
			banned:   []string{"#"},
			wantWord: "#",
		},
		{
			name:     "absent earlier word is skipped",
			text:     "x = bar()",
			delims:   DefaultDelimiters(),
			banned:   []string{"foo", "bar"},
			wantWord: "bar",
		},
		{
			name:     "list order wins over source order",
			text:     "bar(); foo();",
			delims:   DefaultDelimiters(),
			banned:   []string{"foo", "bar"},
			wantWord: "foo",
		},
		{
			name:   "matching is case sensitive",
			text:   "System.exit(0)",
			delims: DefaultDelimiters(),
			banned: []string{"system"},
		},
		{
			name:     "delimiter itself banned",
			text:     "p->next = *q;",
			delims:   DefaultDelimiters(),
			banned:   []string{"*"},
			wantWord: "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(Tokenize(tt.text, tt.delims), tt.banned)
			if tt.wantWord == "" {
				assert.True(t, got.Clean())
				assert.Equal(t, StatusClean, got.Status)
				assert.NoError(t, got.Err())
				return
			}
			assert.Equal(t, StatusBanned, got.Status)
			assert.Equal(t, tt.wantWord, got.Word)
		})
	}
}

func TestScan(t *testing.T) {
	got := Scan("goto fail;", DefaultDelimiters(), []string{"goto"})
	assert.Equal(t, Outcome{Status: StatusBanned, Word: "goto"}, got)

	got = Scan("", DefaultDelimiters(), []string{"goto"})
	assert.True(t, got.Clean())
}

func TestOutcome_Err(t *testing.T) {
	err := Outcome{Status: StatusBanned, Word: "malloc"}.Err()
	require.Error(t, err)
	assert.Equal(t, "Word malloc is banned!", err.Error())

	var violation *ViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "malloc", violation.Word)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "clean", StatusClean.String())
	assert.Equal(t, "banned", StatusBanned.String())
	assert.Equal(t, "unknown", Status(42).String())
}
