package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/bancheck/pkg/banned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSource(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "plain text", content: "int main() {}\n", want: "int main() {}\n"},
		{name: "empty file", content: "", want: ""},
		{name: "utf-8 text", content: "naïve ∑", want: "naïve ∑"},
		{name: "utf-8 bom dropped", content: "\xef\xbb\xbfgoto", want: "goto"},
		{name: "utf-16le with bom", content: "\xff\xfeg\x00o\x00", want: "go"},
		{name: "utf-16be with bom", content: "\xfe\xff\x00g\x00o", want: "go"},
		{name: "invalid utf-8", content: "\x80abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "solution.txt", tt.content)
			got, err := ReadSource(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, banned.ErrInputFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadSource_Missing(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.cpp"))
	require.Error(t, err)
	assert.ErrorIs(t, err, banned.ErrInputFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
