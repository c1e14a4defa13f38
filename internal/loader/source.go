package loader

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/leapstack-labs/bancheck/pkg/banned"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadSource reads the whole file at path as text.
//
// A UTF-8 byte order mark is dropped and UTF-16 input with a byte order
// mark is converted to UTF-8. Anything else must already be valid UTF-8.
func ReadSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", banned.ErrInputFile, err)
	}
	defer f.Close()

	return decodeSource(path, f)
}

func decodeSource(name string, r io.Reader) (string, error) {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", banned.ErrInputFile, name, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8 text", banned.ErrInputFile, name)
	}
	return string(data), nil
}
