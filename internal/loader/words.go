package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/leapstack-labs/bancheck/pkg/banned"
)

// BannedWordsConfig is the document shape of a banned words file:
//
//	{"banned_words": ["goto", "malloc"]}
//
// A missing banned_words key means no word is banned.
type BannedWordsConfig struct {
	BannedWords []string `json:"banned_words"`
}

// DelimitersConfig is the document shape of a delimiters file: a flat
// JSON array of strings.
type DelimitersConfig []string

// LoadBannedWords reads and parses a banned words file.
func LoadBannedWords(path string) ([]string, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseBannedWords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.BannedWords, nil
}

// ParseBannedWords decodes a banned words document.
func ParseBannedWords(data []byte) (*BannedWordsConfig, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object: %w", banned.ErrConfiguration, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: expected a JSON object, got null", banned.ErrConfiguration)
	}

	cfg := &BannedWordsConfig{BannedWords: []string{}}
	raw, ok := doc["banned_words"]
	if !ok {
		return cfg, nil
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: banned_words must be an array of strings, got null", banned.ErrConfiguration)
	}
	if err := json.Unmarshal(raw, &cfg.BannedWords); err != nil {
		return nil, fmt.Errorf("%w: banned_words must be an array of strings: %w", banned.ErrConfiguration, err)
	}
	return cfg, nil
}

// LoadDelimiters reads and parses a delimiters file.
func LoadDelimiters(path string) ([]string, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	delims, err := ParseDelimiters(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return delims, nil
}

// ParseDelimiters decodes a delimiters document. An empty array is valid
// and leaves whitespace as the only separator.
func ParseDelimiters(data []byte) (DelimitersConfig, error) {
	var delims DelimitersConfig
	if err := json.Unmarshal(data, &delims); err != nil {
		return nil, fmt.Errorf("%w: delimiters must be a JSON array of strings: %w", banned.ErrConfiguration, err)
	}
	if delims == nil {
		return nil, fmt.Errorf("%w: delimiters must be a JSON array of strings, got null", banned.ErrConfiguration)
	}
	return delims, nil
}

func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", banned.ErrConfiguration, err)
	}
	return data, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
