package banned

import (
	"sort"
	"strings"
	"unicode"
)

// TokenSet is the set of distinct tokens found in a text.
type TokenSet map[string]struct{}

// Contains reports whether tok is an element of the set.
func (s TokenSet) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Len returns the number of distinct tokens.
func (s TokenSet) Len() int { return len(s) }

// Sorted returns the tokens in lexical order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Pad surrounds every occurrence of each delimiter with a single space on
// both sides. Delimiters are applied one after another, each pass running
// over the output of the previous one, so the order of delimiters can
// change the result when delimiters overlap.
//
// Replacement is literal. An empty delimiter pads every rune.
func Pad(text string, delimiters []string) string {
	for _, d := range delimiters {
		text = strings.ReplaceAll(text, d, " "+d+" ")
	}
	return text
}

// Tokenize pads text with the given delimiters and splits it on runs of
// whitespace. The result never contains the empty string.
func Tokenize(text string, delimiters []string) TokenSet {
	fields := strings.FieldsFunc(Pad(text, delimiters), isSeparator)
	tokens := make(TokenSet, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// isSeparator treats the FS, GS, RS and US control characters as
// whitespace in addition to the Unicode White_Space set.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
