// Package banned finds disallowed words in source text.
//
// Detection is a two-stage pipeline. Tokenize pads every delimiter with
// spaces and splits the result on whitespace, producing a TokenSet. Check
// then walks the banned word list in order and reports the first word that
// is present as an exact token.
//
//	tokens := banned.Tokenize(src, banned.DefaultDelimiters())
//	outcome := banned.Check(tokens, []string{"eval", "exec"})
//	if err := outcome.Err(); err != nil {
//		// err.Error() == "Word eval is banned!"
//	}
//
// Matching is token equality, not substring search: with the default
// delimiters "eval" is not found in "evaluate(x)". No language syntax is
// recognized, so words inside comments and string literals count too.
package banned
