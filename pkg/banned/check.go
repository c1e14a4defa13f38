package banned

// Status is the result class of a check.
type Status int

// Check statuses.
const (
	// StatusClean means no banned word was found.
	StatusClean Status = iota
	// StatusBanned means a banned word is present as a token.
	StatusBanned
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusBanned:
		return "banned"
	default:
		return "unknown"
	}
}

// Outcome is the result of Check.
type Outcome struct {
	Status Status
	Word   string // set when Status is StatusBanned
}

// Clean reports whether no banned word was found.
func (o Outcome) Clean() bool { return o.Status == StatusClean }

// Err returns a *ViolationError for a banned outcome and nil otherwise.
func (o Outcome) Err() error {
	if o.Status != StatusBanned {
		return nil
	}
	return &ViolationError{Word: o.Word}
}

// Check reports the first word of banned that is an element of tokens.
// Words are tried in list order, so when several banned words are present
// the one listed first wins regardless of where it appears in the source.
func Check(tokens TokenSet, banned []string) Outcome {
	for _, w := range banned {
		if tokens.Contains(w) {
			return Outcome{Status: StatusBanned, Word: w}
		}
	}
	return Outcome{Status: StatusClean}
}

// Scan tokenizes text and checks it against banned in one call.
func Scan(text string, delimiters, banned []string) Outcome {
	return Check(Tokenize(text, delimiters), banned)
}
