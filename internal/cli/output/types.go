package output

// CheckResult is the JSON output of a banned word check.
type CheckResult struct {
	File       string `json:"file"`
	Status     string `json:"status"`
	Word       string `json:"word,omitempty"`
	TokenCount int    `json:"token_count"`
}

// TokensResult is the JSON output of the tokens command.
type TokensResult struct {
	File   string   `json:"file"`
	Count  int      `json:"count"`
	Tokens []string `json:"tokens"`
}

// DelimiterEntry is one row of the delimiters command's JSON output.
type DelimiterEntry struct {
	Index     int    `json:"index"`
	Delimiter string `json:"delimiter"`
	Escaped   string `json:"escaped"`
}

// DelimitersResult is the JSON output of the delimiters command.
type DelimitersResult struct {
	Source     string           `json:"source"`
	Delimiters []DelimiterEntry `json:"delimiters"`
}
