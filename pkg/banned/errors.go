package banned

import "errors"

var (
	// ErrConfiguration marks a missing or malformed banned-words file,
	// delimiters file or tool configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrInputFile marks a solution file that cannot be read or decoded.
	ErrInputFile = errors.New("input file error")
)

// ViolationError reports a banned word found in the scanned text.
type ViolationError struct {
	Word string
}

func (e *ViolationError) Error() string {
	return "Word " + e.Word + " is banned!"
}
