package banned

// defaultDelimiters is the built-in delimiter set. Order is significant:
// padding passes run in this order.
var defaultDelimiters = []string{
	" ", ",", ".", "\t", ";",
	"(", ")", "{", "}", "[", "]",
	"&", "*", "!", "=", "+", "-", "/", "%", "@", "\\", "^",
}

// DefaultDelimiters returns a copy of the built-in delimiter set.
func DefaultDelimiters() []string {
	out := make([]string, len(defaultDelimiters))
	copy(out, defaultDelimiters)
	return out
}
