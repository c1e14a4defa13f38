// Package config provides configuration management for the bancheck CLI.
//
// Values are layered from built-in defaults, an optional bancheck.yaml,
// BANCHECK_* environment variables and explicitly set command-line flags,
// in increasing order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	Solution     string `koanf:"solution" yaml:"solution" json:"solution"`
	BannedWords  string `koanf:"banned_words" yaml:"banned_words" json:"banned_words"`
	Delimiters   string `koanf:"delimiters" yaml:"delimiters,omitempty" json:"delimiters,omitempty"`
	Verbose      bool   `koanf:"verbose" yaml:"verbose" json:"verbose"`
	OutputFormat string `koanf:"output" yaml:"output" json:"output"`

	// ConfigFile is the configuration file that was read, if any.
	ConfigFile string `koanf:"-" yaml:"-" json:"config_file,omitempty"`
}

// Configuration keys.
const (
	KeySolution    = "solution"
	KeyBannedWords = "banned_words"
	KeyDelimiters  = "delimiters"
	KeyVerbose     = "verbose"
	KeyOutput      = "output"
)

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix     = "BANCHECK_"
)

// ConfigFileNames are searched in the working directory when no
// --config flag is given.
var ConfigFileNames = []string{"bancheck.yaml", "bancheck.yml"}

// pathKeys hold file paths; relative values read from a config file are
// resolved against that file's directory.
var pathKeys = []string{KeySolution, KeyBannedWords, KeyDelimiters}

// Defaults returns a Config populated with default values.
func Defaults() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
	}
}
