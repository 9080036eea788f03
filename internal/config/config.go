// =============================================================================
// CSV to LaTeX Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the converter configuration. Values
// are layered from several sources; later sources win:
//
//   1. Built-in defaults (the historical hardcoded paths)
//   2. Config file (csv2tex.yaml / csv2tex.yml, or --config)
//   3. Environment variables (CSV2TEX_ prefix, "__" separates sections)
//   4. Command-line flags that were explicitly set
//
// Running with no config file, no environment and no flags reads
// Sources/csv_files/brief.csv and writes annotated_bib/table_output.tex with
// a row-index column, exactly like the original export script.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultInput is the CSV file read when nothing else is configured.
	DefaultInput = "Sources/csv_files/brief.csv"

	// DefaultOutput is the .tex file written when nothing else is configured.
	DefaultOutput = "annotated_bib/table_output.tex"

	// EnvPrefix is the prefix for environment variable overrides.
	// Example: CSV2TEX_LATEX__INDEX=false sets latex.index.
	EnvPrefix = "CSV2TEX_"
)

// configFileNames are searched in the working directory when --config is not given.
var configFileNames = []string{"csv2tex.yaml", "csv2tex.yml"}

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the complete converter configuration.
type Config struct {
	// Input is the path to the CSV file, relative to the working directory.
	Input string `koanf:"input" yaml:"input"`

	// Output is the path of the .tex file to write. Existing content is replaced.
	Output string `koanf:"output" yaml:"output"`

	// Verbose enables debug-level log lines.
	Verbose bool `koanf:"verbose" yaml:"verbose"`

	// Preview prints the loaded table to stdout as a text grid.
	Preview bool `koanf:"preview" yaml:"preview"`

	// CSV contains settings for reading the input file.
	CSV CSVSettings `koanf:"csv" yaml:"csv"`

	// LaTeX contains settings for the generated markup.
	LaTeX LaTeXSettings `koanf:"latex" yaml:"latex"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-" yaml:"-"`
}

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the field separator.
	// Accepts a single character or one of: "tab", "pipe", "semicolon", "comma".
	// Default: ","
	Delimiter string `koanf:"delimiter" yaml:"delimiter"`

	// Encoding is the character encoding of the input.
	// Valid values: "utf-8", "ascii", "latin-1" (alias "iso-8859-1"), "windows-1252".
	// Default: "utf-8"
	Encoding string `koanf:"encoding" yaml:"encoding"`

	// Header reports whether the first row holds column names.
	// Default: true
	Header bool `koanf:"header" yaml:"header"`
}

// LaTeXSettings contains settings for the generated tabular block.
type LaTeXSettings struct {
	// Index prefixes a zero-based row-index column.
	// Default: true
	Index bool `koanf:"index" yaml:"index"`

	// Booktabs uses \toprule, \midrule and \bottomrule instead of \hline.
	// Default: true
	Booktabs bool `koanf:"booktabs" yaml:"booktabs"`

	// ColumnFormat overrides the inferred column specification (e.g. "lrl").
	ColumnFormat string `koanf:"column_format" yaml:"column_format"`

	// Caption wraps the tabular in a table float with this caption.
	Caption string `koanf:"caption" yaml:"caption"`

	// Label adds a \label to the table float.
	Label string `koanf:"label" yaml:"label"`

	// Position is the float placement specifier (e.g. "htbp").
	Position string `koanf:"position" yaml:"position"`

	// NaRep is written in place of empty cells.
	NaRep string `koanf:"na_rep" yaml:"na_rep"`
}

// defaults returns the built-in default values keyed by config path.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"input":               DefaultInput,
		"output":              DefaultOutput,
		"verbose":             false,
		"preview":             false,
		"csv.delimiter":       ",",
		"csv.encoding":        "utf-8",
		"csv.header":          true,
		"latex.index":         true,
		"latex.booktabs":      true,
		"latex.column_format": "",
		"latex.caption":       "",
		"latex.label":         "",
		"latex.position":      "",
		"latex.na_rep":        "",
	}
}

// =============================================================================
// FLAGS
// =============================================================================

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"input":         "input",
	"output":        "output",
	"verbose":       "verbose",
	"preview":       "preview",
	"delimiter":     "csv.delimiter",
	"encoding":      "csv.encoding",
	"header":        "csv.header",
	"index":         "latex.index",
	"booktabs":      "latex.booktabs",
	"column-format": "latex.column_format",
	"caption":       "latex.caption",
	"label":         "latex.label",
	"position":      "latex.position",
	"na-rep":        "latex.na_rep",
}

// RegisterFlags adds every configurable flag to fs.
// Only flags the user actually sets override lower layers.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", DefaultInput, "Path to the input CSV file")
	fs.StringP("output", "o", DefaultOutput, "Path to the output .tex file")
	fs.Bool("preview", false, "Print the loaded table to stdout before writing")
	fs.String("delimiter", ",", "Field delimiter (character, or tab|pipe|semicolon)")
	fs.String("encoding", "utf-8", "Input encoding (utf-8, ascii, latin-1, windows-1252)")
	fs.Bool("header", true, "Treat the first row as column headers")
	fs.Bool("index", true, "Prefix a zero-based row-index column")
	fs.Bool("booktabs", true, "Use booktabs rules instead of \\hline")
	fs.String("column-format", "", "Override the tabular column specification")
	fs.String("caption", "", "Wrap the tabular in a table float with this caption")
	fs.String("label", "", "Label for the table float")
	fs.String("position", "", "Float placement specifier, e.g. htbp")
	fs.String("na-rep", "", "Text written for empty cells")
}

// =============================================================================
// LOADING
// =============================================================================

// Load builds the configuration from defaults, the config file, environment
// variables and flags.
//
// PARAMETERS:
//   - cfgFile: Explicit config file path. Empty means search the working directory.
//   - flags: The command's flag set. May be nil.
//
// RETURNS:
//   - The merged and validated configuration.
//   - An error if a source cannot be read or a value is invalid.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFile, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	// 3. Environment: CSV2TEX_LATEX__INDEX -> latex.index
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = configFile

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// findConfigFile returns the config file to load, or "" when there is none.
// An explicit path must exist; the default names are optional.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks that every value can be acted on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input path is empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path is empty")
	}
	if _, err := c.CSV.Comma(); err != nil {
		return err
	}
	if _, err := NormalizeEncoding(c.CSV.Encoding); err != nil {
		return err
	}
	for _, r := range c.LaTeX.Position {
		if !strings.ContainsRune("htbpH!", r) {
			return fmt.Errorf("invalid float position %q", c.LaTeX.Position)
		}
	}
	return nil
}

// Comma resolves the configured delimiter to a single rune.
func (s CSVSettings) Comma() (rune, error) {
	switch strings.ToLower(s.Delimiter) {
	case "", ",", "comma":
		return ',', nil
	case "\\t", "\t", "tab":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	case ";", "semicolon":
		return ';', nil
	}

	if utf8.RuneCountInString(s.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(s.Delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s.Delimiter)
	}
	return r, nil
}

// Supported encoding names, as returned by NormalizeEncoding.
const (
	EncodingUTF8        = "utf-8"
	EncodingASCII       = "ascii"
	EncodingLatin1      = "latin-1"
	EncodingWindows1252 = "windows-1252"
)

// NormalizeEncoding maps an encoding label to one of the supported names.
func NormalizeEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "ascii", "us-ascii":
		return EncodingASCII, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "windows-1252", "cp1252":
		return EncodingWindows1252, nil
	}
	return "", fmt.Errorf("unsupported encoding %q", name)
}
