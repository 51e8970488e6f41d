// Package config loads scribe.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/praetorian-inc/scribe/pkg/dictionary"
	"github.com/praetorian-inc/scribe/pkg/ignore"
	"github.com/praetorian-inc/scribe/pkg/store"
)

// DefaultPath is read when no config file is named explicitly.
const DefaultPath = "scribe.yaml"

// Config is the root YAML structure.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Store      StoreConfig      `yaml:"store"`
	Ignore     IgnoreConfig     `yaml:"ignore"`
	Suggest    SuggestConfig    `yaml:"suggest"`
	Check      CheckConfig      `yaml:"check"`
}

// DictionaryConfig locates the spelling engine.
type DictionaryConfig struct {
	Backend    string   `yaml:"backend"`  // hunspell, wordlist
	Language   string   `yaml:"language"` // e.g. en_US
	Aff        string   `yaml:"aff,omitempty"`
	Dic        string   `yaml:"dic,omitempty"`
	SearchDirs []string `yaml:"search_dirs,omitempty"`
}

// StoreConfig locates the custom-word database.
type StoreConfig struct {
	Path string `yaml:"path"` // ":memory:" keeps words for the process only
}

// IgnoreConfig selects ignore rules.
type IgnoreConfig struct {
	Builtin   bool          `yaml:"builtin"`
	RulesFile string        `yaml:"rules_file,omitempty"`
	Disable   []string      `yaml:"disable,omitempty"` // rule ID patterns
	Timeout   time.Duration `yaml:"timeout,omitempty"`
}

// SuggestConfig bounds suggestion output.
type SuggestConfig struct {
	Limit int `yaml:"limit"`
}

// CheckConfig filters files found while walking directories.
type CheckConfig struct {
	MaxFileSize   int64 `yaml:"max_file_size"`
	IncludeHidden bool  `yaml:"include_hidden"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Dictionary: DictionaryConfig{
			Backend:  dictionary.BackendHunspell,
			Language: dictionary.DefaultLanguage,
		},
		Store:   StoreConfig{Path: store.MemoryPath},
		Ignore:  IgnoreConfig{Builtin: true, Timeout: ignore.DefaultTimeout},
		Suggest: SuggestConfig{Limit: 5},
		Check:   CheckConfig{MaxFileSize: 10 * 1024 * 1024},
	}
}

// Parse decodes YAML over the defaults, so omitted fields keep their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path. An empty path reads DefaultPath and
// falls back to Default when that file does not exist; a named file must
// exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Dictionary.Backend {
	case dictionary.BackendHunspell, dictionary.BackendWordlist:
	default:
		return fmt.Errorf("dictionary.backend must be %q or %q, got %q",
			dictionary.BackendHunspell, dictionary.BackendWordlist, c.Dictionary.Backend)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Suggest.Limit < 0 {
		return fmt.Errorf("suggest.limit must not be negative")
	}
	if c.Check.MaxFileSize < 0 {
		return fmt.Errorf("check.max_file_size must not be negative")
	}
	return nil
}

// DictionaryOptions converts the dictionary section for dictionary.Open.
func (c Config) DictionaryOptions() dictionary.Config {
	return dictionary.Config{
		Backend:    c.Dictionary.Backend,
		AffPath:    c.Dictionary.Aff,
		DicPath:    c.Dictionary.Dic,
		Language:   c.Dictionary.Language,
		SearchDirs: c.Dictionary.SearchDirs,
	}
}

// StoreOptions converts the store section for store.New.
func (c Config) StoreOptions() store.Config {
	return store.Config{Path: c.Store.Path}
}

// IgnoreOptions converts the ignore section for ignore.Load.
func (c Config) IgnoreOptions() ignore.Config {
	return ignore.Config{
		Builtin:   c.Ignore.Builtin,
		RulesFile: c.Ignore.RulesFile,
		Disable:   c.Ignore.Disable,
		Timeout:   c.Ignore.Timeout,
	}
}
