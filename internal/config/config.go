// Package config loads wikifmt command settings. Sources are layered with
// later ones winning: embedded defaults, a TOML file, WIKIFMT_* environment
// variables, then explicit overrides from command line flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/bjaus/wikifmt"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = "wikifmt.toml"

// EnvPrefix prefixes environment overrides. A double underscore separates
// sections: WIKIFMT_OUTPUT__FORMAT sets output.format.
const EnvPrefix = "WIKIFMT_"

// Keys accepted in overrides.
const (
	KeyMediaWikiSyntax   = "wiki.media_wiki_syntax"
	KeyNewlineAfterBlock = "wiki.newline_after_block"
	KeyFormat            = "output.format"
	KeyGlossary          = "data.glossary"
	KeyVocabulary        = "data.vocabulary"
)

// Config is the resolved command configuration.
type Config struct {
	Wiki   Wiki   `koanf:"wiki"`
	Output Output `koanf:"output"`
	Data   Data   `koanf:"data"`
}

// Wiki controls decoration output.
type Wiki struct {
	MediaWikiSyntax   bool `koanf:"media_wiki_syntax"`
	NewlineAfterBlock bool `koanf:"newline_after_block"`
}

// Output selects how rendered entries are written.
type Output struct {
	Format string `koanf:"format"`
}

// Data names the files that feed the formatter.
type Data struct {
	Glossary   string `koanf:"glossary"`
	Vocabulary string `koanf:"vocabulary"`
}

// Options controls where Load looks.
type Options struct {
	// Path is an explicit config file. It must exist.
	Path string
	// Dir is searched for FileName when Path is empty. Empty means the
	// working directory.
	Dir string
	// Overrides are applied last, keyed by the Key constants.
	Overrides map[string]any
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("not implemented")
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. Config file
	path, err := configPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if _, err := cfg.Format(); err != nil {
		return nil, fmt.Errorf("invalid output.format: %w", err)
	}
	return &cfg, nil
}

func configPath(opts Options) (string, error) {
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return opts.Path, nil
	}
	path := filepath.Join(opts.Dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// Format returns the parsed output format.
func (c *Config) Format() (wikifmt.Format, error) {
	return wikifmt.ParseFormat(c.Output.Format)
}

// Formatter builds a formatter from the glossary and vocabulary files.
func (c *Config) Formatter() (*wikifmt.Formatter, error) {
	glossary := wikifmt.NewGlossary(nil, nil)
	if c.Data.Glossary != "" {
		f, err := os.Open(c.Data.Glossary)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		glossary, err = wikifmt.LoadGlossary(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Data.Glossary, err)
		}
	}

	var vocab *wikifmt.Vocabulary
	if c.Data.Vocabulary != "" {
		f, err := os.Open(c.Data.Vocabulary)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		vocab, err = wikifmt.LoadVocabulary(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Data.Vocabulary, err)
		}
	}

	return wikifmt.New(glossary, wikifmt.Config{
		MediaWikiSyntax:   c.Wiki.MediaWikiSyntax,
		NewlineAfterBlock: c.Wiki.NewlineAfterBlock,
		Vocabulary:        vocab,
	}), nil
}
