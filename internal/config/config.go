// Package config implements the configuration for nfacheck.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	automaton "github.com/geange/substring-automaton"
)

const (
	defaultLogLevel = "NOTICE"
	defaultPosition = automaton.Anywhere
)

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl
	return nil
}

// Matcher is the automaton configuration.
type Matcher struct {
	// Alphabet lists the symbols patterns and inputs may use.
	Alphabet string

	// Position is the default position, one of front, last or anywhere.
	Position *automaton.Position

	alphabet *automaton.Alphabet
}

// GetAlphabet returns the parsed alphabet. Only valid after FixupAndValidate.
func (mCfg *Matcher) GetAlphabet() *automaton.Alphabet {
	return mCfg.alphabet
}

func (mCfg *Matcher) validate() error {
	if mCfg.Alphabet == "" {
		mCfg.Alphabet = automaton.DefaultSymbols
	}
	al, err := automaton.NewAlphabet(mCfg.Alphabet)
	if err != nil {
		return fmt.Errorf("config: Matcher: Alphabet: %w", err)
	}
	mCfg.alphabet = al

	if mCfg.Position == nil {
		p := defaultPosition
		mCfg.Position = &p
	}
	return nil
}

// Config is the top level nfacheck configuration.
type Config struct {
	Matcher *Matcher
	Logging *Logging
}

// FixupAndValidate applies defaults to config entries and validates the
// supplied configuration.
func (c *Config) FixupAndValidate() error {
	if c.Matcher == nil {
		c.Matcher = &Matcher{}
	}
	if c.Logging == nil {
		c.Logging = &Logging{}
	}

	if err := c.Matcher.validate(); err != nil {
		return err
	}
	return c.Logging.validate()
}

// Default returns a validated configuration holding only defaults.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic(err)
	}
	return cfg
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)

	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses, and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}

// LoadFileOrDefault loads f, or returns Default when f is empty.
func LoadFileOrDefault(f string) (*Config, error) {
	if f == "" {
		return Default(), nil
	}
	return LoadFile(f)
}
