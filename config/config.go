package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/poetrydb/contract-tests/poetrydb"
)

// PathEnvVar names the environment variable consulted when no config path is given.
const PathEnvVar = "POETRYDB_CONFIG"

// Fixtures are the known facts about the service's catalogue that the suite asserts on.
type Fixtures struct {
	Title        string   `yaml:"title"`
	Author       string   `yaml:"author"`
	ExactTitle   string   `yaml:"exact_title"`
	WinterTitles []string `yaml:"winter_titles"`
	UnknownTitle string   `yaml:"unknown_title"`
}

// Config is the root of the YAML configuration file.
type Config struct {
	BaseURL  string   `yaml:"base_url"`
	Fixtures Fixtures `yaml:"fixtures"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		BaseURL: poetrydb.DefaultBaseURL,
		Fixtures: Fixtures{
			Title:      "Ozymandias",
			Author:     "William Shakespeare",
			ExactTitle: "Winter",
			WinterTitles: []string{
				"Winter",
				"Spring and Winter i",
				"Spring and Winter ii",
				"Blow, Blow, Thou Winter Wind",
				"Sonnet 2: When forty winters shall besiege thy brow",
			},
			UnknownTitle: "No Such Poem Anywhere",
		},
	}
}

// Load reads the configuration file at path, or at $POETRYDB_CONFIG if path is empty. With
// neither set, it returns Default. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(PathEnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configuration the suite cannot run with.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if c.Fixtures.Title == "" {
		return errors.New("fixtures.title is required")
	}
	if c.Fixtures.Author == "" {
		return errors.New("fixtures.author is required")
	}
	if c.Fixtures.ExactTitle == "" {
		return errors.New("fixtures.exact_title is required")
	}
	if c.Fixtures.UnknownTitle == "" {
		return errors.New("fixtures.unknown_title is required")
	}
	for i, title := range c.Fixtures.WinterTitles {
		if title == "" {
			return fmt.Errorf("fixtures.winter_titles[%d] is empty", i)
		}
	}
	return nil
}
