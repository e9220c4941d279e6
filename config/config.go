// Package config loads the YAML settings shared by the command line tools.
package config

import (
	"fmt"
	"os"
	"statesearch/jugs"
	"statesearch/nim"
	"statesearch/searcher"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Search SearchConfig `yaml:"search"`
	Jugs   JugsConfig   `yaml:"jugs"`
	Nim    NimConfig    `yaml:"nim"`
	Game   GameConfig   `yaml:"game"`
}

// SearchConfig bounds a search. Zero means unlimited.
type SearchConfig struct {
	MaxExpansions int           `yaml:"max_expansions" validate:"min=0"`
	Timeout       time.Duration `yaml:"timeout" validate:"min=0"`
}

type JugsConfig struct {
	Capacities []int `yaml:"capacities" validate:"min=2,dive,gt=0"`
	Contents   []int `yaml:"contents" validate:"min=2,dive,min=0"`
	Goal       []int `yaml:"goal" validate:"min=2,dive,min=0"`
}

type NimConfig struct {
	Objects int `yaml:"objects" validate:"gt=0"`
	Limit   int `yaml:"limit" validate:"gt=0"`
}

type GameConfig struct {
	Opponent string `yaml:"opponent" validate:"required,oneof=human random"`
	Seed     uint64 `yaml:"seed"`
}

var validate = validator.New()

func Default() Config {
	return Config{
		Jugs: JugsConfig{
			Capacities: []int{3, 5, 8},
			Contents:   []int{3, 5, 0},
			Goal:       []int{0, 4, 4},
		},
		Nim: NimConfig{
			Objects: 21,
			Limit:   3,
		},
		Game: GameConfig{
			Opponent: "random",
			Seed:     1,
		},
	}
}

// Load reads path over the defaults. A missing file leaves the defaults in place.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, config)
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

func (s SearchConfig) Options() []searcher.Option {
	return []searcher.Option{
		searcher.WithMaxExpansions(s.MaxExpansions),
		searcher.WithDuration(s.Timeout),
	}
}

// Instance builds the configured puzzle; jug counts and water totals are checked there.
func (j JugsConfig) Instance() (*jugs.State, error) {
	return jugs.New(j.Capacities, j.Contents, j.Goal)
}

func (n NimConfig) Instance() (nim.State, error) {
	return nim.New(n.Objects, n.Limit)
}
