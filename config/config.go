package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"

	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/domain/session"
)

// Prefix of every environment variable read by Load.
const Prefix = "BLACKJACK_"

const (
	ShufflerSeeded = "seeded"
	ShufflerSecure = "secure"
)

type Config struct {
	// Bankroll at the start of the session
	StartingBalance int `mapstructure:"BLACKJACK_STARTING_BALANCE"`

	// RNG seed for the seeded shuffler (0 => time-based)
	Seed int64 `mapstructure:"BLACKJACK_SEED"`

	// "seeded" or "secure"
	Shuffler string `mapstructure:"BLACKJACK_SHUFFLER"`

	// Read answers line by line instead of interactive prompts
	Plain bool `mapstructure:"BLACKJACK_PLAIN"`

	// trace, debug, info, warn or error
	LogLevel string `mapstructure:"BLACKJACK_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		StartingBalance: session.DefaultStartingBalance,
		Shuffler:        ShufflerSeeded,
		LogLevel:        "info",
	}
}

// Load reads envFile (".env" when empty; a missing default file is ignored)
// into the process environment and decodes the BLACKJACK_* variables over
// the defaults. The result is not validated, so callers can still override
// it before calling Validate.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromMap(environ())
}

// FromMap decodes string values keyed by variable name over the defaults.
// Unknown keys are ignored. Only malformed values are rejected here; range
// checks belong to Validate.
func FromMap(values map[string]string) (Config, error) {
	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(values); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Shuffler = strings.ToLower(strings.TrimSpace(cfg.Shuffler))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

func (c Config) Validate() error {
	if c.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be > 0, got %d", c.StartingBalance)
	}
	if c.Shuffler != ShufflerSeeded && c.Shuffler != ShufflerSecure {
		return fmt.Errorf("unknown shuffler %q", c.Shuffler)
	}
	if c.Shuffler == ShufflerSecure && c.Seed != 0 {
		return fmt.Errorf("the secure shuffler cannot be seeded")
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// NewShuffler builds the shuffler selected by the configuration.
func (c Config) NewShuffler() deck.Shuffler {
	if c.Shuffler == ShufflerSecure {
		return deck.NewSecureShuffler()
	}
	return deck.NewSeededShuffler(c.Seed)
}

func environ() map[string]string {
	values := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, Prefix) {
			values[k] = v
		}
	}
	return values
}
